package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/folio/internal/services"
)

type HealthHandler struct {
	svc services.PortfolioService
	now func() time.Time
}

func NewHealthHandler(svc services.PortfolioService) *HealthHandler {
	return &HealthHandler{svc: svc, now: time.Now}
}

type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

func (h *HealthHandler) Check(c *gin.Context) {
	ts := h.now().Format(time.RFC3339Nano)

	connected, err := h.svc.Probe(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, HealthResponse{
			Status:    "unhealthy",
			Error:     err.Error(),
			Timestamp: ts,
		})
		return
	}

	database := "disconnected"
	if connected {
		database = "connected"
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Database: database, Timestamp: ts})
}
