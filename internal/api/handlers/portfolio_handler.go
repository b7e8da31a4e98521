package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/folio/internal/services"
)

type PortfolioHandler struct {
	svc services.PortfolioService
}

func NewPortfolioHandler(svc services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{svc: svc}
}

// Index renders the portfolio page. It always renders, with defaults when the store is empty or down.
func (h *PortfolioHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"data": h.svc.Assemble(c.Request.Context()),
	})
}

func (h *PortfolioHandler) Get(c *gin.Context) {
	doc, err := h.svc.Full(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}
