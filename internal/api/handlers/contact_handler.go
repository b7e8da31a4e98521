package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yoockh/folio/internal/api/middleware"
	"github.com/yoockh/folio/internal/models"
	"github.com/yoockh/folio/internal/utils"
)

// ContactHandler acknowledges contact form posts. Messages are logged, not stored.
type ContactHandler struct {
	log *logrus.Logger
}

func NewContactHandler(log *logrus.Logger) *ContactHandler {
	if log == nil {
		log = logrus.New()
	}
	return &ContactHandler{log: log}
}

const contactAck = "Thank you for your message! I will get back to you soon."

func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactMessage
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ContactHandler.Submit", "invalid request body", err))
		return
	}

	h.log.WithFields(logrus.Fields{
		middleware.RequestIDKey: middleware.RequestID(c),
		"email":                 req.Email,
		"subject":               req.Subject,
	}).Info("contact message received")

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: contactAck})
}
