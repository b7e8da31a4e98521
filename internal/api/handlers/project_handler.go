package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/folio/internal/services"
)

type ProjectHandler struct {
	svc services.ProjectService
}

func NewProjectHandler(svc services.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

type CreateProjectResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ProjectID string `json:"project_id"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *ProjectHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.List(c.Request.Context()))
}

func (h *ProjectHandler) Create(c *gin.Context) {
	const op = "ProjectHandler.Create"
	if !h.svc.Available() {
		writeError(c, services.DatabaseUnavailable(op))
		return
	}
	body, ok := bindObject(c, op)
	if !ok {
		return
	}

	id, err := h.svc.Create(c.Request.Context(), body)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, CreateProjectResponse{
		Success:   true,
		Message:   "Project added successfully",
		ProjectID: id,
	})
}

func (h *ProjectHandler) Update(c *gin.Context) {
	const op = "ProjectHandler.Update"
	if !h.svc.Available() {
		writeError(c, services.DatabaseUnavailable(op))
		return
	}
	body, ok := bindObject(c, op)
	if !ok {
		return
	}

	if err := h.svc.Update(c.Request.Context(), c.Param("id"), body); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Project updated successfully"})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Project deleted successfully"})
}
