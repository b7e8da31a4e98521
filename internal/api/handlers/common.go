package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/yoockh/folio/internal/utils"
)

type APIError struct {
	Success bool       `json:"success"`
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
	// Error carries the full wrapped chain, only in gin debug (development) mode.
	Error string `json:"error,omitempty"`
}

func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	code, msg := utils.Public(err)
	body := APIError{Code: code, Message: msg}
	if gin.Mode() == gin.DebugMode {
		body.Error = err.Error()
	}
	c.JSON(utils.HTTPStatus(err), body)
}

// bindObject decodes the request body as a JSON object.
func bindObject(c *gin.Context, op string) (map[string]any, bool) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
		return nil, false
	}
	if body == nil {
		body = map[string]any{}
	}
	return body, true
}
