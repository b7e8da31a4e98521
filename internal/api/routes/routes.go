package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/folio/internal/api/handlers"
)

type Deps struct {
	Project   *handlers.ProjectHandler
	Portfolio *handlers.PortfolioHandler
	Health    *handlers.HealthHandler
	Contact   *handlers.ContactHandler
	// Assets is served under /static; nil mounts nothing.
	Assets http.FileSystem
}

// RegisterRoutes mounts the page, its assets and the JSON API. The engine must already
// have the page templates set (see web.Templates).
func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/", d.Portfolio.Index)
	if d.Assets != nil {
		r.StaticFS("/static", d.Assets)
	}

	r.GET("/health", d.Health.Check)
	r.POST("/contact", d.Contact.Submit)

	api := r.Group("/api")
	api.GET("/projects", d.Project.List)
	api.POST("/projects", d.Project.Create)
	api.PUT("/projects/:id", d.Project.Update)
	api.DELETE("/projects/:id", d.Project.Delete)
	api.GET("/portfolio", d.Portfolio.Get)
}
