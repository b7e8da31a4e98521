package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/folio/internal/api/handlers"
	"github.com/yoockh/folio/internal/services"
	"github.com/yoockh/folio/internal/web"
)

func TestRegisterRoutes_Smoke(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := logrus.New()
	l.SetOutput(io.Discard)

	projectSvc := services.NewProjectService(nil, nil, l)
	portfolioSvc := services.NewPortfolioService(nil, projectSvc, l)

	tmpl, err := web.Templates()
	require.NoError(t, err)
	assets, err := web.Static()
	require.NoError(t, err)
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	RegisterRoutes(r, Deps{
		Project:   handlers.NewProjectHandler(projectSvc),
		Portfolio: handlers.NewPortfolioHandler(portfolioSvc),
		Health:    handlers.NewHealthHandler(portfolioSvc),
		Contact:   handlers.NewContactHandler(l),
		Assets:    assets,
	})

	tests := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/static/css/style.css", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodPost, "/contact", http.StatusBadRequest}, // route exists; body missing
		{http.MethodGet, "/api/projects", http.StatusOK},
		{http.MethodPost, "/api/projects", http.StatusInternalServerError}, // no store
		{http.MethodDelete, "/api/projects/abc", http.StatusInternalServerError},
		{http.MethodGet, "/api/portfolio", http.StatusNotFound},
		{http.MethodGet, "/api/nothing", http.StatusNotFound},
	}
	for _, tc := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, tc.want, w.Code, "%s %s", tc.method, tc.path)
	}
}
