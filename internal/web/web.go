// Package web serves the static landing page.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/query"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses the embedded templates for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}

type LandingHandler struct {
	paths []string
}

func NewLandingHandler(resources []*query.Resource) *LandingHandler {
	paths := make([]string, 0, len(resources))
	for _, r := range resources {
		paths = append(paths, r.Path)
	}
	return &LandingHandler{paths: paths}
}

func (h *LandingHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "base", gin.H{
		"Title":     "Barbershop API",
		"Resources": h.paths,
	})
}
