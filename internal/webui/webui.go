// Package webui serves the embedded dashboard pages: server-rendered HTML
// with metric cards, detail tables, heatmap tables, and chart images from
// the /charts endpoints, plus the go-spew dataset inspector under /debug/.
package webui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/Terry84/sdg2-dashboard/internal/app"
)

//go:embed templates static debug_index.html
var contentFS embed.FS

// pages maps URL paths to their content template and nav label, in sidebar
// order.
var pages = []struct {
	Path     string
	Template string
	Label    string
}{
	{"/", "overview.html", "Overview"},
	{"/undernourishment", "undernourishment.html", "Hunger & Undernourishment"},
	{"/production", "production.html", "Food Production"},
	{"/food-security", "food_security.html", "Food Security"},
	{"/nutrition", "nutrition.html", "Nutrition Status"},
	{"/regional-comparison", "comparison.html", "Regional Comparison"},
}

type WebUI struct {
	*app.Application
	templates map[string]*template.Template
}

// NewWebUI parses the embedded page templates.
func NewWebUI(application *app.Application) (*WebUI, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(contentFS,
			"templates/layout.html", "templates/"+page.Template)
		if err != nil {
			return nil, fmt.Errorf("error parsing template %s: %w", page.Template, err)
		}
		templates[page.Template] = tmpl
	}

	return &WebUI{Application: application, templates: templates}, nil
}

func (webUI *WebUI) render(w http.ResponseWriter, name string, data interface{}) {
	tmpl, ok := webUI.templates[name]
	if !ok {
		http.Error(w, "unknown page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		webUI.Logger.Error("failed to render page", "template", name, "error", err)
	}
}

// navItem is one sidebar entry.
type navItem struct {
	Path   string
	Label  string
	Active bool
}

func navItems(activePath string) []navItem {
	items := make([]navItem, 0, len(pages))
	for _, page := range pages {
		items = append(items, navItem{
			Path:   page.Path,
			Label:  page.Label,
			Active: page.Path == activePath,
		})
	}
	return items
}
