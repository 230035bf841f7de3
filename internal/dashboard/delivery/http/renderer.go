package http

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"golang-stock-dashboard/internal/dashboard/chart"
	"golang-stock-dashboard/internal/dashboard/navigation"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pageTemplates = map[navigation.Page]string{
	navigation.PageDashboard:       "dashboard.html",
	navigation.PageStockManagement: "stock_management.html",
	navigation.PagePriceHistory:    "price_history.html",
	navigation.PageProjections:     "projections.html",
	navigation.PageSettings:        "settings.html",
}

// pageData is what every page template receives.
type pageData struct {
	Title   string
	Pages   []navigation.Page
	Current navigation.Page
	View    interface{}
}

type plotData struct {
	ID     string
	Figure *chart.Figure
}

// TemplateRenderer renders the dashboard pages. Each page is its own
// template set sharing the common layout.
type TemplateRenderer struct {
	templates map[string]*template.Template
}

// NewTemplateRenderer parses the embedded templates.
func NewTemplateRenderer() (*TemplateRenderer, error) {
	funcs := template.FuncMap{
		"pageURL": pageURL,
		"plot": func(id string, fig *chart.Figure) plotData {
			return plotData{ID: id, Figure: fig}
		},
	}

	r := &TemplateRenderer{templates: make(map[string]*template.Template, len(pageTemplates))}
	for page, file := range pageTemplates {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", file, err)
		}
		r.templates[string(page)] = t
	}
	return r, nil
}

// Render implements echo.Renderer.
func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

func pageURL(p navigation.Page) string {
	return "/?" + url.Values{"page": {string(p)}}.Encode()
}
