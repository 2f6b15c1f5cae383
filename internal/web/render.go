// Package web holds the HTML presentation: embedded templates, form
// bindings, flash messages and the error pages.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"datetime": formatDateTime,
	"join":     strings.Join,
	"has":      contains,
	"dict":     dict,
}

// Templates parses every embedded page and partial.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

// formatDateTime renders a show start time in the "medium" (default) or
// "full" layout.
func formatDateTime(t time.Time, format ...string) string {
	layout := "Mon 01, 02, 2006 3:04PM"
	if len(format) > 0 && format[0] == "full" {
		layout = "Monday January, 2, 2006 at 3:04PM"
	}
	return t.UTC().Format(layout)
}

// dict builds a map from alternating keys and values for passing several
// values to a partial template.
func dict(pairs ...interface{}) (map[string]interface{}, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]interface{}, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

// Setup installs the templates, the 404 page and a recovery middleware that
// renders the 500 page.
func Setup(r *gin.Engine, log hclog.Logger) error {
	tmpl, err := Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)

	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("panic while handling request", "path", c.Request.URL.Path, "panic", recovered)
		c.Abort()
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
	}))
	r.NoRoute(NotFound)
	r.NoMethod(NotFound)
	return nil
}

// Render executes a page template with the pending flash messages added.
func Render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["flashes"] = TakeFlashes(c)
	c.HTML(status, name, data)
}

func NotFound(c *gin.Context) {
	Render(c, http.StatusNotFound, "404.html", nil)
}

// ServerError logs err and renders the 500 page.
func ServerError(c *gin.Context, log hclog.Logger, err error) {
	log.Error("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
	Render(c, http.StatusInternalServerError, "500.html", nil)
}
