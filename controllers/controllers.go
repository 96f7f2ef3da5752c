package controllers

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/blogem/useradmin/models"
	"github.com/blogem/useradmin/services"
	"github.com/blogem/useradmin/templates"
)

var templateFuncs = template.FuncMap{
	"add":                func(a, b int) int { return a + b },
	"sub":                func(a, b int) int { return a - b },
	"formatDateTime":     func(t time.Time) string { return models.FormatDateTime(t.UTC()) },
	"formatDayMonthYear": models.FormatDayMonthYear,
}

// renderTemplate creates a template set and renders it with the provided data
func renderTemplate(w http.ResponseWriter, pageTemplate string, data interface{}) error {
	return renderTemplateWithStatus(w, http.StatusOK, pageTemplate, data)
}

// renderTemplateWithStatus creates a template set and renders it with the provided data and status code
func renderTemplateWithStatus(w http.ResponseWriter, statusCode int, pageTemplate string, data interface{}) error {
	// Create a new template set with only the templates we need
	tmpl, err := template.New(pageTemplate).Funcs(templateFuncs).ParseFS(templates.FS, "layout.html", pageTemplate)
	if err != nil {
		http.Error(w, "Failed to parse template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	// Render into a buffer so a failing template never sends a partial page
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err = buf.WriteTo(w)
	return err
}

// renderError renders the error page; server errors are logged with the request context
func renderError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, statusCode int, message string, err error) {
	if err != nil {
		logger.ErrorContext(r.Context(), message,
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}

	templateData := struct {
		models.PageData
		Message string
	}{
		PageData: models.PageData{Title: http.StatusText(statusCode)},
		Message:  message,
	}

	renderTemplateWithStatus(w, statusCode, "error.html", templateData)
}

// Controllers holds all controller instances
type Controllers struct {
	Users *UsersController
	Logs  *LogsController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, logger *slog.Logger) *Controllers {
	return &Controllers{
		Users: NewUsersController(services, logger),
		Logs:  NewLogsController(services, logger),
	}
}
