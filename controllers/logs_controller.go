package controllers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/useradmin/models"
	"github.com/blogem/useradmin/services"
)

// LogsController handles audit log browsing requests
type LogsController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewLogsController creates a new logs controller
func NewLogsController(services *services.Services, logger *slog.Logger) *LogsController {
	return &LogsController{
		services: services,
		logger:   logger,
	}
}

// logQuery echoes the submitted filter back into the form
type logQuery struct {
	Action     string
	EntityType string
	From       string
	To         string
}

// Index handles GET /logs
func (c *LogsController) Index(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	query := logQuery{
		Action:     strings.TrimSpace(values.Get("action")),
		EntityType: strings.TrimSpace(values.Get("entity_type")),
		From:       strings.TrimSpace(values.Get("from")),
		To:         strings.TrimSpace(values.Get("to")),
	}

	filter, err := parseLogFilter(query, values)
	if err != nil {
		renderError(w, r, c.logger, http.StatusBadRequest, err.Error(), nil)
		return
	}

	page, err := c.services.Log.GetLogPage(r.Context(), filter)
	if err != nil {
		renderError(w, r, c.logger, http.StatusInternalServerError, "Failed to load log entries", err)
		return
	}

	templateData := struct {
		models.PageData
		Page        *models.LogPage
		Query       logQuery
		Actions     []string
		PreviousURL string
		NextURL     string
	}{
		PageData:    models.PageData{Title: "Logs", CurrentPage: "logs"},
		Page:        page,
		Query:       query,
		Actions:     []string{models.ActionCreate, models.ActionUpdate, models.ActionDelete},
		PreviousURL: pageURL(values, page.Filter.Page-1, page.Filter.PageSize),
		NextURL:     pageURL(values, page.Filter.Page+1, page.Filter.PageSize),
	}

	renderTemplate(w, "logs.html", templateData)
}

// Show handles GET /logs/{id}
func (c *LogsController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		renderError(w, r, c.logger, http.StatusNotFound, "Log entry not found", nil)
		return
	}

	entry, found, err := c.services.Log.GetLog(r.Context(), id)
	if err != nil {
		renderError(w, r, c.logger, http.StatusInternalServerError, "Failed to load log entry", err)
		return
	}
	if !found {
		renderError(w, r, c.logger, http.StatusNotFound, "Log entry not found", nil)
		return
	}

	templateData := struct {
		models.PageData
		Log *models.LogDetail
	}{
		PageData: models.PageData{Title: "Log Entry", CurrentPage: "logs"},
		Log:      entry,
	}

	renderTemplate(w, "log_detail.html", templateData)
}

// parseLogFilter builds the filter from the query string. Unparseable paging
// values fall back to the defaults; unparseable bounds are rejected.
func parseLogFilter(query logQuery, values url.Values) (models.LogFilter, error) {
	filter := models.LogFilter{
		Action:     query.Action,
		EntityType: query.EntityType,
	}

	var err error
	if filter.From, err = models.ParseFilterBound(query.From, false); err != nil {
		return filter, err
	}
	if filter.To, err = models.ParseFilterBound(query.To, true); err != nil {
		return filter, err
	}

	filter.Page, _ = strconv.Atoi(values.Get("page"))
	filter.PageSize, _ = strconv.Atoi(values.Get("page_size"))
	return filter, nil
}

// pageURL links to another page of the same query
func pageURL(values url.Values, page, pageSize int) string {
	next := url.Values{}
	for key, v := range values {
		next[key] = v
	}
	next.Set("page", strconv.Itoa(page))
	next.Set("page_size", strconv.Itoa(pageSize))
	return "/logs?" + next.Encode()
}
