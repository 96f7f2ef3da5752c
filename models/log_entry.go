package models

import "time"

// Log actions written by the user service
const (
	ActionCreate = "Create"
	ActionUpdate = "Update"
	ActionDelete = "Delete"
)

// EntityTypeUser tags log entries about users
const EntityTypeUser = "User"

// DefaultLogPageSize is used when a filter carries no page size
const DefaultLogPageSize = 5

// LogEntry represents a single audit log record. Entries are append-only.
type LogEntry struct {
	ID         int       `json:"id" db:"id"`
	Action     string    `json:"action" db:"action"`
	EntityType string    `json:"entity_type" db:"entity_type"`
	EntityID   int       `json:"entity_id" db:"entity_id"`
	Details    string    `json:"details" db:"details"`
	Timestamp  time.Time `json:"timestamp" db:"timestamp"`
	ActorID    *int      `json:"actor_id,omitempty" db:"actor_id"`
}

// LogFilter narrows a log query. Empty strings and nil bounds impose no constraint;
// Page and PageSize only window the query and never affect counting.
type LogFilter struct {
	Action     string     `json:"action,omitempty"`
	EntityType string     `json:"entity_type,omitempty"`
	From       *time.Time `json:"from,omitempty"`
	To         *time.Time `json:"to,omitempty"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
}

// Normalize fills in page defaults and converts bounds to UTC
func (f LogFilter) Normalize(defaultPageSize int) LogFilter {
	if defaultPageSize < 1 {
		defaultPageSize = DefaultLogPageSize
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = defaultPageSize
	}
	if f.From != nil {
		from := f.From.UTC()
		f.From = &from
	}
	if f.To != nil {
		to := f.To.UTC()
		f.To = &to
	}
	return f
}

// Offset is the number of matching entries skipped before the current page
func (f LogFilter) Offset() int {
	if f.Page < 1 || f.PageSize < 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// LogSummary is the list-view projection of a log entry
type LogSummary struct {
	ID         int       `json:"id"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   int       `json:"entity_id"`
	Details    string    `json:"details"`
	Timestamp  time.Time `json:"timestamp"`
}

// LogDetail is the full projection of a log entry
type LogDetail struct {
	ID         int       `json:"id"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   int       `json:"entity_id"`
	Details    string    `json:"details"`
	Timestamp  time.Time `json:"timestamp"`
	ActorID    *int      `json:"actor_id,omitempty"`
}

// LogPage is one window of a filtered log query
type LogPage struct {
	Items      []LogSummary `json:"items"`
	Filter     LogFilter    `json:"filter"`
	TotalItems int          `json:"total_items"`
	TotalPages int          `json:"total_pages"`
}

// NewLogPage builds a page, deriving the page count from the total
func NewLogPage(items []LogSummary, filter LogFilter, total int) *LogPage {
	return &LogPage{
		Items:      items,
		Filter:     filter,
		TotalItems: total,
		TotalPages: TotalPages(total, filter.PageSize),
	}
}

// TotalPages returns ceil(total / pageSize)
func TotalPages(total, pageSize int) int {
	if pageSize < 1 || total < 1 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// HasPrevious reports whether a page precedes this one
func (p *LogPage) HasPrevious() bool {
	return p.Filter.Page > 1
}

// HasNext reports whether a page follows this one
func (p *LogPage) HasNext() bool {
	return p.Filter.Page < p.TotalPages
}
