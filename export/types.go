// Package export streams the audit log out of the store, one page at a time.
package export

import (
	"context"

	"github.com/blogem/useradmin/models"
)

// Fetcher returns one page of entries (1-based) along with the total number of matches
type Fetcher func(ctx context.Context, page int, pageSize int) ([]models.LogSummary, int, error)

// Exporter receives exported entries
type Exporter interface {
	Open(ctx context.Context) error
	Write(ctx context.Context, entry models.LogSummary) error
	Close(ctx context.Context) error
}

// Result summarises an export run
type Result struct {
	TotalEntries    int
	ExportedEntries int
}
