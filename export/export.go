package export

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blogem/useradmin/models"
	"github.com/blogem/useradmin/services"
)

// DefaultBatchSize is the page size used when none is given
const DefaultBatchSize = 100

// ProgressFunc is called after each batch with the running exported count and total.
type ProgressFunc func(exported int, total int)

// Run pages through the log, newest first, and writes each entry to the exporter.
func Run(
	ctx context.Context,
	logger *slog.Logger,
	fetcher Fetcher,
	exporter Exporter,
	batchSize int,
	onProgress ProgressFunc,
) (*Result, error) {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}

	if err := exporter.Open(ctx); err != nil {
		return nil, fmt.Errorf("opening exporter: %w", err)
	}

	defer func() {
		if closeErr := exporter.Close(ctx); closeErr != nil {
			logger.Error("closing exporter", slog.String("error", closeErr.Error()))
		}
	}()

	result := &Result{}

	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		entries, total, err := fetcher(ctx, page, batchSize)
		if err != nil {
			return result, fmt.Errorf("fetching page %d: %w", page, err)
		}

		result.TotalEntries = total

		for _, entry := range entries {
			if err := exporter.Write(ctx, entry); err != nil {
				return result, fmt.Errorf("writing entry: %w", err)
			}
			result.ExportedEntries++
		}

		if onProgress != nil {
			onProgress(result.ExportedEntries, total)
		}

		if result.ExportedEntries >= total || len(entries) < batchSize {
			break
		}
	}

	return result, nil
}

// LogServiceFetcher pages through the entries matching filter
func LogServiceFetcher(logs services.LogService, filter models.LogFilter) Fetcher {
	return func(ctx context.Context, page int, pageSize int) ([]models.LogSummary, int, error) {
		filter.Page = page
		filter.PageSize = pageSize

		result, err := logs.GetLogPage(ctx, filter)
		if err != nil {
			return nil, 0, err
		}

		return result.Items, result.TotalItems, nil
	}
}
