package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blogem/useradmin/mapper"
	"github.com/blogem/useradmin/metrics"
	"github.com/blogem/useradmin/models"
	"github.com/blogem/useradmin/repositories"
)

// LogService is the audit log engine: it appends action records and answers
// filtered, paginated, newest-first queries over them.
type LogService interface {
	LogAction(ctx context.Context, action, entityType string, entityID int, details string, actorID *int) error
	ListLogs(ctx context.Context, filter models.LogFilter) ([]models.LogSummary, error)
	CountLogs(ctx context.Context, filter models.LogFilter) (int, error)
	GetLogPage(ctx context.Context, filter models.LogFilter) (*models.LogPage, error)
	GetLog(ctx context.Context, id int) (*models.LogDetail, bool, error)
	ListLogsForEntity(ctx context.Context, entityType string, entityID int) ([]models.LogSummary, error)
}

// LogServiceOption configures a log service
type LogServiceOption func(*logService)

// WithClock replaces the clock used to timestamp appended entries
func WithClock(now func() time.Time) LogServiceOption {
	return func(s *logService) {
		s.now = now
	}
}

// WithPageSize sets the page size used when a filter carries none
func WithPageSize(size int) LogServiceOption {
	return func(s *logService) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

type logService struct {
	logRepo  repositories.LogRepository
	mapper   mapper.Mapper
	metrics  *metrics.Metrics
	now      func() time.Time
	pageSize int
}

// NewLogService creates a new log service
func NewLogService(
	logRepo repositories.LogRepository,
	m mapper.Mapper,
	met *metrics.Metrics,
	opts ...LogServiceOption,
) LogService {
	s := &logService{
		logRepo:  logRepo,
		mapper:   m,
		metrics:  met,
		now:      time.Now,
		pageSize: models.DefaultLogPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LogAction appends an entry timestamped by the service clock
func (s *logService) LogAction(
	ctx context.Context,
	action, entityType string,
	entityID int,
	details string,
	actorID *int,
) error {
	entry := &models.LogEntry{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		Timestamp:  s.now().UTC(),
		ActorID:    actorID,
	}

	if err := s.logRepo.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to append log entry: %w", err)
	}

	s.metrics.LogAppended(action, entityType)
	return nil
}

// ListLogs returns one page of matching entries, newest first
func (s *logService) ListLogs(ctx context.Context, filter models.LogFilter) ([]models.LogSummary, error) {
	entries, err := s.logRepo.Find(ctx, filter.Normalize(s.pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list log entries: %w", err)
	}

	return s.summaries(entries)
}

// CountLogs returns the number of entries matching the filter criteria; paging is ignored
func (s *logService) CountLogs(ctx context.Context, filter models.LogFilter) (int, error) {
	count, err := s.logRepo.Count(ctx, filter.Normalize(s.pageSize))
	if err != nil {
		return 0, fmt.Errorf("failed to count log entries: %w", err)
	}

	return count, nil
}

// GetLogPage returns one page of entries along with the total and page count
func (s *logService) GetLogPage(ctx context.Context, filter models.LogFilter) (*models.LogPage, error) {
	filter = filter.Normalize(s.pageSize)

	total, err := s.CountLogs(ctx, filter)
	if err != nil {
		return nil, err
	}

	items, err := s.ListLogs(ctx, filter)
	if err != nil {
		return nil, err
	}

	return models.NewLogPage(items, filter, total), nil
}

// GetLog retrieves a single entry; found is false when it does not exist
func (s *logService) GetLog(ctx context.Context, id int) (*models.LogDetail, bool, error) {
	entry, err := s.logRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get log entry: %w", err)
	}

	var detail models.LogDetail
	if err := s.mapper.Map(&detail, entry); err != nil {
		return nil, false, err
	}

	return &detail, true, nil
}

// ListLogsForEntity returns every entry about one entity, newest first
func (s *logService) ListLogsForEntity(ctx context.Context, entityType string, entityID int) ([]models.LogSummary, error) {
	entries, err := s.logRepo.FindByEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list log entries for %s %d: %w", entityType, entityID, err)
	}

	return s.summaries(entries)
}

func (s *logService) summaries(entries []models.LogEntry) ([]models.LogSummary, error) {
	summaries := make([]models.LogSummary, 0, len(entries))
	if len(entries) == 0 {
		return summaries, nil
	}
	if err := s.mapper.Map(&summaries, &entries); err != nil {
		return nil, err
	}
	return summaries, nil
}
