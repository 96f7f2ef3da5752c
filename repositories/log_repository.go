package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/blogem/useradmin/models"
)

// LogRepository handles audit log persistence. Entries are append-only:
// there is no update or delete.
type LogRepository interface {
	Create(ctx context.Context, entry *models.LogEntry) error
	GetByID(ctx context.Context, id int) (*models.LogEntry, error)
	Find(ctx context.Context, filter models.LogFilter) ([]models.LogEntry, error)
	Count(ctx context.Context, filter models.LogFilter) (int, error)
	FindByEntity(ctx context.Context, entityType string, entityID int) ([]models.LogEntry, error)
}

type sqliteLogRepository struct {
	db *sql.DB
}

// NewLogRepository creates a new log repository
func NewLogRepository(db *sql.DB) LogRepository {
	return &sqliteLogRepository{db: db}
}

const logColumns = `id, action, entity_type, entity_id, details, timestamp, actor_id`

// newestFirst orders by timestamp, breaking ties on the higher (later) id
const newestFirst = ` ORDER BY timestamp DESC, id DESC`

// Create inserts a new log entry and assigns its ID. The timestamp is stored as given.
func (r *sqliteLogRepository) Create(ctx context.Context, entry *models.LogEntry) error {
	query := `
		INSERT INTO logs (action, entity_type, entity_id, details, timestamp, actor_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	var actorID sql.NullInt64
	if entry.ActorID != nil {
		actorID = sql.NullInt64{Int64: int64(*entry.ActorID), Valid: true}
	}

	result, err := r.db.ExecContext(ctx, query,
		entry.Action,
		entry.EntityType,
		entry.EntityID,
		entry.Details,
		entry.Timestamp.UTC(),
		actorID,
	)
	if err != nil {
		return fmt.Errorf("failed to create log entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	entry.ID = int(id)
	return nil
}

// GetByID retrieves a log entry by ID
func (r *sqliteLogRepository) GetByID(ctx context.Context, id int) (*models.LogEntry, error) {
	query := `SELECT ` + logColumns + ` FROM logs WHERE id = ?`

	entry, err := scanLogEntry(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("log entry with ID %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get log entry: %w", err)
	}

	return entry, nil
}

// Find retrieves one page of entries matching the filter, newest first.
// A non-positive PageSize returns every match.
func (r *sqliteLogRepository) Find(ctx context.Context, filter models.LogFilter) ([]models.LogEntry, error) {
	where, args := buildLogWhere(filter)
	query := `SELECT ` + logColumns + ` FROM logs` + where + newestFirst

	if filter.PageSize > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, filter.PageSize, filter.Offset())
	}

	return r.query(ctx, query, args...)
}

// Count returns how many entries match the filter criteria, ignoring pagination
func (r *sqliteLogRepository) Count(ctx context.Context, filter models.LogFilter) (int, error) {
	where, args := buildLogWhere(filter)

	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM logs`+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count log entries: %w", err)
	}

	return count, nil
}

// FindByEntity retrieves every entry about one entity, newest first
func (r *sqliteLogRepository) FindByEntity(ctx context.Context, entityType string, entityID int) ([]models.LogEntry, error) {
	query := `SELECT ` + logColumns + ` FROM logs WHERE entity_type = ? AND entity_id = ?` + newestFirst
	return r.query(ctx, query, entityType, entityID)
}

func (r *sqliteLogRepository) query(ctx context.Context, query string, args ...any) ([]models.LogEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query log entries: %w", err)
	}
	defer rows.Close()

	entries := []models.LogEntry{}
	for rows.Next() {
		entry, err := scanLogEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan log entry: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating log entries: %w", err)
	}

	return entries, nil
}

// buildLogWhere is the single matching predicate shared by Find and Count.
// Text criteria match exactly; time bounds are inclusive.
func buildLogWhere(filter models.LogFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.Action != "" {
		conditions = append(conditions, "action = ?")
		args = append(args, filter.Action)
	}
	if filter.EntityType != "" {
		conditions = append(conditions, "entity_type = ?")
		args = append(args, filter.EntityType)
	}
	if filter.From != nil {
		conditions = append(conditions, "timestamp >= ?")
		args = append(args, filter.From.UTC())
	}
	if filter.To != nil {
		conditions = append(conditions, "timestamp <= ?")
		args = append(args, filter.To.UTC())
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func scanLogEntry(row rowScanner) (*models.LogEntry, error) {
	var entry models.LogEntry
	var actorID sql.NullInt64

	err := row.Scan(
		&entry.ID,
		&entry.Action,
		&entry.EntityType,
		&entry.EntityID,
		&entry.Details,
		&entry.Timestamp,
		&actorID,
	)
	if err != nil {
		return nil, err
	}

	entry.Timestamp = entry.Timestamp.UTC()
	if actorID.Valid {
		id := int(actorID.Int64)
		entry.ActorID = &id
	}

	return &entry, nil
}
