package repositories

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/blogem/useradmin/database"
	"github.com/blogem/useradmin/models"
)

// seededUsers is the number of users inserted by the seed migration
const seededUsers = 11

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	// Initialize test database using the actual migration system
	db, err := database.InitializeDatabase(slog.New(slog.NewTextHandler(io.Discard, nil)), dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	dob := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	user := &models.User{
		Forename:    "Test",
		Surname:     "User",
		Email:       "test@example.com",
		DateOfBirth: &dob,
		IsActive:    false,
	}

	// Test Create
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	if user.ID == 0 {
		t.Error("Expected user ID to be set after creation")
	}

	// Test GetByID
	retrieved, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("Failed to get user by ID: %v", err)
	}
	if retrieved.Email != user.Email || retrieved.IsActive {
		t.Errorf("Expected %+v, got %+v", user, retrieved)
	}
	if retrieved.DateOfBirth == nil || !retrieved.DateOfBirth.Equal(dob) {
		t.Errorf("Expected date of birth %v, got %v", dob, retrieved.DateOfBirth)
	}

	// Test GetAll
	users, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("Failed to get all users: %v", err)
	}
	if len(users) != seededUsers+1 {
		t.Errorf("Expected %d users, got %d", seededUsers+1, len(users))
	}

	// Test GetByActive
	inactive, err := repo.GetByActive(ctx, false)
	if err != nil {
		t.Fatalf("Failed to get inactive users: %v", err)
	}
	active, err := repo.GetByActive(ctx, true)
	if err != nil {
		t.Fatalf("Failed to get active users: %v", err)
	}
	if len(inactive)+len(active) != len(users) {
		t.Errorf("Expected active and inactive users to partition all users")
	}
	for _, u := range inactive {
		if u.IsActive {
			t.Errorf("Expected only inactive users, got %+v", u)
		}
	}

	// Test Update, clearing the date of birth
	user.Forename = "Updated"
	user.DateOfBirth = nil
	user.IsActive = true
	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("Failed to update user: %v", err)
	}

	updated, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("Failed to get updated user: %v", err)
	}
	if updated.Forename != "Updated" || updated.DateOfBirth != nil || !updated.IsActive {
		t.Errorf("Expected updated fields, got %+v", updated)
	}

	// Test Delete
	if err := repo.Delete(ctx, user); err != nil {
		t.Fatalf("Failed to delete user: %v", err)
	}

	_, err = repo.GetByID(ctx, user.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for deleted user, got %v", err)
	}

	if err := repo.Delete(ctx, user); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound deleting twice, got %v", err)
	}
	if err := repo.Update(ctx, &models.User{ID: 9999}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound updating missing user, got %v", err)
	}
}

var logBase = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// seedLogs writes entries at logBase+i minutes, cycling actions and entity types
func seedLogs(t *testing.T, repo LogRepository, n int) []models.LogEntry {
	t.Helper()
	actions := []string{models.ActionCreate, models.ActionUpdate, models.ActionDelete}
	entityTypes := []string{models.EntityTypeUser, "Role"}

	var entries []models.LogEntry
	for i := 0; i < n; i++ {
		entry := models.LogEntry{
			Action:     actions[i%len(actions)],
			EntityType: entityTypes[i%len(entityTypes)],
			EntityID:   i%4 + 1,
			Details:    "entry",
			Timestamp:  logBase.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(context.Background(), &entry); err != nil {
			t.Fatalf("Failed to create log entry %d: %v", i, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestLogRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewLogRepository(setupTestDB(t))

	actor := 7
	entry := &models.LogEntry{
		Action:     models.ActionCreate,
		EntityType: models.EntityTypeUser,
		EntityID:   3,
		Details:    "Created user: New User",
		Timestamp:  logBase.In(time.FixedZone("UTC+1", 3600)),
		ActorID:    &actor,
	}
	if err := repo.Create(ctx, entry); err != nil {
		t.Fatalf("Failed to create log entry: %v", err)
	}
	if entry.ID == 0 {
		t.Fatal("Expected log ID to be set after creation")
	}

	got, err := repo.GetByID(ctx, entry.ID)
	if err != nil {
		t.Fatalf("Failed to get log entry: %v", err)
	}
	if got.Details != entry.Details || got.EntityID != 3 || got.Action != models.ActionCreate {
		t.Errorf("Expected %+v, got %+v", entry, got)
	}
	if !got.Timestamp.Equal(logBase) || got.Timestamp.Location() != time.UTC {
		t.Errorf("Expected UTC timestamp %v, got %v", logBase, got.Timestamp)
	}
	if got.ActorID == nil || *got.ActorID != 7 {
		t.Errorf("Expected actor 7, got %v", got.ActorID)
	}

	if _, err := repo.GetByID(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestLogRepository_Pagination(t *testing.T) {
	ctx := context.Background()
	repo := NewLogRepository(setupTestDB(t))
	entries := seedLogs(t, repo, 25)

	page, err := repo.Find(ctx, models.LogFilter{Page: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("Failed to find log entries: %v", err)
	}
	if len(page) != 10 {
		t.Fatalf("Expected 10 entries, got %d", len(page))
	}

	// Newest first: the 11th..20th newest are entries[14]..entries[5]
	for i, got := range page {
		want := entries[len(entries)-11-i]
		if got.ID != want.ID {
			t.Errorf("Position %d: expected entry %d, got %d", i, want.ID, got.ID)
		}
	}

	beyond, err := repo.Find(ctx, models.LogFilter{Page: 4, PageSize: 10})
	if err != nil {
		t.Fatalf("Failed to find log entries: %v", err)
	}
	if len(beyond) != 0 {
		t.Errorf("Expected empty page past the end, got %d", len(beyond))
	}

	count, err := repo.Count(ctx, models.LogFilter{Page: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("Failed to count log entries: %v", err)
	}
	if count != 25 {
		t.Errorf("Expected count 25 regardless of paging, got %d", count)
	}
}

func TestLogRepository_FilterAgreesWithCount(t *testing.T) {
	ctx := context.Background()
	repo := NewLogRepository(setupTestDB(t))
	entries := seedLogs(t, repo, 30)

	from := logBase.Add(5 * time.Minute)
	to := logBase.Add(20 * time.Minute)

	actions := []string{"", models.ActionCreate, models.ActionUpdate, "create", "Unknown"}
	entityTypes := []string{"", models.EntityTypeUser, "Role", "user"}
	bounds := []struct{ from, to *time.Time }{
		{nil, nil},
		{&from, nil},
		{nil, &to},
		{&from, &to},
	}

	for _, action := range actions {
		for _, entityType := range entityTypes {
			for _, b := range bounds {
				filter := models.LogFilter{Action: action, EntityType: entityType, From: b.from, To: b.to}

				// Expected matches computed independently from the seeded data
				expected := 0
				for _, e := range entries {
					if action != "" && e.Action != action {
						continue
					}
					if entityType != "" && e.EntityType != entityType {
						continue
					}
					if b.from != nil && e.Timestamp.Before(*b.from) {
						continue
					}
					if b.to != nil && e.Timestamp.After(*b.to) {
						continue
					}
					expected++
				}

				count, err := repo.Count(ctx, filter)
				if err != nil {
					t.Fatalf("Failed to count %+v: %v", filter, err)
				}
				found, err := repo.Find(ctx, filter)
				if err != nil {
					t.Fatalf("Failed to find %+v: %v", filter, err)
				}

				if count != expected || len(found) != expected {
					t.Errorf("Filter %+v: expected %d, count=%d find=%d", filter, expected, count, len(found))
				}

				// Paging never changes the count
				paged := filter
				paged.Page, paged.PageSize = 2, 3
				pagedCount, err := repo.Count(ctx, paged)
				if err != nil {
					t.Fatalf("Failed to count %+v: %v", paged, err)
				}
				if pagedCount != count {
					t.Errorf("Filter %+v: paging changed count from %d to %d", filter, count, pagedCount)
				}
			}
		}
	}

	// Inclusive bounds: exactly [5..20] minutes
	within, err := repo.Count(ctx, models.LogFilter{From: &from, To: &to})
	if err != nil {
		t.Fatalf("Failed to count: %v", err)
	}
	if within != 16 {
		t.Errorf("Expected 16 entries within inclusive bounds, got %d", within)
	}
}

func TestLogRepository_Ordering(t *testing.T) {
	ctx := context.Background()
	repo := NewLogRepository(setupTestDB(t))

	// Insert out of chronological order, with two entries sharing a timestamp
	offsets := []int{3, 0, 5, 1, 5}
	var ids []int
	for _, m := range offsets {
		entry := models.LogEntry{
			Action:     models.ActionUpdate,
			EntityType: models.EntityTypeUser,
			EntityID:   1,
			Timestamp:  logBase.Add(time.Duration(m) * time.Minute),
		}
		if err := repo.Create(ctx, &entry); err != nil {
			t.Fatalf("Failed to create log entry: %v", err)
		}
		ids = append(ids, entry.ID)
	}

	expected := []int{ids[4], ids[2], ids[0], ids[3], ids[1]}

	byEntity, err := repo.FindByEntity(ctx, models.EntityTypeUser, 1)
	if err != nil {
		t.Fatalf("Failed to find by entity: %v", err)
	}
	all, err := repo.Find(ctx, models.LogFilter{})
	if err != nil {
		t.Fatalf("Failed to find: %v", err)
	}

	for name, got := range map[string][]models.LogEntry{"FindByEntity": byEntity, "Find": all} {
		if len(got) != len(expected) {
			t.Fatalf("%s: expected %d entries, got %d", name, len(expected), len(got))
		}
		for i := range got {
			if got[i].ID != expected[i] {
				t.Errorf("%s position %d: expected ID %d, got %d", name, i, expected[i], got[i].ID)
			}
			if i > 0 && got[i].Timestamp.After(got[i-1].Timestamp) {
				t.Errorf("%s: entries not in descending timestamp order at %d", name, i)
			}
		}
	}

	other, err := repo.FindByEntity(ctx, models.EntityTypeUser, 2)
	if err != nil {
		t.Fatalf("Failed to find by entity: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("Expected no entries for another entity, got %d", len(other))
	}
}
