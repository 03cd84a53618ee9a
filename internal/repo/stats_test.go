package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/creatorlab/creatorlab-backend/internal/domain"
)

func newTestDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()
	// Unique DB per test to avoid schema leaking across tests.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func TestGenerationsStats_CountError_NoTable(t *testing.T) {
	db := newTestDB(t /* no migrations */)
	if _, _, err := GenerationsStats(context.Background(), db, "u1"); err == nil {
		t.Fatalf("expected error due to missing generations table")
	}
}

func TestGenerationsStats_ZeroRows(t *testing.T) {
	db := newTestDB(t, &domain.GenerationRecord{})
	count, maxAt, err := GenerationsStats(context.Background(), db, "u1")
	if err != nil {
		t.Fatalf("GenerationsStats error: %v", err)
	}
	if count != 0 || maxAt != nil {
		t.Fatalf("expected (0, nil), got (%d, %v)", count, maxAt)
	}
}

func TestGenerationsStats_Success_FilterAndMax(t *testing.T) {
	db := newTestDB(t, &domain.GenerationRecord{})

	t1 := time.Date(2025, 1, 2, 15, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 3, 4, 10, 30, 0, 0, time.UTC) // max for u1
	t3 := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)   // other owner
	seedRecord(t, db, "a", "u1", t1, false)
	seedRecord(t, db, "b", "u1", t2, false)
	seedRecord(t, db, "c", "u2", t3, false)

	count, maxAt, err := GenerationsStats(context.Background(), db, "u1")
	if err != nil {
		t.Fatalf("GenerationsStats error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected count 2, got %d", count)
	}
	if maxAt == nil || !maxAt.Equal(t2) {
		t.Fatalf("expected maxUpdatedAt %v, got %v", t2, maxAt)
	}

	// Soft delete drops the row from the stats.
	if err := DeleteGeneration(context.Background(), db, "b", "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	count, _, err = GenerationsStats(context.Background(), db, "u1")
	if err != nil || count != 1 {
		t.Fatalf("expected count 1 after delete, got %d (%v)", count, err)
	}
}

// Force the second query (SELECT updated_at ...) to fail by renaming the column.
func TestGenerationsStats_SelectLatest_ErrorPath(t *testing.T) {
	db := newTestDB(t, &domain.GenerationRecord{})
	seedRecord(t, db, "gx", "uerr", time.Now().UTC(), false)

	if err := db.Exec(`ALTER TABLE generations RENAME COLUMN updated_at TO updated_at_old`).Error; err != nil {
		t.Fatalf("rename column: %v", err)
	}
	if _, _, err := GenerationsStats(context.Background(), db, "uerr"); err == nil {
		t.Fatalf("expected error from latest-updated select after column rename")
	}
}
