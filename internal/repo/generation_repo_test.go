package repo

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/creatorlab/creatorlab-backend/internal/domain"
)

func newGenRepoDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("gen_repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func seedRecord(t *testing.T, db *gorm.DB, id, owner string, at time.Time, fav bool) {
	t.Helper()
	r := domain.GenerationRecord{
		ID: id, OwnerID: owner, ContentType: domain.ContentHook,
		Result:     domain.GenerationResult{Items: []string{id}},
		IsFavorite: fav, CreatedAt: at, UpdatedAt: at,
	}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("seed %s: %v", id, err)
	}
}

func TestCreateGeneration_Error_NoTable(t *testing.T) {
	db := newGenRepoDB(t /* no migrations */)
	r, err := CreateGeneration(context.Background(), db, "u1", domain.ContentBio, domain.GenerationRequest{}, domain.GenerationResult{})
	if err == nil || r != nil {
		t.Fatalf("expected error creating without table, got r=%v err=%v", r, err)
	}
}

func TestCreateGeneration_Success_PersistsAndSetsFields(t *testing.T) {
	db := newGenRepoDB(t, &domain.GenerationRecord{})

	in := domain.GenerationRequest{ContentType: domain.ContentCaption, Platform: "Instagram", Topic: "gym", Tone: "Bold"}
	out := domain.GenerationResult{Items: []string{"Lift 🔥"}, SecondaryItems: []string{"#gym"}}
	start := time.Now().UTC().Add(-time.Minute)

	r, err := CreateGeneration(context.Background(), db, "u1", domain.ContentCaption, in, out)
	if err != nil {
		t.Fatalf("CreateGeneration: %v", err)
	}
	if r.ID == "" || r.OwnerID != "u1" || r.IsFavorite || r.CreatedAt.Before(start) {
		t.Fatalf("unexpected fields: %+v", r)
	}

	got, err := GetGeneration(context.Background(), db, r.ID, "u1")
	if err != nil {
		t.Fatalf("GetGeneration: %v", err)
	}
	if !reflect.DeepEqual(got.Input, in) || !reflect.DeepEqual(got.Result, out) {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestListGenerations_OrderLimitAndFilter(t *testing.T) {
	db := newGenRepoDB(t, &domain.GenerationRecord{})

	base := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= 25; i++ {
		seedRecord(t, db, fmt.Sprintf("r%02d", i), "u1", base.Add(time.Duration(i)*time.Second), false)
	}
	seedRecord(t, db, "other", "u2", base.Add(time.Hour), false)

	list, err := ListGenerations(context.Background(), db, "u1", 20)
	if err != nil {
		t.Fatalf("ListGenerations: %v", err)
	}
	if len(list) != 20 {
		t.Fatalf("expected 20 records, got %d", len(list))
	}
	if list[0].ID != "r25" || list[19].ID != "r06" {
		t.Fatalf("unexpected order: first=%s last=%s", list[0].ID, list[19].ID)
	}
	for _, r := range list {
		if r.OwnerID != "u1" {
			t.Fatalf("foreign record leaked: %+v", r)
		}
	}
}

func TestListGenerations_TieBreakByID(t *testing.T) {
	db := newGenRepoDB(t, &domain.GenerationRecord{})
	at := time.Date(2025, 5, 5, 5, 5, 5, 0, time.UTC)
	for _, id := range []string{"b", "c", "a"} {
		seedRecord(t, db, id, "u1", at, false)
	}
	list, err := ListGenerations(context.Background(), db, "u1", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 || list[0].ID != "c" || list[1].ID != "b" || list[2].ID != "a" {
		t.Fatalf("expected c,b,a got %+v", list)
	}
}

func TestListGenerations_EmptyIsNonNil(t *testing.T) {
	db := newGenRepoDB(t, &domain.GenerationRecord{})
	list, err := ListGenerations(context.Background(), db, "nobody", 20)
	if err != nil || list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v, %v", list, err)
	}
}

func TestListFavoriteGenerations(t *testing.T) {
	db := newGenRepoDB(t, &domain.GenerationRecord{})
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	seedRecord(t, db, "f1", "u1", base, true)
	seedRecord(t, db, "n1", "u1", base.Add(time.Minute), false)
	seedRecord(t, db, "f2", "u1", base.Add(2*time.Minute), true)
	seedRecord(t, db, "fx", "u2", base.Add(3*time.Minute), true)

	favs, err := ListFavoriteGenerations(context.Background(), db, "u1", 0)
	if err != nil {
		t.Fatalf("ListFavoriteGenerations: %v", err)
	}
	if len(favs) != 2 || favs[0].ID != "f2" || favs[1].ID != "f1" {
		t.Fatalf("unexpected favorites: %+v", favs)
	}

	one, err := ListFavoriteGenerations(context.Background(), db, "u1", 1)
	if err != nil || len(one) != 1 || one[0].ID != "f2" {
		t.Fatalf("limit not applied: %+v, %v", one, err)
	}
}

func TestGetGeneration_ForeignOwnerIsNotFound(t *testing.T) {
	db := newGenRepoDB(t, &domain.GenerationRecord{})
	seedRecord(t, db, "g1", "owner", time.Now().UTC(), false)

	if _, err := GetGeneration(context.Background(), db, "g1", "intruder"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
	if _, err := GetGeneration(context.Background(), db, "missing", "owner"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestToggleFavorite_RoundTrip(t *testing.T) {
	db := newGenRepoDB(t, &domain.GenerationRecord{})
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	seedRecord(t, db, "g1", "u1", at, false)

	r, err := ToggleFavorite(context.Background(), db, "g1", "u1")
	if err != nil {
		t.Fatalf("ToggleFavorite: %v", err)
	}
	if !r.IsFavorite || !r.UpdatedAt.After(at) {
		t.Fatalf("expected favorite with bumped UpdatedAt, got %+v", r)
	}
	stored, _ := GetGeneration(context.Background(), db, "g1", "u1")
	if !stored.IsFavorite {
		t.Fatalf("favorite flag not persisted")
	}

	r, err = ToggleFavorite(context.Background(), db, "g1", "u1")
	if err != nil {
		t.Fatalf("ToggleFavorite #2: %v", err)
	}
	if r.IsFavorite {
		t.Fatalf("second toggle must restore false")
	}
	if !reflect.DeepEqual(r.Result, domain.GenerationResult{Items: []string{"g1"}}) {
		t.Fatalf("toggle must not touch the result: %+v", r.Result)
	}
}

func TestToggleFavorite_NotFound(t *testing.T) {
	db := newGenRepoDB(t, &domain.GenerationRecord{})
	seedRecord(t, db, "g1", "u1", time.Now().UTC(), false)

	if _, err := ToggleFavorite(context.Background(), db, "g1", "u2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
	stored, _ := GetGeneration(context.Background(), db, "g1", "u1")
	if stored.IsFavorite {
		t.Fatalf("foreign toggle must not change the record")
	}
}

func TestDeleteGeneration_SoftDeletes(t *testing.T) {
	db := newGenRepoDB(t, &domain.GenerationRecord{})
	seedRecord(t, db, "g1", "u1", time.Now().UTC(), true)

	if err := DeleteGeneration(context.Background(), db, "g1", "u2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
	if err := DeleteGeneration(context.Background(), db, "g1", "u1"); err != nil {
		t.Fatalf("DeleteGeneration: %v", err)
	}
	if _, err := GetGeneration(context.Background(), db, "g1", "u1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted record must be hidden, got %v", err)
	}
	favs, _ := ListFavoriteGenerations(context.Background(), db, "u1", 0)
	if len(favs) != 0 {
		t.Fatalf("deleted record must not be listed as favorite")
	}
	if err := DeleteGeneration(context.Background(), db, "g1", "u1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete must report ErrNotFound, got %v", err)
	}

	var n int64
	db.Unscoped().Model(&domain.GenerationRecord{}).Where("id = ?", "g1").Count(&n)
	if n != 1 {
		t.Fatalf("row should remain with deleted_at set, count=%d", n)
	}
}
