// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for generation
// history.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions. Every query is scoped by owner: a record
// that exists but belongs to someone else is reported as ErrNotFound.
//
// Error semantics:
//   - When a record is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors the raw gorm error is propagated.
//
// Listing order is CreatedAt descending with ID descending as tie-break, so
// records saved within the same clock tick still come back in a stable order.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/creatorlab/creatorlab-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

const newestFirst = "created_at desc, id desc"

// CreateGeneration inserts a new GenerationRecord owned by ownerID with a
// fresh UUID and UTC timestamp. IsFavorite starts false.
func CreateGeneration(ctx context.Context, db *gorm.DB, ownerID string, ct domain.ContentType, input domain.GenerationRequest, result domain.GenerationResult) (*domain.GenerationRecord, error) {
	now := time.Now().UTC()
	r := &domain.GenerationRecord{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		ContentType: ct,
		Input:       input,
		Result:      result,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// ListGenerations returns at most limit records for ownerID, newest first.
func ListGenerations(ctx context.Context, db *gorm.DB, ownerID string, limit int) ([]domain.GenerationRecord, error) {
	out := []domain.GenerationRecord{}
	err := db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order(newestFirst).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// ListFavoriteGenerations returns ownerID's favorite records, newest first.
// A non-positive limit means no limit.
func ListFavoriteGenerations(ctx context.Context, db *gorm.DB, ownerID string, limit int) ([]domain.GenerationRecord, error) {
	out := []domain.GenerationRecord{}
	q := db.WithContext(ctx).
		Where("owner_id = ? AND is_favorite = ?", ownerID, true).
		Order(newestFirst)
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}

// GetGeneration fetches a single record by id and owner.
func GetGeneration(ctx context.Context, db *gorm.DB, id, ownerID string) (*domain.GenerationRecord, error) {
	var r domain.GenerationRecord
	err := db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ToggleFavorite flips IsFavorite on the record in a single transaction and
// returns the updated row.
func ToggleFavorite(ctx context.Context, db *gorm.DB, id, ownerID string) (*domain.GenerationRecord, error) {
	var out *domain.GenerationRecord
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r, err := GetGeneration(ctx, tx, id, ownerID)
		if err != nil {
			return err
		}
		r.IsFavorite = !r.IsFavorite
		r.UpdatedAt = time.Now().UTC()
		res := tx.Model(&domain.GenerationRecord{}).
			Where("id = ? AND owner_id = ?", id, ownerID).
			Updates(map[string]any{"is_favorite": r.IsFavorite, "updated_at": r.UpdatedAt})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteGeneration soft-deletes a record owned by ownerID.
func DeleteGeneration(ctx context.Context, db *gorm.DB, id, ownerID string) error {
	res := db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&domain.GenerationRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
