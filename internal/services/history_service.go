// Package services – HistoryService
//
// HistoryService owns saved generations: saving, listing newest first,
// toggling the favorite flag, and deleting. Every operation is scoped to the
// caller; a record owned by someone else is indistinguishable from a missing
// one.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/creatorlab/creatorlab-backend/internal/domain"
	"github.com/creatorlab/creatorlab-backend/internal/repo"
	"github.com/creatorlab/creatorlab-backend/internal/utils"
)

// DefaultHistoryLimit is used when MaxLimit is unset.
const DefaultHistoryLimit = 20

// HistoryService persists and lists generation history.
type HistoryService struct {
	DB *gorm.DB

	// MaxLimit bounds List; it is also the default page size.
	MaxLimit int
}

func (s *HistoryService) maxLimit() int {
	if s.MaxLimit > 0 {
		return s.MaxLimit
	}
	return DefaultHistoryLimit
}

// Save stores a generation for ownerID.
func (s *HistoryService) Save(ctx context.Context, ownerID string, ct domain.ContentType, input domain.GenerationRequest, result domain.GenerationResult) (*domain.GenerationRecord, error) {
	tr := otel.Tracer("services/HistoryService")
	ctx, span := tr.Start(ctx, "Save",
		trace.WithAttributes(
			attribute.String("user.id", ownerID),
			attribute.String("content.type", string(ct)),
		),
	)
	defer span.End()

	parsed, ok := domain.ParseContentType(string(ct))
	if !ok {
		return nil, fmt.Errorf("%w: type must be one of %s", ErrBadRequest, domain.ContentTypeList())
	}
	if len(result.Items) == 0 {
		return nil, fmt.Errorf("%w: result must contain at least one item", ErrBadRequest)
	}
	if result.SecondaryItems == nil && parsed == domain.ContentCaption {
		result.SecondaryItems = []string{}
	}
	input.ContentType = parsed
	return repo.CreateGeneration(ctx, s.DB, ownerID, parsed, input, result)
}

// List returns ownerID's most recent records, newest first. limit is clamped
// to [1, MaxLimit]; a non-positive limit means MaxLimit.
func (s *HistoryService) List(ctx context.Context, ownerID string, limit int) ([]domain.GenerationRecord, error) {
	tr := otel.Tracer("services/HistoryService")
	ctx, span := tr.Start(ctx, "List",
		trace.WithAttributes(
			attribute.String("user.id", ownerID),
			attribute.Int("limit", limit),
		),
	)
	defer span.End()

	return repo.ListGenerations(ctx, s.DB, ownerID, utils.ClampLimit(limit, s.maxLimit()))
}

// ListFavorites returns ownerID's favorite records, newest first.
func (s *HistoryService) ListFavorites(ctx context.Context, ownerID string) ([]domain.GenerationRecord, error) {
	tr := otel.Tracer("services/HistoryService")
	ctx, span := tr.Start(ctx, "ListFavorites",
		trace.WithAttributes(attribute.String("user.id", ownerID)),
	)
	defer span.End()

	return repo.ListFavoriteGenerations(ctx, s.DB, ownerID, 0)
}

// ToggleFavorite flips the favorite flag of record id.
func (s *HistoryService) ToggleFavorite(ctx context.Context, ownerID, id string) (*domain.GenerationRecord, error) {
	tr := otel.Tracer("services/HistoryService")
	ctx, span := tr.Start(ctx, "ToggleFavorite",
		trace.WithAttributes(
			attribute.String("user.id", ownerID),
			attribute.String("record.id", id),
		),
	)
	defer span.End()

	r, err := repo.ToggleFavorite(ctx, s.DB, id, ownerID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrRecordNotFound
	}
	return r, err
}

// Delete soft-deletes record id.
func (s *HistoryService) Delete(ctx context.Context, ownerID, id string) error {
	tr := otel.Tracer("services/HistoryService")
	ctx, span := tr.Start(ctx, "Delete",
		trace.WithAttributes(
			attribute.String("user.id", ownerID),
			attribute.String("record.id", id),
		),
	)
	defer span.End()

	err := repo.DeleteGeneration(ctx, s.DB, id, ownerID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrRecordNotFound
	}
	return err
}

// Stats reports the record count and latest change for ownerID, for ETags.
func (s *HistoryService) Stats(ctx context.Context, ownerID string) (int64, *time.Time, error) {
	return repo.GenerationsStats(ctx, s.DB, ownerID)
}
