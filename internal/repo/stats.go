// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate queries used for
// conditional responses (ETag generation) in the HTTP layer.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/creatorlab/creatorlab-backend/internal/domain"
)

// GenerationsStats returns the number of live records owned by ownerID and
// the greatest UpdatedAt among them. When the owner has no records the count
// is 0 and maxUpdatedAt is nil. Soft-deleted rows are excluded, so a delete
// changes the count and therefore the ETag.
func GenerationsStats(ctx context.Context, db *gorm.DB, ownerID string) (count int64, maxUpdatedAt *time.Time, err error) {
	scoped := func() *gorm.DB {
		return db.WithContext(ctx).Model(&domain.GenerationRecord{}).Where("owner_id = ?", ownerID)
	}

	if err = scoped().Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Latest updated_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		UpdatedAt time.Time
	}
	if err = scoped().Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.UpdatedAt, nil
}
