// Package domain defines the persistence models for accounts and generation
// history, plus the value types exchanged between the HTTP layer, the prompt
// builder, and the completion client. Persistent types are mapped with GORM.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// User is a CreatorLab account. Password users carry a bcrypt hash; users
// created through Google sign-in have an empty hash and cannot log in with a
// password.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Email: unique, lower-cased login identifier.
//   - Name: display name shown in the UI.
//   - PasswordHash: bcrypt hash, never serialized.
//   - Provider: "password" or "google".
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type User struct {
	ID           string    `json:"id"         gorm:"type:char(36);primaryKey"`
	Email        string    `json:"email"      gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email"`
	Name         string    `json:"name"       gorm:"type:varchar(255);not null;default:''"`
	PasswordHash string    `json:"-"          gorm:"type:varchar(255);not null;default:''"`
	Provider     string    `json:"provider"   gorm:"type:varchar(16);not null;check:provider IN ('password','google')"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Identity returns the public view of the user.
func (u User) Identity() Identity {
	return Identity{UserID: u.ID, Email: u.Email, DisplayName: u.Name}
}

// Identity is the caller identity proven by a bearer token.
type Identity struct {
	UserID      string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"name"`
}

// GenerationRecord is one persisted generation: the request that produced it,
// the decoded result, and the owner's favorite flag.
//
// Input and Result are write-once. IsFavorite is the only mutable column and
// is changed exclusively through the favorite toggle. Records are scoped by
// OwnerID; there is no sharing between owners. Owners are not a foreign key
// because identities may come from an external provider.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - OwnerID: identity that owns the record (indexed with CreatedAt).
//   - ContentType: caption, bio, hashtag or hook.
//   - Input: the GenerationRequest, stored as JSON.
//   - Result: the GenerationResult, stored as JSON.
//   - IsFavorite: favorite flag.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker for explicit user deletes.
type GenerationRecord struct {
	ID          string            `json:"id"          gorm:"type:char(36);primaryKey"`
	OwnerID     string            `json:"owner_id"    gorm:"type:varchar(64);not null;index:idx_owner_created,priority:1"`
	ContentType ContentType       `json:"type"        gorm:"type:varchar(16);not null;check:content_type IN ('caption','bio','hashtag','hook')"`
	Input       GenerationRequest `json:"input"       gorm:"type:text;not null;serializer:json"`
	Result      GenerationResult  `json:"result"      gorm:"type:text;not null;serializer:json"`
	IsFavorite  bool              `json:"is_favorite" gorm:"not null;default:false"`
	CreatedAt   time.Time         `json:"created_at"  gorm:"index:idx_owner_created,priority:2"`
	UpdatedAt   time.Time         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `json:"-"           gorm:"index"`
}

// TableName returns the database table name for GenerationRecord.
func (GenerationRecord) TableName() string { return "generations" }
