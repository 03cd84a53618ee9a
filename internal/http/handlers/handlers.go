package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/creatorlab/creatorlab-backend/internal/domain"
	"github.com/creatorlab/creatorlab-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// GenerationService produces captions, bios, hashtags and hooks.
type GenerationService interface {
	// Generate validates req, calls the model once and decodes the answer.
	// ownerID is empty for anonymous callers.
	Generate(ctx context.Context, ownerID string, req domain.GenerationRequest) (*services.Generation, error)
}

// HistoryService stores and lists a user's saved generations.
//
// Every method is scoped to ownerID; records of other owners behave as if
// they did not exist.
type HistoryService interface {
	Save(ctx context.Context, ownerID string, ct domain.ContentType, input domain.GenerationRequest, result domain.GenerationResult) (*domain.GenerationRecord, error)
	List(ctx context.Context, ownerID string, limit int) ([]domain.GenerationRecord, error)
	ListFavorites(ctx context.Context, ownerID string) ([]domain.GenerationRecord, error)
	ToggleFavorite(ctx context.Context, ownerID, id string) (*domain.GenerationRecord, error)
	Delete(ctx context.Context, ownerID, id string) error
	// Stats feeds the history ETag.
	Stats(ctx context.Context, ownerID string) (int64, *time.Time, error)
}

// AccountService signs users up and in.
type AccountService interface {
	Signup(ctx context.Context, name, email, password string) (*services.Session, error)
	Login(ctx context.Context, email, password string) (*services.Session, error)
	GoogleLogin(ctx context.Context, idToken string) (*services.Session, error)
	Me(ctx context.Context, userID string) (*domain.User, error)
}

// Handlers groups the HTTP endpoints. It depends on service interfaces only.
type Handlers struct {
	gen  GenerationService
	hist HistoryService
	acct AccountService
}

// New constructs a Handlers bound to the given services.
func New(gen GenerationService, hist HistoryService, acct AccountService) *Handlers {
	return &Handlers{gen: gen, hist: hist, acct: acct}
}

// userID returns the authenticated caller set by the auth middleware, or ""
// for anonymous requests.
func userID(c *gin.Context) string {
	return c.GetString("userID")
}
