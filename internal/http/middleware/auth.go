package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/creatorlab/creatorlab-backend/internal/domain"
)

const (
	// userIDKey is read by handlers (and the rate limiter) for the caller id.
	userIDKey   = "userID"
	identityKey = "identity"
)

// TokenParser validates a bearer token and returns the identity it carries.
type TokenParser interface {
	Parse(token string) (domain.Identity, error)
}

// OptionalAuth sets the caller identity when the request carries a valid
// bearer token. Missing or invalid tokens are ignored and the request
// continues anonymously.
func OptionalAuth(p TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok := bearerToken(c); tok != "" {
			if id, err := p.Parse(tok); err == nil {
				setIdentity(c, id)
			}
		}
		c.Next()
	}
}

// RequireAuth aborts with 401 unless the request carries a valid bearer
// token. An identity already established by OptionalAuth is reused.
func RequireAuth(p TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := IdentityFrom(c); ok {
			c.Next()
			return
		}
		tok := bearerToken(c)
		if tok == "" {
			unauthorized(c, "missing bearer token")
			return
		}
		id, err := p.Parse(tok)
		if err != nil {
			LoggerFrom(c).Debug().Err(err).Msg("rejected bearer token")
			unauthorized(c, "invalid or expired token")
			return
		}
		setIdentity(c, id)
		c.Next()
	}
}

// IdentityFrom returns the authenticated identity, if any.
func IdentityFrom(c *gin.Context) (domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	id, ok := v.(domain.Identity)
	return id, ok && id.UserID != ""
}

func setIdentity(c *gin.Context, id domain.Identity) {
	c.Set(identityKey, id)
	c.Set(userIDKey, id.UserID)
	setLogger(c, LoggerFrom(c).With().Str("user_id", id.UserID).Logger())
}

func bearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	scheme, tok, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(tok)
}

func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", `Bearer realm="creatorlab"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"request_id": RequestIDFrom(c),
		"code":       "unauthorized",
		"message":    msg,
	})
}
