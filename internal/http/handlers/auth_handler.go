// Account HTTP handlers, mounted under /auth.
//
//   - POST /auth/signup  {name, email, password} → 201 {token, user}
//   - POST /auth/login   {email, password}       → {token, user}
//   - POST /auth/google  {idToken}               → {token, user}
//   - GET  /auth/me      (bearer)                → {user}
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/creatorlab/creatorlab-backend/internal/domain"
	"github.com/creatorlab/creatorlab-backend/internal/services"
)

// SignupRequest is the payload of POST /auth/signup.
type SignupRequest struct {
	Name     string `json:"name" binding:"required" example:"Asha"`
	Email    string `json:"email" binding:"required" example:"asha@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret!"`
}

// LoginRequest is the payload of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"asha@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret!"`
}

// GoogleLoginRequest carries a Firebase ID token from the Google popup.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// SessionResponse is returned by every sign-in endpoint.
type SessionResponse struct {
	Success bool            `json:"success" example:"true"`
	Token   string          `json:"token"`
	User    domain.Identity `json:"user"`
}

// MeResponse describes the authenticated user.
type MeResponse struct {
	Success bool         `json:"success" example:"true"`
	User    *domain.User `json:"user"`
}

// accountError maps AccountService errors onto the envelope.
func accountError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBadRequest):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, detail(err, services.ErrBadRequest))
	case errors.Is(err, services.ErrEmailTaken):
		fail(c, http.StatusConflict, ErrCodeConflict, "an account with this email already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		unauthorized(c, "invalid email or password")
	case errors.Is(err, services.ErrUserNotFound):
		unauthorized(c, "account no longer exists")
	case errors.Is(err, services.ErrMisconfigured):
		fail(c, http.StatusInternalServerError, ErrCodeMisconfigured, "Google sign-in is not configured")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal error")
	}
}

func unauthorized(c *gin.Context, msg string) {
	fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, msg)
}

func sessionResponse(s *services.Session) SessionResponse {
	return SessionResponse{Success: true, Token: s.Token, User: s.User.Identity()}
}

// Signup godoc
// @ID          signup
// @Summary     Create an account
// @Description Registers an email/password account and returns a session token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.SignupRequest  true  "Signup payload"
// @Success     201   {object}  handlers.SessionResponse
// @Failure     400   {object}  handlers.ErrorResponse "Bad request"
// @Failure     409   {object}  handlers.ErrorResponse "Email already registered"
// @Failure     500   {object}  handlers.ErrorResponse "Internal error"
// @Router      /auth/signup [post]
func (h *Handlers) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name, email and password are required")
		return
	}
	s, err := h.acct.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		accountError(c, err)
		return
	}
	ok(c, http.StatusCreated, sessionResponse(s))
}

// Login godoc
// @ID          login
// @Summary     Sign in
// @Description Verifies email and password and returns a session token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.LoginRequest  true  "Credentials"
// @Success     200   {object}  handlers.SessionResponse
// @Failure     400   {object}  handlers.ErrorResponse "Bad request"
// @Failure     401   {object}  handlers.ErrorResponse "Invalid credentials"
// @Failure     500   {object}  handlers.ErrorResponse "Internal error"
// @Router      /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "email and password are required")
		return
	}
	s, err := h.acct.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		accountError(c, err)
		return
	}
	ok(c, http.StatusOK, sessionResponse(s))
}

// GoogleLogin godoc
// @ID          googleLogin
// @Summary     Sign in with Google
// @Description Verifies a Firebase ID token, creates the account on first use and returns a session token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.GoogleLoginRequest  true  "Firebase ID token"
// @Success     200   {object}  handlers.SessionResponse
// @Failure     400   {object}  handlers.ErrorResponse "idToken missing"
// @Failure     401   {object}  handlers.ErrorResponse "Token rejected"
// @Failure     500   {object}  handlers.ErrorResponse "Not configured"
// @Router      /auth/google [post]
func (h *Handlers) GoogleLogin(c *gin.Context) {
	var req GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "idToken missing")
		return
	}
	s, err := h.acct.GoogleLogin(c.Request.Context(), req.IDToken)
	if err != nil {
		accountError(c, err)
		return
	}
	ok(c, http.StatusOK, sessionResponse(s))
}

// Me godoc
// @ID          me
// @Summary     Current user
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200  {object}  handlers.MeResponse
// @Failure     401  {object}  handlers.ErrorResponse "Unauthorized"
// @Router      /auth/me [get]
func (h *Handlers) Me(c *gin.Context) {
	u, err := h.acct.Me(c.Request.Context(), userID(c))
	if err != nil {
		accountError(c, err)
		return
	}
	ok(c, http.StatusOK, MeResponse{Success: true, User: u})
}
