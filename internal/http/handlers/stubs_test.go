package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/creatorlab/creatorlab-backend/internal/domain"
	"github.com/creatorlab/creatorlab-backend/internal/services"
)

// ---------- flexible service stubs ----------

type stubGen struct {
	generate func(context.Context, string, domain.GenerationRequest) (*services.Generation, error)

	calls   int
	lastReq domain.GenerationRequest
	lastOwn string
}

func (s *stubGen) Generate(ctx context.Context, owner string, req domain.GenerationRequest) (*services.Generation, error) {
	s.calls++
	s.lastReq, s.lastOwn = req, owner
	if s.generate != nil {
		return s.generate(ctx, owner, req)
	}
	return &services.Generation{ContentType: req.ContentType, Result: domain.GenerationResult{Items: []string{"one"}}}, nil
}

type stubHist struct {
	save      func(context.Context, string, domain.ContentType, domain.GenerationRequest, domain.GenerationResult) (*domain.GenerationRecord, error)
	list      func(context.Context, string, int) ([]domain.GenerationRecord, error)
	favorites func(context.Context, string) ([]domain.GenerationRecord, error)
	toggle    func(context.Context, string, string) (*domain.GenerationRecord, error)
	del       func(context.Context, string, string) error
	stats     func(context.Context, string) (int64, *time.Time, error)
}

func (s stubHist) Save(ctx context.Context, o string, ct domain.ContentType, in domain.GenerationRequest, res domain.GenerationResult) (*domain.GenerationRecord, error) {
	if s.save != nil {
		return s.save(ctx, o, ct, in, res)
	}
	return &domain.GenerationRecord{ID: "r1", OwnerID: o, ContentType: ct, Input: in, Result: res}, nil
}

func (s stubHist) List(ctx context.Context, o string, limit int) ([]domain.GenerationRecord, error) {
	if s.list != nil {
		return s.list(ctx, o, limit)
	}
	return []domain.GenerationRecord{}, nil
}

func (s stubHist) ListFavorites(ctx context.Context, o string) ([]domain.GenerationRecord, error) {
	if s.favorites != nil {
		return s.favorites(ctx, o)
	}
	return []domain.GenerationRecord{}, nil
}

func (s stubHist) ToggleFavorite(ctx context.Context, o, id string) (*domain.GenerationRecord, error) {
	if s.toggle != nil {
		return s.toggle(ctx, o, id)
	}
	return &domain.GenerationRecord{ID: id, OwnerID: o, IsFavorite: true}, nil
}

func (s stubHist) Delete(ctx context.Context, o, id string) error {
	if s.del != nil {
		return s.del(ctx, o, id)
	}
	return nil
}

func (s stubHist) Stats(ctx context.Context, o string) (int64, *time.Time, error) {
	if s.stats != nil {
		return s.stats(ctx, o)
	}
	return 0, nil, nil
}

type stubAcct struct {
	signup func(context.Context, string, string, string) (*services.Session, error)
	login  func(context.Context, string, string) (*services.Session, error)
	google func(context.Context, string) (*services.Session, error)
	me     func(context.Context, string) (*domain.User, error)
}

func testSession() *services.Session {
	return &services.Session{Token: "tok", User: domain.User{ID: "u1", Email: "a@b.c", Name: "Ann", Provider: "password"}}
}

func (s stubAcct) Signup(ctx context.Context, n, e, p string) (*services.Session, error) {
	if s.signup != nil {
		return s.signup(ctx, n, e, p)
	}
	return testSession(), nil
}

func (s stubAcct) Login(ctx context.Context, e, p string) (*services.Session, error) {
	if s.login != nil {
		return s.login(ctx, e, p)
	}
	return testSession(), nil
}

func (s stubAcct) GoogleLogin(ctx context.Context, tok string) (*services.Session, error) {
	if s.google != nil {
		return s.google(ctx, tok)
	}
	return testSession(), nil
}

func (s stubAcct) Me(ctx context.Context, id string) (*domain.User, error) {
	if s.me != nil {
		return s.me(ctx, id)
	}
	u := testSession().User
	return &u, nil
}

// ---------- router + request helpers ----------

// newRouter mounts the handlers without auth middleware; asUser simulates it.
func newRouter(h *Handlers, asUser string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("X-Request-ID", "rid-test")
		if asUser != "" {
			c.Set("userID", asUser)
		}
		c.Next()
	})
	r.GET("/", Root)
	r.GET("/health", Health)
	r.GET("/api/test", Test)
	r.POST("/api/bio", h.GenerateBio)
	r.POST("/api/caption", h.GenerateCaption)
	r.POST("/api/generate", h.Generate)
	r.POST("/api/data/save", h.SaveHistory)
	r.GET("/api/data/history", h.ListHistory)
	r.PUT("/api/data/favorite/:id", h.ToggleFavorite)
	r.GET("/api/data/favorites", h.ListFavorites)
	r.DELETE("/api/data/:id", h.DeleteHistory)
	r.POST("/api/auth/signup", h.Signup)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/google", h.GoogleLogin)
	r.GET("/api/auth/me", h.Me)
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body any, hdr ...string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	switch b := body.(type) {
	case nil:
		rd = bytes.NewReader(nil)
	case string:
		rd = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("invalid json %q: %v", w.Body.String(), err)
	}
	return m
}

func strs(v any) []string {
	arr, _ := v.([]any)
	out := make([]string, 0, len(arr))
	for _, x := range arr {
		s, _ := x.(string)
		out = append(out, s)
	}
	return out
}
