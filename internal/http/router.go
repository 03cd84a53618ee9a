// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// compression, CORS, security headers, authentication and rate limiting.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/creatorlab/creatorlab-backend/docs"
	"github.com/creatorlab/creatorlab-backend/internal/auth"
	"github.com/creatorlab/creatorlab-backend/internal/config"
	"github.com/creatorlab/creatorlab-backend/internal/http/handlers"
	"github.com/creatorlab/creatorlab-backend/internal/http/middleware"
	"github.com/creatorlab/creatorlab-backend/internal/services"
)

// maxBodyBytes caps every request body. Generation payloads are a handful
// of short fields; saved results are a few dozen lines.
const maxBodyBytes = 64 << 10

// Deps are the collaborators that cannot be built from configuration alone.
type Deps struct {
	DB  *gorm.DB
	LLM services.Completer

	// Tokens signs and validates bearer tokens.
	Tokens *auth.TokenIssuer

	// Google is nil when Google sign-in is not configured.
	Google auth.GoogleVerifier
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine and mounts the public API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. gzip
//  8. CORS and security headers
//  9. OptionalAuth, so the access log and rate limiter see the user
//
// The token-bucket limiter guards the generation endpoints only; history and
// account calls are cheap.
func RegisterRoutes(r *gin.Engine, deps Deps, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{"X-API-Key"},
	}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit
	r.Use(limitBody(maxBodyBytes))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Response compression; promhttp negotiates its own
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	// 8) CORS posture and security headers. Without an allow-list no CORS
	// headers are sent and browsers refuse cross-origin calls.
	if len(cfg.CORS.AllowedOrigins) > 0 {
		r.Use(corsMiddleware(cfg.CORS.AllowedOrigins))
	}
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS: cfg.Security.EnableHSTS,
		HSTSMaxAge: cfg.Security.HSTSMaxAge,
		PrivateAPI: true,
	}))

	// 9) Identify callers that sent a valid bearer token
	r.Use(middleware.OptionalAuth(deps.Tokens))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/", handlers.Root)
	r.GET("/health", handlers.Health)

	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← db/llm/auth
	genSvc := &services.GenerationService{
		DB:            deps.DB,
		LLM:           deps.LLM,
		Autosave:      cfg.HistoryAutosave,
		MaxFieldRunes: 2000,
	}
	histSvc := &services.HistoryService{DB: deps.DB, MaxLimit: cfg.HistoryLimit}
	acctSvc := &services.AccountService{DB: deps.DB, Tokens: deps.Tokens, Google: deps.Google}
	h := handlers.New(genSvc, histSvc, acctSvc)

	requireAuth := middleware.RequireAuth(deps.Tokens)
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())

	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		api.GET("/test", handlers.Test)

		// Generation (anonymous or authenticated)
		gen := api.Group("", rl.Handler())
		gen.POST("/bio", h.GenerateBio)
		gen.POST("/caption", h.GenerateCaption)
		gen.POST("/generate", h.Generate)

		// History
		data := api.Group("/data", requireAuth)
		data.POST("/save", h.SaveHistory)
		data.GET("/history", h.ListHistory)
		data.GET("/favorites", h.ListFavorites)
		data.PUT("/favorite/:id", h.ToggleFavorite)
		data.DELETE("/:id", h.DeleteHistory)

		// Accounts
		acct := api.Group("/auth")
		acct.POST("/signup", h.Signup)
		acct.POST("/login", h.Login)
		acct.POST("/google", h.GoogleLogin)
		acct.GET("/me", requireAuth, h.Me)
	}
}

// corsMiddleware allows credentialed calls from the listed origins only.
// gin-contrib/cors echoes a listed Origin and treats requests whose Origin
// matches the Host as same-origin.
func corsMiddleware(origins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "If-None-Match"},
		ExposeHeaders:    []string{"X-Request-ID", "ETag", "Retry-After", "Content-Length"},
		MaxAge:           12 * time.Hour,
	})
}

// limitBody caps the request body at maxBytes using http.MaxBytesReader.
// Oversized bodies make downstream reads fail with *http.MaxBytesError.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
