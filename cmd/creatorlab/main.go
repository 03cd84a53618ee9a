// Command creatorlab runs the CreatorLab HTTP API.
//
// @title                      CreatorLab API
// @version                    1.0
// @description                Generates social media bios, captions, hashtags and hooks, and stores a per-user history of saved results.
// @BasePath                   /api
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
// @description                Type "Bearer" followed by a space and the session token.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/creatorlab/creatorlab-backend/docs"
	"github.com/creatorlab/creatorlab-backend/internal/auth"
	"github.com/creatorlab/creatorlab-backend/internal/config"
	httpapi "github.com/creatorlab/creatorlab-backend/internal/http"
	"github.com/creatorlab/creatorlab-backend/internal/llm"
	"github.com/creatorlab/creatorlab-backend/internal/observability"
	"github.com/creatorlab/creatorlab-backend/internal/repo"
	"github.com/creatorlab/creatorlab-backend/internal/sysutil"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 15 * time.Second

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		sysutil.SetupLogging("info", false, "creatorlab")
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ver := sysutil.FirstNonEmpty(os.Getenv("APP_VERSION"), version)
	lg := sysutil.SetupLogging(cfg.LogLevel, cfg.LogPretty, cfg.OTEL.ServiceName)
	lg.Info().Str("version", ver).Str("db_driver", cfg.DBDriver).Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.SetupOTel(ctx, cfg.OTEL, ver)
	if err != nil {
		lg.Fatal().Err(err).Msg("tracing setup failed")
	}

	db, err := repo.Open(cfg)
	if err != nil {
		lg.Fatal().Err(err).Msg("database open failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		lg.Fatal().Err(err).Msg("database migration failed")
	}

	completer := llm.NewClient(cfg.LLM)
	if !completer.Configured() {
		lg.Warn().Msg("LLM API key missing; generation endpoints will answer misconfigured")
	}

	deps := httpapi.Deps{
		DB:     db,
		LLM:    completer,
		Tokens: auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
	}
	if cfg.Auth.FirebaseCredentialJSON != "" {
		fv, err := auth.NewFirebaseVerifier(ctx, cfg.Auth.FirebaseCredentialJSON)
		if err != nil {
			lg.Fatal().Err(err).Msg("firebase setup failed")
		}
		deps.Google = fv
	} else {
		lg.Warn().Msg("FIREBASE_SERVICE_ACCOUNT_JSON not set; Google sign-in disabled")
	}

	gin.SetMode(cfg.GinMode)
	docs.SwaggerInfo.BasePath = cfg.APIBasePath
	docs.SwaggerInfo.Version = ver

	r := gin.New()
	httpapi.RegisterRoutes(r, deps, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		lg.Info().Str("addr", srv.Addr).Str("api", cfg.APIBasePath).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	stop()
	lg.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error().Err(err).Msg("forced shutdown")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		lg.Error().Err(err).Msg("tracing shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	lg.Info().Msg("server exited")
}
