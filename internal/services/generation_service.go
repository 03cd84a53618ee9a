// Package services – GenerationService
//
// This file implements GenerationService, which turns a structured request
// into decoded content: it validates the request, renders the prompt, calls
// the completion endpoint once, and decodes the JSON answer. Authenticated
// callers can optionally have successful generations saved to history.
//
// Observability: Generate is OpenTelemetry-instrumented and counts outcomes
// in creatorlab_generations_total.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"

	"github.com/creatorlab/creatorlab-backend/internal/domain"
	"github.com/creatorlab/creatorlab-backend/internal/llm"
	"github.com/creatorlab/creatorlab-backend/internal/prompt"
	"github.com/creatorlab/creatorlab-backend/internal/repo"
	"github.com/creatorlab/creatorlab-backend/internal/utils"
)

// maxRawLogBytes caps the rejected model output copied into the warning log.
const maxRawLogBytes = 512

// Outcome labels for creatorlab_generations_total.
const (
	outcomeOK             = "ok"
	outcomeBadRequest     = "bad_request"
	outcomeMisconfigured  = "misconfigured"
	outcomeRateLimited    = "upstream_rate_limited"
	outcomeQuotaExhausted = "upstream_quota_exhausted"
	outcomeUpstream       = "upstream_error"
	outcomeDecodeInvalid  = "decode_invalid"
)

var generations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "creatorlab_generations_total",
		Help: "Generation requests by content type and outcome.",
	},
	[]string{"content_type", "outcome"},
)

func init() {
	prometheus.MustRegister(generations)
}

// Completer is the completion endpoint as seen by GenerationService.
type Completer interface {
	Configured() bool
	Complete(ctx context.Context, p prompt.Prompt) (string, error)
}

// Generation is the outcome of a successful Generate call. RecordID is set
// only when the result was saved to history.
type Generation struct {
	ContentType domain.ContentType
	Result      domain.GenerationResult
	RecordID    string
}

// GenerationService validates requests and drives prompt → completion → decode.
type GenerationService struct {
	DB  *gorm.DB
	LLM Completer

	// Autosave persists successful generations for authenticated callers.
	Autosave bool

	// Optional guard on every free-text field.
	MaxFieldRunes int
}

// Generate runs one generation for ownerID ("" for anonymous callers).
//
// Input problems are reported as ErrBadRequest before anything else happens;
// the completion endpoint is never called for an invalid request.
func (s *GenerationService) Generate(ctx context.Context, ownerID string, req domain.GenerationRequest) (*Generation, error) {
	tr := otel.Tracer("services/GenerationService")
	ctx, span := tr.Start(ctx, "Generate",
		trace.WithAttributes(
			attribute.String("content.type", string(req.ContentType)),
			attribute.String("platform", req.Platform),
			attribute.Bool("authenticated", ownerID != ""),
		),
	)
	defer span.End()

	gen, outcome, err := s.generate(ctx, ownerID, req)
	generations.WithLabelValues(metricType(req.ContentType), outcome).Inc()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		return nil, err
	}
	return gen, nil
}

func (s *GenerationService) generate(ctx context.Context, ownerID string, req domain.GenerationRequest) (*Generation, string, error) {
	req, err := s.normalize(req)
	if err != nil {
		return nil, outcomeBadRequest, err
	}
	if s.LLM == nil || !s.LLM.Configured() {
		return nil, outcomeMisconfigured, ErrMisconfigured
	}

	p, err := prompt.Build(req)
	if err != nil {
		return nil, outcomeBadRequest, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	raw, err := s.LLM.Complete(ctx, p)
	if err != nil {
		return nil, upstreamOutcome(err), upstreamError(err)
	}

	d := llm.Decode(p.Shape, raw)
	if d.Status != llm.Valid {
		zerolog.Ctx(ctx).Warn().
			Str("content_type", string(req.ContentType)).
			Str("reason", d.Reason).
			Int("raw_bytes", len(d.Raw)).
			Str("raw", utils.Truncate(d.Raw, maxRawLogBytes)).
			Msg("model output rejected")
		return nil, outcomeDecodeInvalid, ErrDecodeInvalid
	}

	gen := &Generation{ContentType: req.ContentType, Result: d.Result}
	if ownerID != "" && s.Autosave && s.DB != nil {
		rec, err := repo.CreateGeneration(ctx, s.DB, ownerID, req.ContentType, req, d.Result)
		if err != nil {
			// The caller still gets the content; history is best effort here.
			zerolog.Ctx(ctx).Error().Err(err).Msg("autosave generation failed")
		} else {
			gen.RecordID = rec.ID
		}
	}
	return gen, outcomeOK, nil
}

// requiredFields lists, per content type, the fields that must be non-empty.
// Topic is reported as "niche" for every type except captions.
var requiredFields = map[domain.ContentType][]string{
	domain.ContentBio:     {"niche", "platform", "tone"},
	domain.ContentCaption: {"topic", "platform", "tone"},
	domain.ContentHashtag: {"niche", "platform"},
	domain.ContentHook:    {"niche", "platform", "tone"},
}

// normalize trims and NFC-normalizes free text, then checks the required
// fields for the content type.
func (s *GenerationService) normalize(req domain.GenerationRequest) (domain.GenerationRequest, error) {
	ct, ok := domain.ParseContentType(string(req.ContentType))
	if !ok {
		return req, fmt.Errorf("%w: type must be one of %s", ErrBadRequest, domain.ContentTypeList())
	}
	lang, ok := domain.ParseLanguage(string(req.Language))
	if !ok {
		return req, fmt.Errorf("%w: language must be english or hinglish", ErrBadRequest)
	}

	out := domain.GenerationRequest{
		ContentType: ct,
		Platform:    cleanText(req.Platform),
		Topic:       cleanText(req.Topic),
		Tone:        cleanText(req.Tone),
		Language:    lang,
		Context:     cleanText(req.Context),
	}

	values := map[string]string{
		"niche":    out.Topic,
		"topic":    out.Topic,
		"platform": out.Platform,
		"tone":     out.Tone,
	}
	for _, f := range requiredFields[ct] {
		if values[f] == "" {
			return req, fmt.Errorf("%w: %s is required", ErrBadRequest, f)
		}
	}

	if s.MaxFieldRunes > 0 {
		fields := []struct{ name, v string }{
			{"platform", out.Platform}, {"topic", out.Topic}, {"tone", out.Tone}, {"inputText", out.Context},
		}
		for _, f := range fields {
			if utf8.RuneCountInString(f.v) > s.MaxFieldRunes {
				return req, fmt.Errorf("%w: %s too long: max %d characters", ErrBadRequest, f.name, s.MaxFieldRunes)
			}
		}
	}
	return out, nil
}

func cleanText(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

func upstreamError(err error) error {
	switch llm.KindOf(err) {
	case llm.KindRateLimited:
		return fmt.Errorf("%w: %v", ErrUpstreamRateLimited, err)
	case llm.KindQuotaExhausted:
		return fmt.Errorf("%w: %v", ErrUpstreamQuotaExhausted, err)
	}
	if errors.Is(err, llm.ErrNotConfigured) {
		return ErrMisconfigured
	}
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}

func upstreamOutcome(err error) string {
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		return outcomeMisconfigured
	case llm.KindOf(err) == llm.KindRateLimited:
		return outcomeRateLimited
	case llm.KindOf(err) == llm.KindQuotaExhausted:
		return outcomeQuotaExhausted
	}
	return outcomeUpstream
}

// metricType keeps the content_type label bounded.
func metricType(ct domain.ContentType) string {
	if parsed, ok := domain.ParseContentType(string(ct)); ok {
		return string(parsed)
	}
	return "unknown"
}
