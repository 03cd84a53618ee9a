// Generation HTTP handlers.
//
//   - POST /bio       {niche, platform, tone, language?}          → {bios}
//   - POST /caption   {topic, platform, tone, language?}          → {captions, hashtags}
//   - POST /generate  {type, platform, niche, tone?, inputText?}  → {outputs}
//
// Failures keep the response shape the web client renders: the error
// envelope plus the endpoint's array filled with a single placeholder line.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/creatorlab/creatorlab-backend/internal/domain"
	"github.com/creatorlab/creatorlab-backend/internal/services"
)

//
// DTOs
//

// BioRequest is the payload of POST /bio.
type BioRequest struct {
	Niche    string `json:"niche" example:"fitness coach"`
	Platform string `json:"platform" example:"Instagram"`
	Tone     string `json:"tone" example:"Friendly"`
	Language string `json:"language,omitempty" example:"english" enums:"english,hinglish"`
}

// BioResponse lists generated bios. RecordID is set when the result was
// saved to history.
type BioResponse struct {
	Bios     []string `json:"bios"`
	RecordID string   `json:"record_id,omitempty"`
}

// BioFailure is the error envelope of POST /bio.
type BioFailure struct {
	ErrorResponse
	Bios []string `json:"bios" example:"⚠️ Bio generation failed"`
}

// CaptionRequest is the payload of POST /caption.
type CaptionRequest struct {
	Topic    string `json:"topic" example:"morning run"`
	Platform string `json:"platform" example:"Instagram"`
	Tone     string `json:"tone" example:"Motivational"`
	Language string `json:"language,omitempty" example:"english" enums:"english,hinglish"`
}

// CaptionResponse lists generated captions and hashtags.
type CaptionResponse struct {
	Captions []string `json:"captions"`
	Hashtags []string `json:"hashtags"`
	RecordID string   `json:"record_id,omitempty"`
}

// CaptionFailure is the error envelope of POST /caption.
type CaptionFailure struct {
	ErrorResponse
	Captions []string `json:"captions" example:"⚠️ AI failed, try again"`
	Hashtags []string `json:"hashtags" example:"#error"`
}

// GenerateRequest is the payload of POST /generate. Niche and topic are
// interchangeable; InputText is optional source material.
type GenerateRequest struct {
	Type      string `json:"type" example:"hashtag" enums:"caption,bio,hashtag,hook"`
	Platform  string `json:"platform" example:"Instagram"`
	Niche     string `json:"niche" example:"home baking"`
	Topic     string `json:"topic,omitempty"`
	Tone      string `json:"tone,omitempty" example:"Playful"`
	Language  string `json:"language,omitempty" example:"hinglish" enums:"english,hinglish"`
	InputText string `json:"inputText,omitempty" example:"Today I tried sourdough for the first time"`
}

// GenerateResponse lists generated outputs. Hashtags accompany captions.
type GenerateResponse struct {
	Outputs  []string `json:"outputs"`
	Hashtags []string `json:"hashtags,omitempty"`
	RecordID string   `json:"record_id,omitempty"`
}

// GenerateFailure is the error envelope of POST /generate.
type GenerateFailure struct {
	ErrorResponse
	Outputs []string `json:"outputs" example:"⚠️ Generation failed"`
}

//
// Error mapping
//

const (
	placeholderBio      = "⚠️ Bio generation failed"
	placeholderCaption  = "⚠️ AI failed, try again"
	placeholderGenerate = "⚠️ Generation failed"
	decodeSuffix        = " (Invalid JSON response from AI)"
	misconfiguredLine   = "❌ LLM API key missing in backend environment variables"
)

// generationError maps a GenerationService error to status, code and message.
func generationError(err error) (int, string, string) {
	switch {
	case errors.Is(err, services.ErrBadRequest):
		return http.StatusBadRequest, ErrCodeBadRequest, detail(err, services.ErrBadRequest)
	case errors.Is(err, services.ErrMisconfigured):
		return http.StatusInternalServerError, ErrCodeMisconfigured, "the AI provider is not configured"
	case errors.Is(err, services.ErrUpstreamRateLimited):
		return http.StatusInternalServerError, ErrCodeUpstreamRateLimited, "rate limit exceeded, please try again in a moment"
	case errors.Is(err, services.ErrUpstreamQuotaExhausted):
		return http.StatusInternalServerError, ErrCodeUpstreamQuotaExhausted, "AI credits exhausted, please try again later"
	case errors.Is(err, services.ErrDecodeInvalid):
		return http.StatusInternalServerError, ErrCodeDecodeInvalid, "invalid JSON response from AI"
	default:
		return http.StatusInternalServerError, ErrCodeUpstream, "AI request failed"
	}
}

// placeholder is the single line shown in place of results.
func placeholder(failed, code, msg string) []string {
	switch code {
	case ErrCodeBadRequest, ErrCodeBodyTooLarge:
		return []string{"❌ " + msg}
	case ErrCodeMisconfigured:
		return []string{misconfiguredLine}
	case ErrCodeDecodeInvalid:
		return []string{failed + decodeSuffix}
	}
	return []string{failed}
}

func hashtagPlaceholder(code string) []string {
	switch code {
	case ErrCodeBadRequest, ErrCodeBodyTooLarge:
		return []string{"#bad_request"}
	case ErrCodeMisconfigured:
		return []string{"#missing_key"}
	}
	return []string{"#error"}
}

func failBio(c *gin.Context, status int, code, msg string) {
	e := errorResponse(c, code, msg)
	failWith(c, status, e, BioFailure{ErrorResponse: e, Bios: placeholder(placeholderBio, code, msg)})
}

func failCaption(c *gin.Context, status int, code, msg string) {
	e := errorResponse(c, code, msg)
	failWith(c, status, e, CaptionFailure{
		ErrorResponse: e,
		Captions:      placeholder(placeholderCaption, code, msg),
		Hashtags:      hashtagPlaceholder(code),
	})
}

func failGenerate(c *gin.Context, status int, code, msg string) {
	e := errorResponse(c, code, msg)
	failWith(c, status, e, GenerateFailure{ErrorResponse: e, Outputs: placeholder(placeholderGenerate, code, msg)})
}

// decodeLenient binds the optional JSON body. An empty body is treated as an
// empty request so the service reports the missing fields.
func decodeLenient(c *gin.Context, dst any) error {
	if c.Request.ContentLength == 0 {
		return nil
	}
	return c.ShouldBindJSON(dst)
}

//
// Handlers
//

// GenerateBio godoc
// @ID          generateBio
// @Summary     Generate profile bios
// @Description Returns three platform-tuned bios for a niche. On failure the `bios` array carries a single placeholder line.
// @Tags        Generation
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body  body      handlers.BioRequest  true  "Bio request"
// @Success     200   {object}  handlers.BioResponse
// @Failure     400   {object}  handlers.BioFailure  "Missing or invalid field"
// @Failure     413   {object}  handlers.BioFailure  "Body too large"
// @Failure     429   {object}  handlers.ErrorResponse "Rate limited"
// @Failure     500   {object}  handlers.BioFailure  "misconfigured, upstream_* or decode_invalid"
// @Router      /bio [post]
func (h *Handlers) GenerateBio(c *gin.Context) {
	var req BioRequest
	if err := decodeLenient(c, &req); err != nil {
		status, code, msg := bindError(err)
		failBio(c, status, code, msg)
		return
	}
	g, err := h.gen.Generate(c.Request.Context(), userID(c), domain.GenerationRequest{
		ContentType: domain.ContentBio,
		Platform:    req.Platform,
		Topic:       req.Niche,
		Tone:        req.Tone,
		Language:    domain.Language(req.Language),
	})
	if err != nil {
		status, code, msg := generationError(err)
		failBio(c, status, code, msg)
		return
	}
	ok(c, http.StatusOK, BioResponse{Bios: g.Result.Items, RecordID: g.RecordID})
}

// GenerateCaption godoc
// @ID          generateCaption
// @Summary     Generate captions and hashtags
// @Description Returns three captions and five hashtags for a topic. On failure both arrays carry placeholders.
// @Tags        Generation
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body  body      handlers.CaptionRequest  true  "Caption request"
// @Success     200   {object}  handlers.CaptionResponse
// @Failure     400   {object}  handlers.CaptionFailure  "Missing or invalid field"
// @Failure     413   {object}  handlers.CaptionFailure  "Body too large"
// @Failure     429   {object}  handlers.ErrorResponse   "Rate limited"
// @Failure     500   {object}  handlers.CaptionFailure  "misconfigured, upstream_* or decode_invalid"
// @Router      /caption [post]
func (h *Handlers) GenerateCaption(c *gin.Context) {
	var req CaptionRequest
	if err := decodeLenient(c, &req); err != nil {
		status, code, msg := bindError(err)
		failCaption(c, status, code, msg)
		return
	}
	g, err := h.gen.Generate(c.Request.Context(), userID(c), domain.GenerationRequest{
		ContentType: domain.ContentCaption,
		Platform:    req.Platform,
		Topic:       req.Topic,
		Tone:        req.Tone,
		Language:    domain.Language(req.Language),
	})
	if err != nil {
		status, code, msg := generationError(err)
		failCaption(c, status, code, msg)
		return
	}
	hashtags := g.Result.SecondaryItems
	if hashtags == nil {
		hashtags = []string{}
	}
	ok(c, http.StatusOK, CaptionResponse{Captions: g.Result.Items, Hashtags: hashtags, RecordID: g.RecordID})
}

// Generate godoc
// @ID          generateContent
// @Summary     Generate content of any type
// @Description Generic generation used by the hashtag and hook tools; also accepts caption and bio.
// @Tags        Generation
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body  body      handlers.GenerateRequest  true  "Generation request"
// @Success     200   {object}  handlers.GenerateResponse
// @Failure     400   {object}  handlers.GenerateFailure  "Missing or invalid field"
// @Failure     413   {object}  handlers.GenerateFailure  "Body too large"
// @Failure     429   {object}  handlers.ErrorResponse    "Rate limited"
// @Failure     500   {object}  handlers.GenerateFailure  "misconfigured, upstream_* or decode_invalid"
// @Router      /generate [post]
func (h *Handlers) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := decodeLenient(c, &req); err != nil {
		status, code, msg := bindError(err)
		failGenerate(c, status, code, msg)
		return
	}
	topic := req.Topic
	if topic == "" {
		topic = req.Niche
	}
	g, err := h.gen.Generate(c.Request.Context(), userID(c), domain.GenerationRequest{
		ContentType: domain.ContentType(req.Type),
		Platform:    req.Platform,
		Topic:       topic,
		Tone:        req.Tone,
		Language:    domain.Language(req.Language),
		Context:     req.InputText,
	})
	if err != nil {
		status, code, msg := generationError(err)
		failGenerate(c, status, code, msg)
		return
	}
	ok(c, http.StatusOK, GenerateResponse{Outputs: g.Result.Items, Hashtags: g.Result.SecondaryItems, RecordID: g.RecordID})
}
