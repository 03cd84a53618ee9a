// Package llm talks to an OpenAI-compatible chat-completions endpoint and
// decodes the JSON the model answers with.
//
// The Client performs exactly one request per call. Failures are reported as
// *Error values whose Kind separates rate limiting and exhausted credits from
// every other upstream failure, so callers can map them to distinct API codes.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/semaphore"

	"github.com/creatorlab/creatorlab-backend/internal/config"
	"github.com/creatorlab/creatorlab-backend/internal/prompt"
)

// ToolName is the function tool forced for outputs-shaped prompts.
const ToolName = "generate_content"

// ErrNotConfigured is returned by Complete when no API key is set.
var ErrNotConfigured = errors.New("llm: api key not configured")

// Kind classifies a completion failure.
type Kind int

const (
	// KindUpstream covers transport failures, non-2xx statuses other than
	// 402/429, and responses without a usable choice.
	KindUpstream Kind = iota
	// KindRateLimited is an HTTP 429 from the provider.
	KindRateLimited
	// KindQuotaExhausted is an HTTP 402 from the provider.
	KindQuotaExhausted
)

func (k Kind) String() string {
	switch k {
	case KindRateLimited:
		return "rate_limited"
	case KindQuotaExhausted:
		return "quota_exhausted"
	default:
		return "upstream"
	}
}

// Error is a classified completion failure.
type Error struct {
	Kind       Kind
	StatusCode int // 0 when no HTTP response was received
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("llm %s (status %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("llm %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the Kind of err, defaulting to KindUpstream.
func KindOf(err error) Kind {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind
	}
	return KindUpstream
}

var llmLat = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "creatorlab_llm_request_duration_seconds",
		Help:    "Duration of completion requests in seconds.",
		Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 15, 30, 60},
	},
	[]string{"content_type"},
)

func init() {
	prometheus.MustRegister(llmLat)
}

// chatService is the subset of the OpenAI SDK used by Client.
type chatService interface {
	Create(ctx context.Context, params openai.ChatCompletionNewParams) (openai.ChatCompletion, error)
}

// sdkChat adapts the SDK's completion service to chatService.
type sdkChat struct {
	svc *openai.ChatCompletionService
}

func (s sdkChat) Create(ctx context.Context, params openai.ChatCompletionNewParams) (openai.ChatCompletion, error) {
	resp, err := s.svc.New(ctx, params)
	if err != nil {
		return openai.ChatCompletion{}, err
	}
	return *resp, nil
}

// Client sends rendered prompts to the completion endpoint.
type Client struct {
	chat     chatService
	model    string
	timeout  time.Duration
	useTools bool
	sem      *semaphore.Weighted
}

// NewClient builds a Client from cfg. A client without an API key is valid
// but reports Configured() == false and refuses to send requests.
func NewClient(cfg config.LLMConfig) *Client {
	c := &Client{
		model:    cfg.Model,
		timeout:  cfg.Timeout,
		useTools: cfg.UseTools,
	}
	if cfg.MaxConcurrent > 0 {
		c.sem = semaphore.NewWeighted(int64(cfg.MaxConcurrent))
	}
	if cfg.APIKey != "" {
		cli := openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(cfg.BaseURL),
			option.WithMaxRetries(0),
		)
		c.chat = sdkChat{svc: &cli.Chat.Completions}
	}
	return c
}

// Configured reports whether the client has credentials.
func (c *Client) Configured() bool { return c != nil && c.chat != nil }

// Complete sends p and returns the raw model text. For outputs-shaped prompts
// in tool mode it returns the arguments of the forced tool call instead.
func (c *Client) Complete(ctx context.Context, p prompt.Prompt) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}
	if c.sem != nil {
		if err := c.sem.Acquire(ctx, 1); err != nil {
			return "", &Error{Kind: KindUpstream, Err: err}
		}
		defer c.sem.Release(1)
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	params := c.params(p)
	start := time.Now()
	resp, err := c.chat.Create(ctx, params)
	llmLat.WithLabelValues(string(p.ContentType)).Observe(time.Since(start).Seconds())
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", &Error{Kind: KindUpstream, Err: errors.New("no choices returned")}
	}
	msg := resp.Choices[0].Message
	if len(params.Tools) > 0 && len(msg.ToolCalls) > 0 {
		return msg.ToolCalls[0].Function.Arguments, nil
	}
	return msg.Content, nil
}

func (c *Client) params(p prompt.Prompt) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(p.System),
			openai.UserMessage(p.User),
		},
		Temperature: openai.Float(p.Temperature),
	}
	if c.useTools && p.Shape == prompt.ShapeOutputs {
		params.Tools = []openai.ChatCompletionToolParam{outputsTool(p)}
		params.ToolChoice = openai.ChatCompletionToolChoiceOptionUnionParam{
			OfChatCompletionNamedToolChoice: &openai.ChatCompletionNamedToolChoiceParam{
				Function: openai.ChatCompletionNamedToolChoiceFunctionParam{Name: ToolName},
			},
		}
	}
	return params
}

func outputsTool(p prompt.Prompt) openai.ChatCompletionToolParam {
	return openai.ChatCompletionToolParam{
		Function: shared.FunctionDefinitionParam{
			Name:        ToolName,
			Description: openai.String(fmt.Sprintf("Return the generated %s outputs", p.ContentType)),
			Parameters: shared.FunctionParameters{
				"type": "object",
				"properties": map[string]any{
					"outputs": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required": []string{"outputs"},
			},
		},
	}
}

// classify maps SDK errors onto Kind.
func classify(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusTooManyRequests:
			return &Error{Kind: KindRateLimited, StatusCode: apiErr.StatusCode, Err: err}
		case http.StatusPaymentRequired:
			return &Error{Kind: KindQuotaExhausted, StatusCode: apiErr.StatusCode, Err: err}
		default:
			return &Error{Kind: KindUpstream, StatusCode: apiErr.StatusCode, Err: err}
		}
	}
	return &Error{Kind: KindUpstream, Err: err}
}
