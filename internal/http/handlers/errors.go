// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// Codes are lowercase snake_case and stable; clients branch on them. Every
// error response carries one of these codes plus a human-readable message:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "code": "upstream_rate_limited",
//	  "message": "the AI provider is rate limiting requests, try again shortly"
//	}
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeUnauthorized     = "unauthorized"
	ErrCodeNotFound         = "not_found"
	ErrCodeConflict         = "conflict"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeBodyTooLarge     = "body_too_large"

	// Generation failures. All of them answer 500 with a placeholder array.
	ErrCodeMisconfigured          = "misconfigured"
	ErrCodeUpstreamRateLimited    = "upstream_rate_limited"
	ErrCodeUpstreamQuotaExhausted = "upstream_quota_exhausted"
	ErrCodeUpstream               = "upstream_error"
	ErrCodeDecodeInvalid          = "decode_invalid"
)
