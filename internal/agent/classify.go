package agent

import (
	"context"
	"errors"
	"net/http"

	"book-summarizer/backend/internal/agent/failure"

	"google.golang.org/genai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// apiKeyInvalidReason is the ErrorInfo reason Gemini attaches to a rejected key
const apiKeyInvalidReason = "API_KEY_INVALID"

// classifyError maps an SDK error onto the failure taxonomy using status codes
// and structured error details only
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	var f *failure.Error
	if errors.As(err, &f) {
		return err
	}

	if apiErr, ok := asAPIError(err); ok {
		return failure.Wrap(kindForAPIError(apiErr), "generate content", err)
	}

	// Check for gRPC status
	if s, ok := status.FromError(err); ok {
		return failure.Wrap(kindForGRPCCode(s.Code()), "generate content", err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return failure.Wrap(failure.Request, "generation timed out", err)
	}
	return failure.Wrap(failure.Request, "generate content", err)
}

func asAPIError(err error) (genai.APIError, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return *apiErrPtr, true
	}
	return genai.APIError{}, false
}

func kindForAPIError(e genai.APIError) failure.Kind {
	switch {
	case e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden:
		return failure.Auth
	case e.Code == http.StatusBadRequest && hasReason(e.Details, apiKeyInvalidReason):
		return failure.Auth
	case e.Code == http.StatusTooManyRequests || e.Status == "RESOURCE_EXHAUSTED":
		return failure.RateLimit
	case e.Code >= 500 && e.Code <= 599:
		return failure.ServiceUnavailable
	default:
		return failure.Request
	}
}

func kindForGRPCCode(code codes.Code) failure.Kind {
	switch code {
	case codes.Unauthenticated, codes.PermissionDenied:
		return failure.Auth
	case codes.ResourceExhausted:
		return failure.RateLimit
	case codes.Unavailable, codes.Internal, codes.DeadlineExceeded:
		return failure.ServiceUnavailable
	default:
		return failure.Request
	}
}

// hasReason reports whether any google.rpc.ErrorInfo detail carries reason
func hasReason(details []map[string]any, reason string) bool {
	for _, d := range details {
		if r, ok := d["reason"].(string); ok && r == reason {
			return true
		}
	}
	return false
}
