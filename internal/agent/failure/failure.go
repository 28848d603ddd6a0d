// Package failure defines the error taxonomy surfaced by the generation flow.
// Every failure carries a Kind that maps to a fixed user-facing message.
package failure

import (
	"errors"
)

// Kind classifies a failure
type Kind int

const (
	// Request is the catch-all kind
	Request Kind = iota
	Config
	Auth
	RateLimit
	ServiceUnavailable
	Parse
)

func (k Kind) String() string {
	switch k {
	case Config:
		return "ConfigError"
	case Auth:
		return "AuthError"
	case RateLimit:
		return "RateLimitError"
	case ServiceUnavailable:
		return "ServiceUnavailableError"
	case Parse:
		return "ParseError"
	default:
		return "RequestError"
	}
}

// Code returns the machine-readable code used in API responses
func (k Kind) Code() string {
	switch k {
	case Config:
		return "CONFIG_ERROR"
	case Auth:
		return "AUTH_ERROR"
	case RateLimit:
		return "RATE_LIMITED"
	case ServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	case Parse:
		return "PARSE_ERROR"
	default:
		return "REQUEST_ERROR"
	}
}

// Message returns the human-readable message shown to the user
func (k Kind) Message() string {
	switch k {
	case Config:
		return "API key not configured. Please add GEMINI_API_KEY to your environment."
	case Auth:
		return "Invalid API key. Please check your Gemini API key."
	case RateLimit:
		return "API quota exceeded. Please try again later."
	case ServiceUnavailable:
		return "The AI service is temporarily unavailable. Please try again in a moment."
	case Parse:
		return "Failed to parse the summary. Please try again."
	default:
		return "Failed to generate summary. Please try again."
	}
}

// Error is a classified failure
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a failure without an underlying cause
func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// Wrap creates a failure around a lower-level error
func Wrap(kind Kind, detail string, err error) *Error {
	return &Error{Kind: kind, Detail: detail, Err: err}
}

// KindOf returns the kind of err, or Request when err is not classified
func KindOf(err error) Kind {
	var f *Error
	if errors.As(err, &f) {
		return f.Kind
	}
	return Request
}

// Is reports whether err is a failure of the given kind
func Is(err error, kind Kind) bool {
	var f *Error
	return errors.As(err, &f) && f.Kind == kind
}
