package llm

import "errors"

var (
	// ErrUnavailable indicates the text-generation server is unreachable.
	ErrUnavailable = errors.New("llm server unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrCanceled indicates the caller abandoned the request, e.g. on Ctrl-C.
	ErrCanceled = errors.New("llm request canceled")

	// ErrAuth indicates the API key was rejected.
	ErrAuth = errors.New("llm authentication failed")

	// ErrQuota indicates the provider refused the call for rate or quota reasons.
	ErrQuota = errors.New("llm quota exceeded")

	// ErrEmptyResponse indicates the provider answered without any text,
	// for example when the prompt was blocked.
	ErrEmptyResponse = errors.New("llm returned no text")

	// ErrRequestFailed covers every other non-success answer.
	ErrRequestFailed = errors.New("llm request failed")
)
