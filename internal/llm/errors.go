package llm

import "errors"

var (
	// ErrUnavailable indicates the generative-language API is unreachable.
	ErrUnavailable = errors.New("generative api unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("generative api request timed out")

	// ErrMissingAPIKey indicates no API key is configured.
	ErrMissingAPIKey = errors.New("generative api key not configured")

	// ErrEmptyResponse indicates the API answered without any candidate text.
	ErrEmptyResponse = errors.New("generative api returned no text")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("generative api retry attempts exhausted")
)
