package openai

import "fmt"

// APIError is returned when the upstream API responds with a non-success
// status. Body carries the upstream response text verbatim.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("OpenAI API error (status %d): %s", e.StatusCode, e.Body)
}

// MalformedResponseError is returned when the upstream responds with a
// success status but a body the projection step cannot traverse
// (e.g. an empty choices array).
type MalformedResponseError struct {
	Field string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed upstream response: missing %s", e.Field)
}
