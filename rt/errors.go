package rt

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

var (
	ErrNotFound     = errors.New("rt: resource not found")
	ErrUnauthorized = errors.New("rt: unauthorized")
	ErrForbidden    = errors.New("rt: forbidden")
)

// APIError carries a non-success response from the RT instance: the HTTP
// status, RT's own error message when the body had one, and the raw body
// for callers that want the full pass-through.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	Body       []byte
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("rt: %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("rt: %s", e.Status)
}

// Is maps well-known status codes onto the package sentinels so callers
// can use errors.Is without inspecting status codes.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	}
	return false
}

// checkResponse turns any non-2xx response into an *APIError.
func checkResponse(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Body:       resp.Body(),
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err == nil {
		apiErr.Message = payload.Message
	}

	return apiErr
}
