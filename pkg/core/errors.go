package core

import (
	"fmt"
	"net/http"

	"github.com/saturnines/notion-verbs/pkg/notion"
)

// HTTPError wraps HTTP error responses
type HTTPError struct {
	StatusCode int
	Status     string
	Code       string // Notion error code, when the body carried one
	Message    string // Notion error message, when the body carried one
}

func (e *HTTPError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("HTTP %d: %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Status)
}

func newHTTPError(resp *http.Response, body []byte) *HTTPError {
	e := &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}
	if ne := notion.DecodeErrorResponse(body); ne != nil {
		e.Code = ne.Code
		e.Message = ne.Message
	}
	return e
}
