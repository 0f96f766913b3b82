package core

import (
	"context"
	"net/http"
)

// RequestBuilder builds the next request
type RequestBuilder interface {
	Build(ctx context.Context) (*http.Request, error)
}
