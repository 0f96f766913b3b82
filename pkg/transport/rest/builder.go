// pkg/transport/rest/builder.go
package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"

	"github.com/saturnines/notion-verbs/pkg/auth"
	"github.com/saturnines/notion-verbs/pkg/errors"
)

// pathParamPattern matches {name} placeholders in a URL template.
var pathParamPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Builder builds REST HTTP requests.
type Builder struct {
	URL         string            // URL template, e.g. https://host/v1/databases/{database_id}/query
	Method      string            // HTTP method
	PathParams  map[string]string // Values for {name} placeholders, path-escaped on use
	Headers     map[string]string
	AuthHandler auth.Handler
}

// NewBuilder constructs a Builder.
// Method defaults to GET if empty.
func NewBuilder(
	urlTemplate, method string,
	pathParams, headers map[string]string,
	authHandler auth.Handler,
) *Builder {
	if method == "" {
		method = http.MethodGet
	}
	return &Builder{
		URL:         urlTemplate,
		Method:      method,
		PathParams:  pathParams,
		Headers:     headers,
		AuthHandler: authHandler,
	}
}

// Build creates an HTTP request with no body.
func (b *Builder) Build(ctx context.Context) (*http.Request, error) {
	target, err := b.expandURL()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, b.Method, target, nil)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrHTTPRequest, "failed to create HTTP request")
	}

	for k, v := range b.Headers {
		req.Header.Set(k, v)
	}

	if b.AuthHandler != nil {
		if err := b.AuthHandler.ApplyAuth(req); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// expandURL replaces every {name} placeholder. A placeholder without a
// value is a configuration error rather than a request to a literal path.
func (b *Builder) expandURL() (string, error) {
	var missing []string
	expanded := pathParamPattern.ReplaceAllStringFunc(b.URL, func(match string) string {
		name := match[1 : len(match)-1]
		value, ok := b.PathParams[name]
		if !ok || value == "" {
			missing = append(missing, name)
			return match
		}
		return url.PathEscape(value)
	})

	if len(missing) > 0 {
		return "", errors.WrapError(
			fmt.Errorf("no value for path params %v", missing),
			errors.ErrConfiguration,
			"expand URL",
		)
	}
	return expanded, nil
}
