package core

import (
	"log/slog"

	"github.com/saturnines/notion-verbs/pkg/transport/rest"
)

// Option configures a Connector
type Option func(*Connector)

// WithHTTPClient replaces the HTTP client entirely
func WithHTTPClient(client rest.HTTPDoer) Option {
	return func(c *Connector) {
		c.client = client
	}
}

// WithBaseURL points the connector at another API root
func WithBaseURL(baseURL string) Option {
	return func(c *Connector) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(c *Connector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithNotionVersion overrides the Notion-Version header
func WithNotionVersion(version string) Option {
	return func(c *Connector) {
		c.notionVersion = version
	}
}
