package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/saturnines/notion-verbs/pkg/auth"
	"github.com/saturnines/notion-verbs/pkg/config"
	"github.com/saturnines/notion-verbs/pkg/errors"
	"github.com/saturnines/notion-verbs/pkg/notion"
	"github.com/saturnines/notion-verbs/pkg/transport/rest"
)

const (
	// DefaultBaseURL is the Notion API root.
	DefaultBaseURL = "https://api.notion.com/v1"

	// DefaultNotionVersion is sent as the Notion-Version header.
	DefaultNotionVersion = "2022-06-28"

	queryPath = "/databases/{database_id}/query"
)

// Connector sends the database query and decodes the pages it returns.
type Connector struct {
	builder RequestBuilder
	client  rest.HTTPDoer
	logger  *slog.Logger

	baseURL       string
	notionVersion string
}

// NewConnector builds a Connector from an already loaded config.
// It performs no network activity.
func NewConnector(cfg *config.Config, opts ...Option) (*Connector, error) {
	if cfg == nil {
		return nil, errors.WrapError(fmt.Errorf("config is nil"), errors.ErrConfiguration, "new connector")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WrapError(err, errors.ErrConfiguration, "new connector")
	}

	c := &Connector{
		// No client timeout: the caller's context bounds the request.
		client:        &http.Client{},
		logger:        slog.Default(),
		baseURL:       DefaultBaseURL,
		notionVersion: DefaultNotionVersion,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.builder = rest.NewBuilder(
		strings.TrimRight(c.baseURL, "/")+queryPath,
		http.MethodPost,
		map[string]string{"database_id": cfg.Notion.DatabaseID},
		map[string]string{"Notion-Version": c.notionVersion},
		auth.NewBearerAuth(cfg.Notion.Token),
	)

	return c, nil
}

// Query sends exactly one query request and returns the pages in the
// order Notion returned them. When Notion reports more pages, they are
// not fetched; a warning is logged instead.
func (c *Connector) Query(ctx context.Context) ([]notion.Page, error) {
	req, err := c.builder.Build(ctx)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrHTTPRequest, "build request")
	}

	c.logger.Debug("querying database",
		slog.String("method", req.Method),
		slog.String("url", req.URL.Redacted()),
	)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrHTTPRequest, "query database")
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.WrapError(newHTTPError(resp, body), errors.ErrHTTPResponse, "unexpected status code")
	}

	qr, err := notion.DecodeQueryResponse(body)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrExtraction, "invalid response structure")
	}

	c.logger.Info("database queried",
		slog.Int("status", resp.StatusCode),
		slog.Int("results", len(qr.Results)),
	)

	if qr.HasMore {
		cursor := ""
		if qr.NextCursor != nil {
			cursor = *qr.NextCursor
		}
		c.logger.Warn("query results truncated; only the first page is exported",
			slog.Int("results", len(qr.Results)),
			slog.String("next_cursor", cursor),
		)
	}

	return qr.Results, nil
}

// readResponseBody reads and closes the response body
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrHTTPResponse, "failed to read response body")
	}
	return body, nil
}
