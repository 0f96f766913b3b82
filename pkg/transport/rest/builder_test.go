package rest

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturnines/notion-verbs/pkg/auth"
	"github.com/saturnines/notion-verbs/pkg/errors"
)

const queryTemplate = "https://api.notion.com/v1/databases/{database_id}/query"

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder(
		queryTemplate,
		http.MethodPost,
		map[string]string{"database_id": "0123abcd"},
		map[string]string{"Notion-Version": "2022-06-28"},
		auth.NewBearerAuth("secret_x"),
	)

	req, err := b.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "https://api.notion.com/v1/databases/0123abcd/query", req.URL.String())
	assert.Equal(t, "Bearer secret_x", req.Header.Get("Authorization"))
	assert.Equal(t, "2022-06-28", req.Header.Get("Notion-Version"))
	assert.Empty(t, req.Header.Get("Content-Type"))
	assert.Nil(t, req.Body)
}

func TestBuilder_DefaultsToGet(t *testing.T) {
	b := NewBuilder("https://example.com/items", "", nil, nil, nil)

	req, err := b.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, req.Method)
}

func TestBuilder_EscapesPathParams(t *testing.T) {
	b := NewBuilder(queryTemplate, http.MethodPost, map[string]string{"database_id": "a/b c"}, nil, nil)

	req, err := b.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/v1/databases/a%2Fb%20c/query", req.URL.EscapedPath())
}

func TestBuilder_MissingPathParam(t *testing.T) {
	for name, params := range map[string]map[string]string{
		"absent": nil,
		"empty":  {"database_id": ""},
	} {
		t.Run(name, func(t *testing.T) {
			b := NewBuilder(queryTemplate, http.MethodPost, params, nil, nil)

			req, err := b.Build(context.Background())
			assert.Nil(t, req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrConfiguration))
			assert.Contains(t, err.Error(), "database_id")
		})
	}
}

func TestBuilder_AuthFailure(t *testing.T) {
	b := NewBuilder(queryTemplate, http.MethodPost, map[string]string{"database_id": "db"}, nil, auth.NewBearerAuth(""))

	_, err := b.Build(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAuthentication))
}
