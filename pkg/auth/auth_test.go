package auth

import (
	"net/http"
	"strings"
	"testing"

	"github.com/saturnines/notion-verbs/pkg/errors"
)

// Helper functions for tests
func assertHeader(t *testing.T, req *http.Request, header, expected string) {
	t.Helper()
	if value := req.Header.Get(header); value != expected {
		t.Errorf("Expected %s header '%s', got '%s'", header, expected, value)
	}
}

func assertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()
	if err == nil {
		t.Errorf("Expected error containing '%s', got nil", expected)
		return
	}
	if !strings.Contains(err.Error(), expected) {
		t.Errorf("Expected error containing '%s', got '%s'", expected, err.Error())
	}
}

func TestBearerAuth(t *testing.T) {
	t.Run("ValidToken", func(t *testing.T) {
		auth := NewBearerAuth("secret_test-token")
		req, _ := http.NewRequest(http.MethodPost, "https://api.notion.com/v1/databases/db/query", nil)

		if err := auth.ApplyAuth(req); err != nil {
			t.Fatalf("ApplyAuth failed: %v", err)
		}

		assertHeader(t, req, "Authorization", "Bearer secret_test-token")
	})

	t.Run("EmptyToken", func(t *testing.T) {
		auth := NewBearerAuth("")
		req, _ := http.NewRequest(http.MethodPost, "https://api.notion.com/v1/databases/db/query", nil)

		err := auth.ApplyAuth(req)
		assertErrorContains(t, err, "token is empty")
		if !errors.Is(err, errors.ErrAuthentication) {
			t.Errorf("Expected ErrAuthentication, got %v", err)
		}
		assertHeader(t, req, "Authorization", "")
	})

	t.Run("StringMethod", func(t *testing.T) {
		auth := NewBearerAuth("secret_test-token")
		if str := auth.String(); strings.Contains(str, "secret_test-token") {
			t.Errorf("String() should not contain the actual token, got: %s", str)
		}
	})
}
