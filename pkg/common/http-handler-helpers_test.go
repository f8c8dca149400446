package common

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DFE-Digital/fips-v4/pkg/types"
)

func TestJsonHandler(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(r *http.Request) (any, error)
		status int
		body   string
	}{
		{"ok", func(r *http.Request) (any, error) { return map[string]int{"count": 2}, nil }, http.StatusOK, `{"count":2}`},
		{"not found", func(r *http.Request) (any, error) {
			return nil, &types.NotFoundError{Kind: "product", Key: "9"}
		}, http.StatusNotFound, `{"error":"product \"9\" not found"}`},
		{"failure", func(r *http.Request) (any, error) { return nil, errors.New("boom") }, http.StatusInternalServerError, `{"error":"boom"}`},
	}
	for _, test := range tests {
		rec := httptest.NewRecorder()
		JsonHandler(test.fn)(rec, httptest.NewRequest("GET", "/", nil))
		if rec.Code != test.status {
			t.Errorf("%s: expected status %d, got %d", test.name, test.status, rec.Code)
		}
		if rec.Body.String() != test.body {
			t.Errorf("%s: expected body %s, got %s", test.name, test.body, rec.Body.String())
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("%s: expected json content type, got %q", test.name, ct)
		}
	}
}
