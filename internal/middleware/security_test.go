package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSecurityMiddlewareSetsHeaders(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := Security()(handler)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	resp := httptest.NewRecorder()

	h.ServeHTTP(resp, req)

	tests := []struct {
		header string
		want   string
	}{
		{"Cache-Control", "no-store"},
		{"Content-Security-Policy", "frame-ancestors 'none'"},
		{"Cross-Origin-Opener-Policy", "same-origin"},
		{"Cross-Origin-Resource-Policy", "same-origin"},
		{"Referrer-Policy", "strict-origin-when-cross-origin"},
		{"X-Content-Type-Options", "nosniff"},
		{"X-Frame-Options", "DENY"},
	}

	for _, tt := range tests {
		if got := resp.Header().Get(tt.header); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.header, tt.want, got)
		}
	}
}

func TestSecurityMiddlewareSkipsConfiguredPaths(t *testing.T) {
	tests := []struct {
		name string
		path string
		skip bool
	}{
		{"exact skip path", "/api-docs", true},
		{"below skip path", "/api-docs/openapi.json", true},
		{"sibling sharing the prefix", "/api-docsx", false},
		{"unrelated path", "/health", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			h := Security("/api-docs")(handler)
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			resp := httptest.NewRecorder()
			h.ServeHTTP(resp, req)

			got := resp.Header().Get("X-Frame-Options")
			if tt.skip && got != "" {
				t.Fatalf("expected no security headers on %s, got X-Frame-Options %q", tt.path, got)
			}
			if !tt.skip && got != "DENY" {
				t.Fatalf("expected security headers on %s, got X-Frame-Options %q", tt.path, got)
			}
		})
	}
}

func TestSecurityMiddlewarePreservesDownstreamResponse(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Custom", "value")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("test body"))
	})

	h := Security()(handler)
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	resp := httptest.NewRecorder()

	h.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	if got := resp.Header().Get("X-Custom"); got != "value" {
		t.Fatalf("expected downstream header to survive, got %q", got)
	}
	if resp.Body.String() != "test body" {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}
