package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsOriginAllowed(t *testing.T) {
	allowed := []string{"app.fintrack.io", "localhost:5173", "  staging.fintrack.io  "}

	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{"exact host", "https://app.fintrack.io", true},
		{"host with port against bare entry", "https://app.fintrack.io:8443", true},
		{"dev server host:port entry", "http://localhost:5173", true},
		{"bare dev host against host:port entry", "http://localhost", false},
		{"entry whitespace trimmed", "https://staging.fintrack.io", true},
		{"mixed case origin", "https://App.FINTRACK.io", true},
		{"unknown origin", "https://evil.example", false},
		{"subdomain of an allowed host", "https://api.app.fintrack.io", false},
		{"unparseable origin", "://bad", false},
		{"empty origin", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isOriginAllowed(tt.origin, allowed); got != tt.want {
				t.Errorf("isOriginAllowed(%q) = %v, want %v", tt.origin, got, tt.want)
			}
		})
	}
}

func corsRequest(t *testing.T, allowedHosts []string, method, origin string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	var reachedNext bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reachedNext = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(method, "/api/transactions", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rr := httptest.NewRecorder()
	CORS(allowedHosts)(next).ServeHTTP(rr, req)
	return rr, reachedNext
}

func TestCORS_OpenModeWithoutAllowlist(t *testing.T) {
	rr, reached := corsRequest(t, nil, http.MethodGet, "https://anywhere.example")

	if !reached {
		t.Error("request did not reach the handler")
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
	if rr.Header().Get("Access-Control-Allow-Credentials") != "" {
		t.Error("wildcard mode must not advertise credentials support")
	}
}

func TestCORS_AllowedOriginEchoedWithCredentials(t *testing.T) {
	rr, reached := corsRequest(t, []string{"app.fintrack.io"}, http.MethodGet, "https://app.fintrack.io")

	if !reached {
		t.Error("request did not reach the handler")
	}
	// Credentialed requests need the exact origin echoed back, not *.
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://app.fintrack.io" {
		t.Errorf("Allow-Origin = %q, want the request origin", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Allow-Credentials = %q, want true", got)
	}
	if got := rr.Header().Get("Vary"); got != "Origin" {
		t.Errorf("Vary = %q, want Origin (response differs per origin)", got)
	}
}

func TestCORS_DisallowedOriginBlocked(t *testing.T) {
	rr, reached := corsRequest(t, []string{"app.fintrack.io"}, http.MethodGet, "https://evil.example")

	if reached {
		t.Error("handler ran for a disallowed origin")
	}
	if rr.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusForbidden)
	}
}

func TestCORS_Preflight(t *testing.T) {
	rr, reached := corsRequest(t, nil, http.MethodOptions, "https://app.fintrack.io")

	if reached {
		t.Error("handler ran for a preflight request")
	}
	if rr.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if rr.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("preflight response missing Allow-Methods")
	}
	if rr.Header().Get("Access-Control-Allow-Headers") == "" {
		t.Error("preflight response missing Allow-Headers")
	}
}

func TestCORS_SameOriginRequestPasses(t *testing.T) {
	rr, reached := corsRequest(t, []string{"app.fintrack.io"}, http.MethodGet, "")

	if !reached {
		t.Error("same-origin request did not reach the handler")
	}
	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("no Allow-Origin expected without an Origin header")
	}
}
