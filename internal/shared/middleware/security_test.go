package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestIsHostAllowed(t *testing.T) {
	tests := []struct {
		name         string
		host         string
		allowedHosts []string
		want         bool
	}{
		{"empty allowed list accepts anything", "example.com", nil, true},
		{"exact match with port", "example.com:8080", []string{"example.com:8080"}, true},
		{"bare host matches allowed with port", "example.com", []string{"example.com:8080"}, true},
		{"host with port matches bare allowed", "example.com:8080", []string{"example.com"}, true},
		{"localhost with dev port", "localhost:3000", []string{"localhost"}, true},
		{"IPv6 loopback with port", "[::1]:8080", []string{"[::1]:8080"}, true},
		{"bare IPv6 matches bracketed allowed", "::1", []string{"[::1]:8080"}, true},
		{"bracketed IPv6 matches bare allowed", "[::1]:8080", []string{"::1"}, true},
		{"full IPv6 address with port", "[2001:0db8:85a3::8a2e:0370:7334]:443", []string{"2001:0db8:85a3::8a2e:0370:7334"}, true},
		{"IPv6 link-local with zone", "[fe80::1%lo0]:8080", []string{"fe80::1%lo0"}, true},
		{"case insensitive", "Example.COM:8080", []string{"example.com"}, true},
		{"surrounding whitespace on host", "  example.com:8080  ", []string{"example.com"}, true},
		{"surrounding whitespace on allowed entry", "example.com:8080", []string{"  example.com  "}, true},
		{"matches later entry", "app.example.com", []string{"example.com", "app.example.com"}, true},
		{"unknown host rejected", "evil.com", []string{"example.com", "app.example.com"}, false},
		{"subdomain is not its parent", "sub.example.com", []string{"example.com"}, false},
		{"different IPv6 address rejected", "[::2]:8080", []string{"[::1]:8080"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHostAllowed(tt.host, tt.allowedHosts); got != tt.want {
				t.Errorf("IsHostAllowed(%q, %v) = %v, want %v", tt.host, tt.allowedHosts, got, tt.want)
			}
		})
	}
}

func TestHSTS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	HSTS(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	got := rr.Header().Get("Strict-Transport-Security")
	if got != "max-age=31536000; includeSubDomains" {
		t.Errorf("Strict-Transport-Security = %q", got)
	}
}

func TestSecureCookies(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     "access_token",
			Value:    "tok",
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	SecureCookies(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := rr.Header()["Set-Cookie"]
	if len(cookies) != 1 {
		t.Fatalf("expected 1 Set-Cookie header, got %d", len(cookies))
	}
	cookie := cookies[0]

	if !strings.Contains(cookie, "Secure") {
		t.Errorf("expected Secure flag added, got %q", cookie)
	}
	if !strings.Contains(cookie, "HttpOnly") {
		t.Errorf("expected HttpOnly flag kept, got %q", cookie)
	}
	// The handler's SameSite choice is preserved, not overwritten.
	if !strings.Contains(cookie, "SameSite=Lax") {
		t.Errorf("expected SameSite=Lax preserved, got %q", cookie)
	}
}

func TestSecureCookies_NoCookies(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	rr := httptest.NewRecorder()
	SecureCookies(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if len(rr.Header()["Set-Cookie"]) != 0 {
		t.Error("unexpected Set-Cookie header")
	}
}
