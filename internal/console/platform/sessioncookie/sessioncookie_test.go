package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRead(t *testing.T) {
	t.Parallel()

	if _, ok := Read(nil); ok {
		t.Fatalf("expected nil request to have no session cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	if _, ok := Read(req); ok {
		t.Fatalf("expected missing cookie")
	}

	req.AddCookie(&http.Cookie{Name: Name, Value: "  cs-1  "})
	value, ok := Read(req)
	if !ok {
		t.Fatalf("expected cookie to be present")
	}
	if value != "cs-1" {
		t.Fatalf("value = %q, want %q", value, "cs-1")
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	secureReq := httptest.NewRequest(http.MethodGet, "https://console.example.test", nil)
	secureRR := httptest.NewRecorder()
	Write(secureRR, secureReq, "cs-1")
	secureCookie, err := http.ParseSetCookie(secureRR.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if secureCookie.Name != Name {
		t.Fatalf("cookie name = %q, want %q", secureCookie.Name, Name)
	}
	if secureCookie.Value != "cs-1" {
		t.Fatalf("cookie value = %q, want %q", secureCookie.Value, "cs-1")
	}
	if !secureCookie.Secure {
		t.Fatalf("expected secure cookie for https request")
	}
	if !secureCookie.HttpOnly {
		t.Fatalf("expected HttpOnly cookie")
	}

	httpReq := httptest.NewRequest(http.MethodGet, "http://console.example.test", nil)
	httpRR := httptest.NewRecorder()
	Write(httpRR, httpReq, "cs-1")
	httpCookie, err := http.ParseSetCookie(httpRR.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if httpCookie.Secure {
		t.Fatalf("expected non-secure cookie for http request")
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "https://console.example.test", nil)
	rr := httptest.NewRecorder()
	Clear(rr, req)
	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.MaxAge != -1 {
		t.Fatalf("MaxAge = %d, want -1", cookie.MaxAge)
	}
	if cookie.Value != "" {
		t.Fatalf("Value = %q, want empty", cookie.Value)
	}
}
