package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewValidatesConfig(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{AnonKey: "anon"}); err == nil {
		t.Fatalf("expected error for missing base URL")
	}
	if _, err := New(Config{BaseURL: "https://proj.supabase.co"}); err == nil {
		t.Fatalf("expected error for missing anon key")
	}
	if _, err := New(Config{BaseURL: "not a url", AnonKey: "anon"}); err == nil {
		t.Fatalf("expected error for invalid base URL")
	}

	client, err := New(Config{BaseURL: "https://proj.supabase.co/", AnonKey: "anon"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.baseURL != "https://proj.supabase.co" {
		t.Fatalf("baseURL = %q, want trailing slash trimmed", client.baseURL)
	}
}

func TestNewServiceRequiresServiceKey(t *testing.T) {
	t.Parallel()

	_, err := NewService(Config{BaseURL: "https://proj.supabase.co", AnonKey: "anon"})
	if !errors.Is(err, ErrServiceKeyRequired) {
		t.Fatalf("NewService() error = %v, want ErrServiceKeyRequired", err)
	}

	client, err := NewService(Config{BaseURL: "https://proj.supabase.co", ServiceKey: "service"})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	if !client.privileged {
		t.Fatalf("expected privileged client")
	}
}

func TestSignInWithPassword(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/token" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("grant_type"); got != "password" {
			t.Errorf("grant_type = %q, want password", got)
		}
		if got := r.Header.Get("apikey"); got != "anon" {
			t.Errorf("apikey header = %q, want anon", got)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["email"] != "ana@example.com" {
			t.Errorf("email = %q", body["email"])
		}
		json.NewEncoder(w).Encode(Session{
			AccessToken:  "at-1",
			RefreshToken: "rt-1",
			ExpiresIn:    3600,
			User:         User{ID: "u-1", Email: "ana@example.com"},
		})
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, AnonKey: "anon"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	session, err := client.SignInWithPassword(context.Background(), "ana@example.com", "hunter22")
	if err != nil {
		t.Fatalf("SignInWithPassword() error = %v", err)
	}
	if session.AccessToken != "at-1" || session.User.ID != "u-1" {
		t.Fatalf("session = %+v", session)
	}
}

func TestSignInWithPasswordRejectsEmptyInput(t *testing.T) {
	t.Parallel()

	client, err := New(Config{BaseURL: "https://proj.supabase.co", AnonKey: "anon"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := client.SignInWithPassword(context.Background(), "", "pw"); err == nil {
		t.Fatalf("expected error for empty email")
	}
	if _, err := client.SignInWithPassword(context.Background(), "a@b.c", ""); err == nil {
		t.Fatalf("expected error for empty password")
	}
}

func TestSignInWithPasswordBadCredentials(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error_description": "Invalid login credentials"})
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, AnonKey: "anon"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	_, err = client.SignInWithPassword(context.Background(), "ana@example.com", "wrong")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
}

func TestSignOut(t *testing.T) {
	t.Parallel()

	var sawBearer string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/logout" {
			t.Errorf("path = %q", r.URL.Path)
		}
		sawBearer = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, AnonKey: "anon"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := client.SignOut(context.Background(), "at-1"); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}
	if sawBearer != "Bearer at-1" {
		t.Fatalf("Authorization = %q, want Bearer at-1", sawBearer)
	}
}

func TestRefreshSession(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("grant_type"); got != "refresh_token" {
			t.Errorf("grant_type = %q, want refresh_token", got)
		}
		json.NewEncoder(w).Encode(Session{AccessToken: "at-2", RefreshToken: "rt-2", ExpiresIn: 3600})
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, AnonKey: "anon"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	session, err := client.RefreshSession(context.Background(), "rt-1")
	if err != nil {
		t.Fatalf("RefreshSession() error = %v", err)
	}
	if session.AccessToken != "at-2" {
		t.Fatalf("AccessToken = %q, want at-2", session.AccessToken)
	}
}

func TestUserFromToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(User{
			ID:    "u-1",
			Email: "ana@example.com",
			UserMetadata: map[string]any{
				"full_name":  "Ana Souza",
				"avatar_url": "https://cdn.example.com/ana.png",
			},
			AppMetadata: map[string]any{
				"orgs": []any{"acme", "umbrella"},
			},
		})
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, AnonKey: "anon"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	user, err := client.UserFromToken(context.Background(), "at-1")
	if err != nil {
		t.Fatalf("UserFromToken() error = %v", err)
	}
	if user.FullName() != "Ana Souza" {
		t.Fatalf("FullName() = %q", user.FullName())
	}
	if user.AvatarURL() != "https://cdn.example.com/ana.png" {
		t.Fatalf("AvatarURL() = %q", user.AvatarURL())
	}
	slugs := user.OrgSlugs()
	if len(slugs) != 2 || slugs[0] != "acme" || slugs[1] != "umbrella" {
		t.Fatalf("OrgSlugs() = %v", slugs)
	}
}

func TestUserOrgSlugsToleratesMissingMetadata(t *testing.T) {
	t.Parallel()

	if got := (User{}).OrgSlugs(); got != nil {
		t.Fatalf("OrgSlugs() = %v, want nil", got)
	}
	user := User{AppMetadata: map[string]any{"orgs": "not-a-list"}}
	if got := user.OrgSlugs(); got != nil {
		t.Fatalf("OrgSlugs() = %v, want nil", got)
	}
}
