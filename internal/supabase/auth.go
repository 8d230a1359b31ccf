package supabase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// User is the backend's user record, trimmed to the fields the console
// presents. Metadata maps are backend-owned and may be nil.
type User struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	Role         string         `json:"role"`
	UserMetadata map[string]any `json:"user_metadata"`
	AppMetadata  map[string]any `json:"app_metadata"`
	CreatedAt    time.Time      `json:"created_at"`
}

// FullName returns the user's display name from metadata, if present.
func (u User) FullName() string {
	return metadataString(u.UserMetadata, "full_name")
}

// AvatarURL returns the user's avatar URL from metadata, if present.
func (u User) AvatarURL() string {
	return metadataString(u.UserMetadata, "avatar_url")
}

// OrgSlugs returns the organization slugs granted in app metadata.
func (u User) OrgSlugs() []string {
	raw, ok := u.AppMetadata["orgs"]
	if !ok {
		return nil
	}
	values, ok := raw.([]any)
	if !ok {
		return nil
	}
	slugs := make([]string, 0, len(values))
	for _, value := range values {
		if slug, ok := value.(string); ok && strings.TrimSpace(slug) != "" {
			slugs = append(slugs, strings.TrimSpace(slug))
		}
	}
	return slugs
}

func metadataString(metadata map[string]any, key string) string {
	raw, ok := metadata[key]
	if !ok {
		return ""
	}
	value, ok := raw.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

// Session is an authenticated backend session.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// ExpiresAt converts the relative expiry into an absolute deadline.
func (s Session) ExpiresAt(now time.Time) time.Time {
	return now.Add(time.Duration(s.ExpiresIn) * time.Second)
}

// SignInWithPassword exchanges email/password credentials for a session.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Session{}, fmt.Errorf("supabase: email and password are required")
	}
	query := url.Values{"grant_type": {"password"}}
	body := map[string]string{"email": email, "password": password}
	var session Session
	if err := c.do(ctx, http.MethodPost, "/auth/v1/token", query, "", body, &session); err != nil {
		return Session{}, fmt.Errorf("sign in: %w", err)
	}
	return session, nil
}

// RefreshSession exchanges a refresh token for a fresh session.
func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (Session, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return Session{}, fmt.Errorf("supabase: refresh token is required")
	}
	query := url.Values{"grant_type": {"refresh_token"}}
	body := map[string]string{"refresh_token": refreshToken}
	var session Session
	if err := c.do(ctx, http.MethodPost, "/auth/v1/token", query, "", body, &session); err != nil {
		return Session{}, fmt.Errorf("refresh session: %w", err)
	}
	return session, nil
}

// SignOut revokes the session behind an access token. The backend invalidates
// the refresh-token family; the access token itself expires on its own.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return fmt.Errorf("supabase: access token is required")
	}
	if err := c.do(ctx, http.MethodPost, "/auth/v1/logout", nil, accessToken, nil, nil); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}

// UserFromToken returns the user record behind an access token. When the
// client holds the project JWT secret the record is built from the verified
// token claims without a network round trip; otherwise the backend is asked.
func (c *Client) UserFromToken(ctx context.Context, accessToken string) (User, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return User{}, fmt.Errorf("supabase: access token is required")
	}
	if c.jwtSecret != "" {
		claims, err := c.ParseAccessToken(accessToken)
		if err != nil {
			return User{}, err
		}
		return claims.User(), nil
	}
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", nil, accessToken, nil, &user); err != nil {
		return User{}, fmt.Errorf("fetch user: %w", err)
	}
	return user, nil
}
