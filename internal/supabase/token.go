package supabase

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims are the access-token claims the console reads. The backend
// signs tokens with the project JWT secret (HS256).
type AccessClaims struct {
	Email        string         `json:"email"`
	Role         string         `json:"role"`
	UserMetadata map[string]any `json:"user_metadata"`
	AppMetadata  map[string]any `json:"app_metadata"`
	jwt.RegisteredClaims
}

// FullName returns the display name claim, if present.
func (c AccessClaims) FullName() string {
	return metadataString(c.UserMetadata, "full_name")
}

// AvatarURL returns the avatar URL claim, if present.
func (c AccessClaims) AvatarURL() string {
	return metadataString(c.UserMetadata, "avatar_url")
}

// User converts the claims into the user record shape. The subject claim is
// the user ID.
func (c AccessClaims) User() User {
	return User{
		ID:           c.Subject,
		Email:        c.Email,
		Role:         c.Role,
		UserMetadata: c.UserMetadata,
		AppMetadata:  c.AppMetadata,
	}
}

// ParseAccessToken decodes an access token's claims. When the client was
// configured with the project JWT secret the signature is verified; without
// it the claims are decoded unverified, which is acceptable only because the
// console treats them as display hints and never as an authorization input.
func (c *Client) ParseAccessToken(token string) (AccessClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return AccessClaims{}, fmt.Errorf("supabase: access token is required")
	}

	var claims AccessClaims
	if c.jwtSecret != "" {
		parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return []byte(c.jwtSecret), nil
		})
		if err != nil {
			return AccessClaims{}, fmt.Errorf("verify access token: %w", err)
		}
		if !parsed.Valid {
			return AccessClaims{}, fmt.Errorf("verify access token: token invalid")
		}
		return claims, nil
	}

	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return AccessClaims{}, fmt.Errorf("decode access token: %w", err)
	}
	return claims, nil
}
