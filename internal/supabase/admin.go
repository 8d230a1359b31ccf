package supabase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// AdminUserByEmail resolves a user record by exact email using the admin
// surface. Requires a service-role client.
func (c *Client) AdminUserByEmail(ctx context.Context, email string) (User, error) {
	if !c.privileged {
		return User{}, ErrServiceKeyRequired
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return User{}, fmt.Errorf("supabase: email is required")
	}

	const perPage = 200
	for page := 1; ; page++ {
		var payload struct {
			Users []User `json:"users"`
		}
		query := url.Values{
			"page":     {strconv.Itoa(page)},
			"per_page": {strconv.Itoa(perPage)},
		}
		if err := c.do(ctx, http.MethodGet, "/auth/v1/admin/users", query, "", nil, &payload); err != nil {
			return User{}, fmt.Errorf("list users page %d: %w", page, err)
		}
		for _, user := range payload.Users {
			if strings.ToLower(strings.TrimSpace(user.Email)) == email {
				return user, nil
			}
		}
		// A short page is the last one.
		if len(payload.Users) < perPage {
			return User{}, fmt.Errorf("user %q: %w", email, ErrNotFound)
		}
	}
}

// AdminUpdateUserPassword replaces a user's password. Requires a service-role
// client; the backend enforces its own password policy and reports violations
// as a request error.
func (c *Client) AdminUpdateUserPassword(ctx context.Context, userID, password string) error {
	if !c.privileged {
		return ErrServiceKeyRequired
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("supabase: user ID is required")
	}
	if password == "" {
		return fmt.Errorf("supabase: password is required")
	}
	body := map[string]string{"password": password}
	path := "/auth/v1/admin/users/" + url.PathEscape(userID)
	if err := c.do(ctx, http.MethodPut, path, nil, "", body, nil); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}
	return nil
}
