// Package passwdreset implements the maintenance command that replaces a
// user's password through the privileged admin surface.
package passwdreset

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/seafortlabs/seafort/internal/platform/config"
	"github.com/seafortlabs/seafort/internal/supabase"
)

// ErrUsage reports missing positional arguments.
var ErrUsage = errors.New("email and new password are required")

// Config holds the password reset inputs.
type Config struct {
	Email    string
	Password string
	Supabase supabase.Config
}

// ParseConfig parses positional arguments and backend environment into a
// Config. The command takes exactly <email> <new-password>.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	rest := fs.Args()
	if len(rest) != 2 {
		return Config{}, ErrUsage
	}
	cfg := Config{
		Email:    strings.TrimSpace(rest[0]),
		Password: rest[1],
	}
	if cfg.Email == "" || cfg.Password == "" {
		return Config{}, ErrUsage
	}
	if err := config.ParseEnvPrefixed(&cfg.Supabase); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run resolves the user by email and replaces their password. The new
// password is never echoed back.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	client, err := supabase.NewService(cfg.Supabase)
	if err != nil {
		return fmt.Errorf("init backend client: %w", err)
	}

	user, err := client.AdminUserByEmail(ctx, cfg.Email)
	if err != nil {
		return fmt.Errorf("resolve user: %w", err)
	}
	if err := client.AdminUpdateUserPassword(ctx, user.ID, cfg.Password); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	_, err = fmt.Fprintf(out, "password updated for %s (%s)\n", user.Email, user.ID)
	return err
}
