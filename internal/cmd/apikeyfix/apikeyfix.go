// Package apikeyfix implements the maintenance command that repairs an
// organization's API key row.
package apikeyfix

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/seafortlabs/seafort/internal/platform/config"
	"github.com/seafortlabs/seafort/internal/supabase"
)

// ErrUsage reports missing positional arguments.
var ErrUsage = errors.New("org slug is required")

const generatedKeyBytes = 24

// Config holds the API key fixup inputs. APIKey is optional; a key is
// generated when it is empty.
type Config struct {
	OrgSlug  string
	APIKey   string
	Supabase supabase.Config
}

// ParseConfig parses positional arguments and backend environment into a
// Config. The command takes <org-slug> and an optional replacement key.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	rest := fs.Args()
	if len(rest) < 1 || len(rest) > 2 {
		return Config{}, ErrUsage
	}
	cfg := Config{OrgSlug: strings.TrimSpace(rest[0])}
	if cfg.OrgSlug == "" {
		return Config{}, ErrUsage
	}
	if len(rest) == 2 {
		cfg.APIKey = strings.TrimSpace(rest[1])
	}
	if err := config.ParseEnvPrefixed(&cfg.Supabase); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type apiKeyRow struct {
	OrgSlug string `json:"org_slug"`
	Key     string `json:"key"`
}

// Run writes the key onto the org's api_keys row. When no key was supplied a
// fresh sk_-prefixed key is generated from reader and printed once to out;
// reader defaults to crypto/rand.
func Run(ctx context.Context, cfg Config, out io.Writer, reader io.Reader) error {
	if out == nil {
		return errors.New("output is required")
	}
	if reader == nil {
		reader = rand.Reader
	}
	client, err := supabase.NewService(cfg.Supabase)
	if err != nil {
		return fmt.Errorf("init backend client: %w", err)
	}

	key := cfg.APIKey
	generated := false
	if key == "" {
		buf := make([]byte, generatedKeyBytes)
		if _, err := io.ReadFull(reader, buf); err != nil {
			return fmt.Errorf("generate key: %w", err)
		}
		key = "sk_" + hex.EncodeToString(buf)
		generated = true
	}

	var rows []apiKeyRow
	if err := client.From("api_keys").Eq("org_slug", cfg.OrgSlug).Select(ctx, &rows); err != nil {
		return fmt.Errorf("lookup api key: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("org %q has no api key row: %w", cfg.OrgSlug, supabase.ErrNotFound)
	}

	patch := map[string]string{"key": key}
	if err := client.From("api_keys").Eq("org_slug", cfg.OrgSlug).Update(ctx, patch, nil); err != nil {
		return fmt.Errorf("update api key: %w", err)
	}

	if generated {
		// The key is printed exactly once; it is not recoverable afterwards.
		_, err = fmt.Fprintf(out, "new api key for %s: %s\n", cfg.OrgSlug, key)
	} else {
		_, err = fmt.Fprintf(out, "api key updated for %s\n", cfg.OrgSlug)
	}
	return err
}
