package apikeyfix

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/seafortlabs/seafort/internal/supabase"
)

func TestParseConfigRequiresSlug(t *testing.T) {
	for _, args := range [][]string{nil, {""}, {"acme", "sk_x", "extra"}} {
		fs := flag.NewFlagSet("apikey-fix", flag.ContinueOnError)
		if _, err := ParseConfig(fs, args); !errors.Is(err, ErrUsage) {
			t.Fatalf("ParseConfig(%v) error = %v, want ErrUsage", args, err)
		}
	}
}

func TestParseConfigOptionalKey(t *testing.T) {
	fs := flag.NewFlagSet("apikey-fix", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"acme"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.OrgSlug != "acme" || cfg.APIKey != "" {
		t.Fatalf("cfg = %+v, want slug acme and empty key", cfg)
	}

	fs = flag.NewFlagSet("apikey-fix", flag.ContinueOnError)
	cfg, err = ParseConfig(fs, []string{"acme", "sk_existing"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.APIKey != "sk_existing" {
		t.Fatalf("APIKey = %q, want sk_existing", cfg.APIKey)
	}
}

// fakeBackend serves the api_keys table lookups and records patches.
func fakeBackend(t *testing.T, existing bool) (*httptest.Server, *map[string]string) {
	t.Helper()
	patched := map[string]string{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/api_keys" {
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if got := r.URL.Query().Get("org_slug"); got != "eq.acme" {
			t.Errorf("org_slug filter = %q, want eq.acme", got)
		}
		switch r.Method {
		case http.MethodGet:
			rows := []map[string]string{}
			if existing {
				rows = append(rows, map[string]string{"org_slug": "acme", "key": "sk_old"})
			}
			_ = json.NewEncoder(w).Encode(rows)
		case http.MethodPatch:
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			patched["key"] = body["key"]
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	return srv, &patched
}

func TestRunSetsProvidedKey(t *testing.T) {
	t.Parallel()

	srv, patched := fakeBackend(t, true)
	defer srv.Close()

	cfg := Config{
		OrgSlug:  "acme",
		APIKey:   "sk_replacement",
		Supabase: supabase.Config{BaseURL: srv.URL, ServiceKey: "service-key"},
	}
	var out strings.Builder
	if err := Run(context.Background(), cfg, &out, nil); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if (*patched)["key"] != "sk_replacement" {
		t.Fatalf("patched key = %q, want sk_replacement", (*patched)["key"])
	}
	if strings.Contains(out.String(), "sk_replacement") {
		t.Fatalf("output must not echo a caller-provided key: %q", out.String())
	}
}

func TestRunGeneratesKeyWhenAbsent(t *testing.T) {
	t.Parallel()

	srv, patched := fakeBackend(t, true)
	defer srv.Close()

	cfg := Config{
		OrgSlug:  "acme",
		Supabase: supabase.Config{BaseURL: srv.URL, ServiceKey: "service-key"},
	}
	reader := bytes.NewReader(bytes.Repeat([]byte{0xab}, generatedKeyBytes))
	var out strings.Builder
	if err := Run(context.Background(), cfg, &out, reader); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantKey := "sk_" + strings.Repeat("ab", generatedKeyBytes)
	if (*patched)["key"] != wantKey {
		t.Fatalf("patched key = %q, want %q", (*patched)["key"], wantKey)
	}
	// The generated key must be printed exactly once for operator hand-off.
	if !strings.Contains(out.String(), wantKey) {
		t.Fatalf("output = %q, want the generated key", out.String())
	}
}

func TestRunMissingRow(t *testing.T) {
	t.Parallel()

	srv, _ := fakeBackend(t, false)
	defer srv.Close()

	cfg := Config{
		OrgSlug:  "acme",
		APIKey:   "sk_replacement",
		Supabase: supabase.Config{BaseURL: srv.URL, ServiceKey: "service-key"},
	}
	err := Run(context.Background(), cfg, &strings.Builder{}, nil)
	if !errors.Is(err, supabase.ErrNotFound) {
		t.Fatalf("Run() error = %v, want ErrNotFound", err)
	}
}

func TestRunRequiresServiceKey(t *testing.T) {
	t.Parallel()

	cfg := Config{
		OrgSlug:  "acme",
		Supabase: supabase.Config{BaseURL: "https://ref.supabase.co"},
	}
	err := Run(context.Background(), cfg, &strings.Builder{}, nil)
	if !errors.Is(err, supabase.ErrServiceKeyRequired) {
		t.Fatalf("Run() error = %v, want ErrServiceKeyRequired", err)
	}
}
