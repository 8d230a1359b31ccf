package console

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
}

func TestParseConfigEnvFallback(t *testing.T) {
	env := map[string]string{"SEAFORT_CONSOLE_HTTP_ADDR": "0.0.0.0:9000"}
	lookup := func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}

	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil, lookup)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9000" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "0.0.0.0:9000")
	}
}

func TestParseConfigFlagOverridesEnv(t *testing.T) {
	env := map[string]string{"SEAFORT_CONSOLE_HTTP_ADDR": "0.0.0.0:9000"}
	lookup := func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}

	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9002"}, lookup)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
}

func TestParseConfigReadsBackendEnv(t *testing.T) {
	t.Setenv("SEAFORT_SUPABASE_URL", "https://ref.supabase.co")
	t.Setenv("SEAFORT_SUPABASE_ANON_KEY", "anon-key")

	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Supabase.BaseURL != "https://ref.supabase.co" {
		t.Fatalf("BaseURL = %q, want backend URL from env", cfg.Supabase.BaseURL)
	}
	if cfg.Supabase.AnonKey != "anon-key" {
		t.Fatalf("AnonKey = %q, want anon key from env", cfg.Supabase.AnonKey)
	}
}
