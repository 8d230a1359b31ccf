// Package console hosts the browser-facing account and organization console.
//
// This process owns route wiring, session cookies, and page rendering; all
// authentication and persistence is delegated to the Supabase-style backend.
package console

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/seafortlabs/seafort/internal/console/docs"
	"github.com/seafortlabs/seafort/internal/console/platform/httpx"
	platformotel "github.com/seafortlabs/seafort/internal/platform/otel"
	"github.com/seafortlabs/seafort/internal/supabase"
)

//go:embed static
var assetsFS embed.FS

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server hosts the console HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

type handler struct {
	authClient AuthClient
	orgs       OrgDirectory
	sessions   *sessionStore
	docsSite   *docs.Site
}

// NewServer creates the console server from configuration, constructing the
// backend client up front so misconfiguration fails before listening.
func NewServer(cfg Config) (*Server, error) {
	client, err := supabase.New(cfg.Supabase)
	if err != nil {
		return nil, fmt.Errorf("init backend client: %w", err)
	}
	mux, err := NewHandler(client, &supabaseOrgDirectory{client: client})
	if err != nil {
		return nil, fmt.Errorf("init handler: %w", err)
	}
	return &Server{
		httpAddr: cfg.HTTPAddr,
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           mux,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

// NewHandler creates the console HTTP handler. It is the test-oriented
// entrypoint that keeps backend dependencies injectable.
func NewHandler(authClient AuthClient, orgs OrgDirectory) (http.Handler, error) {
	if authClient == nil {
		return nil, errors.New("auth client is required")
	}
	docsSite, err := docs.Load()
	if err != nil {
		return nil, fmt.Errorf("load docs: %w", err)
	}
	staticFS, err := fs.Sub(assetsFS, "static")
	if err != nil {
		return nil, fmt.Errorf("resolve static assets: %w", err)
	}

	h := &handler{
		authClient: authClient,
		orgs:       orgs,
		sessions:   newSessionStore(),
		docsSite:   docsSite,
	}

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	mux.HandleFunc("/healthz", handleHealthz)

	mux.HandleFunc("/", h.handleRoot)
	mux.HandleFunc("/login", h.handleLogin)
	mux.Handle("/logout", h.logoutHandler())
	mux.HandleFunc("/account", h.handleAccount)
	mux.Handle("/account/language", httpx.Chain(http.HandlerFunc(h.handleLanguagePreference), httpx.RequireMethod(http.MethodPost)))
	mux.Handle("/account/currency", httpx.Chain(http.HandlerFunc(h.handleCurrencyPreference), httpx.RequireMethod(http.MethodPost)))
	mux.Handle("/account/timezone", httpx.Chain(http.HandlerFunc(h.handleTimezonePreference), httpx.RequireMethod(http.MethodPost)))
	mux.Handle("/account/notifications", httpx.Chain(http.HandlerFunc(h.handleNotificationPreference), httpx.RequireMethod(http.MethodPost)))
	mux.HandleFunc("/orgs/", h.handleOrg)
	mux.HandleFunc("/docs", h.handleDocs)
	mux.HandleFunc("/docs/", h.handleDocs)

	return httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		platformotel.HTTPMiddleware,
	), nil
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// ListenAndServe runs the server until ctx is cancelled or serving fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("console server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("console listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// supabaseOrgDirectory resolves orgs through PostgREST under the viewer's
// row-level security.
type supabaseOrgDirectory struct {
	client *supabase.Client
}

func (d *supabaseOrgDirectory) OrgBySlug(ctx context.Context, accessToken, slug string) (Org, error) {
	var rows []Org
	if err := d.client.From("orgs").Eq("slug", slug).Bearer(accessToken).Select(ctx, &rows); err != nil {
		return Org{}, err
	}
	if len(rows) == 0 {
		return Org{}, supabase.ErrNotFound
	}
	return rows[0], nil
}
