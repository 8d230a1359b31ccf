package console

import (
	"context"

	"github.com/seafortlabs/seafort/internal/supabase"
)

// AppName is the product name rendered in page titles.
const AppName = "Seafort"

// Config defines the inputs for the console web service.
type Config struct {
	// HTTPAddr is the listen address, host:port.
	HTTPAddr string
	// Supabase configures the backend the console authenticates against.
	Supabase supabase.Config
}

// AuthClient is the slice of the backend client the console handlers use.
// *supabase.Client satisfies it; tests substitute fakes.
type AuthClient interface {
	SignInWithPassword(ctx context.Context, email, password string) (supabase.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	RefreshSession(ctx context.Context, refreshToken string) (supabase.Session, error)
	UserFromToken(ctx context.Context, accessToken string) (supabase.User, error)
}

// Org is the organization summary rendered by the organization console.
type Org struct {
	Slug            string  `json:"slug"`
	Name            string  `json:"name"`
	Plan            string  `json:"plan"`
	MemberCount     int     `json:"member_count"`
	MonthlySpendUSD float64 `json:"monthly_spend_usd"`
	BillingCountry  string  `json:"billing_country"`
}

// OrgDirectory resolves organization summaries visible to an access token.
// The backend enforces row-level security, so a non-member lookup misses.
type OrgDirectory interface {
	OrgBySlug(ctx context.Context, accessToken, slug string) (Org, error)
}
