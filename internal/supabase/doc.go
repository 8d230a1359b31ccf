// Package supabase is a thin client for the Supabase-style backend: GoTrue
// authentication endpoints plus minimal PostgREST table access. It wraps the
// REST surface only; session persistence, RLS, and token issuance all live in
// the backend.
//
// Calls are sequential and terminal: there is no retry policy, and a failed
// call surfaces a single wrapped error to the caller.
package supabase
