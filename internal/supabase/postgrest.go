package supabase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

var tableNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// From starts a PostgREST query against a table. The builder covers only the
// narrow access maintenance commands need: equality filters plus select,
// update, and insert.
func (c *Client) From(table string) *TableQuery {
	return &TableQuery{client: c, table: table, filters: url.Values{}}
}

// TableQuery accumulates filters for one PostgREST request.
type TableQuery struct {
	client  *Client
	table   string
	filters url.Values
	bearer  string
}

// Eq adds an equality filter on a column.
func (q *TableQuery) Eq(column, value string) *TableQuery {
	q.filters.Set(column, "eq."+value)
	return q
}

// Bearer scopes the request to a user access token so the backend applies
// that user's row-level security instead of the client key's.
func (q *TableQuery) Bearer(accessToken string) *TableQuery {
	q.bearer = strings.TrimSpace(accessToken)
	return q
}

// Select fetches matching rows into dest, which must be a pointer to a slice
// of row structs.
func (q *TableQuery) Select(ctx context.Context, dest any) error {
	path, err := q.path()
	if err != nil {
		return err
	}
	query := q.cloneFilters()
	query.Set("select", "*")
	if err := q.client.do(ctx, http.MethodGet, path, query, q.bearer, nil, dest); err != nil {
		return fmt.Errorf("select %s: %w", q.table, err)
	}
	return nil
}

// Update patches matching rows and returns the updated rows in dest when
// dest is non-nil.
func (q *TableQuery) Update(ctx context.Context, patch any, dest any) error {
	if len(q.filters) == 0 {
		return fmt.Errorf("supabase: update on %q requires a filter", q.table)
	}
	path, err := q.path()
	if err != nil {
		return err
	}
	if err := q.client.do(ctx, http.MethodPatch, path, q.cloneFilters(), q.bearer, patch, dest); err != nil {
		return fmt.Errorf("update %s: %w", q.table, err)
	}
	return nil
}

// Insert creates a row and returns the created rows in dest when non-nil.
func (q *TableQuery) Insert(ctx context.Context, row any, dest any) error {
	path, err := q.path()
	if err != nil {
		return err
	}
	if err := q.client.do(ctx, http.MethodPost, path, nil, q.bearer, row, dest); err != nil {
		return fmt.Errorf("insert %s: %w", q.table, err)
	}
	return nil
}

func (q *TableQuery) path() (string, error) {
	table := strings.TrimSpace(q.table)
	if !tableNamePattern.MatchString(table) {
		return "", fmt.Errorf("supabase: invalid table name %q", q.table)
	}
	return "/rest/v1/" + table, nil
}

func (q *TableQuery) cloneFilters() url.Values {
	cloned := url.Values{}
	for key, values := range q.filters {
		for _, value := range values {
			cloned.Add(key, value)
		}
	}
	return cloned
}
