package console

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/seafortlabs/seafort/internal/platform/i18n/currency"
	"github.com/seafortlabs/seafort/internal/platform/i18n/region"
	"github.com/seafortlabs/seafort/internal/supabase"
)

// handleOrg renders the organization console for /orgs/{slug}.
//
// Membership is checked before the backend lookup so non-members get the
// same not-found page whether or not the slug exists.
func (h *handler) handleOrg(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id, sess := h.requireSession(w, r)
	if sess == nil {
		return
	}
	h.refreshIfExpiring(r, id, sess)

	slug := strings.Trim(strings.TrimPrefix(r.URL.Path, "/orgs/"), "/")
	if slug == "" || strings.ContainsRune(slug, '/') || !sess.memberOf(slug) {
		h.writeErrorPage(w, r, http.StatusNotFound, sess.user)
		return
	}

	org, err := h.orgs.OrgBySlug(r.Context(), sess.accessToken, slug)
	if err != nil {
		if errors.Is(err, supabase.ErrNotFound) {
			h.writeErrorPage(w, r, http.StatusNotFound, sess.user)
			return
		}
		log.Printf("org lookup %s: %v", slug, err)
		h.writeErrorPage(w, r, http.StatusInternalServerError, sess.user)
		return
	}

	loc, tag := localizer(w, r)
	viewCurrency := preferredCurrency(r)
	spend, err := currency.Convert(org.MonthlySpendUSD, "USD", viewCurrency.Code)
	if err != nil {
		spend = org.MonthlySpendUSD
		viewCurrency, _ = currency.Lookup("USD")
	}
	formattedSpend, err := currency.Format(tag, spend, viewCurrency.Code)
	if err != nil {
		formattedSpend = ""
	}
	billingCountry := org.BillingCountry
	if country, err := region.CountryByCode(org.BillingCountry); err == nil {
		billingCountry = country.Name
	}

	view := orgView{Org: org, MonthlySpend: formattedSpend, BillingCountry: billingCountry}
	h.writePage(w, r, loc.Sprintf("title.org", AppName), http.StatusOK, sess.user, orgFragment(loc, view))
}
