package console

import (
	"net/http"
	"strings"
	"time"

	"github.com/seafortlabs/seafort/internal/console/platform/requestmeta"
	"github.com/seafortlabs/seafort/internal/platform/i18n/currency"
	"github.com/seafortlabs/seafort/internal/platform/i18n/region"
)

const (
	// currencyCookieName stores the viewer's billing-currency preference.
	currencyCookieName = "sf_currency"
	// timezoneCookieName stores the viewer's timezone preference.
	timezoneCookieName = "sf_timezone"
	// emailUpdatesCookieName stores the email-updates toggle.
	emailUpdatesCookieName = "sf_email_updates"

	defaultCurrencyCode = "USD"
	defaultTimezoneID   = "UTC"

	prefCookieMaxAge = int((365 * 24 * time.Hour) / time.Second)
)

// preferredCurrency returns the viewer's currency preference, falling back
// to the default when the cookie is missing or names an unsupported code.
func preferredCurrency(r *http.Request) currency.Currency {
	if cookie, err := r.Cookie(currencyCookieName); err == nil {
		if c, err := currency.Lookup(cookie.Value); err == nil {
			return c
		}
	}
	c, _ := currency.Lookup(defaultCurrencyCode)
	return c
}

func setCurrencyCookie(w http.ResponseWriter, r *http.Request, code string) {
	http.SetCookie(w, &http.Cookie{
		Name:     currencyCookieName,
		Value:    code,
		Path:     "/",
		MaxAge:   prefCookieMaxAge,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// preferredTimezone returns the viewer's timezone preference, falling back
// to UTC when the cookie is missing or names an unknown zone.
func preferredTimezone(r *http.Request) region.Timezone {
	if cookie, err := r.Cookie(timezoneCookieName); err == nil {
		if tz, err := region.TimezoneByID(cookie.Value); err == nil {
			return tz
		}
	}
	tz, _ := region.TimezoneByID(defaultTimezoneID)
	return tz
}

func setTimezoneCookie(w http.ResponseWriter, r *http.Request, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     timezoneCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   prefCookieMaxAge,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

func emailUpdatesEnabled(r *http.Request) bool {
	cookie, err := r.Cookie(emailUpdatesCookieName)
	if err != nil {
		return false
	}
	return strings.TrimSpace(cookie.Value) == "on"
}

func setEmailUpdatesCookie(w http.ResponseWriter, r *http.Request, enabled bool) {
	value := "off"
	if enabled {
		value = "on"
	}
	http.SetCookie(w, &http.Cookie{
		Name:     emailUpdatesCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   prefCookieMaxAge,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}
