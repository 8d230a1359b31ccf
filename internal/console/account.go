package console

import (
	"net/http"
	"strings"

	consolei18n "github.com/seafortlabs/seafort/internal/console/i18n"
	"github.com/seafortlabs/seafort/internal/console/platform/flash"
	"github.com/seafortlabs/seafort/internal/console/templates"
	platformi18n "github.com/seafortlabs/seafort/internal/platform/i18n"
	"github.com/seafortlabs/seafort/internal/platform/i18n/currency"
	"github.com/seafortlabs/seafort/internal/platform/i18n/region"
)

// handleAccount renders the signed-in user's profile and preferences.
func (h *handler) handleAccount(w http.ResponseWriter, r *http.Request) {
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

	loc, tag := localizer(w, r)
	activeCurrency := preferredCurrency(r)
	activeTimezone := preferredTimezone(r)

	languageOptions := make([]templates.SelectOption, 0, len(region.Languages()))
	for _, lang := range region.Languages() {
		languageOptions = append(languageOptions, templates.SelectOption{
			Value:    lang.Code,
			Label:    lang.Name,
			Selected: lang.Code == tag.String(),
		})
	}
	currencyOptions := make([]templates.SelectOption, 0, len(currency.Supported()))
	for _, c := range currency.Supported() {
		currencyOptions = append(currencyOptions, templates.SelectOption{
			Value:    c.Code,
			Label:    c.Code + " — " + c.Name,
			Selected: c.Code == activeCurrency.Code,
		})
	}
	timezoneOptions := make([]templates.SelectOption, 0, len(region.Timezones()))
	for _, tz := range region.Timezones() {
		timezoneOptions = append(timezoneOptions, templates.SelectOption{
			Value:    tz.ID,
			Label:    tz.Label,
			Selected: tz.ID == activeTimezone.ID,
		})
	}

	view := accountView{
		Viewer:          sess.user,
		LanguageOptions: languageOptions,
		CurrencyOptions: currencyOptions,
		TimezoneOptions: timezoneOptions,
		EmailUpdates:    emailUpdatesEnabled(r),
		OrgSlugs:        sess.orgSlugs,
	}
	h.writePage(w, r, loc.Sprintf("title.account", AppName), http.StatusOK, sess.user, accountFragment(loc, view))
}

// handleLanguagePreference persists the interface-language selection.
func (h *handler) handleLanguagePreference(w http.ResponseWriter, r *http.Request) {
	_, sess := h.requireSession(w, r)
	if sess == nil {
		return
	}
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	selected := strings.TrimSpace(r.PostFormValue("language"))
	if tag, ok := platformi18n.ParseTag(selected); ok {
		consolei18n.SetLanguageCookie(w, tag)
		flash.Write(w, r, flash.NoticeSuccess("account.preference_saved"))
	} else {
		flash.Write(w, r, flash.NoticeError("account.preference_invalid"))
	}
	http.Redirect(w, r, "/account", http.StatusFound)
}

// handleCurrencyPreference persists the billing-currency selection.
func (h *handler) handleCurrencyPreference(w http.ResponseWriter, r *http.Request) {
	_, sess := h.requireSession(w, r)
	if sess == nil {
		return
	}
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	selected := strings.TrimSpace(r.PostFormValue("currency"))
	if c, err := currency.Lookup(selected); err == nil {
		setCurrencyCookie(w, r, c.Code)
		flash.Write(w, r, flash.NoticeSuccess("account.preference_saved"))
	} else {
		flash.Write(w, r, flash.NoticeError("account.preference_invalid"))
	}
	http.Redirect(w, r, "/account", http.StatusFound)
}

// handleTimezonePreference persists the timezone selection.
func (h *handler) handleTimezonePreference(w http.ResponseWriter, r *http.Request) {
	_, sess := h.requireSession(w, r)
	if sess == nil {
		return
	}
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	selected := strings.TrimSpace(r.PostFormValue("timezone"))
	if tz, err := region.TimezoneByID(selected); err == nil {
		setTimezoneCookie(w, r, tz.ID)
		flash.Write(w, r, flash.NoticeSuccess("account.preference_saved"))
	} else {
		flash.Write(w, r, flash.NoticeError("account.preference_invalid"))
	}
	http.Redirect(w, r, "/account", http.StatusFound)
}

// handleNotificationPreference persists the email-updates toggle. Checkbox
// semantics: the field is present when on and absent when off.
func (h *handler) handleNotificationPreference(w http.ResponseWriter, r *http.Request) {
	_, sess := h.requireSession(w, r)
	if sess == nil {
		return
	}
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	setEmailUpdatesCookie(w, r, r.PostFormValue("email_updates") != "")
	flash.Write(w, r, flash.NoticeSuccess("account.preference_saved"))
	http.Redirect(w, r, "/account", http.StatusFound)
}
