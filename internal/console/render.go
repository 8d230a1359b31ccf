package console

import (
	"bytes"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	consolei18n "github.com/seafortlabs/seafort/internal/console/i18n"
	"github.com/seafortlabs/seafort/internal/console/identity"
	"github.com/seafortlabs/seafort/internal/console/platform/flash"
	"github.com/seafortlabs/seafort/internal/console/platform/httpx"
	"github.com/seafortlabs/seafort/internal/console/platform/requestmeta"
	"github.com/seafortlabs/seafort/internal/console/platform/sessioncookie"
	"github.com/seafortlabs/seafort/internal/console/templates"
)

// localizer resolves the request locale, optionally persists a cookie,
// and returns a message printer with the resolved language tag.
func localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, language.Tag) {
	tag, setCookie := consolei18n.ResolveTag(r)
	if setCookie {
		consolei18n.SetLanguageCookie(w, tag)
	}
	return consolei18n.Printer(tag), tag
}

// resolveSession returns the session behind the request cookie, when valid.
func (h *handler) resolveSession(r *http.Request) (string, *session) {
	id, ok := sessioncookie.Read(r)
	if !ok {
		return "", nil
	}
	sess := h.sessions.get(id)
	if sess == nil {
		return "", nil
	}
	return id, sess
}

// requireSession resolves the session or redirects to the login page.
func (h *handler) requireSession(w http.ResponseWriter, r *http.Request) (string, *session) {
	id, sess := h.resolveSession(r)
	if sess == nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return "", nil
	}
	return id, sess
}

// writePage renders an authenticated page in the console shell.
func (h *handler) writePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, viewer identity.UserDisplay, fragment templ.Component) {
	if w == nil {
		return
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	loc, tag := localizer(w, r)

	layout := templates.Layout(templates.LayoutOptions{
		Title:  title,
		Lang:   tag.String(),
		Viewer: viewer,
		Toast:  resolveToast(w, r, loc),
		Mobile: requestmeta.IsMobileViewport(r),
	}, loc)

	var buf bytes.Buffer
	if err := layout.Render(templ.WithChildren(httpx.RequestContext(r), fragment), &buf); err != nil {
		log.Printf("render page %s: %v", r.URL.Path, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
}

// writeAuthPage renders an unauthenticated page in the auth shell.
func writeAuthPage(w http.ResponseWriter, r *http.Request, title string, statusCode int, fragment templ.Component) {
	if w == nil {
		return
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	loc, tag := localizer(w, r)

	layout := templates.AuthLayout(title, tag.String(), loc.Sprintf("meta.description"))
	var buf bytes.Buffer
	if err := layout.Render(templ.WithChildren(httpx.RequestContext(r), fragment), &buf); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
}

func resolveToast(w http.ResponseWriter, r *http.Request, loc *message.Printer) *templates.Toast {
	notice, ok := flash.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	text := strings.TrimSpace(loc.Sprintf(notice.Key))
	if text == "" {
		return nil
	}
	return &templates.Toast{Kind: string(notice.Kind), Message: text}
}

// writeErrorPage renders a localized error page for 404/5xx statuses.
func (h *handler) writeErrorPage(w http.ResponseWriter, r *http.Request, statusCode int, viewer identity.UserDisplay) {
	loc, _ := localizer(w, r)
	key := "error.internal"
	if statusCode == http.StatusNotFound {
		key = "error.not_found"
	}
	title := loc.Sprintf("title.console", AppName)
	h.writePage(w, r, title, statusCode, viewer, errorFragment(loc.Sprintf(key)))
}
