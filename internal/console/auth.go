package console

import (
	"log"
	"net/http"
	"strings"

	"github.com/seafortlabs/seafort/internal/console/identity"
	"github.com/seafortlabs/seafort/internal/console/platform/flash"
	"github.com/seafortlabs/seafort/internal/console/platform/requestmeta"
	"github.com/seafortlabs/seafort/internal/console/platform/sessioncookie"
)

// handleRoot sends visitors to their account or the login page.
func (h *handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		_, sess := h.resolveSession(r)
		var viewer identity.UserDisplay
		if sess != nil {
			viewer = sess.user
		}
		h.writeErrorPage(w, r, http.StatusNotFound, viewer)
		return
	}
	if _, sess := h.resolveSession(r); sess != nil {
		http.Redirect(w, r, "/account", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

// handleLogin serves the credential form and processes submissions.
func (h *handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if _, sess := h.resolveSession(r); sess != nil {
			http.Redirect(w, r, "/account", http.StatusFound)
			return
		}
		loc, _ := localizer(w, r)
		writeAuthPage(w, r, loc.Sprintf("title.login", AppName), http.StatusOK, loginFragment(loc, ""))
	case http.MethodPost:
		h.handleLoginSubmit(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *handler) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	loc, _ := localizer(w, r)

	backendSession, err := h.authClient.SignInWithPassword(r.Context(), email, password)
	if err != nil {
		log.Printf("sign in %s: %v", email, err)
		writeAuthPage(w, r, loc.Sprintf("title.login", AppName), http.StatusUnauthorized, loginFragment(loc, loc.Sprintf("login.failed")))
		return
	}

	// The access token is the source of truth for identity and org grants;
	// the sign-in payload is only a fallback when the lookup fails.
	user, err := h.authClient.UserFromToken(r.Context(), backendSession.AccessToken)
	if err != nil {
		log.Printf("resolve user %s: %v", email, err)
		user = backendSession.User
	}
	sessionID := h.sessions.create(&session{
		accessToken:  backendSession.AccessToken,
		refreshToken: backendSession.RefreshToken,
		user: identity.UserDisplay{
			Email:     user.Email,
			FullName:  user.FullName(),
			AvatarURL: user.AvatarURL(),
		},
		orgSlugs:  user.OrgSlugs(),
		expiresAt: backendSession.ExpiresAt(timeNow()),
	})
	sessioncookie.Write(w, r, sessionID)
	http.Redirect(w, r, "/account", http.StatusFound)
}

// logoutHandler serves the confirmation page and executes sign-out.
//
// Sign-out is confirm -> backend sign-out -> redirect. When the backend call
// fails the session and cookie are kept and the user stays on the console
// with an error notice; the failure is terminal for this attempt only.
func (h *handler) logoutHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, sess := h.requireSession(w, r)
		if sess == nil {
			return
		}
		loc, _ := localizer(w, r)
		switch r.Method {
		case http.MethodGet:
			h.writePage(w, r, loc.Sprintf("title.console", AppName), http.StatusOK, sess.user, logoutFragment(loc))
		case http.MethodPost:
			if !requestmeta.HasSameOriginProof(r) {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			if err := h.authClient.SignOut(r.Context(), sess.accessToken); err != nil {
				log.Printf("sign out %s: %v", sess.user.Email, err)
				flash.Write(w, r, flash.NoticeError("logout.failed"))
				http.Redirect(w, r, "/logout", http.StatusFound)
				return
			}
			h.sessions.delete(sessionID)
			sessioncookie.Clear(w, r)
			flash.Write(w, r, flash.NoticeSuccess("login.signed_out"))
			http.Redirect(w, r, "/login", http.StatusFound)
		default:
			w.Header().Set("Allow", "GET, POST")
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}

// refreshIfExpiring swaps backend tokens when the session nears expiry.
// Failure leaves the current session untouched; the next request retries.
// sess is the request's snapshot; the stored session is written under the
// store lock so concurrent requests for the same cookie do not race.
func (h *handler) refreshIfExpiring(r *http.Request, id string, sess *session) {
	if timeNow().Add(sessionRefreshWindow).Before(sess.expiresAt) {
		return
	}
	refreshed, err := h.authClient.RefreshSession(r.Context(), sess.refreshToken)
	if err != nil {
		log.Printf("refresh session %s: %v", sess.user.Email, err)
		return
	}
	sess.accessToken = refreshed.AccessToken
	sess.refreshToken = refreshed.RefreshToken
	sess.expiresAt = refreshed.ExpiresAt(timeNow())
	h.sessions.update(id, func(stored *session) {
		stored.accessToken = sess.accessToken
		stored.refreshToken = sess.refreshToken
		stored.expiresAt = sess.expiresAt
	})
}
