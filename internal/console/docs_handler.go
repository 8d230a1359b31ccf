package console

import (
	"net/http"
	"strings"

	"github.com/seafortlabs/seafort/internal/console/identity"
)

// handleDocs serves the documentation site. Docs are public; signed-in
// viewers keep their console chrome.
func (h *handler) handleDocs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	_, sess := h.resolveSession(r)
	var viewer identity.UserDisplay
	if sess != nil {
		viewer = sess.user
	}

	slug := strings.TrimPrefix(r.URL.Path, "/docs")
	page, ok := h.docsSite.Page(slug)
	if !ok {
		h.writeErrorPage(w, r, http.StatusNotFound, viewer)
		return
	}

	title := AppName + " | " + page.Title
	h.writePage(w, r, title, http.StatusOK, viewer, docsFragment(h.docsSite.Nav(), page))
}
