package requestmeta

import (
	"net/http"
	"strings"
)

// mobileTokens are User-Agent substrings classified as mobile when client
// hints are absent. Matching is intentionally coarse; layout only.
var mobileTokens = []string{"mobile", "android", "iphone", "ipod", "windows phone"}

// IsMobileViewport classifies a request as coming from a mobile viewport.
//
// The Sec-CH-UA-Mobile client hint wins when present; otherwise the
// User-Agent is consulted. With no signal at all the answer is false, so the
// first uninstrumented paint and server render agree on the desktop layout.
func IsMobileViewport(r *http.Request) bool {
	if r == nil {
		return false
	}
	switch strings.TrimSpace(r.Header.Get("Sec-CH-UA-Mobile")) {
	case "?1":
		return true
	case "?0":
		return false
	}
	userAgent := strings.ToLower(strings.TrimSpace(r.Header.Get("User-Agent")))
	if userAgent == "" {
		return false
	}
	// iPads report "Mobile" in some configurations but want the desktop
	// layout; treat them as such.
	if strings.Contains(userAgent, "ipad") {
		return false
	}
	for _, token := range mobileTokens {
		if strings.Contains(userAgent, token) {
			return true
		}
	}
	return false
}
