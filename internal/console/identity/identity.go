// Package identity holds the user-display model shared by console views.
// It is presentation-only; authorization decisions never read from it.
package identity

import (
	"strings"
)

// UserDisplay carries the fields console views render for the signed-in user.
type UserDisplay struct {
	Email     string
	FullName  string
	AvatarURL string
}

// DisplayName returns the best human label for the user.
func (u UserDisplay) DisplayName() string {
	if name := strings.TrimSpace(u.FullName); name != "" {
		return name
	}
	return strings.TrimSpace(u.Email)
}

// Initials derives the avatar fallback initials.
//
// Names with two or more space-separated tokens yield the first rune of the
// first and last tokens. Single-token names yield their first two runes,
// truncated when shorter. Without a name the email's first two runes are
// used. All results are upper-cased; with nothing to derive from, "?" is
// returned so the avatar slot never renders empty.
func (u UserDisplay) Initials() string {
	tokens := strings.Fields(u.FullName)
	switch {
	case len(tokens) >= 2:
		return strings.ToUpper(firstRunes(tokens[0], 1) + firstRunes(tokens[len(tokens)-1], 1))
	case len(tokens) == 1:
		return strings.ToUpper(firstRunes(tokens[0], 2))
	}
	if email := strings.TrimSpace(u.Email); email != "" {
		return strings.ToUpper(firstRunes(email, 2))
	}
	return "?"
}

func firstRunes(value string, count int) string {
	runes := []rune(value)
	if len(runes) > count {
		runes = runes[:count]
	}
	return string(runes)
}
