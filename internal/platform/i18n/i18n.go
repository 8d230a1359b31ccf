// Package i18n defines the locale surface shared by every Seafort service:
// the supported language tags, tag parsing, and Accept-Language matching.
package i18n

import (
	"golang.org/x/text/language"
)

var supportedTags = []language.Tag{
	language.AmericanEnglish,
	language.MustParse("pt-BR"),
	language.MustParse("fr-FR"),
}

var tagMatcher = language.NewMatcher(supportedTags)
var supportedTagSet = make(map[string]language.Tag, len(supportedTags))

func init() {
	for _, tag := range supportedTags {
		supportedTagSet[tag.String()] = tag
	}
}

// SupportedTags returns the list of supported language tags.
func SupportedTags() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// DefaultTag returns the canonical fallback language.
func DefaultTag() language.Tag {
	return language.AmericanEnglish
}

// ParseTag parses value and reports whether it names a supported language.
func ParseTag(value string) (language.Tag, bool) {
	parsed, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	if tag, ok := supportedTagSet[parsed.String()]; ok {
		return tag, true
	}
	return language.Tag{}, false
}

// MatchTags returns the best supported tag for the requested preferences.
func MatchTags(preferred []language.Tag) language.Tag {
	if len(preferred) == 0 {
		return DefaultTag()
	}
	matched, index, conf := tagMatcher.Match(preferred...)
	if conf == language.No {
		return DefaultTag()
	}
	// Matcher can return a more specific tag than configured; pin to the
	// supported tag so cookie round-trips stay stable.
	if index >= 0 && index < len(supportedTags) {
		return supportedTags[index]
	}
	return matched
}
