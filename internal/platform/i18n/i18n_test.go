package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestSupportedTagsCopies(t *testing.T) {
	t.Parallel()

	tags := SupportedTags()
	if len(tags) != 3 {
		t.Fatalf("len(SupportedTags()) = %d, want 3", len(tags))
	}
	tags[0] = language.Japanese
	if SupportedTags()[0] != language.AmericanEnglish {
		t.Fatalf("SupportedTags must not expose internal slice")
	}
}

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  string
		ok    bool
	}{
		{"en-US", "en-US", true},
		{"pt-BR", "pt-BR", true},
		{"fr-FR", "fr-FR", true},
		{"ja-JP", "", false},
		{"not-a-tag!", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		tag, ok := ParseTag(tc.value)
		if ok != tc.ok {
			t.Fatalf("ParseTag(%q) ok = %t, want %t", tc.value, ok, tc.ok)
		}
		if ok && tag.String() != tc.want {
			t.Fatalf("ParseTag(%q) = %q, want %q", tc.value, tag.String(), tc.want)
		}
	}
}

func TestMatchTagsFallsBackToDefault(t *testing.T) {
	t.Parallel()

	if got := MatchTags(nil); got != DefaultTag() {
		t.Fatalf("MatchTags(nil) = %v, want %v", got, DefaultTag())
	}
	got := MatchTags([]language.Tag{language.Japanese})
	if got != DefaultTag() {
		t.Fatalf("MatchTags(ja) = %v, want %v", got, DefaultTag())
	}
}

func TestMatchTagsPrefersRequested(t *testing.T) {
	t.Parallel()

	got := MatchTags([]language.Tag{language.MustParse("pt-BR"), language.AmericanEnglish})
	if got.String() != "pt-BR" {
		t.Fatalf("MatchTags = %q, want %q", got.String(), "pt-BR")
	}

	// A bare base language should still resolve to the supported regional tag.
	got = MatchTags([]language.Tag{language.French})
	if got.String() != "fr-FR" {
		t.Fatalf("MatchTags(fr) = %q, want %q", got.String(), "fr-FR")
	}
}
