package region

import (
	"errors"
	"testing"

	"github.com/seafortlabs/seafort/internal/platform/i18n/currency"
)

func TestTimezoneByID(t *testing.T) {
	t.Parallel()

	tz, err := TimezoneByID("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("TimezoneByID() error = %v", err)
	}
	if tz.OffsetMinutes != -180 {
		t.Fatalf("OffsetMinutes = %d, want -180", tz.OffsetMinutes)
	}

	if _, err := TimezoneByID("Mars/Olympus_Mons"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("TimezoneByID() error = %v, want ErrNotFound", err)
	}
	// Lookups are exact-match; no prefix or case folding on IDs.
	if _, err := TimezoneByID("america/sao_paulo"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("TimezoneByID() error = %v, want ErrNotFound", err)
	}
}

func TestLanguageByCode(t *testing.T) {
	t.Parallel()

	lang, err := LanguageByCode("pt-BR")
	if err != nil {
		t.Fatalf("LanguageByCode() error = %v", err)
	}
	if lang.Name != "Português (Brasil)" {
		t.Fatalf("Name = %q", lang.Name)
	}
	if _, err := LanguageByCode("eo"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("LanguageByCode() error = %v, want ErrNotFound", err)
	}
}

func TestCountryByCode(t *testing.T) {
	t.Parallel()

	country, err := CountryByCode("br")
	if err != nil {
		t.Fatalf("CountryByCode() error = %v", err)
	}
	if country.Currency != "BRL" {
		t.Fatalf("Currency = %q, want BRL", country.Currency)
	}
	if _, err := CountryByCode("ZZ"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("CountryByCode() error = %v, want ErrNotFound", err)
	}
}

func TestTimezonesSortedByOffset(t *testing.T) {
	t.Parallel()

	zones := Timezones()
	for i := 1; i < len(zones); i++ {
		prev, curr := zones[i-1], zones[i]
		if prev.OffsetMinutes > curr.OffsetMinutes {
			t.Fatalf("zones out of order: %s before %s", prev.ID, curr.ID)
		}
		if prev.OffsetMinutes == curr.OffsetMinutes && prev.ID >= curr.ID {
			t.Fatalf("zones with equal offset out of order: %s before %s", prev.ID, curr.ID)
		}
	}
}

func TestCountryCurrenciesSupported(t *testing.T) {
	t.Parallel()

	for _, country := range countries {
		if _, err := currency.Lookup(country.Currency); err != nil {
			t.Fatalf("country %s references unsupported currency %s: %v", country.Code, country.Currency, err)
		}
	}
}

func TestLanguagesMatchPlatformTags(t *testing.T) {
	t.Parallel()

	langs := Languages()
	if len(langs) != 3 {
		t.Fatalf("len(Languages()) = %d, want 3", len(langs))
	}
	seen := map[string]bool{}
	for _, lang := range langs {
		if seen[lang.Code] {
			t.Fatalf("duplicate language %q", lang.Code)
		}
		seen[lang.Code] = true
	}
}
