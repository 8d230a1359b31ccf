// Package region holds the static timezone, language, and country reference
// tables rendered by console select inputs. Tables are read-only; lookups
// are exact-match on the key.
package region

import (
	"errors"
	"sort"
	"strings"
)

// ErrNotFound reports a key missing from a reference table.
var ErrNotFound = errors.New("region: not found")

// Timezone describes one selectable timezone.
type Timezone struct {
	ID            string // IANA identifier, e.g. "America/Sao_Paulo"
	Label         string
	OffsetMinutes int // standard-time offset from UTC
}

// Language describes one selectable interface language.
type Language struct {
	Code string // BCP 47 tag
	Name string // self-described name
}

// Country describes one selectable billing country.
type Country struct {
	Code     string // ISO 3166-1 alpha-2
	Name     string
	Currency string // ISO 4217 code of the default billing currency
}

var timezones = map[string]Timezone{
	"UTC":                 {ID: "UTC", Label: "UTC", OffsetMinutes: 0},
	"America/New_York":    {ID: "America/New_York", Label: "New York (Eastern)", OffsetMinutes: -300},
	"America/Los_Angeles": {ID: "America/Los_Angeles", Label: "Los Angeles (Pacific)", OffsetMinutes: -480},
	"America/Sao_Paulo":   {ID: "America/Sao_Paulo", Label: "São Paulo", OffsetMinutes: -180},
	"Europe/London":       {ID: "Europe/London", Label: "London", OffsetMinutes: 0},
	"Europe/Paris":        {ID: "Europe/Paris", Label: "Paris", OffsetMinutes: 60},
	"Europe/Berlin":       {ID: "Europe/Berlin", Label: "Berlin", OffsetMinutes: 60},
	"Asia/Tokyo":          {ID: "Asia/Tokyo", Label: "Tokyo", OffsetMinutes: 540},
	"Asia/Kolkata":        {ID: "Asia/Kolkata", Label: "Kolkata", OffsetMinutes: 330},
	"Australia/Sydney":    {ID: "Australia/Sydney", Label: "Sydney", OffsetMinutes: 600},
}

var languages = map[string]Language{
	"en-US": {Code: "en-US", Name: "English (US)"},
	"pt-BR": {Code: "pt-BR", Name: "Português (Brasil)"},
	"fr-FR": {Code: "fr-FR", Name: "Français"},
}

var countries = map[string]Country{
	"US": {Code: "US", Name: "United States", Currency: "USD"},
	"GB": {Code: "GB", Name: "United Kingdom", Currency: "GBP"},
	"BR": {Code: "BR", Name: "Brazil", Currency: "BRL"},
	"FR": {Code: "FR", Name: "France", Currency: "EUR"},
	"DE": {Code: "DE", Name: "Germany", Currency: "EUR"},
	"JP": {Code: "JP", Name: "Japan", Currency: "JPY"},
	"CA": {Code: "CA", Name: "Canada", Currency: "CAD"},
	"AU": {Code: "AU", Name: "Australia", Currency: "AUD"},
	"CH": {Code: "CH", Name: "Switzerland", Currency: "CHF"},
	"IN": {Code: "IN", Name: "India", Currency: "INR"},
	"MX": {Code: "MX", Name: "Mexico", Currency: "MXN"},
}

// TimezoneByID returns the timezone for an exact IANA identifier.
func TimezoneByID(id string) (Timezone, error) {
	tz, ok := timezones[strings.TrimSpace(id)]
	if !ok {
		return Timezone{}, ErrNotFound
	}
	return tz, nil
}

// LanguageByCode returns the language for an exact BCP 47 tag.
func LanguageByCode(code string) (Language, error) {
	lang, ok := languages[strings.TrimSpace(code)]
	if !ok {
		return Language{}, ErrNotFound
	}
	return lang, nil
}

// CountryByCode returns the country for an exact alpha-2 code.
func CountryByCode(code string) (Country, error) {
	country, ok := countries[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Country{}, ErrNotFound
	}
	return country, nil
}

// Timezones returns all timezones sorted by offset, then ID.
func Timezones() []Timezone {
	out := make([]Timezone, 0, len(timezones))
	for _, tz := range timezones {
		out = append(out, tz)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OffsetMinutes != out[j].OffsetMinutes {
			return out[i].OffsetMinutes < out[j].OffsetMinutes
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Languages returns all languages sorted by code.
func Languages() []Language {
	out := make([]Language, 0, len(languages))
	for _, lang := range languages {
		out = append(out, lang)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
