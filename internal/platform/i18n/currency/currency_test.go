package currency

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	c, err := Lookup("usd")
	if err != nil {
		t.Fatalf("Lookup(usd) error = %v", err)
	}
	if c.Code != "USD" || c.Symbol != "$" || c.MinorDigits != 2 {
		t.Fatalf("Lookup(usd) = %+v", c)
	}

	if _, err := Lookup("XXX"); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Lookup(XXX) error = %v, want ErrUnsupported", err)
	}
	if _, err := Lookup("dollars"); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Lookup(dollars) error = %v, want ErrUnsupported", err)
	}
	if _, err := Lookup(""); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Lookup(\"\") error = %v, want ErrUnsupported", err)
	}
}

func TestSupportedSortedAndUnique(t *testing.T) {
	t.Parallel()

	supported := Supported()
	if len(supported) == 0 {
		t.Fatalf("expected supported currencies")
	}
	seen := map[string]bool{}
	for i, c := range supported {
		if seen[c.Code] {
			t.Fatalf("duplicate code %q", c.Code)
		}
		seen[c.Code] = true
		if i > 0 && supported[i-1].Code >= c.Code {
			t.Fatalf("codes not sorted: %q before %q", supported[i-1].Code, c.Code)
		}
	}
}

func TestFormatEnglish(t *testing.T) {
	t.Parallel()

	got, err := Format(language.AmericanEnglish, 1234.56, "USD")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got != "$1,234.56" {
		t.Fatalf("Format() = %q, want %q", got, "$1,234.56")
	}
}

func TestFormatZeroMinorDigits(t *testing.T) {
	t.Parallel()

	got, err := Format(language.AmericanEnglish, 1234.56, "JPY")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got != "¥1,235" {
		t.Fatalf("Format() = %q, want %q", got, "¥1,235")
	}
}

func TestFormatLocalizedSeparators(t *testing.T) {
	t.Parallel()

	got, err := Format(language.MustParse("pt-BR"), 1234.56, "BRL")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasPrefix(got, "R$") {
		t.Fatalf("Format() = %q, want R$ prefix", got)
	}
	if !strings.Contains(got, ",56") {
		t.Fatalf("Format() = %q, want decimal comma", got)
	}
}

func TestFormatIdempotent(t *testing.T) {
	t.Parallel()

	first, err := Format(language.AmericanEnglish, 99.9, "EUR")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Format(language.AmericanEnglish, 99.9, "EUR")
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		if again != first {
			t.Fatalf("Format() = %q, want stable %q", again, first)
		}
	}
}

func TestFormatRejectsUnsupported(t *testing.T) {
	t.Parallel()

	got, err := Format(language.AmericanEnglish, 10, "ZWL")
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Format() error = %v, want ErrUnsupported", err)
	}
	if got != "" {
		t.Fatalf("Format() = %q, want empty on error", got)
	}
}

func TestConvert(t *testing.T) {
	t.Parallel()

	same, err := Convert(125, "USD", "USD")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if same != 125 {
		t.Fatalf("Convert(USD->USD) = %v, want 125", same)
	}

	eur, err := Convert(100, "USD", "EUR")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if eur < 91.99 || eur > 92.01 {
		t.Fatalf("Convert(USD->EUR) = %v, want ~92", eur)
	}

	// Round trip through the cross rate should come back within float noise.
	back, err := Convert(eur, "EUR", "USD")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if back < 99.999 || back > 100.001 {
		t.Fatalf("round trip = %v, want ~100", back)
	}

	if _, err := Convert(10, "USD", "XXX"); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Convert() error = %v, want ErrUnsupported", err)
	}
}

func TestRatesCoverTable(t *testing.T) {
	t.Parallel()

	for _, c := range Supported() {
		rate, err := Rate("USD", c.Code)
		if err != nil {
			t.Fatalf("Rate(USD, %s) error = %v", c.Code, err)
		}
		if rate <= 0 {
			t.Fatalf("Rate(USD, %s) = %v, want > 0", c.Code, rate)
		}
	}
}
