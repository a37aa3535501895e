// Package locale centralizes the bilingual label selection shared by the
// composer, the board CLI, and speech voice matching. The board supports
// exactly two locales; anything else is rejected at parse time.
package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies one of the two supported display/speech languages.
type Locale string

const (
	English    Locale = "en-US"
	Portuguese Locale = "pt-BR"
)

// Parse normalizes a BCP-47-ish string ("en-US", "pt", "pt_BR") to a Locale.
func Parse(s string) (Locale, error) {
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("locale: parse %q: %w", s, err)
	}
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return English, nil
	case "pt":
		return Portuguese, nil
	}
	return "", fmt.Errorf("locale: unsupported language %q", s)
}

// Tag returns the full BCP-47 tag for the locale.
func (l Locale) Tag() language.Tag { return language.MustParse(string(l)) }

// Prefix returns the bare language subtag ("en", "pt") used when matching
// platform voices.
func (l Locale) Prefix() string {
	base, _ := l.Tag().Base()
	return base.String()
}

func (l Locale) String() string { return string(l) }

// LabelFor picks the label for the active locale, falling back to the
// primary label when the secondary one is empty.
func LabelFor(primary, secondary string, l Locale) string {
	if l == Portuguese && secondary != "" {
		return secondary
	}
	return primary
}
