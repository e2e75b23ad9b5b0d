// Package locale resolves user-facing strings for English and Persian and
// reports the writing direction of each language.
package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/Veraticus/signal-companion/internal/common"
)

// Language is a supported UI language.
type Language string

// Supported languages.
const (
	English Language = "en"
	Persian Language = "fa"
)

// Direction is the writing direction of a language.
type Direction string

// Writing directions.
const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

var (
	supported = []language.Tag{language.English, language.Persian}
	matcher   = language.NewMatcher(supported)
)

// Languages lists the supported languages, default first.
func Languages() []Language {
	return []Language{English, Persian}
}

// Direction returns the writing direction of l.
func (l Language) Direction() Direction {
	if l == Persian {
		return RTL
	}
	return LTR
}

// Tag returns the BCP 47 tag of l.
func (l Language) Tag() language.Tag {
	if l == Persian {
		return language.Persian
	}
	return language.English
}

// Parse accepts a language code such as "fa" or "en-US".
func Parse(code string) (Language, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return English, nil
	}
	tag, err := language.Parse(code)
	if err != nil {
		return English, fmt.Errorf("%w: language %q: %v", common.ErrInvalidConfig, code, err)
	}
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return English, nil
	case "fa":
		return Persian, nil
	default:
		return English, fmt.Errorf("%w: unsupported language %q", common.ErrInvalidConfig, code)
	}
}

// Match picks the best supported language for an Accept-Language header,
// defaulting to English.
func Match(acceptLanguage string) Language {
	_, idx := language.MatchStrings(matcher, acceptLanguage)
	if idx >= 0 && idx < len(supported) && supported[idx] == language.Persian {
		return Persian
	}
	return English
}
