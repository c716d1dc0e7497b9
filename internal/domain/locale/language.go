package locale

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownLanguage = errors.New("locale: unknown language")
	ErrUnknownCurrency = errors.New("locale: unknown currency")
)

// Language is one of the translated languages.
type Language string

const (
	English Language = "en"
	Bangla  Language = "bn"
)

const DefaultLanguage = English

// ParseLanguage accepts a bare code or a region tagged one ("bn-BD").
func ParseLanguage(raw string) (Language, error) {
	code := strings.ToLower(strings.TrimSpace(raw))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	switch Language(code) {
	case English, Bangla:
		return Language(code), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, raw)
	}
}

// LanguageOption is an entry of the language picker.
type LanguageOption struct {
	Language Language `json:"language"`
	Tag      string   `json:"tag"`
	Name     string   `json:"name"`
	Region   string   `json:"region"`
	Flag     string   `json:"flag"`
}

var languageOptions = []LanguageOption{
	{Language: English, Tag: "en-US", Name: "English", Region: "United States", Flag: "🇺🇸"},
	{Language: Bangla, Tag: "bn-BD", Name: "বাংলা", Region: "Bangladesh", Flag: "🇧🇩"},
}

func LanguageOptions() []LanguageOption {
	return append([]LanguageOption(nil), languageOptions...)
}

// Option returns the picker entry for l.
func (l Language) Option() LanguageOption {
	for _, o := range languageOptions {
		if o.Language == l {
			return o
		}
	}
	return languageOptions[0]
}
