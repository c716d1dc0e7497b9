package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
)

//go:embed translations/*.json
var translationFS embed.FS

// Dictionary maps translation keys to strings for every language.
type Dictionary map[Language]map[string]string

// LoadDictionary reads the embedded translation tables.
func LoadDictionary() (Dictionary, error) {
	dict := Dictionary{}
	for _, opt := range languageOptions {
		raw, err := translationFS.ReadFile(path.Join("translations", string(opt.Language)+".json"))
		if err != nil {
			return nil, fmt.Errorf("locale: read %s: %w", opt.Language, err)
		}
		table := map[string]string{}
		if err := json.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("locale: decode %s: %w", opt.Language, err)
		}
		dict[opt.Language] = table
	}
	return dict, nil
}

// Translator resolves keys for one language.
type Translator struct {
	lang Language
	dict Dictionary
}

func (d Dictionary) Translator(lang Language) Translator {
	return Translator{lang: lang, dict: d}
}

func (t Translator) Language() Language { return t.lang }

// T returns the string for key, falling back to English and then to the key
// itself.
func (t Translator) T(key string) string {
	if v, ok := t.dict[t.lang][key]; ok {
		return v
	}
	if v, ok := t.dict[English][key]; ok {
		return v
	}
	return key
}
