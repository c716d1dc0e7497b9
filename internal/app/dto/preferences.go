package dto

import "stayfront/internal/domain/locale"

type Preferences struct {
	Language   locale.LanguageOption   `json:"language"`
	Currency   locale.CurrencyOption   `json:"currency"`
	Languages  []locale.LanguageOption `json:"languages"`
	Currencies []locale.CurrencyOption `json:"currencies"`
	Overlay    string                  `json:"overlay"`
	HostKind   string                  `json:"hostKind"`
	CanHost    bool                    `json:"canHost"`
}
