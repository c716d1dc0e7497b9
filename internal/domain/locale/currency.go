package locale

import (
	"fmt"
	"strings"
)

// Currency is one of the supported display currencies.
type Currency string

const (
	USD Currency = "USD"
	BDT Currency = "BDT"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	KRW Currency = "KRW"
	CNY Currency = "CNY"
	INR Currency = "INR"
	DKK Currency = "DKK"
	CHF Currency = "CHF"
)

const DefaultCurrency = USD

// CurrencyOption describes a currency in the picker.
type CurrencyOption struct {
	Currency Currency `json:"code"`
	Name     string   `json:"name"`
	Symbol   string   `json:"symbol"`
	Region   string   `json:"region"`
}

var currencyOptions = []CurrencyOption{
	{USD, "United States dollar", "$", "United States"},
	{BDT, "Bangladeshi taka", "৳", "Bangladesh"},
	{EUR, "Euro", "€", "Spain"},
	{GBP, "Pound sterling", "£", "United Kingdom"},
	{JPY, "Japanese yen", "¥", "Japan"},
	{KRW, "South Korean won", "₩", "South Korea"},
	{CNY, "Chinese yuan", "¥", "China"},
	{INR, "Indian rupee", "₹", "India"},
	{DKK, "Danish krone", "kr", "Denmark"},
	{CHF, "Swiss franc", "CHF", "Switzerland"},
}

func CurrencyOptions() []CurrencyOption {
	return append([]CurrencyOption(nil), currencyOptions...)
}

func ParseCurrency(raw string) (Currency, error) {
	code := Currency(strings.ToUpper(strings.TrimSpace(raw)))
	for _, o := range currencyOptions {
		if o.Currency == code {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, raw)
}

func (c Currency) Option() CurrencyOption {
	for _, o := range currencyOptions {
		if o.Currency == c {
			return o
		}
	}
	return currencyOptions[0]
}

func (c Currency) Symbol() string { return c.Option().Symbol }
