// Package amount models XRPL amounts: native XRP amounts carried as bare
// numeric strings and issued-currency amounts carrying currency and issuer.
package amount

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// NativeCurrency is the currency code of the ledger's native asset.
const NativeCurrency = "XRP"

var (
	// ErrUnsupportedAsset is returned when an asset descriptor is neither a
	// native amount nor an issued currency.
	ErrUnsupportedAsset = errors.New("unsupported asset descriptor")
	// ErrInvalidValue is returned for values that are not numbers.
	ErrInvalidValue = errors.New("invalid amount value")
	// ErrMissingCurrency is returned when an issued amount has no currency.
	ErrMissingCurrency = errors.New("issued currency requires a currency code")
	// ErrMissingIssuer is returned when an issued amount has no issuer.
	ErrMissingIssuer = errors.New("issued currency requires an issuer")
	// ErrNativeCurrency is returned when an issued amount uses the native code.
	ErrNativeCurrency = errors.New("issued currency cannot use the native currency code")
)

// Amount is either an XRPAmount or an IssuedCurrencyAmount.
type Amount interface {
	// Issue returns the identity of the asset the amount is denominated in.
	Issue() Issue
	// IsNative reports whether the amount is in the native currency.
	IsNative() bool
	String() string
}

// Issue identifies an asset: the native currency (no issuer) or an issued
// currency.
type Issue struct {
	Currency string `json:"currency"`
	Issuer   string `json:"issuer,omitempty"`
}

// IsNative reports whether the issue is the native currency.
func (i Issue) IsNative() bool {
	return i.Issuer == "" && strings.EqualFold(i.Currency, NativeCurrency)
}

func (i Issue) String() string {
	if i.Issuer == "" {
		return i.Currency
	}
	return i.Currency + "/" + i.Issuer
}

// ParseIssue parses "XRP" or "CUR/issuer".
func ParseIssue(s string) (Issue, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Issue{}, ErrMissingCurrency
	}
	currency, issuer, found := strings.Cut(s, "/")
	if !found {
		if !strings.EqualFold(currency, NativeCurrency) {
			return Issue{}, fmt.Errorf("%w: %q", ErrMissingIssuer, s)
		}
		return Issue{Currency: NativeCurrency}, nil
	}
	if currency == "" {
		return Issue{}, ErrMissingCurrency
	}
	if issuer == "" {
		return Issue{}, ErrMissingIssuer
	}
	return Issue{Currency: currency, Issuer: issuer}, nil
}

// XRPAmount is a native amount, a bare numeric string.
type XRPAmount string

// Issue implements Amount.
func (XRPAmount) Issue() Issue {
	return Issue{Currency: NativeCurrency}
}

// IsNative implements Amount.
func (XRPAmount) IsNative() bool {
	return true
}

func (a XRPAmount) String() string {
	return string(a)
}

// IssuedCurrency describes an issued currency without a quantity.
type IssuedCurrency struct {
	Currency string `json:"currency"`
	Issuer   string `json:"issuer"`
}

// CurrencyCode returns the currency code.
func (c IssuedCurrency) CurrencyCode() string { return c.Currency }

// IssuerAddress returns the issuing account.
func (c IssuedCurrency) IssuerAddress() string { return c.Issuer }

// IssuedCurrencyAmount is a quantity of an issued currency.
type IssuedCurrencyAmount struct {
	Currency string `json:"currency"`
	Issuer   string `json:"issuer"`
	Value    string `json:"value"`
}

// NewIssuedCurrencyAmount validates and builds an issued-currency amount.
// The value is kept exactly as given.
func NewIssuedCurrencyAmount(value, issuer, currency string) (IssuedCurrencyAmount, error) {
	if currency == "" {
		return IssuedCurrencyAmount{}, ErrMissingCurrency
	}
	if strings.EqualFold(currency, NativeCurrency) {
		return IssuedCurrencyAmount{}, ErrNativeCurrency
	}
	if issuer == "" {
		return IssuedCurrencyAmount{}, ErrMissingIssuer
	}
	if _, err := decimal.NewFromString(value); err != nil {
		return IssuedCurrencyAmount{}, fmt.Errorf("%w: %q", ErrInvalidValue, value)
	}
	return IssuedCurrencyAmount{Currency: currency, Issuer: issuer, Value: value}, nil
}

// CurrencyCode returns the currency code.
func (a IssuedCurrencyAmount) CurrencyCode() string { return a.Currency }

// IssuerAddress returns the issuing account.
func (a IssuedCurrencyAmount) IssuerAddress() string { return a.Issuer }

// Issue implements Amount.
func (a IssuedCurrencyAmount) Issue() Issue {
	return Issue{Currency: a.Currency, Issuer: a.Issuer}
}

// IsNative implements Amount.
func (IssuedCurrencyAmount) IsNative() bool {
	return false
}

func (a IssuedCurrencyAmount) String() string {
	return a.Value + "/" + a.Currency + "/" + a.Issuer
}

// ParseJSON decodes an amount in ledger JSON form: a string for XRP or an
// object with currency, issuer and value.
func ParseJSON(data []byte) (Amount, error) {
	var native string
	if err := json.Unmarshal(data, &native); err == nil {
		if _, err := decimal.NewFromString(native); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidValue, native)
		}
		return XRPAmount(native), nil
	}

	var issued IssuedCurrencyAmount
	if err := json.Unmarshal(data, &issued); err != nil {
		return nil, fmt.Errorf("failed to decode amount: %w", err)
	}
	return NewIssuedCurrencyAmount(issued.Value, issued.Issuer, issued.Currency)
}
