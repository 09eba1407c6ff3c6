package amount

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Issued is implemented by descriptors that name an issued currency.
type Issued interface {
	CurrencyCode() string
	IssuerAddress() string
}

// SameAmountNewValue returns an amount of the same asset as prevAsset
// carrying newValue.
//
// A bare string or XRPAmount is a native asset and yields an XRPAmount.
// Anything else goes down the issued-currency path: values implementing
// Issued (IssuedCurrency, IssuedCurrencyAmount) keep their currency and
// issuer, and unsupported types are rejected by that path with
// ErrUnsupportedAsset.
func SameAmountNewValue(prevAsset any, newValue any) (Amount, error) {
	value, err := FormatValue(newValue)
	if err != nil {
		return nil, err
	}

	switch prev := prevAsset.(type) {
	case string:
		return XRPAmount(value), nil
	case XRPAmount:
		return XRPAmount(value), nil
	case Issue:
		if prev.IsNative() {
			return XRPAmount(value), nil
		}
		return NewIssuedCurrencyAmount(value, prev.Issuer, prev.Currency)
	default:
		return issuedWithValue(prevAsset, value)
	}
}

func issuedWithValue(prevAsset any, value string) (Amount, error) {
	issued, ok := prevAsset.(Issued)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedAsset, prevAsset)
	}
	return NewIssuedCurrencyAmount(value, issued.IssuerAddress(), issued.CurrencyCode())
}

// FormatValue renders a numeric value the way it appears in an amount.
// Integers print in base 10, floats in their shortest exact decimal form
// (100.0 prints as "100"), and numeric strings are kept verbatim.
func FormatValue(v any) (string, error) {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n), nil
	case int8:
		return strconv.FormatInt(int64(n), 10), nil
	case int16:
		return strconv.FormatInt(int64(n), 10), nil
	case int32:
		return strconv.FormatInt(int64(n), 10), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	case uint:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint64:
		return strconv.FormatUint(n, 10), nil
	case float32:
		if math.IsNaN(float64(n)) || math.IsInf(float64(n), 0) {
			return "", fmt.Errorf("%w: %v", ErrInvalidValue, n)
		}
		return decimal.NewFromFloat32(n).String(), nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return "", fmt.Errorf("%w: %v", ErrInvalidValue, n)
		}
		return decimal.NewFromFloat(n).String(), nil
	case decimal.Decimal:
		return n.String(), nil
	case json.Number:
		return validNumeric(string(n))
	case string:
		return validNumeric(n)
	default:
		return "", fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, v)
	}
}

func validNumeric(s string) (string, error) {
	if _, err := decimal.NewFromString(s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	return s, nil
}
