package fleet

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "USD"

// Money represents an exact monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money value.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Parsed amounts are below maxAmount in absolute value, with at most
// maxPlaces decimal places.
const maxPlaces = 30

var maxAmount = decimal.New(1, 15)

// checkAmount rejects amounts out of the supported range. The exponent is
// checked first so that "1e50000000" is never expanded.
func checkAmount(d decimal.Decimal) error {
	if d.IsZero() {
		return nil
	}
	if d.Exponent() < -maxPlaces {
		return fmt.Errorf("more than %d decimal places", maxPlaces)
	}
	if d.Exponent() > maxAmount.Exponent() || d.Abs().GreaterThanOrEqual(maxAmount) {
		return errors.New("amount too large")
	}
	return nil
}

// ParseMoney parses a decimal amount such as "14999.99".
func ParseMoney(s, currency string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, err
	}
	if err := checkAmount(d); err != nil {
		return Money{}, err
	}
	return Money{value: d, cur: currency}, nil
}

// IsKnownCurrency reports whether code is an ISO 4217 code known to go-money.
func IsKnownCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the money formatted for display in its currency, e.g. "$14,999.99".
//
// Amounts whose minor units do not fit an int64 are printed without
// thousands separators.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	if dec.Abs().LessThanOrEqual(decimal.NewFromInt(math.MaxInt64)) {
		return cur.Formatter().Format(dec.IntPart())
	}

	amount := m.value.Abs().StringFixed(int32(cur.Fraction))
	amount = strings.Replace(amount, ".", cur.Decimal, 1)
	s := strings.Replace(cur.Template, "1", amount, 1)
	s = strings.Replace(s, "$", cur.Grapheme, 1)
	if m.value.IsNegative() {
		s = "-" + s
	}
	return s
}

// Fixed returns the bare amount with exactly 'places' decimals, e.g. "14999.99".
func (m Money) Fixed(places int32) string { return m.value.StringFixed(places) }

func (m Money) Currency() string             { return m.cur }
func (m Money) Decimal() decimal.Decimal     { return m.value }
func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsNegative() bool             { return m.value.IsNegative() }
func (m Money) LessThanOrEqual(n Money) bool { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool     { return m.value.GreaterThan(n.value) }
func (m Money) MarshalJSON() ([]byte, error) { return m.value.MarshalJSON() }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}
