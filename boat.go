package fleet

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the kind of boat.
type Kind int

const (
	Sailing Kind = iota
	Power
)

func (k Kind) String() string {
	switch k {
	case Sailing:
		return "SAILING"
	case Power:
		return "POWER"
	default:
		return "UNKNOWN"
	}
}

// ParseKind parses a boat kind, ignoring case and surrounding spaces.
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SAILING":
		return Sailing, nil
	case "POWER":
		return Power, nil
	default:
		return 0, &ParseError{Field: "kind", Value: s}
	}
}

// Boat is a single boat in the fleet.
type Boat struct {
	Kind       Kind
	Name       string // lookup key, compared without case.
	Year       int
	Make       string
	LengthFeet int
	PricePaid  Money // total capital invested in the boat.
	Expenses   Money // cumulative spend, never above PricePaid.
}

// NewBoat creates a boat. All fields are mandatory.
func NewBoat(kind Kind, name string, year int, maker string, lengthFeet int, pricePaid, expenses Money) *Boat {
	return &Boat{
		Kind:       kind,
		Name:       name,
		Year:       year,
		Make:       maker,
		LengthFeet: lengthFeet,
		PricePaid:  pricePaid,
		Expenses:   expenses,
	}
}

// Remaining returns the amount that can still be spent on the boat.
func (b *Boat) Remaining() Money { return b.PricePaid.Sub(b.Expenses) }

// Authorize adds amount to the boat's expenses if it does not exceed the
// remaining amount. Otherwise it returns an *ExpenseRefusedError and the boat
// is unchanged.
func (b *Boat) Authorize(amount Money) error {
	if amount.IsNegative() {
		return &ParseError{Field: "amount", Value: amount.value.String(), Err: fmt.Errorf("must not be negative")}
	}
	remaining := b.Remaining()
	if !amount.LessThanOrEqual(remaining) {
		return &ExpenseRefusedError{Name: b.Name, Amount: amount, Remaining: remaining}
	}
	b.Expenses = b.Expenses.Add(amount)
	return nil
}

// reportLineFormat is the fixed-width layout of a boat in the fleet report.
// Downstream tools compare this output byte for byte.
const reportLineFormat = "    %-8s %-12s %4d %-10s %3d' : Paid $ %10s : Spent $ %7s"

// totalsLineFormat is the layout of the last line of the fleet report.
const totalsLineFormat = "    %-8s %-12s %-4s %-10s %3s  : Paid $ %10s : Spent $ %7s"

// FormatReportLine returns the boat's line in the fleet report.
func (b *Boat) FormatReportLine() string {
	return fmt.Sprintf(reportLineFormat,
		b.Kind,
		b.Name,
		b.Year,
		b.Make,
		b.LengthFeet,
		b.PricePaid.Fixed(2),
		b.Expenses.Fixed(2),
	)
}

// FormatTotalsLine returns the totals line of the fleet report.
func FormatTotalsLine(paid, spent Money) string {
	return fmt.Sprintf(totalsLineFormat, "Total", "", "", "", "", paid.Fixed(2), spent.Fixed(2))
}

// CSV returns the boat in the catalog format. Expenses are not part of it.
func (b *Boat) CSV() string {
	return strings.Join([]string{
		b.Kind.String(),
		b.Name,
		strconv.Itoa(b.Year),
		b.Make,
		strconv.Itoa(b.LengthFeet),
		b.PricePaid.Fixed(2),
	}, ",")
}

// MarshalJSON writes the boat with a stable key order.
func (b *Boat) MarshalJSON() ([]byte, error) {
	var o jsonObject
	o.Field("kind", b.Kind.String()).
		Field("name", b.Name).
		Field("year", b.Year).
		Field("make", b.Make).
		Field("lengthFeet", b.LengthFeet).
		Field("pricePaid", b.PricePaid).
		Field("expenses", b.Expenses).
		OmitEmpty("currency", b.PricePaid.Currency())
	return o.MarshalJSON()
}
