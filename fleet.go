package fleet

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Fleet is the ordered list of boats of a session.
//
// Insertion order is display order. Names are not required to be unique,
// lookups always resolve to the first match.
type Fleet struct {
	currency string
	boats    []*Boat
}

// New creates an empty fleet whose amounts are in currency.
func New(currency string) *Fleet {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Fleet{currency: currency, boats: make([]*Boat, 0)}
}

// Currency returns the fleet's currency code.
func (f *Fleet) Currency() string { return f.currency }

// Len returns the number of boats.
func (f *Fleet) Len() int { return len(f.boats) }

// Boats returns a copy of the list of boats, in fleet order.
func (f *Fleet) Boats() []*Boat { return slices.Clone(f.boats) }

// All iterates over the boats in fleet order.
func (f *Fleet) All() iter.Seq2[int, *Boat] { return slices.All(f.boats) }

// Append adds b at the end of the fleet.
func (f *Fleet) Append(b *Boat) { f.boats = append(f.boats, b) }

// index returns the position of the first boat named 'name', or -1.
func (f *Fleet) index(name string) int {
	name = strings.TrimSpace(name)
	return slices.IndexFunc(f.boats, func(b *Boat) bool {
		return strings.EqualFold(b.Name, name)
	})
}

// Find returns the first boat whose name matches, ignoring case.
// It returns ErrBoatNotFound if there is none.
func (f *Fleet) Find(name string) (*Boat, error) {
	i := f.index(name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrBoatNotFound, strings.TrimSpace(name))
	}
	return f.boats[i], nil
}

// Add parses a catalog line and appends the new boat, with no expenses.
// On error the fleet is unchanged.
func (f *Fleet) Add(line string) (*Boat, error) {
	b, err := ParseBoat(line, f.currency)
	if err != nil {
		return nil, err
	}
	f.Append(b)
	return b, nil
}

// Remove removes the first boat whose name matches and returns it.
func (f *Fleet) Remove(name string) (*Boat, error) {
	i := f.index(name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrBoatNotFound, strings.TrimSpace(name))
	}
	b := f.boats[i]
	f.boats = slices.Delete(f.boats, i, i+1)
	return b, nil
}

// AuthorizeExpense spends amount on the named boat if the boat's remaining
// amount allows it. It returns the boat, whose Expenses hold the new total.
func (f *Fleet) AuthorizeExpense(name string, amount Money) (*Boat, error) {
	b, err := f.Find(name)
	if err != nil {
		return nil, err
	}
	return b, b.Authorize(amount)
}

// Totals returns the sum of prices paid and of expenses over the fleet.
func (f *Fleet) Totals() (paid, spent Money) {
	paid, spent = M(0, f.currency), M(0, f.currency)
	for _, b := range f.boats {
		paid = paid.Add(b.PricePaid)
		spent = spent.Add(b.Expenses)
	}
	return paid, spent
}

// MarshalJSON writes the fleet as a JSON array of boats.
func (f *Fleet) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.boats)
}

// Query evaluates a JSONPath expression (e.g. `$[?(@.kind=="POWER")].name`)
// over the JSON representation of the fleet.
func (f *Fleet) Query(path string) (any, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	res, err := jsonpath.Get(path, v)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	return res, nil
}
