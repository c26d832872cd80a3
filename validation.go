package fleet

import "fmt"

// Validate checks the boat invariants: known kind, non-negative amounts, and
// expenses lower or equal to the price paid.
func (b *Boat) Validate() error {
	if b.Kind != Sailing && b.Kind != Power {
		return fmt.Errorf("boat %q: unknown kind %d", b.Name, int(b.Kind))
	}
	if b.PricePaid.IsNegative() {
		return fmt.Errorf("boat %q: negative price paid %s", b.Name, b.PricePaid.Fixed(2))
	}
	if b.Expenses.IsNegative() {
		return fmt.Errorf("boat %q: negative expenses %s", b.Name, b.Expenses.Fixed(2))
	}
	if b.Expenses.GreaterThan(b.PricePaid) {
		return fmt.Errorf("boat %q: expenses %s exceed price paid %s", b.Name, b.Expenses.Fixed(2), b.PricePaid.Fixed(2))
	}
	return nil
}
