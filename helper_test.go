package fleet

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// betty returns the boat used throughout the tests.
func betty() *Boat {
	return NewBoat(Power, "Betty", 1980, "Benteau", 23, USD(14999.99), USD(0))
}

// windDancer returns a second boat, with some expenses.
func windDancer() *Boat {
	return NewBoat(Sailing, "Wind Dancer", 2005, "Catalina", 32, USD(85000.50), USD(1250))
}

// newTestFleet returns a fleet made of 'boats'.
func newTestFleet(boats ...*Boat) *Fleet {
	f := New("USD")
	for _, b := range boats {
		f.Append(b)
	}
	return f
}
