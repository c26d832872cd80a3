package fleet

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// this file contains functions to handle the catalog format.
// It should remain human readable and easy to edit by hand.
//
// A catalog is a text file with one boat per non-blank line, and six comma
// separated fields in this order:
//
//	kind,name,year,make,lengthFeet,pricePaid
//
// For instance:
//
//	power,Betty,1980,Benteau,23,14999.99
//
// Fields are trimmed, kind is either SAILING or POWER in any case.

// catalogFields is the number of fields on a catalog line.
const catalogFields = 6

// ParseBoat parses a single catalog line into a new boat with no expenses.
func ParseBoat(line, currency string) (*Boat, error) {
	p := strings.Split(line, ",")
	if len(p) != catalogFields {
		return nil, &ParseError{Field: "line", Value: line, Err: fmt.Errorf("want %d fields, got %d", catalogFields, len(p))}
	}
	for i := range p {
		p[i] = strings.TrimSpace(p[i])
	}

	kind, err := ParseKind(p[0])
	if err != nil {
		return nil, err
	}
	year, err := strconv.Atoi(p[2])
	if err != nil {
		return nil, &ParseError{Field: "year", Value: p[2], Err: errors.Unwrap(err)}
	}
	length, err := strconv.Atoi(p[4])
	if err != nil {
		return nil, &ParseError{Field: "length", Value: p[4], Err: errors.Unwrap(err)}
	}
	price, err := ParseMoney(p[5], currency)
	if err != nil {
		return nil, &ParseError{Field: "price", Value: p[5], Err: err}
	}
	if price.IsNegative() {
		return nil, &ParseError{Field: "price", Value: p[5], Err: errors.New("must not be negative")}
	}

	return NewBoat(kind, p[1], year, p[3], length, price, M(0, currency)), nil
}

// ImportFleet reads a catalog from 'r'.
//
// Blank lines are skipped. The import is all or nothing: the first malformed
// line aborts it with a *ParseError holding the line number.
func ImportFleet(r io.Reader, currency string) (*Fleet, error) {
	f := New(currency)
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		b, err := ParseBoat(line, f.currency)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.Line = n
			}
			return nil, err
		}
		f.Append(b)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading catalog: %w", err)
	}
	return f, nil
}

// ExportFleet writes the fleet to 'w' in the catalog format.
//
// Expenses are not part of the catalog format, importing the output again
// starts every boat with no expenses.
func ExportFleet(w io.Writer, f *Fleet) error {
	for _, b := range f.boats {
		if _, err := fmt.Fprintln(w, b.CSV()); err != nil {
			return fmt.Errorf("cannot write catalog: %w", err)
		}
	}
	return nil
}
