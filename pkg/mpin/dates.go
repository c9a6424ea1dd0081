package mpin

import (
	"fmt"
	"sort"
	"time"
)

// Date is a calendar date. Construct values with NewDate so that impossible
// dates (month 13, Feb 30, Feb 29 outside leap years) are rejected before
// they reach the classifier.
type Date struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// NewDate returns the date or ErrInvalidDate when the triple does not denote
// a real calendar date. Validity is checked by round-tripping through
// time.Date, which normalizes out-of-range components.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustDate is NewDate that panics on invalid input. Intended for literals in
// tests and examples.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) valid() bool {
	_, err := NewDate(d.Year, d.Month, d.Day)
	return err == nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// datePINs expands a date into every digit string someone might plausibly
// set as a PIN derived from it. Four-digit forms cover both field orders
// (DDMM, MMDD); six-digit forms append or prepend a two-digit year in the
// DDMMYY, MMDDYY and YYMMDD arrangements.
//
// Century ambiguity is resolved symmetrically: the stored year is projected
// into both the current and the previous century (relative to the
// classifier's clock), so "98" matches a 1998 date and "04" matches a 2004
// date no matter which century the caller recorded. The literal last two
// digits of the stored year are always included as well, which keeps years
// outside both candidate centuries matchable.
func (c *Classifier) datePINs(d Date) map[string]bool {
	if !d.valid() {
		return nil
	}

	dd := fmt.Sprintf("%02d", d.Day)
	mm := fmt.Sprintf("%02d", int(d.Month))

	pins := map[string]bool{
		dd + mm: true,
		mm + dd: true,
	}

	addYY := func(yy string) {
		pins[dd+mm+yy] = true
		pins[mm+dd+yy] = true
		pins[yy+mm+dd] = true
	}

	currentCentury := c.now().Year() / 100 * 100
	for _, century := range []int{currentCentury - 100, currentCentury} {
		offset := d.Year - century
		if offset >= 0 && offset < 100 {
			addYY(fmt.Sprintf("%02d", offset))
		}
	}
	yy := d.Year % 100
	if yy < 0 {
		yy += 100
	}
	addYY(fmt.Sprintf("%02d", yy))

	return pins
}

// DerivedPINs returns the date's plausible PIN encodings in sorted order.
func (c *Classifier) DerivedPINs(d Date) []string {
	set := c.datePINs(d)
	pins := make([]string, 0, len(set))
	for pin := range set {
		pins = append(pins, pin)
	}
	sort.Strings(pins)
	return pins
}

// DerivedPINs expands d with the default wall-clock Classifier.
func DerivedPINs(d Date) []string {
	return defaultClassifier.DerivedPINs(d)
}
