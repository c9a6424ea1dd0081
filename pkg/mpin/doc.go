// Package mpin classifies short numeric PINs (MPINs) as WEAK or STRONG by
// detecting algorithmically guessable patterns and matches against personal
// dates.
//
// A PIN is flagged weak when it is a mod-10 sequence ("1234", "8901"), built
// from a repeating unit ("1111", "123123"), a palindrome ("1221"), an
// easily-typed telephone-keypad shape ("2580", "1397"), or derivable from a
// supplied birth or anniversary date in any common encoding (DDMM, MMDD,
// DDMMYY, MMDDYY, YYMMDD, with both centuries of a two-digit year matched).
// Only 4- and 6-digit PINs are classifiable; anything else is reported as
// STRONG with no reasons because an unusable credential cannot be exploited
// as a weak live one.
//
// # Architecture
//
// Internally the package is split per concern.
//
//   - patterns.go – digit-level detectors: Sequential, Repeated, Palindrome.
//
//   - keypad.go   – keypad geometry: collinear runs, L-shapes, and the fixed
//     corner-traversal table, composed into KeypadPattern.
//
//   - dates.go    – the Date value type with leap-aware construction and the
//     expansion of a date into its plausible PIN encodings.
//
//   - mpin.go     – the Classifier, which evaluates detectors as ordered
//     rules and aggregates duplicate-free Reason codes into a Verdict.
//
// Every operation is a pure function of its inputs; the only ambient input
// is the clock used to resolve two-digit-year century ambiguity, which is
// injectable via WithTimeFunc or WithReferenceYear so results stay
// deterministic under test. A Classifier is safe for concurrent use.
//
// # Usage
//
//	package main
//
//	import (
//	    "fmt"
//	    "time"
//
//	    "github.com/dmitrymomot/pinkit/pkg/mpin"
//	)
//
//	func main() {
//	    dob := mpin.MustDate(1990, time.March, 5)
//
//	    verdict := mpin.Classify("0503", mpin.Demographics{DOBSelf: &dob})
//	    fmt.Println(verdict.Strength) // WEAK
//	    fmt.Println(verdict.Reasons)  // [DEMOGRAPHIC_DOB_SELF]
//	}
//
// # Error Handling
//
// Classification itself never fails: every input yields a well-formed
// Verdict, with format-invalid input mapped to {STRONG, []}. Construction of
// impossible dates is rejected by NewDate with ErrInvalidDate, and
// LoadConfig reports ErrInvalidConfig for unusable environment values; both
// are detectable with errors.Is.
package mpin
