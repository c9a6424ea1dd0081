package mpin

import "time"

// Strength is the final verdict on a PIN.
type Strength string

const (
	StrengthWeak   Strength = "WEAK"
	StrengthStrong Strength = "STRONG"
)

// Reason identifies why a PIN was classified weak. The string values are
// stable API identifiers and must not change between releases.
type Reason string

const (
	ReasonCommonlyUsed Reason = "COMMONLY_USED"
	ReasonDOBSelf      Reason = "DEMOGRAPHIC_DOB_SELF"
	ReasonDOBSpouse    Reason = "DEMOGRAPHIC_DOB_SPOUSE"
	ReasonAnniversary  Reason = "DEMOGRAPHIC_ANNIVERSARY"
)

// Verdict is the result of a single classification. Strength is WEAK exactly
// when Reasons is non-empty.
type Verdict struct {
	Strength Strength `json:"strength"`
	Reasons  []Reason `json:"reasons"`
}

// Demographics carries the optional personal dates a PIN is checked against.
// Nil fields are skipped.
type Demographics struct {
	DOBSelf     *Date `json:"dob_self,omitempty"`
	DOBSpouse   *Date `json:"dob_spouse,omitempty"`
	Anniversary *Date `json:"anniversary,omitempty"`
}

// Classifier evaluates PIN strength. The default obtained via New reads the
// wall clock for century-pivot decisions; tests fix the clock with
// WithTimeFunc or WithReferenceYear to keep date-adjacent results
// deterministic.
//
// A Classifier is stateless apart from its clock and is safe for concurrent
// use.
type Classifier struct {
	now func() time.Time
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithTimeFunc replaces the clock used to resolve two-digit-year century
// ambiguity. Nil functions are ignored.
func WithTimeFunc(fn func() time.Time) Option {
	return func(c *Classifier) {
		if fn != nil {
			c.now = fn
		}
	}
}

// WithReferenceYear pins the processing year used for century pivots.
// Non-positive years are ignored.
func WithReferenceYear(year int) Option {
	return func(c *Classifier) {
		if year > 0 {
			c.now = func() time.Time {
				return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
			}
		}
	}
}

// New returns a Classifier with the given options applied.
func New(opts ...Option) *Classifier {
	c := &Classifier{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// rule pairs a weakness predicate with the reason it contributes. Rules are
// evaluated in order and each reason is appended at most once, which gives
// the ordered duplicate-free reason list the Verdict contract requires.
type rule struct {
	check  func() bool
	reason Reason
}

func applyRules(rules ...rule) []Reason {
	var reasons []Reason
	seen := make(map[Reason]bool, len(rules))
	for _, r := range rules {
		if seen[r.reason] || !r.check() {
			continue
		}
		seen[r.reason] = true
		reasons = append(reasons, r.reason)
	}
	return reasons
}

// Classify evaluates pin against the algorithmic pattern detectors and the
// supplied demographic dates.
//
// Invalid input (wrong length, non-digit characters, empty) is reported as
// STRONG with no reasons: an unusable credential is not a weak live
// credential. Callers must not read STRONG-with-no-reasons as proof the
// value is an acceptable PIN.
func (c *Classifier) Classify(pin string, demo Demographics) Verdict {
	if !ValidFormat(pin) {
		return Verdict{Strength: StrengthStrong, Reasons: []Reason{}}
	}

	reasons := applyRules(
		rule{reason: ReasonCommonlyUsed, check: func() bool {
			return Sequential(pin) || Repeated(pin) || Palindrome(pin) || KeypadPattern(pin)
		}},
		rule{reason: ReasonDOBSelf, check: c.dateMatch(pin, demo.DOBSelf)},
		rule{reason: ReasonDOBSpouse, check: c.dateMatch(pin, demo.DOBSpouse)},
		rule{reason: ReasonAnniversary, check: c.dateMatch(pin, demo.Anniversary)},
	)
	if reasons == nil {
		return Verdict{Strength: StrengthStrong, Reasons: []Reason{}}
	}
	return Verdict{Strength: StrengthWeak, Reasons: reasons}
}

func (c *Classifier) dateMatch(pin string, d *Date) func() bool {
	return func() bool {
		if d == nil {
			return false
		}
		return c.datePINs(*d)[pin]
	}
}

// ValidFormat reports whether pin is a classifiable PIN: ASCII digits only,
// length exactly 4 or 6.
func ValidFormat(pin string) bool {
	if len(pin) != 4 && len(pin) != 6 {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}

var defaultClassifier = New()

// Classify runs the default wall-clock Classifier. See Classifier.Classify.
func Classify(pin string, demo Demographics) Verdict {
	return defaultClassifier.Classify(pin, demo)
}
