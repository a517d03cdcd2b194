package selftypes

import "errors"

// Sentinel errors for the four fatal failure kinds: an unresolved name, an
// application whose head is not a suitable abstraction, two classifiers
// that will not unify, and a closure binding that refers to a sibling bound
// in the same batch. A binding whose own classifier is ill-formed fails
// with the error of the judgement that rejected it. Every constructed
// error wraps exactly one of
// these via fmt.Errorf's %w, so callers can errors.Is against the kind of
// failure without parsing message text, generalizing the teacher's single
// noRuleApplies sentinel (fullsimple.go, untyped.go) to the four kinds
// this calculus distinguishes.
var (
	ErrUndeclaredName   = errors.New("undeclared name")
	ErrInvalidApplicant = errors.New("invalid applicant")
	ErrUnifyMismatch    = errors.New("unification mismatch")
	ErrIllKinded        = errors.New("ill-kinded context or closure")
)
