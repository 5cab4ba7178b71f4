// Package recon matches cross-source monetary events: bank card payments
// against issuer spend windows, bank payment-app transfers against app
// ledgers, near-duplicate records across sources, and monthly cash flow.
// Every check is pure and derived; nothing here persists state.
package recon

import (
	"github.com/shopspring/decimal"
)

// Status is the tri-state outcome of a reconciliation comparison.
type Status string

const (
	StatusMatch    Status = "MATCH"
	StatusReview   Status = "REVIEW"
	StatusMismatch Status = "MISMATCH"
)

// Fixed design constants. Lookback days and the duplicate window are tunable
// inputs; these thresholds are not.
var (
	matchThreshold      = decimal.NewFromInt(1)   // |difference| below this is a MATCH
	cardReviewThreshold = decimal.NewFromInt(100) // card payments: REVIEW below this
	appReviewThreshold  = decimal.NewFromInt(50)  // payment apps: REVIEW below this
	hundred             = decimal.NewFromInt(100)
)

// DefaultLookbackDays is the trailing window searched for card spend prior to
// a payment date.
const DefaultLookbackDays = 45

// DefaultDuplicateThresholdHours is the maximum timestamp gap for two
// same-amount, cross-source records to be flagged as potential duplicates.
const DefaultDuplicateThresholdHours = 24

// statusFor classifies an absolute difference against a review ceiling.
func statusFor(difference, reviewThreshold decimal.Decimal) Status {
	abs := difference.Abs()
	switch {
	case abs.LessThan(matchThreshold):
		return StatusMatch
	case abs.LessThan(reviewThreshold):
		return StatusReview
	default:
		return StatusMismatch
	}
}

// matchPercentage is the symmetric min/max ratio in percent. When the larger
// side is not positive there is nothing to compare against, so the result is
// zero.
func matchPercentage(a, b decimal.Decimal) decimal.Decimal {
	lo, hi := a, b
	if lo.GreaterThan(hi) {
		lo, hi = hi, lo
	}
	if !hi.IsPositive() {
		return decimal.Zero
	}
	return lo.Div(hi).Mul(hundred).Round(2)
}
