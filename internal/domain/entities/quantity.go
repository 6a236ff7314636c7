package entities

import "github.com/shopspring/decimal"

// Quantity is the engine's single type for all quantities.
// decimal.Decimal is used instead of float64 so that repeated qty-per
// multiplication across BOM levels never accumulates
// binary-floating-point drift.
type Quantity = decimal.Decimal

// ZeroEpsilon is the tolerance below which a quantity is treated as
// zero. It exists to suppress lot-for-lot artifacts from upstream
// data that nets to a hair above/below zero.
var ZeroEpsilon = decimal.New(1, -9)

// IsEffectivelyZero reports whether q is within ZeroEpsilon of zero.
func IsEffectivelyZero(q Quantity) bool {
	return q.Abs().LessThan(ZeroEpsilon)
}

// IsPositive reports whether q is greater than ZeroEpsilon.
func IsPositive(q Quantity) bool {
	return q.GreaterThan(ZeroEpsilon)
}

// ClampNonNegative returns zero if q is within ZeroEpsilon of or below
// zero, otherwise q unchanged. Used to suppress negative-near-zero noise
// in projected on-hand without masking a genuine invariant violation.
func ClampNonNegative(q Quantity) Quantity {
	if q.Sign() < 0 && IsEffectivelyZero(q) {
		return decimal.Zero
	}
	return q
}
