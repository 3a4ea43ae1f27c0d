// scaled/spec.go
package scaled

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"sensordata-go/unit"
)

// Definition-time failures. A Spec that trips one of these must never back
// a Value; kind packages bind their descriptors through MustSpec in
// package-level var initialization so a bad descriptor aborts at startup.
var (
	ErrResolution = errors.New("non_positive_resolution")
	ErrBounds     = errors.New("min_above_max")
	ErrStorage    = errors.New("bounds_exceed_storage")
	ErrUnit       = errors.New("unknown_unit")
)

// Spec describes one sensor kind: the physical interval it represents, the
// smallest increment worth distinguishing, and the unit tag. A Spec is
// plain immutable data; everything else the core needs is derived from
// these four fields.
type Spec[F constraints.Float] struct {
	Min        F
	Max        F
	Resolution F
	Unit       unit.Unit
}

// ScaleFactor is the physical-to-scaled multiplier, 1/Resolution.
func (sp Spec[F]) ScaleFactor() F { return 1 / sp.Resolution }

// Validate checks the descriptor invariants against storage type S:
// positive resolution, ordered bounds, a recognized unit tag, and scaled
// bounds that fit S.
func Validate[S constraints.Integer, F constraints.Float](sp Spec[F]) error {
	// The negated comparison also rejects a NaN resolution.
	if !(sp.Resolution > 0) {
		return ErrResolution
	}
	if sp.Min > sp.Max {
		return ErrBounds
	}
	if !sp.Unit.Valid() {
		return ErrUnit
	}
	sf := float64(sp.ScaleFactor())
	lo := math.RoundToEven(float64(sp.Min) * sf)
	hi := math.RoundToEven(float64(sp.Max) * sf)
	if !rawFits[S](lo) || !rawFits[S](hi) {
		return fmt.Errorf("%w: raw interval [%g, %g]", ErrStorage, lo, hi)
	}
	return nil
}

// MustSpec returns sp or panics if it violates an invariant. Kinds call it
// at init so misconfiguration is caught before any Value exists.
func MustSpec[S constraints.Integer, F constraints.Float](sp Spec[F]) Spec[F] {
	if err := Validate[S](sp); err != nil {
		panic(fmt.Errorf("scaled: invalid spec: %w", err))
	}
	return sp
}

// quantize converts a pre-clamped physical value to its scaled integer.
// Rounding is round-half-to-even throughout so physical/scaled round trips
// are deterministic.
func quantize[S constraints.Integer, F constraints.Float](sp Spec[F], v F) S {
	return S(math.RoundToEven(float64(v) * float64(sp.ScaleFactor())))
}

// physical converts a stored integer back to the physical domain.
func physical[S constraints.Integer, F constraints.Float](sp Spec[F], r S) F {
	return F(r) / sp.ScaleFactor()
}

// rawBounds derives the valid scaled interval from the physical bounds.
func rawBounds[S constraints.Integer, F constraints.Float](sp Spec[F]) (lo, hi S) {
	return quantize[S](sp, sp.Min), quantize[S](sp, sp.Max)
}

// rawFits reports whether the rounded scaled bound r is representable in
// S. The conversion chain wraps out-of-range values, so a changed result
// betrays an overflow (a negative r against unsigned S included).
func rawFits[S constraints.Integer](r float64) bool {
	if math.IsNaN(r) || math.Abs(r) >= 1<<62 {
		return false
	}
	n := int64(r)
	var zero S
	if n < 0 && zero-1 > zero { // unsigned storage cannot hold a negative bound
		return false
	}
	return int64(S(n)) == n
}
