// scaled/value.go
package scaled

import (
	"math"

	"golang.org/x/exp/constraints"

	"sensordata-go/unit"
)

// Traits binds a Spec to a type at compile time. Implementations are
// zero-size tag types; a Value instantiates one to read the descriptor
// instead of holding a runtime reference to it.
type Traits[F constraints.Float] interface {
	Spec() Spec[F]
}

// Value holds either no reading or one scaled integer inside the valid
// interval. Applications see the physical floating-point domain; storage
// and transports see the compact integer. The zero value is undefined and
// ready to use, and copies are independent.
type Value[S constraints.Integer, F constraints.Float, T Traits[F]] struct {
	raw     S
	defined bool
}

// New returns a defined Value: v is clamped into the physical interval and
// quantized. It never fails; out-of-range input is corrected, not
// rejected.
func New[S constraints.Integer, F constraints.Float, T Traits[F]](v F) Value[S, F, T] {
	var out Value[S, F, T]
	out.Set(v)
	return out
}

func (val Value[S, F, T]) spec() Spec[F] {
	var t T
	return t.Spec()
}

// Defined reports whether the Value currently holds a reading.
func (val Value[S, F, T]) Defined() bool { return val.defined }

// Value converts the stored integer back to the physical domain. The
// float is recomputed on every call, so it can never drift from the
// integer. The second result is false while undefined.
func (val Value[S, F, T]) Value() (F, bool) {
	if !val.defined {
		return 0, false
	}
	return physical(val.spec(), val.raw), true
}

// Set clamps v into [Min, Max], quantizes, and overwrites the state
// unconditionally. The return value is advisory: true when v was already
// inside the interval and no clamping was needed.
func (val *Value[S, F, T]) Set(v F) bool {
	sp := val.spec()
	if math.IsNaN(float64(v)) { // NaN cannot be clamped; snap to the lower bound
		val.raw = quantize[S](sp, sp.Min)
		val.defined = true
		return false
	}
	c := clamp(v, sp.Min, sp.Max)
	val.raw = quantize[S](sp, c)
	val.defined = true
	return v == c
}

// Raw returns the stored integer with no conversion: the representation a
// transport or record layout serializes.
func (val Value[S, F, T]) Raw() (S, bool) {
	if !val.defined {
		return 0, false
	}
	return val.raw, true
}

// SetRaw accepts a wire integer only if it lies within the valid scaled
// interval; out-of-domain input leaves the prior state untouched and
// returns false. Unlike Set there is no clamping here: a raw value outside
// the interval is a storage-level protocol violation, not a measurement to
// correct.
func (val *Value[S, F, T]) SetRaw(r S) bool {
	lo, hi := rawBounds[S](val.spec())
	if r < lo || r > hi {
		return false
	}
	val.raw = r
	val.defined = true
	return true
}

// Clear forces the undefined state. Safe to call repeatedly.
func (val *Value[S, F, T]) Clear() {
	val.raw = 0
	val.defined = false
}

// Static queries. These depend only on the bound descriptor, never on
// instance state.

func (val Value[S, F, T]) Min() F { return val.spec().Min }

func (val Value[S, F, T]) Max() F { return val.spec().Max }

func (val Value[S, F, T]) Resolution() F { return val.spec().Resolution }

func (val Value[S, F, T]) Unit() unit.Unit { return val.spec().Unit }

func (val Value[S, F, T]) UnitText() string { return val.spec().Unit.Text() }

// MinRaw and MaxRaw bound the wire representation accepted by SetRaw.
func (val Value[S, F, T]) MinRaw() S {
	lo, _ := rawBounds[S](val.spec())
	return lo
}

func (val Value[S, F, T]) MaxRaw() S {
	_, hi := rawBounds[S](val.spec())
	return hi
}

// clamp limits v to [lo, hi]; Validate guarantees lo <= hi.
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
