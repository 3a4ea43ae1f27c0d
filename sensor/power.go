// sensor/power.go
package sensor

import (
	"sensordata-go/scaled"
	"sensordata-go/unit"
)

// Electrical kinds, stored in milli-units the way pack telemetry carries
// battery voltage and current. These use a float64 physical domain: a
// 0.001 resolution has no exact float32 reciprocal.

type voltageTraits struct{}

func (voltageTraits) Spec() scaled.Spec[float64] { return voltageSpec }

var voltageSpec = scaled.MustSpec[int32](scaled.Spec[float64]{
	Min:        -1000,
	Max:        1000,
	Resolution: 0.001,
	Unit:       unit.Volt,
})

// Voltage is an electrical potential reading, ±1000 V in millivolts.
// Signed: battery sense lines report both polarities.
type Voltage = scaled.Value[int32, float64, voltageTraits]

// NewVoltage returns a defined reading, clamped into range.
func NewVoltage(v float64) Voltage {
	return scaled.New[int32, float64, voltageTraits](v)
}

type currentTraits struct{}

func (currentTraits) Spec() scaled.Spec[float64] { return currentSpec }

var currentSpec = scaled.MustSpec[int32](scaled.Spec[float64]{
	Min:        -1000,
	Max:        1000,
	Resolution: 0.001,
	Unit:       unit.Ampere,
})

// Current is an electrical current reading, ±1000 A in milliamps. Sign
// follows the charge/discharge convention of the measuring device.
type Current = scaled.Value[int32, float64, currentTraits]

// NewCurrent returns a defined reading, clamped into range.
func NewCurrent(v float64) Current {
	return scaled.New[int32, float64, currentTraits](v)
}
