// sensor/env.go
package sensor

import (
	"sensordata-go/scaled"
	"sensordata-go/unit"
)

// Environmental kinds. Each is a zero-cost instantiation of scaled.Value;
// the traits type pins the descriptor at compile time and MustSpec aborts
// startup if a descriptor is ever edited into an invalid state.

type temperatureTraits struct{}

func (temperatureTraits) Spec() scaled.Spec[float32] { return temperatureSpec }

var temperatureSpec = scaled.MustSpec[int16](scaled.Spec[float32]{
	Min:        -50,
	Max:        50,
	Resolution: 0.1,
	Unit:       unit.Celsius,
})

// Temperature is an air temperature reading, -50.0..+50.0 °C in tenths.
type Temperature = scaled.Value[int16, float32, temperatureTraits]

// NewTemperature returns a defined reading, clamped into range.
func NewTemperature(v float32) Temperature {
	return scaled.New[int16, float32, temperatureTraits](v)
}

type humidityTraits struct{}

func (humidityTraits) Spec() scaled.Spec[float32] { return humiditySpec }

var humiditySpec = scaled.MustSpec[uint8](scaled.Spec[float32]{
	Min:        0,
	Max:        100,
	Resolution: 0.5,
	Unit:       unit.Percent,
})

// Humidity is a relative humidity reading, 0..100 %RH in half-percent
// steps. The whole domain fits one byte on the wire.
type Humidity = scaled.Value[uint8, float32, humidityTraits]

// NewHumidity returns a defined reading, clamped into range.
func NewHumidity(v float32) Humidity {
	return scaled.New[uint8, float32, humidityTraits](v)
}

type illuminanceTraits struct{}

func (illuminanceTraits) Spec() scaled.Spec[float32] { return illuminanceSpec }

var illuminanceSpec = scaled.MustSpec[uint16](scaled.Spec[float32]{
	Min:        0,
	Max:        65535,
	Resolution: 1,
	Unit:       unit.Lux,
})

// Illuminance is a light intensity reading, 0..65535 lx in whole lux.
type Illuminance = scaled.Value[uint16, float32, illuminanceTraits]

// NewIlluminance returns a defined reading, clamped into range.
func NewIlluminance(v float32) Illuminance {
	return scaled.New[uint16, float32, illuminanceTraits](v)
}

type pressureTraits struct{}

func (pressureTraits) Spec() scaled.Spec[float32] { return pressureSpec }

var pressureSpec = scaled.MustSpec[uint32](scaled.Spec[float32]{
	Min:        0,
	Max:        1_000_000,
	Resolution: 1,
	Unit:       unit.Pascal,
})

// Pressure is an absolute pressure reading, 0..1 MPa in whole pascals.
type Pressure = scaled.Value[uint32, float32, pressureTraits]

// NewPressure returns a defined reading, clamped into range.
func NewPressure(v float32) Pressure {
	return scaled.New[uint32, float32, pressureTraits](v)
}

type windSpeedTraits struct{}

func (windSpeedTraits) Spec() scaled.Spec[float32] { return windSpeedSpec }

var windSpeedSpec = scaled.MustSpec[uint16](scaled.Spec[float32]{
	Min:        0,
	Max:        100,
	Resolution: 0.1,
	Unit:       unit.MeterPerSecond,
})

// WindSpeed is an air speed reading, 0..100 m/s in tenths.
type WindSpeed = scaled.Value[uint16, float32, windSpeedTraits]

// NewWindSpeed returns a defined reading, clamped into range.
func NewWindSpeed(v float32) WindSpeed {
	return scaled.New[uint16, float32, windSpeedTraits](v)
}
