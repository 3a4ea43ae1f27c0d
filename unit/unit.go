// unit/unit.go
package unit

// Unit tags a reading with its physical measurement unit. The set is
// closed; transports encode the tag as a single byte.
type Unit uint8

const (
	Celsius        Unit = iota // temperature, °C
	Percent                    // relative humidity and other ratios, %
	Lux                        // illuminance, lx
	Pascal                     // pressure, Pa
	Volt                       // electrical potential, V
	Ampere                     // electrical current, A
	MeterPerSecond             // speed, m/s
)

// Valid reports whether u is one of the recognized units.
func (u Unit) Valid() bool { return u <= MeterPerSecond }

// Text returns the display symbol for u, or "" for a tag outside the
// recognized set.
func (u Unit) Text() string {
	switch u {
	case Celsius:
		return "°C"
	case Percent:
		return "%"
	case Lux:
		return "lx"
	case Pascal:
		return "Pa"
	case Volt:
		return "V"
	case Ampere:
		return "A"
	case MeterPerSecond:
		return "m/s"
	default:
		return ""
	}
}

// String returns a short lowercase name, suitable for log fields.
func (u Unit) String() string {
	switch u {
	case Celsius:
		return "celsius"
	case Percent:
		return "percent"
	case Lux:
		return "lux"
	case Pascal:
		return "pascal"
	case Volt:
		return "volt"
	case Ampere:
		return "ampere"
	case MeterPerSecond:
		return "meter_per_second"
	default:
		return "unknown"
	}
}
