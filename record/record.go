// record/record.go

// Package record defines the compact wire layout for one environmental
// sample. It is the storage-side consumer of the quantized values: only
// raw scaled integers and a definedness bitmap cross the boundary, never
// floats. The layout is fixed-size so a batch of samples can live in a
// fixed-width ring or frame.
package record

import (
	"encoding/binary"
	"errors"
	"fmt"

	"sensordata-go/sensor"
)

// Size is the encoded length in bytes: one presence bitmap byte followed
// by the raw values in field order, little-endian.
const Size = 10

// Presence bitmap bits, one per field in layout order.
const (
	bitTemperature = 1 << iota
	bitHumidity
	bitIlluminance
	bitPressure
)

var (
	ErrSize     = errors.New("bad_record_size")
	ErrRawRange = errors.New("raw_out_of_domain")
)

// Record is one environmental sample. Undefined fields are legal and
// encode as a cleared bitmap bit with zeroed value bytes; on decode the
// value bytes under a cleared bit are padding and are ignored, whatever
// they contain.
type Record struct {
	Temperature sensor.Temperature
	Humidity    sensor.Humidity
	Illuminance sensor.Illuminance
	Pressure    sensor.Pressure
}

// MarshalBinary encodes the record into its fixed Size-byte layout.
func (r Record) MarshalBinary() ([]byte, error) {
	buf := make([]byte, Size)
	if raw, ok := r.Temperature.Raw(); ok {
		buf[0] |= bitTemperature
		binary.LittleEndian.PutUint16(buf[1:3], uint16(raw))
	}
	if raw, ok := r.Humidity.Raw(); ok {
		buf[0] |= bitHumidity
		buf[3] = raw
	}
	if raw, ok := r.Illuminance.Raw(); ok {
		buf[0] |= bitIlluminance
		binary.LittleEndian.PutUint16(buf[4:6], raw)
	}
	if raw, ok := r.Pressure.Raw(); ok {
		buf[0] |= bitPressure
		binary.LittleEndian.PutUint32(buf[6:10], raw)
	}
	return buf, nil
}

// UnmarshalBinary decodes data into r. Every present field goes through
// the strict raw-domain check; an out-of-domain integer fails the decode
// rather than being clamped into a plausible-looking reading.
func (r *Record) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return fmt.Errorf("%w: %d bytes", ErrSize, len(data))
	}
	dec := Record{}
	if data[0]&bitTemperature != 0 {
		if !dec.Temperature.SetRaw(int16(binary.LittleEndian.Uint16(data[1:3]))) {
			return fmt.Errorf("temperature: %w", ErrRawRange)
		}
	}
	if data[0]&bitHumidity != 0 {
		if !dec.Humidity.SetRaw(data[3]) {
			return fmt.Errorf("humidity: %w", ErrRawRange)
		}
	}
	if data[0]&bitIlluminance != 0 {
		if !dec.Illuminance.SetRaw(binary.LittleEndian.Uint16(data[4:6])) {
			return fmt.Errorf("illuminance: %w", ErrRawRange)
		}
	}
	if data[0]&bitPressure != 0 {
		if !dec.Pressure.SetRaw(binary.LittleEndian.Uint32(data[6:10])) {
			return fmt.Errorf("pressure: %w", ErrRawRange)
		}
	}
	*r = dec
	return nil
}
