package record

import (
	"errors"
	"testing"

	"sensordata-go/sensor"
)

func TestRoundTrip(t *testing.T) {
	in := Record{
		Temperature: sensor.NewTemperature(25.3),
		Humidity:    sensor.NewHumidity(60),
		Illuminance: sensor.NewIlluminance(1234),
		Pressure:    sensor.NewPressure(101325),
	}
	data, err := in.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if len(data) != Size {
		t.Fatalf("encoded length = %d, want %d", len(data), Size)
	}

	var out Record
	if err := out.UnmarshalBinary(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch:\n in: %+v\nout: %+v", in, out)
	}
	if raw, _ := out.Temperature.Raw(); raw != 253 {
		t.Fatalf("temperature raw = %d, want 253", raw)
	}
	if raw, _ := out.Pressure.Raw(); raw != 101325 {
		t.Fatalf("pressure raw = %d, want 101325", raw)
	}
}

func TestUndefinedFieldsStayUndefined(t *testing.T) {
	in := Record{Temperature: sensor.NewTemperature(-7.5)}
	data, err := in.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out Record
	if err := out.UnmarshalBinary(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Temperature.Defined() {
		t.Fatal("temperature lost across the wire")
	}
	if out.Humidity.Defined() || out.Illuminance.Defined() || out.Pressure.Defined() {
		t.Fatal("absent fields came back defined")
	}
}

func TestIgnoresPaddingUnderClearedBits(t *testing.T) {
	in := Record{Temperature: sensor.NewTemperature(21)}
	data, _ := in.MarshalBinary()
	// Scribble over the value bytes of the absent fields; only the bitmap
	// decides what is present.
	for i := 3; i < Size; i++ {
		data[i] = 0xFF
	}

	var out Record
	if err := out.UnmarshalBinary(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Humidity.Defined() || out.Illuminance.Defined() || out.Pressure.Defined() {
		t.Fatal("padding bytes under cleared bits decoded as readings")
	}
	if raw, _ := out.Temperature.Raw(); raw != 210 {
		t.Fatalf("temperature raw = %d, want 210", raw)
	}
}

func TestRejectsOutOfDomainRaw(t *testing.T) {
	in := Record{Humidity: sensor.NewHumidity(50)}
	data, _ := in.MarshalBinary()
	data[3] = 201 // max scaled humidity is 200

	var out Record
	err := out.UnmarshalBinary(data)
	if !errors.Is(err, ErrRawRange) {
		t.Fatalf("unmarshal = %v, want ErrRawRange", err)
	}
	if out.Humidity.Defined() {
		t.Fatal("failed decode left a defined field behind")
	}
}

func TestRejectsBadLength(t *testing.T) {
	var out Record
	for _, n := range []int{0, Size - 1, Size + 1} {
		if err := out.UnmarshalBinary(make([]byte, n)); !errors.Is(err, ErrSize) {
			t.Fatalf("len %d: unmarshal = %v, want ErrSize", n, err)
		}
	}
}

func TestFailedDecodePreservesTarget(t *testing.T) {
	var out Record
	if err := out.UnmarshalBinary(make([]byte, Size)); err != nil {
		t.Fatalf("empty record should decode: %v", err)
	}
	out.Temperature = sensor.NewTemperature(1)

	bad := Record{Humidity: sensor.NewHumidity(10)}
	data, _ := bad.MarshalBinary()
	data[3] = 255
	if err := out.UnmarshalBinary(data); err == nil {
		t.Fatal("corrupt record decoded")
	}
	if raw, _ := out.Temperature.Raw(); raw != 10 {
		t.Fatalf("failed decode disturbed target: raw = %d, want 10", raw)
	}
}
