package unit

import "testing"

func TestTextAndString(t *testing.T) {
	cases := []struct {
		u    Unit
		text string
		name string
	}{
		{Celsius, "°C", "celsius"},
		{Percent, "%", "percent"},
		{Lux, "lx", "lux"},
		{Pascal, "Pa", "pascal"},
		{Volt, "V", "volt"},
		{Ampere, "A", "ampere"},
		{MeterPerSecond, "m/s", "meter_per_second"},
	}
	for _, c := range cases {
		if got := c.u.Text(); got != c.text {
			t.Fatalf("%s: Text() = %q, want %q", c.name, got, c.text)
		}
		if got := c.u.String(); got != c.name {
			t.Fatalf("%s: String() = %q, want %q", c.name, got, c.name)
		}
		if !c.u.Valid() {
			t.Fatalf("%s: Valid() = false", c.name)
		}
	}
}

func TestOutOfSetTag(t *testing.T) {
	bad := Unit(200)
	if bad.Valid() {
		t.Fatal("out-of-set tag reported valid")
	}
	if got := bad.Text(); got != "" {
		t.Fatalf("Text() = %q, want empty", got)
	}
	if got := bad.String(); got != "unknown" {
		t.Fatalf("String() = %q, want \"unknown\"", got)
	}
}
