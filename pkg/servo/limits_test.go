package servo

import (
	"errors"
	"math"
	"testing"
)

func TestLimits_Invariants(t *testing.T) {
	if MinPulseUS >= MaxPulseUS {
		t.Errorf("MinPulseUS %d >= MaxPulseUS %d", MinPulseUS, MaxPulseUS)
	}
	if MinAngle > HomeAngle || HomeAngle > MaxAngle {
		t.Errorf("HomeAngle %d outside [%d, %d]", HomeAngle, MinAngle, MaxAngle)
	}
	if err := MG996R.Validate(); err != nil {
		t.Errorf("MG996R.Validate() = %v", err)
	}
}

func TestLimits_ValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		lim  Limits
	}{
		{"empty pulse range", Limits{MinPulseUS: 1500, MaxPulseUS: 1500, MaxAngle: 180, HomeAngle: 90}},
		{"inverted pulse range", Limits{MinPulseUS: 2500, MaxPulseUS: 500, MaxAngle: 180, HomeAngle: 90}},
		{"empty angle range", Limits{MinPulseUS: 500, MaxPulseUS: 2500, MinAngle: 90, MaxAngle: 90, HomeAngle: 90}},
		{"home below min", Limits{MinPulseUS: 500, MaxPulseUS: 2500, MinAngle: 10, MaxAngle: 180, HomeAngle: 0}},
		{"home above max", Limits{MinPulseUS: 500, MaxPulseUS: 2500, MaxAngle: 180, HomeAngle: 181}},
	}

	for _, tt := range tests {
		err := tt.lim.Validate()
		if !errors.Is(err, ErrInvalidLimits) {
			t.Errorf("%s: Validate() = %v, want ErrInvalidLimits", tt.name, err)
		}
	}
}

func TestLimits_PulseForAngle(t *testing.T) {
	tests := []struct {
		deg      float64
		expected int
	}{
		{0, 500},
		{180, 2500},
		{90, 1500},
		{45, 1000},
		{135, 2000},
		{-20, 500},          // clamped
		{270, 2500},         // clamped
		{0.04, 500},         // rounds down
		{0.05, 501},         // 500.55 rounds up
		{math.NaN(), 1500},  // home
		{math.Inf(1), 2500}, // clamped
		{math.Inf(-1), 500}, // clamped
	}

	for _, tt := range tests {
		got := MG996R.PulseForAngle(tt.deg)
		if got != tt.expected {
			t.Errorf("PulseForAngle(%v) = %d, want %d", tt.deg, got, tt.expected)
		}
	}
}

func TestLimits_AngleForPulse(t *testing.T) {
	tests := []struct {
		us       int
		expected float64
	}{
		{500, 0},
		{2500, 180},
		{1500, 90},
		{1000, 45},
		{1234, 66.1},
		{100, 0},    // clamped
		{3000, 180}, // clamped
	}

	for _, tt := range tests {
		got := MG996R.AngleForPulse(tt.us)
		if math.Abs(got-tt.expected) > 0.001 {
			t.Errorf("AngleForPulse(%d) = %f, want %f", tt.us, got, tt.expected)
		}
	}
}

func TestLimits_PulseRoundTrip(t *testing.T) {
	for us := MinPulseUS; us <= MaxPulseUS; us += 100 {
		deg := MG996R.AngleForPulse(us)
		back := MG996R.PulseForAngle(deg)
		if math.Abs(float64(back-us)) > 1 {
			t.Errorf("Round-trip failed: %d -> %f -> %d", us, deg, back)
		}
	}
}

func TestLimits_Normalize(t *testing.T) {
	tests := []struct {
		deg      float64
		expected float64
	}{
		{0, -100.0},
		{180, 100.0},
		{90, 0.0},
		{45, -50.0},
		{135, 50.0},
	}

	for _, tt := range tests {
		got := MG996R.Normalize(tt.deg)
		if math.Abs(got-tt.expected) > 0.001 {
			t.Errorf("Normalize(%v) = %f, want %f", tt.deg, got, tt.expected)
		}
		back := MG996R.Denormalize(got)
		if math.Abs(back-tt.deg) > 0.001 {
			t.Errorf("Denormalize(%f) = %f, want %f", got, back, tt.deg)
		}
	}
}

func TestLimits_ClampAngle(t *testing.T) {
	if got := MG996R.ClampAngle(-5); got != 0 {
		t.Errorf("ClampAngle(-5) = %f, want 0", got)
	}
	if got := MG996R.ClampAngle(200); got != 180 {
		t.Errorf("ClampAngle(200) = %f, want 180", got)
	}
	if got := MG996R.ClampAngle(math.NaN()); got != HomeAngle {
		t.Errorf("ClampAngle(NaN) = %f, want %d", got, HomeAngle)
	}
	if got := MG996R.ClampAngle(42.5); got != 42.5 {
		t.Errorf("ClampAngle(42.5) = %f, want 42.5", got)
	}
}
