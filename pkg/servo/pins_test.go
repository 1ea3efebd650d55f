package servo

import (
	"errors"
	"testing"
)

func TestChannelPins_Distinct(t *testing.T) {
	owner := make(map[Pin]int)
	for ch, p := range channelPins {
		if prev, ok := owner[p]; ok {
			t.Errorf("%s used by channels %d and %d", p, prev, ch)
		}
		owner[p] = ch
	}
}

func TestChannelPins_Safe(t *testing.T) {
	for ch, p := range channelPins {
		if !IsSafePin(p) {
			t.Errorf("channel %d uses %s: %s", ch, p, ReservedReason(p))
		}
	}
}

func TestNumChannels(t *testing.T) {
	if NumChannels != 10 {
		t.Errorf("NumChannels = %d, want 10", NumChannels)
	}
	if NumChannels != len(channelPins) {
		t.Errorf("NumChannels = %d, table has %d entries", NumChannels, len(channelPins))
	}
}

func TestPinFor_OutOfRange(t *testing.T) {
	for _, ch := range []Channel{-1, Channel(NumChannels), 1000} {
		pin, err := PinFor(ch)
		if !errors.Is(err, ErrChannelOutOfRange) {
			t.Errorf("PinFor(%d) error = %v, want ErrChannelOutOfRange", ch, err)
		}
		if pin != 0 {
			t.Errorf("PinFor(%d) = %s, want zero pin on error", ch, pin)
		}
	}
}

func TestReservedReason(t *testing.T) {
	tests := []struct {
		pin    Pin
		reason string
	}{
		{0, "strapping pin"},
		{3, "strapping pin"},
		{45, "strapping pin"},
		{46, "strapping pin"},
		{6, "SPI flash"},
		{9, "SPI flash"},
		{11, "SPI flash"},
		{26, "PSRAM"},
		{32, "PSRAM"},
		{23, "not present on ESP32-S3"},
		{60, "not present on ESP32-S3"},
		{43, "not a PWM-safe GPIO"},
		{1, ""},
		{21, ""},
		{35, ""},
		{48, ""},
	}

	for _, tt := range tests {
		if got := ReservedReason(tt.pin); got != tt.reason {
			t.Errorf("ReservedReason(%s) = %q, want %q", tt.pin, got, tt.reason)
		}
		if got := IsSafePin(tt.pin); got != (tt.reason == "") {
			t.Errorf("IsSafePin(%s) = %v, want %v", tt.pin, got, tt.reason == "")
		}
	}
}

func TestPin_String(t *testing.T) {
	if got := Pin(18).String(); got != "GPIO18" {
		t.Errorf("Pin(18).String() = %q, want GPIO18", got)
	}
}
