package servo

import (
	"errors"
	"fmt"
)

// Pin is an ESP32-S3 GPIO number.
type Pin uint8

func (p Pin) String() string {
	return fmt.Sprintf("GPIO%d", uint8(p))
}

// Channel is a logical servo index, independent of wiring.
type Channel int

// Valid reports whether ch is inside the channel table.
func (ch Channel) Valid() bool {
	return ch >= 0 && int(ch) < NumChannels
}

// ErrChannelOutOfRange is returned for a channel index outside [0, NumChannels).
var ErrChannelOutOfRange = errors.New("servo channel out of range")

// channelPins maps channel index to GPIO.
//
// ESP32-S3 restrictions:
//   - GPIO 0, 3, 45, 46 are strapping pins
//   - GPIO 6-11 are wired to the SPI flash
//   - GPIO 26-32 are used by PSRAM when fitted
//
// Channels 2, 3, 8 and 9 used to sit on GPIO 6-9 and were moved off flash.
var channelPins = [...]Pin{
	4,  // left_shoulder
	5,  // left_elbow_1
	12, // left_elbow_2
	13, // left_gripper
	15, // right_shoulder
	16, // right_elbow_1
	17, // right_elbow_2
	18, // right_gripper
	19, // neck_up_down
	20, // neck_left_right
}

// NumChannels is the number of servo channels.
const NumChannels = len(channelPins)

// One role per channel; fails to compile if the two ever disagree.
var _ = [1]struct{}{}[NumChannels-int(roleCount)]

// PinFor returns the GPIO driving channel ch.
func PinFor(ch Channel) (Pin, error) {
	if !ch.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrChannelOutOfRange, int(ch))
	}
	return channelPins[ch], nil
}

// IsSafePin reports whether p can carry a servo PWM signal on the ESP32-S3.
// Safe: 1, 2, 4, 5, 12-21, 35-42, 47, 48.
func IsSafePin(p Pin) bool {
	switch {
	case p == 1, p == 2, p == 4, p == 5:
		return true
	case p >= 12 && p <= 21:
		return true
	case p >= 35 && p <= 42:
		return true
	case p == 47, p == 48:
		return true
	}
	return false
}

// ReservedReason explains why p is not safe for PWM. It returns "" for safe pins.
func ReservedReason(p Pin) string {
	switch {
	case IsSafePin(p):
		return ""
	case p == 0, p == 3, p == 45, p == 46:
		return "strapping pin"
	case p >= 6 && p <= 11:
		return "SPI flash"
	case p >= 26 && p <= 32:
		return "PSRAM"
	case (p >= 22 && p <= 25) || p > 48:
		return "not present on ESP32-S3"
	}
	return "not a PWM-safe GPIO"
}
