package servo

import "math"

// Servo PWM timing.
const (
	FrequencyHz = 50
	PeriodUS    = 1_000_000 / FrequencyHz // 20 ms

	PCA9685Resolution = 4096  // 12-bit
	LEDCResolution    = 65536 // 16-bit ESP32 LEDC
)

// PCA9685Ticks converts a pulse width to a 12-bit PCA9685 count at 50 Hz.
func PCA9685Ticks(us int) int {
	return pulseToTicks(us, PCA9685Resolution)
}

// LEDCTicks converts a pulse width to a 16-bit ESP32 LEDC duty at 50 Hz.
func LEDCTicks(us int) int {
	return pulseToTicks(us, LEDCResolution)
}

// PulseForPCA9685Ticks converts a PCA9685 count back to microseconds.
func PulseForPCA9685Ticks(ticks int) int {
	return ticksToPulse(ticks, PCA9685Resolution)
}

// PulseForLEDCTicks converts an LEDC duty back to microseconds.
func PulseForLEDCTicks(ticks int) int {
	return ticksToPulse(ticks, LEDCResolution)
}

func pulseToTicks(us, resolution int) int {
	ticks := int(math.Round(float64(us) * float64(resolution) / PeriodUS))
	return max(0, min(ticks, resolution-1))
}

func ticksToPulse(ticks, resolution int) int {
	return int(math.Round(float64(ticks) * PeriodUS / float64(resolution)))
}
