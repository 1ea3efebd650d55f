package servo

import (
	"errors"
	"fmt"
	"math"
)

// MG996R travel limits, shared by every channel.
const (
	MinPulseUS = 500  // pulse width at MinAngle
	MaxPulseUS = 2500 // pulse width at MaxAngle
	MinAngle   = 0
	MaxAngle   = 180
	HomeAngle  = 90
)

// ErrInvalidLimits is returned when a Limits value is inconsistent.
var ErrInvalidLimits = errors.New("invalid servo limits")

// Limits holds the pulse and angle range of a servo model.
type Limits struct {
	MinPulseUS int `json:"min_pulse_us"`
	MaxPulseUS int `json:"max_pulse_us"`
	MinAngle   int `json:"min_angle"`
	MaxAngle   int `json:"max_angle"`
	HomeAngle  int `json:"home_angle"`
}

// MG996R is the servo fitted to all channels.
var MG996R = Limits{
	MinPulseUS: MinPulseUS,
	MaxPulseUS: MaxPulseUS,
	MinAngle:   MinAngle,
	MaxAngle:   MaxAngle,
	HomeAngle:  HomeAngle,
}

// Validate checks that the pulse range is non-empty and home lies within the angle range.
func (l Limits) Validate() error {
	var errs []error
	if l.MinPulseUS >= l.MaxPulseUS {
		errs = append(errs, fmt.Errorf("%w: min pulse %dus >= max pulse %dus", ErrInvalidLimits, l.MinPulseUS, l.MaxPulseUS))
	}
	if l.MinAngle >= l.MaxAngle {
		errs = append(errs, fmt.Errorf("%w: min angle %d >= max angle %d", ErrInvalidLimits, l.MinAngle, l.MaxAngle))
	}
	if l.HomeAngle < l.MinAngle || l.HomeAngle > l.MaxAngle {
		errs = append(errs, fmt.Errorf("%w: home angle %d outside [%d, %d]", ErrInvalidLimits, l.HomeAngle, l.MinAngle, l.MaxAngle))
	}
	return errors.Join(errs...)
}

// ClampAngle limits deg to [MinAngle, MaxAngle]. NaN maps to HomeAngle.
func (l Limits) ClampAngle(deg float64) float64 {
	if math.IsNaN(deg) {
		return float64(l.HomeAngle)
	}
	return math.Max(float64(l.MinAngle), math.Min(deg, float64(l.MaxAngle)))
}

// PulseForAngle converts an angle to a pulse width in microseconds.
// The angle is clamped first.
func (l Limits) PulseForAngle(deg float64) int {
	angleRange := float64(l.MaxAngle - l.MinAngle)
	if angleRange == 0 {
		return l.MinPulseUS
	}
	frac := (l.ClampAngle(deg) - float64(l.MinAngle)) / angleRange
	return l.MinPulseUS + int(math.Round(frac*float64(l.MaxPulseUS-l.MinPulseUS)))
}

// AngleForPulse converts a pulse width back to an angle, rounded to 0.1 degree.
// The pulse is clamped to [MinPulseUS, MaxPulseUS] first.
func (l Limits) AngleForPulse(us int) float64 {
	pulseRange := l.MaxPulseUS - l.MinPulseUS
	if pulseRange == 0 {
		return float64(l.MinAngle)
	}
	us = max(l.MinPulseUS, min(us, l.MaxPulseUS))
	frac := float64(us-l.MinPulseUS) / float64(pulseRange)
	deg := float64(l.MinAngle) + frac*float64(l.MaxAngle-l.MinAngle)
	return math.Round(deg*10) / 10
}

// Normalize maps an angle onto [-100, 100], with MinAngle at -100.
func (l Limits) Normalize(deg float64) float64 {
	angleRange := float64(l.MaxAngle - l.MinAngle)
	if angleRange == 0 {
		return 0
	}
	return ((deg-float64(l.MinAngle))/angleRange)*200 - 100
}

// Denormalize converts a value in [-100, 100] back to an angle.
func (l Limits) Denormalize(norm float64) float64 {
	angleRange := float64(l.MaxAngle - l.MinAngle)
	return (norm+100)/200*angleRange + float64(l.MinAngle)
}
