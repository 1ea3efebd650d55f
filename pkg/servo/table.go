package servo

import (
	"errors"
	"fmt"
)

// Errors reported by Validate.
var (
	ErrDuplicatePin = errors.New("pin assigned to more than one channel")
	ErrUnsafePin    = errors.New("pin not safe for servo PWM")
	ErrRoleMapping  = errors.New("roles do not cover channels one to one")
)

// Assignment is one row of the channel table.
type Assignment struct {
	Channel Channel
	Role    Role
	Pin     Pin
}

// Assignments returns every channel with its role and pin, in channel order.
func Assignments() []Assignment {
	rows := make([]Assignment, 0, NumChannels)
	for _, r := range AllRoles() {
		rows = append(rows, Assignment{Channel: r.Channel(), Role: r, Pin: r.Pin()})
	}
	return rows
}

// Validate checks the channel table and the MG996R limits. All violations
// are returned together.
func Validate() error {
	return validate(channelPins[:], AllRoles(), MG996R)
}

func validate(pins []Pin, roles []Role, lim Limits) error {
	var errs []error

	owner := make(map[Pin]int, len(pins))
	for ch, p := range pins {
		if prev, ok := owner[p]; ok {
			errs = append(errs, fmt.Errorf("%w: %s on channels %d and %d", ErrDuplicatePin, p, prev, ch))
		} else {
			owner[p] = ch
		}
		if reason := ReservedReason(p); reason != "" {
			errs = append(errs, fmt.Errorf("%w: channel %d uses %s (%s)", ErrUnsafePin, ch, p, reason))
		}
	}

	if len(roles) != len(pins) {
		errs = append(errs, fmt.Errorf("%w: %d roles for %d channels", ErrRoleMapping, len(roles), len(pins)))
	}
	seen := make(map[Channel]Role, len(roles))
	for _, r := range roles {
		ch := r.Channel()
		if int(ch) >= len(pins) {
			errs = append(errs, fmt.Errorf("%w: %s points at channel %d", ErrRoleMapping, r, int(ch)))
			continue
		}
		if other, ok := seen[ch]; ok {
			errs = append(errs, fmt.Errorf("%w: %s and %s share channel %d", ErrRoleMapping, other, r, int(ch)))
			continue
		}
		seen[ch] = r
	}

	if err := lim.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
