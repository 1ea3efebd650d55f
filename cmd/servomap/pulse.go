package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/amhrpd/servomap/pkg/servo"
)

type PulseCommand struct {
	Role  string  `long:"role" short:"r" description:"Servo role name, firmware symbol or channel number (prompted if omitted)"`
	Angle float64 `long:"angle" short:"a" default:"90" description:"Commanded angle in degrees"`
}

func (c *PulseCommand) Execute(args []string) error {
	if err := finite("angle", c.Angle); err != nil {
		return err
	}

	var role servo.Role
	var err error
	if c.Role == "" {
		role, err = pickRole()
	} else {
		role, err = resolveRole(c.Role)
	}
	if err != nil {
		return err
	}

	fmt.Print(describePulse(role, c.Angle))
	return nil
}

// finite rejects NaN and infinite flag values.
func finite(flag string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("--%s must be a finite number, got %v", flag, v)
	}
	return nil
}

// resolveRole accepts a role name, firmware symbol or channel index.
func resolveRole(s string) (servo.Role, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return servo.RoleFor(servo.Channel(n))
	}
	return servo.ParseRole(s)
}

func pickRole() (servo.Role, error) {
	var options []huh.Option[servo.Role]
	for _, r := range servo.AllRoles() {
		label := fmt.Sprintf("%-16s ch%d  %s", r.Label(), r.Channel(), r.Pin())
		options = append(options, huh.NewOption(label, r))
	}

	var role servo.Role
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[servo.Role]().
				Title("Which servo?").
				Options(options...).
				Value(&role),
		),
	)
	if err := form.Run(); err != nil {
		return 0, fmt.Errorf("select role: %w", err)
	}
	return role, nil
}

func describePulse(role servo.Role, angle float64) string {
	lim := servo.MG996R
	clamped := lim.ClampAngle(angle)
	us := lim.PulseForAngle(angle)

	s := fmt.Sprintf("%s (%s, channel %d, %s)\n", headerStyle.Render(role.Label()), role, role.Channel(), role.Pin())
	if clamped != angle {
		s += dimStyle.Render(fmt.Sprintf("  angle %.1f clamped to %.1f", angle, clamped)) + "\n"
	}
	s += fmt.Sprintf("  angle:   %.1f deg\n", clamped)
	s += fmt.Sprintf("  pulse:   %d us\n", us)
	s += fmt.Sprintf("  pca9685: %d / %d\n", servo.PCA9685Ticks(us), servo.PCA9685Resolution)
	s += fmt.Sprintf("  ledc:    %d / %d\n", servo.LEDCTicks(us), servo.LEDCResolution)
	return s
}
