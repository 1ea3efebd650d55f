package main

import (
	"fmt"

	"github.com/amhrpd/servomap/pkg/servo"
)

type CheckCommand struct{}

func (c *CheckCommand) Execute(args []string) error {
	err := servo.Validate()
	if err == nil {
		fmt.Println(successStyle.Render(fmt.Sprintf("✓ %d channels, pins distinct and PWM-safe, limits consistent", servo.NumChannels)))
		return nil
	}

	violations := splitErrors(err)
	for _, v := range violations {
		fmt.Println(errorStyle.Render("✗ " + v.Error()))
	}
	return fmt.Errorf("servo map has %d violation(s)", len(violations))
}

// splitErrors flattens an errors.Join tree into its leaves.
func splitErrors(err error) []error {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}
	var out []error
	for _, e := range joined.Unwrap() {
		out = append(out, splitErrors(e)...)
	}
	return out
}
