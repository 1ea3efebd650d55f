package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/amhrpd/servomap/pkg/servo"
)

type Options struct {
	Show    ShowCommand    `command:"show" description:"Print the channel to GPIO table"`
	Check   CheckCommand   `command:"check" description:"Verify pins are distinct and safe and limits are consistent"`
	Pulse   PulseCommand   `command:"pulse" description:"Convert an angle to pulse width and duty ticks for a servo"`
	Explore ExploreCommand `command:"explore" alias:"jog" description:"Interactively step servos through their range"`
}

var opts Options
var parser = flags.NewParser(&opts, flags.Default)

func main() {
	parser.ShortDescription = "AMHR-PD servo channel map"
	parser.LongDescription = fmt.Sprintf("servomap - %d-channel %s servo map for the %s controller",
		servo.NumChannels, servo.Model, servo.Board)
	parser.CommandHandler = guardCommand(servo.Validate)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
		}
		os.Exit(1)
	}
}

// guardCommand refuses to run anything but check while the map is invalid,
// so no command reports pulses for a miswired channel.
func guardCommand(validate func() error) func(flags.Commander, []string) error {
	return func(cmd flags.Commander, args []string) error {
		if cmd == nil {
			return nil
		}
		if _, isCheck := cmd.(*CheckCommand); !isCheck {
			if err := validate(); err != nil {
				return fmt.Errorf("servo map is invalid, run 'servomap check': %w", err)
			}
		}
		return cmd.Execute(args)
	}
}
