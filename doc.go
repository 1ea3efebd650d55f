// Package servomap describes the servo wiring of the AMHR-PD robot.
//
// The robot carries ten MG996R servos (two arms and a neck) driven from an
// ESP32-S3. This module holds the single source of truth for which GPIO
// each servo channel uses, the role of each channel, and the pulse and
// angle range shared by all of them.
//
// # Installation
//
//	go install github.com/amhrpd/servomap/cmd/servomap@latest
//
// # Usage
//
// Print the channel table:
//
//	servomap show
//
// Verify the table against the ESP32-S3 pin restrictions:
//
//	servomap check
//
// Work out the pulse width for a servo angle:
//
//	servomap pulse --role right_gripper --angle 45
//
// # Packages
//
// The module is organized into the following packages:
//
//   - cmd/servomap: CLI with show, check, pulse and explore commands
//   - pkg/servo: Channel table, roles, pin safety and pulse conversion
package servomap
