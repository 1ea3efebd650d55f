// Package servo describes the AMHR-PD servo layout: which GPIO drives each
// logical channel, what each channel does, and the travel limits of the
// MG996R servos fitted to every channel.
package servo

import (
	"errors"
	"fmt"
	"strings"
)

// Role identifies what a servo channel does in the robot.
type Role uint8

// Roles, declared in channel order. The value of a role is its channel index.
const (
	LeftShoulder Role = iota
	LeftElbow1
	LeftElbow2
	LeftGripper
	RightShoulder
	RightElbow1
	RightElbow2
	RightGripper
	NeckUpDown
	NeckLeftRight

	roleCount
)

// ErrUnknownRole is returned when a name does not match any role.
var ErrUnknownRole = errors.New("unknown servo role")

type roleInfo struct {
	name     string // snake_case name used on the CLI and in the manifest
	label    string
	firmware string // symbol used by the ESP32 firmware
}

var roleInfos = [roleCount]roleInfo{
	LeftShoulder:  {"left_shoulder", "Left shoulder", "L_SHOULDER"},
	LeftElbow1:    {"left_elbow_1", "Left elbow 1", "L_ELBOW_1"},
	LeftElbow2:    {"left_elbow_2", "Left elbow 2", "L_ELBOW_2"},
	LeftGripper:   {"left_gripper", "Left gripper", "L_GRIPPER"},
	RightShoulder: {"right_shoulder", "Right shoulder", "R_SHOULDER"},
	RightElbow1:   {"right_elbow_1", "Right elbow 1", "R_ELBOW_1"},
	RightElbow2:   {"right_elbow_2", "Right elbow 2", "R_ELBOW_2"},
	RightGripper:  {"right_gripper", "Right gripper", "R_GRIPPER"},
	NeckUpDown:    {"neck_up_down", "Neck tilt", "NECK_UPDOWN"},
	NeckLeftRight: {"neck_left_right", "Neck pan", "NECK_LEFTRIGHT"},
}

// AllRoles returns all roles in channel order.
func AllRoles() []Role {
	roles := make([]Role, 0, roleCount)
	for r := Role(0); r < roleCount; r++ {
		roles = append(roles, r)
	}
	return roles
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	return r < roleCount
}

func (r Role) String() string {
	if !r.Valid() {
		return fmt.Sprintf("role(%d)", uint8(r))
	}
	return roleInfos[r].name
}

// Label returns a human readable name, e.g. "Neck pan".
func (r Role) Label() string {
	if !r.Valid() {
		return r.String()
	}
	return roleInfos[r].label
}

// FirmwareName returns the symbol the firmware uses for r, e.g. "R_GRIPPER".
func (r Role) FirmwareName() string {
	if !r.Valid() {
		return ""
	}
	return roleInfos[r].firmware
}

// Channel returns the channel index r is wired to.
func (r Role) Channel() Channel {
	return Channel(r)
}

// Pin returns the GPIO that drives r, or 0 if r is not a declared role.
func (r Role) Pin() Pin {
	if !r.Valid() {
		return 0
	}
	return channelPins[r]
}

// RoleFor returns the role wired to channel ch.
func RoleFor(ch Channel) (Role, error) {
	if !ch.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrChannelOutOfRange, int(ch))
	}
	return Role(ch), nil
}

// ParseRole looks up a role by its snake_case name or firmware symbol.
// Matching ignores case and treats '-' like '_'.
func ParseRole(name string) (Role, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	for _, r := range AllRoles() {
		info := roleInfos[r]
		if key == info.name || key == strings.ToLower(info.firmware) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, name)
}
