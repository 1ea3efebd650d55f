package servo

import "encoding/json"

// Board and servo model the table is written for.
const (
	Board = "esp32s3"
	Model = "MG996R"
)

// Manifest describes the servo layout for tools and dashboards.
type Manifest struct {
	Board    string            `json:"board"`
	Model    string            `json:"model"`
	Limits   Limits            `json:"limits"`
	Channels []ChannelManifest `json:"channels"`
}

// ChannelManifest is one channel in the firmware's JSON layout.
type ChannelManifest struct {
	Channel  int    `json:"ch"`
	Role     string `json:"role"`
	Label    string `json:"label"`
	GPIO     int    `json:"gpio"`
	MinAngle int    `json:"minA"`
	MaxAngle int    `json:"maxA"`
	MinPulse int    `json:"minPulse"`
	MaxPulse int    `json:"maxPulse"`
	Home     int    `json:"home"`
}

// NewManifest builds the manifest for the compiled-in table.
func NewManifest() Manifest {
	m := Manifest{
		Board:    Board,
		Model:    Model,
		Limits:   MG996R,
		Channels: make([]ChannelManifest, 0, NumChannels),
	}
	for _, a := range Assignments() {
		m.Channels = append(m.Channels, ChannelManifest{
			Channel:  int(a.Channel),
			Role:     a.Role.String(),
			Label:    a.Role.Label(),
			GPIO:     int(a.Pin),
			MinAngle: MG996R.MinAngle,
			MaxAngle: MG996R.MaxAngle,
			MinPulse: MG996R.MinPulseUS,
			MaxPulse: MG996R.MaxPulseUS,
			Home:     MG996R.HomeAngle,
		})
	}
	return m
}

// JSON renders the manifest as indented JSON.
func (m Manifest) JSON() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}
