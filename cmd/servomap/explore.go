package main

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/streamlinechart"

	"github.com/amhrpd/servomap/pkg/servo"
)

type ExploreCommand struct {
	Step float64 `long:"step" default:"1" description:"Angle step in degrees (shift+arrow moves 10x)"`
}

const (
	headerHeight = 2 // title + blank line
	listHeight   = servo.NumChannels + 3
	footerHeight = 2
	borderSize   = 2 // chart border
)

// Role colors - one per channel
var roleColors = map[servo.Role]string{
	servo.LeftShoulder:  "196", // red
	servo.LeftElbow1:    "208", // orange
	servo.LeftElbow2:    "226", // yellow
	servo.LeftGripper:   "46",  // green
	servo.RightShoulder: "51",  // cyan
	servo.RightElbow1:   "33",  // blue
	servo.RightElbow2:   "129", // purple
	servo.RightGripper:  "201", // magenta
	servo.NeckUpDown:    "250", // grey
	servo.NeckLeftRight: "214", // amber
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	chartStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

type exploreModel struct {
	roles    []servo.Role
	angles   map[servo.Role]float64
	cursor   int
	step     float64
	chart    *streamlinechart.Model
	width    int // terminal width
	height   int // terminal height
	quitting bool
}

func newExploreModel(step float64) exploreModel {
	if !(step > 0) || math.IsInf(step, 1) {
		step = 1
	}

	chart := streamlinechart.New(80, 10,
		streamlinechart.WithYRange(servo.MinPulseUS, servo.MaxPulseUS),
	)

	roles := servo.AllRoles()
	angles := make(map[servo.Role]float64, len(roles))
	for _, r := range roles {
		angles[r] = servo.HomeAngle
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(roleColors[r]))
		chart.SetDataSetStyles(r.String(), runes.ThinLineStyle, style)
	}

	return exploreModel{
		roles:  roles,
		angles: angles,
		step:   step,
		chart:  &chart,
	}
}

func (m exploreModel) selected() servo.Role {
	return m.roles[m.cursor]
}

// chartSize calculates the size of the chart based on terminal dimensions
func (m *exploreModel) chartSize() (width, height int) {
	if m.width == 0 || m.height == 0 {
		return 80, 10
	}
	width = m.width - borderSize - 2
	if width < 40 {
		width = 40
	}
	height = m.height - headerHeight - listHeight - footerHeight - borderSize
	if height < 5 {
		height = 5
	}
	return width, height
}

// jog moves the selected servo by delta degrees and records the new pulse.
func (m *exploreModel) jog(delta float64) {
	r := m.selected()
	m.setAngle(r, m.angles[r]+delta)
}

func (m *exploreModel) setAngle(r servo.Role, deg float64) {
	deg = servo.MG996R.ClampAngle(deg)
	m.angles[r] = deg
	m.chart.PushDataSet(r.String(), float64(servo.MG996R.PulseForAngle(deg)))
	m.chart.DrawAll()
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w, h := m.chartSize()
		m.chart.Resize(w, h)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.roles)-1 {
				m.cursor++
			}
		case "left":
			m.jog(-m.step)
		case "right":
			m.jog(m.step)
		case "shift+left":
			m.jog(-10 * m.step)
		case "shift+right":
			m.jog(10 * m.step)
		case "h":
			m.setAngle(m.selected(), servo.HomeAngle)
		case "H":
			for _, r := range m.roles {
				m.setAngle(r, servo.HomeAngle)
			}
		}
	}

	return m, nil
}

func (m exploreModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Servo explorer"))
	sb.WriteString(statusStyle.Render(fmt.Sprintf("  %s / %s, %d Hz", servo.Board, servo.Model, servo.FrequencyHz)))
	sb.WriteString("\n\n")

	for i, r := range m.roles {
		deg := m.angles[r]
		us := servo.MG996R.PulseForAngle(deg)
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(roleColors[r])).Render("━━")
		line := fmt.Sprintf("%d %-16s %-7s %6.1f°  %4dus  pca %4d  ledc %5d",
			r.Channel(), r.Label(), r.Pin(), deg, us, servo.PCA9685Ticks(us), servo.LEDCTicks(us))
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		sb.WriteString(swatch + " " + line + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(chartStyle.Render(m.chart.View()))
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render("↑/↓ select  ←/→ jog  shift+←/→ coarse  h home  H home all  q quit"))
	sb.WriteString("\n")

	return sb.String()
}

func (c *ExploreCommand) Execute(args []string) error {
	if err := finite("step", c.Step); err != nil {
		return err
	}
	p := tea.NewProgram(newExploreModel(c.Step), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run explorer: %w", err)
	}
	return nil
}
