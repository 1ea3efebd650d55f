package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/amhrpd/servomap/pkg/servo"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type ShowCommand struct {
	JSON bool `long:"json" description:"Print the manifest as JSON instead of a table"`
}

func (c *ShowCommand) Execute(args []string) error {
	out, err := c.render()
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func (c *ShowCommand) render() (string, error) {
	if c.JSON {
		data, err := servo.NewManifest().JSON()
		if err != nil {
			return "", fmt.Errorf("encode manifest: %w", err)
		}
		return string(data), nil
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%s servo map (%s)", strings.ToUpper(servo.Board), servo.Model)))
	sb.WriteString("\n\n")
	sb.WriteString(renderTable(servo.Assignments()))
	sb.WriteString("\n\n")
	sb.WriteString(dimStyle.Render(fmt.Sprintf("Pulse %d-%dus, angle %d-%d, home %d, %d Hz",
		servo.MinPulseUS, servo.MaxPulseUS, servo.MinAngle, servo.MaxAngle, servo.HomeAngle, servo.FrequencyHz)))
	return sb.String(), nil
}

func renderTable(rows []servo.Assignment) string {
	tableHeaderStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	tableRoleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Padding(0, 1)
	tableCellStyle := lipgloss.NewStyle().Padding(0, 1)
	tablePinGoodStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Padding(0, 1)
	tablePinBadStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(0, 1)

	cells := make([][]string, 0, len(rows))
	for _, a := range rows {
		cells = append(cells, []string{
			fmt.Sprintf("%d", a.Channel),
			a.Role.String(),
			a.Role.Label(),
			a.Role.FirmwareName(),
			a.Pin.String(),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("Ch", "Role", "Label", "Firmware", "Pin").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			switch col {
			case 1:
				return tableRoleStyle
			case 4:
				if row >= 0 && row < len(rows) && servo.IsSafePin(rows[row].Pin) {
					return tablePinGoodStyle
				}
				return tablePinBadStyle
			default:
				return tableCellStyle
			}
		})

	return t.Render()
}
