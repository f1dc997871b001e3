package chain

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	wallStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	springStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	massStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
)

const (
	springArt = "  |  \n  /  \n  \\\n  |  \n"
	massArt   = "  O  \n"
	topWall   = "/////\n____\n"
	botWall   = " ____\n/////\n"
)

// Render draws the chain as an ASCII diagram, top to bottom: hatched
// walls for fixed ends, a zigzag per spring, a circle per mass.
func (c Chain) Render() string {
	var b strings.Builder

	if c.FixTop {
		b.WriteString(topWall)
		b.WriteString(springArt)
	}

	for i := range c.Masses {
		if i > 0 {
			b.WriteString(springArt)
		}
		b.WriteString(massArt)
	}

	if c.FixBottom {
		b.WriteString(springArt)
		b.WriteString(botWall)
	}

	return b.String()
}

// RenderStyled draws the chain with terminal colors, walls dimmed,
// springs yellow, masses cyan.
func (c Chain) RenderStyled() string {
	var b strings.Builder
	for _, line := range strings.Split(c.Render(), "\n") {
		switch {
		case strings.Contains(line, "/"):
			if strings.Contains(line, "//") {
				b.WriteString(wallStyle.Render(line))
			} else {
				b.WriteString(springStyle.Render(line))
			}
		case strings.Contains(line, "_"):
			b.WriteString(wallStyle.Render(line))
		case strings.Contains(line, "O"):
			b.WriteString(massStyle.Render(line))
		default:
			b.WriteString(springStyle.Render(line))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
