package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorFrame:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorText:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	core.ColorMuted:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorAccent:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorAlert:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorHighlight: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("57")),

	core.ColorTile1:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorTile2:     lipgloss.NewStyle().Foreground(lipgloss.Color("230")),
	core.ColorTile3:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
	core.ColorTile4:     lipgloss.NewStyle().Foreground(lipgloss.Color("209")),
	core.ColorTile5:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	core.ColorTile6:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorTile7:     lipgloss.NewStyle().Foreground(lipgloss.Color("221")).Bold(true),
	core.ColorTile8:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorTile9:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	core.ColorTile10:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorTile11:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	core.ColorTileSuper: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one colour are rendered as a single run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, run := range s.Runs(y) {
			sb.WriteString(styleFor(run.Color).Render(run.Text))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
