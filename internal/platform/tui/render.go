package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/purple-snake/internal/config"
	"github.com/vovakirdan/purple-snake/internal/core"
)

// Palette maps core.Color to lipgloss styles.
type Palette map[core.Color]lipgloss.Style

// NewPalette returns the terminal palette with the snake and apple colors
// taken from cfg.
func NewPalette(cfg config.ColorConfig) Palette {
	return Palette{
		core.ColorDefault:       lipgloss.NewStyle(),
		core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		core.ColorSnake:         lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Snake)),
		core.ColorApple:         lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Apple)),
	}
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
