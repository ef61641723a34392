package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dfields/schedtrack/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CategoryStyle returns the style for a date category: the nearer the
// milestone, the hotter the color.
func CategoryStyle(cat domain.DateCategory) lipgloss.Style {
	switch cat {
	case domain.CategoryThisWeek:
		return StyleRed
	case domain.CategoryNextWeek:
		return StyleYellow
	case domain.CategoryThisMonth:
		return StyleGreen
	case domain.CategoryNext3Months:
		return StyleBlue
	case domain.CategoryFuture:
		return StyleFg
	default:
		return StyleDim
	}
}

// CategoryBadge returns a colored label such as "● this week".
func CategoryBadge(cat domain.DateCategory) string {
	switch cat {
	case domain.CategoryThisWeek:
		return StyleRed.Render("● this week")
	case domain.CategoryNextWeek:
		return StyleYellow.Render("● next week")
	case domain.CategoryThisMonth:
		return StyleGreen.Render("● this month")
	case domain.CategoryNext3Months:
		return StyleBlue.Render("● in 3 months")
	case domain.CategoryFuture:
		return StyleFg.Render("○ future")
	default:
		return StyleDim.Render("○ no date")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
