package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/persona/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar. percent is a fraction in
// [0, 1].
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // "  100%"
	}
	barWidth := max(p.Width-lipgloss.Width(result)-percentWidth, 4)

	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)
	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	if p.ShowPercent {
		result += theme.Hint.Italic(false).Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}

// SplitBar shows two opposing shares of one total, left and right of a
// single bar, e.g. "E 60% ████████░░░░░ 40% I".
type SplitBar struct {
	Left, Right           string
	LeftShare, RightShare float64
	Width                 int
	LeftColor, RightColor color.Color
}

// View renders the split bar. Shares are percentages.
func (s SplitBar) View() string {
	left := fmt.Sprintf("%s %3.0f%% ", s.Left, s.LeftShare)
	right := fmt.Sprintf(" %3.0f%% %s", s.RightShare, s.Right)

	barWidth := max(s.Width-lipgloss.Width(left)-lipgloss.Width(right), 4)
	total := s.LeftShare + s.RightShare
	filled := barWidth / 2
	if total > 0 {
		filled = int(float64(barWidth)*s.LeftShare/total + 0.5)
	}

	leftColor, rightColor := s.LeftColor, s.RightColor
	if leftColor == nil {
		leftColor = theme.Primary
	}
	if rightColor == nil {
		rightColor = theme.Secondary
	}

	return lipgloss.NewStyle().Foreground(theme.Text).Render(left) +
		lipgloss.NewStyle().Background(leftColor).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(rightColor).Render(strings.Repeat(" ", barWidth-filled)) +
		lipgloss.NewStyle().Foreground(theme.Text).Render(right)
}
