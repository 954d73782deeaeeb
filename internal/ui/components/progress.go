package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/adilsezer/lithuaningo-sub000/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar with a "done/total" count.
type ProgressBar struct {
	Label string
	Done  int
	Total int
	Width int
}

// Percent returns the completed fraction in [0, 1].
func (p ProgressBar) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(1, max(0, float64(p.Done)/float64(p.Total)))
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string
	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	count := fmt.Sprintf("  %d/%d", p.Done, p.Total)
	barWidth := max(4, p.Width-lipgloss.Width(result)-len(count))

	filled := int(float64(barWidth) * p.Percent())
	empty := barWidth - filled

	result += lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", empty))
	result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(count)
	return result
}
