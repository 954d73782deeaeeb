// Package theme holds the lipgloss styles of the terminal player.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, taken from the Lithuanian flag plus neutrals.
var (
	Primary   = lipgloss.Color("#FDB913") // Yellow
	Secondary = lipgloss.Color("#006A44") // Green
	Accent    = lipgloss.Color("#C1272D") // Red
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	// Target is the quizzed word inside a sentence.
	Target = lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(Primary)

	Blank = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	ReviewCard = Card.
			BorderForeground(Accent)
)

// States
var (
	Option = lipgloss.NewStyle().
		Foreground(Text)

	OptionIndex = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
