package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette: candlelight on black stone.
var (
	Primary   = lipgloss.Color("#9F1D35") // Blood red
	Secondary = lipgloss.Color("#7C5CBF") // Amethyst
	Accent    = lipgloss.Color("#D4AF37") // Gold leaf
	Success   = lipgloss.Color("#4ADE80") // Verdigris
	Error     = lipgloss.Color("#EF4444") // Ember
	Text      = lipgloss.Color("#E7E0D0") // Parchment
	TextDim   = lipgloss.Color("#8A8275") // Ash
	BgDark    = lipgloss.Color("#0B0A0D") // Obsidian
	BgCard    = lipgloss.Color("#17141C") // Crypt
	Border    = lipgloss.Color("#3A3140") // Iron

	Gold     = Accent
	Terminal = lipgloss.Color("#39FF14") // arcane shell glyphs
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Modal = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.ThickBorder()).
		BorderForeground(Primary).
		Padding(1, 4).
		Align(lipgloss.Center)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Reward = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Failure = lipgloss.NewStyle().
		Foreground(Error).
		Italic(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Primary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
