package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: neon on near-black.
var (
	Primary   = lipgloss.Color("#22D3EE") // Neon Cyan
	Secondary = lipgloss.Color("#A855F7") // Oracle Purple
	Accent    = lipgloss.Color("#FB923C") // Streak Orange
	Success   = lipgloss.Color("#4ADE80") // Green
	Error     = lipgloss.Color("#F87171") // Red
	Gold      = lipgloss.Color("#FACC15")
	Silver    = lipgloss.Color("#CBD5E1")
	Bronze    = lipgloss.Color("#D97706")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	TextMuted = lipgloss.Color("#64748B")
	BgDark    = lipgloss.Color("#020617")
	BgCard    = lipgloss.Color("#0F172A")
	Border    = lipgloss.Color("#334155")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Label = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	Mono = lipgloss.NewStyle().
		Foreground(Primary)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	CardActive = Card.
			BorderForeground(Primary)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(TextDim)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// ButtonVariant mirrors the hub's button palette.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonSecondary
	ButtonSuccess
	ButtonDanger
	ButtonMagic
)

// ButtonColor returns the border and label color for v.
func ButtonColor(v ButtonVariant) lipgloss.Style {
	switch v {
	case ButtonSecondary:
		return lipgloss.NewStyle().Foreground(TextDim).BorderForeground(Border)
	case ButtonSuccess:
		return lipgloss.NewStyle().Foreground(Success).BorderForeground(Success)
	case ButtonDanger:
		return lipgloss.NewStyle().Foreground(Error).BorderForeground(Error)
	case ButtonMagic:
		return lipgloss.NewStyle().Foreground(Secondary).BorderForeground(Secondary)
	default:
		return lipgloss.NewStyle().Foreground(Primary).BorderForeground(Primary)
	}
}

// TierColor colors a leaderboard tier or rank position.
func TierColor(rank int) lipgloss.Style {
	switch rank {
	case 1:
		return lipgloss.NewStyle().Foreground(Gold).Bold(true)
	case 2:
		return lipgloss.NewStyle().Foreground(Silver).Bold(true)
	case 3:
		return lipgloss.NewStyle().Foreground(Bronze).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(TextMuted).Bold(true)
	}
}
