package style

import "github.com/charmbracelet/lipgloss"

// Dark theme built around the YouTube red.
var (
	Base = lipgloss.Color("#0f0f0f")
	Text = lipgloss.Color("#f1f1f1")

	YouTubeRed = lipgloss.Color("#ff0033")
	HiRed      = lipgloss.Color("#ff4e45")
	Yellow     = lipgloss.Color("#ffd400")
	Green      = lipgloss.Color("#2ba640")
	Blue       = lipgloss.Color("#3ea6ff")
	Gray       = lipgloss.Color("#717171")

	AccentColor    = YouTubeRed
	SecondaryColor = Blue
	SuccessColor   = Green
	WarningColor   = Yellow
	ErrorColor     = HiRed
	FaintColor     = Gray
)
