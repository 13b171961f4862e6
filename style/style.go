// Package style holds small lipgloss render helpers shared by the shells.
package style

import (
	"github.com/AvaAvarai/IndimensionalYoutube/color"
	"github.com/charmbracelet/lipgloss"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg renders strings in the foreground color c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

// Truncate renders strings at a fixed width, wrapping the rest.
func Truncate(max int) func(string) string {
	return func(s string) string { return New().Width(max).Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Tag renders s as a padded badge.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(fg).Background(bg).Padding(0, 1).Render(s) }
}

// Title is the badge on top of every screen.
var Title = Tag(color.New("230"), AccentColor)

// ErrorTitle is the badge of error screens.
var ErrorTitle = Tag(color.New("230"), color.Red)
