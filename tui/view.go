package tui

import (
	"fmt"
	"strings"

	"github.com/AvaAvarai/IndimensionalYoutube/color"
	"github.com/AvaAvarai/IndimensionalYoutube/icon"
	"github.com/AvaAvarai/IndimensionalYoutube/key"
	"github.com/AvaAvarai/IndimensionalYoutube/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/viper"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case playingState:
		output = b.viewPlaying()
	case emptyState:
		output = b.viewEmpty()
	case keywordState:
		output = b.viewKeyword()
	case historyState:
		output = b.viewHistory()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	status := "Shuffling"
	if query := b.engine.Snapshot().Query; query != "" {
		status = fmt.Sprintf("Searching %s", style.Fg(color.Purple)(query))
	}

	return b.renderLines(
		true,
		[]string{
			style.Title("Shuffling"),
			"",
			b.spinnerC.View() + " " + status,
		},
	)
}

func (b *statefulBubble) viewPlaying() string {
	video := b.current
	if video == nil {
		return b.viewEmpty()
	}

	lines := []string{
		style.Title("Now Playing"),
		"",
		style.Truncate(b.width)(fmt.Sprintf("%s %s", icon.Get(icon.Play), style.Fg(color.Purple)(video.Title))),
	}

	if video.Channel != "" {
		lines = append(lines, style.Faint("  "+video.Channel))
	}

	if viper.GetBool(key.TUIShowURLs) {
		lines = append(lines, style.Faint("  "+video.URL()))
	}

	lines = append(lines, "", b.queryLine(), style.Faint(b.status()))

	if b.degraded {
		lines = append(lines, "", style.Fg(style.WarningColor)(icon.Get(icon.Warn)+" word list unavailable, searching the fallback term"))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) queryLine() string {
	state := b.engine.Snapshot()
	line := fmt.Sprintf("%s %s", icon.Get(icon.Search), state.Query)
	if genre, ok := state.Config.CurrentGenre.Get(); ok {
		line += " " + style.Tag(style.Base, style.SecondaryColor)(genre)
	}
	return line
}

func (b *statefulBubble) viewEmpty() string {
	var message string

	switch {
	case b.gaveUp:
		message = icon.Get(icon.Fail) + " Too many videos failed to play in a row. Press s to try again."
	case b.lastEmpty.Query != "":
		message = fmt.Sprintf("%s No videos found for %s", icon.Get(icon.Empty), style.Fg(color.Purple)(b.lastEmpty.Query))
		if b.lastEmpty.Err != nil {
			message += "\n" + style.Faint(wrap.String(b.lastEmpty.Err.Error(), b.width))
		}
	default:
		message = icon.Get(icon.Shuffle) + " Nothing is playing. Press s to shuffle."
	}

	lines := []string{
		style.Title("Shuffle"),
		"",
		message,
		"",
		style.Faint(b.status()),
	}

	if b.degraded {
		lines = append(lines, "", style.Fg(style.WarningColor)(icon.Get(icon.Warn)+" word list unavailable, searching the fallback term"))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewKeyword() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Keyword"),
			"",
			b.inputC.View(),
			"",
			style.Faint("Every shuffle searches this keyword until it is cleared."),
		},
	)
}

func (b *statefulBubble) viewHistory() string {
	return listExtraPaddingStyle.Render(b.historyC.View())
}

func (b *statefulBubble) viewError() string {
	message := "unknown error"
	if b.lastError != nil {
		message = b.lastError.Error()
	}

	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)

	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
			wrap.String(errorStyle.Render(message), b.width),
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	l := strings.Join(lines, "\n")
	h := strings.Count(l, "\n") + 1

	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
