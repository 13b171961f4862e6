package tui

import (
	"fmt"

	"github.com/AvaAvarai/IndimensionalYoutube/history"
	"github.com/AvaAvarai/IndimensionalYoutube/icon"
	"github.com/AvaAvarai/IndimensionalYoutube/key"
	"github.com/AvaAvarai/IndimensionalYoutube/style"
	"github.com/charmbracelet/bubbles/list"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// listItem shows a history entry.
type listItem struct {
	entry history.Entry
}

func (t *listItem) Title() string {
	return fmt.Sprintf("%s %s", style.Faint(fmt.Sprintf("#%d", t.entry.Index+1)), t.entry.Title)
}

func (t *listItem) Description() string {
	description := fmt.Sprintf("%s %s • %s", icon.Get(icon.Search), t.entry.Query, t.entry.At.Format("15:04:05"))
	if viper.GetBool(key.TUIShowURLs) {
		description += " • " + style.Fg(style.FaintColor)(t.entry.URL())
	}
	return description
}

func (t *listItem) FilterValue() string {
	return t.entry.Title
}

// historyItems lists entries newest first.
func historyItems(entries []history.Entry) []list.Item {
	entries = slices.Clone(entries)
	slices.Reverse(entries)

	return lo.Map(entries, func(entry history.Entry, _ int) list.Item {
		return &listItem{entry: entry}
	})
}
