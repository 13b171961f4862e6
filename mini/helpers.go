package mini

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/AvaAvarai/IndimensionalYoutube/color"
	"github.com/AvaAvarai/IndimensionalYoutube/icon"
	"github.com/AvaAvarai/IndimensionalYoutube/style"
	"github.com/AvaAvarai/IndimensionalYoutube/util"
	"github.com/samber/lo"
)

// bind is a menu entry that is not one of the listed items.
type bind struct {
	label string
}

func (b *bind) String() string {
	return b.label
}

var (
	shuffle    = &bind{"Shuffle"}
	courageous = &bind{"Courageous shuffle"}
	keyword    = &bind{"Set keyword"}
	toggleMode = &bind{"Toggle genre cycle"}
	recent     = &bind{"History"}
	browser    = &bind{"Open in browser"}
	back       = &bind{"Back"}
	quit       = &bind{"Quit"}
)

// errQuit is returned by prompts interrupted with ctrl+c.
var errQuit = errors.New("quit")

// menu asks to choose one of items or binds.
// Exactly one of the returned bind and item is set.
func menu[T fmt.Stringer](items []T, binds ...*bind) (*bind, T, error) {
	var zero T

	options := lo.Map(items, func(item T, _ int) string {
		return truncate(item.String())
	})
	options = append(options, lo.Map(binds, func(b *bind, _ int) string {
		return style.Fg(color.Yellow)(b.String())
	})...)

	var index int
	prompt := &survey.Select{
		Message:  ">",
		Options:  options,
		PageSize: pageSize,
	}

	if err := survey.AskOne(prompt, &index); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return quit, zero, nil
		}
		return nil, zero, err
	}

	if index < len(items) {
		return nil, items[index], nil
	}

	return binds[index-len(items)], zero, nil
}

type input struct {
	value string
}

func getInput(message string, defaultValue string, suggest func(string) []string) (*input, error) {
	var value string
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
		Suggest: suggest,
	}

	if err := survey.AskOne(prompt, &value); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return nil, errQuit
		}
		return nil, err
	}

	return &input{value: value}, nil
}

func title(text string) {
	fmt.Println(style.Title(text))
}

func info(text string) {
	fmt.Println(style.Faint(text))
}

func fail(text string) {
	fmt.Println(style.Fg(color.Red)(icon.Get(icon.Fail) + " " + text))
}

func progress(text string) (erase func()) {
	return util.PrintErasable(fmt.Sprintf("%s %s", icon.Get(icon.Progress), style.Faint(text)))
}

func truncate(text string) string {
	return style.Truncate(truncateAt)(text)
}
