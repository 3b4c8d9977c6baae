package mini

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"

	"github.com/drumtake-cli/drumtake/icon"
	"github.com/drumtake-cli/drumtake/style"
	"github.com/drumtake-cli/drumtake/util"
)

// bind is a named menu action rendered alongside regular list entries.
type bind struct {
	name string
}

func (b *bind) String() string {
	return b.name
}

func (b *bind) eq(other *bind) bool {
	return b != nil && other != nil && b.name == other.name
}

var (
	quit   = &bind{"Quit"}
	back   = &bind{"Back"}
	search = &bind{"Search"}
	again  = &bind{"Listen Again"}
	mix    = &bind{"Drums-Forward Mix"}
	open_  = &bind{"Open Folder"}
)

func title(s string) {
	fmt.Println(style.Title(s))
}

func fail(s string) {
	fmt.Printf("%s %s\n", icon.Get(icon.Fail), s)
}

func progress(msg string) (eraser func()) {
	return util.PrintErasable(fmt.Sprintf("%s %s", icon.Get(icon.Progress), style.Faint(msg)))
}

// menu prompts with the given items followed by the extra binds.
// Quit is always available as the last entry. When an item is picked
// the returned bind is nil; when a bind is picked the item is the zero value.
func menu[T fmt.Stringer](items []T, binds ...*bind) (*bind, T, error) {
	if !lo.ContainsBy(binds, quit.eq) {
		binds = append(binds, quit)
	}

	options := make([]string, 0, len(items)+len(binds))
	for _, item := range items {
		options = append(options, style.Truncate(truncateAt)(item.String()))
	}
	for _, b := range binds {
		options = append(options, b.name)
	}

	var (
		picked string
		none   T
	)

	prompt := &survey.Select{
		Options:  options,
		PageSize: pageSize,
	}

	err := survey.AskOne(prompt, &picked, survey.WithIcons(promptIcons))
	if err != nil {
		return nil, none, err
	}

	idx := lo.IndexOf(options, picked)
	if idx < len(items) {
		return nil, items[idx], nil
	}

	return binds[idx-len(items)], none, nil
}

type input struct {
	value string
}

// getInput prompts for a line of input, re-asking until valid accepts it.
// A non-nil suggest provides tab completion candidates and a non-empty
// def pre-fills the prompt.
func getInput(valid func(string) bool, suggest func(string) []string, def string) (*input, error) {
	prompt := &survey.Input{
		Message: ">",
		Suggest: suggest,
		Default: def,
	}

	var value string
	err := survey.AskOne(prompt, &value,
		survey.WithIcons(promptIcons),
		survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			if !valid(s) {
				return fmt.Errorf("invalid input")
			}
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return &input{value: value}, nil
}

func promptIcons(icons *survey.IconSet) {
	icons.Question.Text = icon.Get(icon.Question)
}

const pageSize = 15
