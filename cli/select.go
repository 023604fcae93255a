package cli

import (
	"slices"
	"strings"

	"github.com/amp-labs/amp-containers/compare"
	"github.com/amp-labs/amp-containers/sorting"
	"github.com/manifoldco/promptui"
)

const doneItem = "[Done]"

// picker tracks a multi-select session: what is still on offer and what has
// been picked, both kept in natural order.
type picker struct {
	remaining []string
	picked    []string
}

func newPicker(choices []string) *picker {
	remaining := slices.Clone(choices)
	slices.Sort(remaining)
	remaining = slices.Compact(remaining)

	// Natural order puts "size10" after "size9".
	_ = sorting.NewShellSort(compare.Natural()).Sort(remaining, len(remaining))

	return &picker{remaining: remaining}
}

// items is what the prompt shows: the done marker followed by what is left.
func (p *picker) items() []string {
	return append([]string{doneItem}, p.remaining...)
}

// pick moves the item at index (as shown by items) to the picked set and
// reports whether the session should continue.
func (p *picker) pick(index int) bool {
	if index <= 0 || index > len(p.remaining) {
		return false
	}

	p.picked = append(p.picked, p.remaining[index-1])
	p.remaining = slices.Delete(p.remaining, index-1, index)

	return len(p.remaining) > 0
}

// result returns the picked items in the caller's original order.
func (p *picker) result(choices []string) []string {
	var out []string

	for _, c := range choices {
		if slices.Contains(p.picked, c) && !slices.Contains(out, c) {
			out = append(out, c)
		}
	}

	return out
}

func (p *picker) searcher() func(input string, index int) bool {
	return func(input string, index int) bool {
		if index == 0 || input == "" {
			return false
		}

		items := p.items()

		return index < len(items) && strings.HasPrefix(items[index], input)
	}
}

// MultiSelect asks the user to pick any number of choices, one at a time,
// until they choose [Done] or nothing is left. The answer keeps the order of
// choices.
func MultiSelect(label string, choices ...string) ([]string, error) {
	if len(choices) == 0 {
		return nil, nil
	}

	p := newPicker(choices)

	for {
		sel := &promptui.Select{
			Label:    label,
			Items:    p.items(),
			Searcher: p.searcher(),
		}

		idx, _, err := sel.Run()
		if err != nil {
			return nil, err
		}

		if !p.pick(idx) {
			break
		}
	}

	return p.result(choices), nil
}

// SelectStrategies asks which sort strategies to run. Picking none means all
// of them.
func SelectStrategies(label string, choices []string) ([]string, error) {
	picked, err := MultiSelect(label, choices...)
	if err != nil {
		return nil, err
	}

	if len(picked) == 0 {
		return slices.Clone(choices), nil
	}

	return picked, nil
}

// SelectOne asks the user to pick exactly one item.
func SelectOne(label string, items []string) (string, error) {
	sel := &promptui.Select{
		Label: label,
		Items: items,
	}

	_, value, err := sel.Run()

	return value, err
}
