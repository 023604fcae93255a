package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

var errNotPositive = errors.New("must be a positive integer")

// PromptConfirm asks a yes/no question. Answering no is not an error.
func PromptConfirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
	}

	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// PromptPositiveInt asks for an integer greater than zero, offering dflt.
func PromptPositiveInt(label string, dflt int) (int, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Default:  strconv.Itoa(dflt),
		Validate: validatePositive,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
	}

	txt, err := prompt.Run()
	if err != nil {
		return 0, err
	}

	return parsePositive(txt)
}

func validatePositive(s string) error {
	_, err := parsePositive(s)

	return err
}

func parsePositive(s string) (int, error) {
	val, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid integer: %w", err)
	}

	if val <= 0 {
		return 0, fmt.Errorf("%w: %d", errNotPositive, val)
	}

	return int(val), nil
}
