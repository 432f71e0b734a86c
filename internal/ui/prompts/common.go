package prompts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptSelect shows a single-choice select.
func PromptSelect(message string, options []string, defaultValue string) (string, error) {
	selected := defaultValue

	var opts []huh.Option[string]
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}

// PromptInput prompts for a generic text input with optional default and validator.
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Placeholder(defaultValue).
		Value(&inputVal)

	if validator != nil {
		input.Validate(validator)
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	if inputVal == "" {
		return defaultValue, nil
	}
	return inputVal, nil
}

// PromptConfirm prompts for yes/no confirmation.
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirm).
		Run()

	return confirm, err
}

// PromptDate prompts for a date in YYYY-MM-DD format, defaulting when the
// user presses enter without typing.
func PromptDate(message string, defaultDate string, helpText string) (string, error) {
	var date string

	err := huh.NewInput().
		Title(message).
		Description(helpText).
		Placeholder(defaultDate).
		Value(&date).
		Run()

	if err != nil {
		return "", err
	}

	if date == "" {
		return defaultDate, nil
	}
	return date, nil
}

// PromptAmount prompts for a rupiah amount and parses it as an integer.
func PromptAmount(message string, helpText string, validator func(int64) error) (int64, error) {
	var raw string

	err := huh.NewInput().
		Title(message).
		Description(helpText).
		Value(&raw).
		Validate(func(s string) error {
			n, err := ParseAmount(s)
			if err != nil {
				return err
			}
			if validator != nil {
				return validator(n)
			}
			return nil
		}).
		Run()

	if err != nil {
		return 0, err
	}
	return ParseAmount(raw)
}

// ParseAmount parses a whole-rupiah amount, tolerating dot or comma thousand
// separators ("50.000" and "50000" both parse to 50000).
func ParseAmount(s string) (int64, error) {
	cleaned := strings.NewReplacer(".", "", ",", "", " ", "").Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return 0, fmt.Errorf("amount is required")
	}
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %s", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("amount cannot be negative")
	}
	return n, nil
}
