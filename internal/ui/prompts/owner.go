package prompts

import (
	"fmt"
	"strings"

	"agenkas/internal/service"
)

// PromptOwnerForm collects an owner capital entry.
func PromptOwnerForm(defaults service.OwnerInput) (service.OwnerInput, error) {
	input := service.OwnerInput{}

	name, err := PromptInput("Owner name:", defaults.Name, func(s string) error {
		if strings.TrimSpace(s) == "" && strings.TrimSpace(defaults.Name) == "" {
			return fmt.Errorf("owner name is required")
		}
		return nil
	})
	if err != nil {
		return input, err
	}
	input.Name = name

	amount, err := PromptAmount("Capital amount (Rp):", "", nil)
	if err != nil {
		return input, err
	}
	input.Amount = amount

	note, err := PromptInput("Note (optional):", defaults.Note, nil)
	if err != nil {
		return input, err
	}
	input.Note = note

	return input, nil
}
