package prompts

import (
	"fmt"

	"agenkas/internal/model"
	"agenkas/internal/utils"
)

// PromptInitialBalances collects the starting cash and ATM custody amounts,
// pre-filled with the current values.
func PromptInitialBalances(current model.Balances) (model.Balances, error) {
	cash, err := PromptAmount(
		"Initial cash balance (Rp):",
		fmt.Sprintf("Currently %s", utils.FormatRupiah(current.Cash)),
		nil,
	)
	if err != nil {
		return model.Balances{}, err
	}

	atm, err := PromptAmount(
		"Initial ATM custody balance (Rp):",
		fmt.Sprintf("Currently %s", utils.FormatRupiah(current.ATM)),
		nil,
	)
	if err != nil {
		return model.Balances{}, err
	}

	return model.Balances{Cash: cash, ATM: atm}, nil
}
