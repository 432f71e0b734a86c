package prompts

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"

	"agenkas/internal/constants"
	"agenkas/internal/ledger"
	"agenkas/internal/model"
	"agenkas/internal/service"
	"agenkas/internal/utils"
)

// PromptTransactionForm walks through the transaction entry fields and
// returns the collected input. defaults pre-fills the form when editing.
func PromptTransactionForm(defaults service.TransactionInput) (service.TransactionInput, error) {
	input := service.TransactionInput{}

	defaultDate := defaults.Date
	if defaultDate == "" {
		defaultDate = time.Now().Format(constants.DateFormat)
	}
	date, err := PromptDate("Transaction Date (YYYY-MM-DD):", defaultDate, "Press Enter for today")
	if err != nil {
		return input, err
	}
	input.Date = date

	typeOptions := []string{
		model.TypeLabel(constants.TypeCashWithdrawal),
		model.TypeLabel(constants.TypeTransfer),
		model.TypeLabel(constants.TypeExpense),
	}
	defaultType := model.TypeLabel(defaults.Type)
	if defaults.Type == "" {
		defaultType = typeOptions[0]
	}
	selectedType, err := PromptSelect("Transaction type:", typeOptions, defaultType)
	if err != nil {
		return input, err
	}
	input.Type = typeFromLabel(selectedType)

	amount, err := PromptAmount(
		"Amount (Rp):",
		fmt.Sprintf("Minimum %s", utils.FormatRupiah(constants.MinAmount)),
		func(n int64) error {
			if n < constants.MinAmount {
				return fmt.Errorf("minimum amount is %s", utils.FormatRupiah(constants.MinAmount))
			}
			return nil
		},
	)
	if err != nil {
		return input, err
	}
	input.Amount = amount

	if input.Type == constants.TypeExpense {
		defaultSource := "Cash"
		if defaults.Source == constants.SourceATM {
			defaultSource = "ATM"
		}
		source, err := PromptSelect("Debit from:", []string{"Cash", "ATM"}, defaultSource)
		if err != nil {
			return input, err
		}
		input.Source = constants.SourceCash
		if source == "ATM" {
			input.Source = constants.SourceATM
		}
	}

	if model.DebtEligible(input.Type) {
		isDebt, err := PromptConfirm("Record as debt (held until paid)?", defaults.IsDebt)
		if err != nil {
			return input, err
		}
		input.IsDebt = isDebt
	}

	note, err := PromptInput("Note (optional):", defaults.Note, nil)
	if err != nil {
		return input, err
	}
	input.Note = note

	showProfitHint(input)

	return input, nil
}

// showProfitHint mirrors the entry form hint: how much the transaction earns
// and whether the profit lands now or only after settlement.
func showProfitHint(input service.TransactionInput) {
	profit := ledger.ProfitFor(input.Type, model.Clamp(input.Amount))

	switch {
	case input.Type == constants.TypeExpense:
		pterm.Info.Printf("Transaction profit: %s (expenses earn nothing)\n", utils.FormatRupiah(0))
	case input.IsDebt:
		pterm.Info.Printf("Transaction profit: %s (held, credited once paid)\n", utils.FormatRupiah(profit))
	default:
		pterm.Info.Printf("Transaction profit: %s (credited immediately)\n", utils.FormatRupiah(profit))
	}
}

func typeFromLabel(label string) string {
	for _, t := range []string{constants.TypeCashWithdrawal, constants.TypeTransfer, constants.TypeExpense} {
		if model.TypeLabel(t) == label {
			return t
		}
	}
	return label
}
