package tx

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"agenkas/internal/errhandler"
	"agenkas/internal/service"
	"agenkas/internal/ui"
	"agenkas/internal/ui/prompts"
	"agenkas/internal/ui/views"
)

type editRunner struct {
	svc *service.Service
}

func NewEditCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <transaction-id>",
		Short: "Edit a transaction",
		Long: `Edit a transaction interactively. The replacement is re-validated from
	scratch, so an edit that would drive a pool negative is rejected and the
	original record stays untouched. Keeping the debt flag on a settled entry
	re-enters it as pending.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &editRunner{svc: svc}
			return runner.Run(args[0])
		},
	}
}

func (r *editRunner) Run(id string) error {
	existing, err := r.svc.Transaction.Get(id)
	if err != nil {
		pterm.Error.Printf("Failed to get transaction: %v\n", err)
		return nil
	}

	pterm.DefaultSection.Printf("Editing Transaction %s", id)
	if err := views.RenderTransactionDetail(*existing, r.svc.Transaction.DisplayProfit(*existing)); err != nil {
		return err
	}

	defaults := service.TransactionInput{
		Date:   existing.Date,
		Type:   existing.Type,
		Amount: existing.Amount,
		Source: existing.Source,
		IsDebt: existing.IsDebt,
		Note:   existing.Note,
	}

	input, err := prompts.PromptTransactionForm(defaults)
	if err != nil {
		errhandler.HandleError(err)
		return nil
	}

	updated, err := r.svc.Transaction.Update(id, input)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Transaction %s updated successfully\n", id)
	ui.Separator()

	return views.RenderTransactionDetail(*updated, r.svc.Transaction.DisplayProfit(*updated))
}
