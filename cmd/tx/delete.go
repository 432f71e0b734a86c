package tx

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"agenkas/internal/service"
	"agenkas/internal/ui"
	"agenkas/internal/ui/views"
)

func NewDeleteCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete a transaction",
		Long:  `Delete a transaction from the history. The next derivation replays without it. This action cannot be undone.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(svc, args[0])
		},
	}
}

func runDelete(svc *service.Service, id string) error {
	tx, err := svc.Transaction.Get(id)
	if err != nil {
		pterm.Error.Printf("Failed to delete transaction: %v\n", err)
		return nil
	}

	pterm.Warning.Printf("About to delete transaction %s:\n", tx.ID)
	if err := views.RenderTransactionDetail(*tx, svc.Transaction.DisplayProfit(*tx)); err != nil {
		return err
	}

	pterm.Warning.Println("This action cannot be undone!")

	var confirmation bool
	confirmPrompt := &survey.Confirm{
		Message: "Do you want to delete this transaction?",
		Default: false,
	}
	if err := survey.AskOne(confirmPrompt, &confirmation, ui.IconOption()); err != nil {
		return err
	}

	if !confirmation {
		pterm.Info.Println("Deletion cancelled")
		return nil
	}

	if err := svc.Transaction.Delete(id); err != nil {
		pterm.Error.Printf("Failed to delete transaction: %v\n", err)
		return nil
	}

	pterm.Success.Printf("Transaction %s deleted successfully\n", id)
	ui.Separator()
	return nil
}
