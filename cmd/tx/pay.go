package tx

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"agenkas/internal/service"
	"agenkas/internal/ui"
	"agenkas/internal/ui/views"
	"agenkas/internal/utils"
)

func NewPayCmd(svc *service.Service) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "pay <transaction-id>",
		Short: "Settle a pending debt",
		Long: `Mark a pending debt as paid. The transaction starts counting against the
	pools and its profit is credited. Settlement is refused when it would drive
	a pool negative, and cannot be reversed once applied.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				pterm.Warning.Println("Settlement cannot be reversed!")

				var confirmation bool
				confirmPrompt := &survey.Confirm{
					Message: "Mark this debt as paid?",
					Default: false,
				}
				if err := survey.AskOne(confirmPrompt, &confirmation, ui.IconOption()); err != nil {
					return err
				}
				if !confirmation {
					pterm.Info.Println("Settlement cancelled")
					return nil
				}
			}

			settled, err := svc.Transaction.MarkPaid(args[0])
			if err != nil {
				return err
			}

			profit := svc.Transaction.DisplayProfit(*settled)
			pterm.Success.Printf("Debt settled, profit %s credited\n", utils.FormatRupiah(profit))
			ui.Separator()

			return views.RenderTransactionDetail(*settled, profit)
		},
	}

	cmd.Flags().BoolVarP(&force, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
