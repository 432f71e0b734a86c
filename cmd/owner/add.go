package owner

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"agenkas/internal/errhandler"
	"agenkas/internal/service"
	"agenkas/internal/ui/prompts"
)

func NewAddCmd(svc *service.Service) *cobra.Command {
	var amountFlag string
	var noteFlag string

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add an owner capital entry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input service.OwnerInput
			var err error

			if len(args) == 1 && cmd.Flags().Changed("amount") {
				amount, err := prompts.ParseAmount(amountFlag)
				if err != nil {
					return err
				}
				input = service.OwnerInput{Name: args[0], Amount: amount, Note: noteFlag}
			} else {
				defaults := service.OwnerInput{}
				if len(args) == 1 {
					defaults.Name = args[0]
				}
				input, err = prompts.PromptOwnerForm(defaults)
				if err != nil {
					errhandler.HandleError(err)
					return nil
				}
			}

			o, err := svc.Owner.Create(input)
			if err != nil {
				return err
			}

			pterm.Success.Printf("Owner created successfully! (ID: %s)\n", o.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&amountFlag, "amount", "a", "", "Capital amount in whole rupiah")
	cmd.Flags().StringVarP(&noteFlag, "note", "n", "", "Optional note")

	return cmd
}
