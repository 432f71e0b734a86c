package owner

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"agenkas/internal/errhandler"
	"agenkas/internal/service"
	"agenkas/internal/ui"
	"agenkas/internal/ui/prompts"
)

func NewEditCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <owner-id>",
		Short: "Edit an owner capital entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			existing, err := svc.Owner.Get(args[0])
			if err != nil {
				pterm.Error.Printf("Failed to get owner: %v\n", err)
				return nil
			}

			defaults := service.OwnerInput{
				Name:   existing.Name,
				Amount: existing.Amount,
				Note:   existing.Note,
			}

			input, err := prompts.PromptOwnerForm(defaults)
			if err != nil {
				errhandler.HandleError(err)
				return nil
			}

			updated, err := svc.Owner.Update(args[0], input)
			if err != nil {
				return err
			}

			pterm.Success.Printf("Owner %s updated successfully\n", updated.ID)
			ui.Separator()
			return nil
		},
	}
}
