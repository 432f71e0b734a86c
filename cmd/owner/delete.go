package owner

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"agenkas/internal/service"
	"agenkas/internal/ui"
)

func NewDeleteCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <owner-id>",
		Short: "Delete an owner capital entry",
		Long:  `Delete an owner capital entry. This action cannot be undone.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := svc.Owner.Get(args[0])
			if err != nil {
				pterm.Error.Printf("Failed to delete owner: %v\n", err)
				return nil
			}

			var confirmation bool
			confirmPrompt := &survey.Confirm{
				Message: fmt.Sprintf("Delete owner %q?", o.Name),
				Default: false,
			}
			if err := survey.AskOne(confirmPrompt, &confirmation, ui.IconOption()); err != nil {
				return err
			}

			if !confirmation {
				pterm.Info.Println("Deletion cancelled")
				return nil
			}

			if err := svc.Owner.Delete(args[0]); err != nil {
				return err
			}

			pterm.Success.Printf("Owner %s deleted successfully\n", o.ID)
			ui.Separator()
			return nil
		},
	}
}
