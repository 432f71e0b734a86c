package cmd

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"agenkas/internal/store"
	"agenkas/internal/ui"
)

func NewResetCmd(repo store.Repository) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all data and start over",
		Long:  `Remove every transaction and owner and zero the initial balances. This action cannot be undone.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				pterm.Warning.Println("This deletes ALL transactions, owners, and initial balances!")
				pterm.Warning.Println("This action cannot be undone!")

				var confirmation bool
				confirmPrompt := &survey.Confirm{
					Message: "Do you want to reset everything?",
					Default: false,
				}
				if err := survey.AskOne(confirmPrompt, &confirmation, ui.IconOption()); err != nil {
					return err
				}
				if !confirmation {
					pterm.Info.Println("Reset cancelled")
					return nil
				}
			}

			if err := repo.Reset(); err != nil {
				return err
			}

			pterm.Success.Println("All data deleted")
			ui.Separator()
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
