package cmd

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"agenkas/internal/backup"
	"agenkas/internal/service"
	"agenkas/internal/store"
	"agenkas/internal/ui"
	"agenkas/internal/ui/views"
)

func NewImportCmd(repo store.Repository, svc *service.Service) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Restore all data from a JSON backup file",
		Long:  `Replace the entire stored state with the contents of a backup document. The current data is overwritten; an invalid document is rejected and nothing changes.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				pterm.Warning.Println("This replaces ALL stored data with the backup contents!")

				var confirmation bool
				confirmPrompt := &survey.Confirm{
					Message: "Do you want to continue?",
					Default: false,
				}
				if err := survey.AskOne(confirmPrompt, &confirmation, ui.IconOption()); err != nil {
					return err
				}
				if !confirmation {
					pterm.Info.Println("Import cancelled")
					return nil
				}
			}

			doc, err := backup.Import(repo, args[0])
			if err != nil {
				return err
			}

			pterm.Success.Printf("Restored %d transactions and %d owners\n",
				len(doc.Transactions), len(doc.Owners))
			ui.Separator()

			snap, err := svc.Ledger.Snapshot()
			if err != nil {
				return err
			}
			lastUpdate, err := svc.Ledger.LastUpdatedAt()
			if err != nil {
				lastUpdate = "-"
			}
			return views.RenderDashboard(snap, lastUpdate)
		},
	}

	cmd.Flags().BoolVarP(&force, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
