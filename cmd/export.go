package cmd

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"agenkas/internal/backup"
	"agenkas/internal/store"
)

func NewExportCmd(repo store.Repository) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export all data to a JSON backup file",
		Long:  `Write the initial balances, owners, and full transaction history to a single JSON document. Without an argument the file is named after today's date.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := backup.DefaultFileName(time.Now())
			if len(args) == 1 {
				path = args[0]
			}

			if err := backup.Export(repo, path); err != nil {
				return err
			}

			pterm.Success.Printf("Backup written to %s\n", path)
			return nil
		},
	}
}
