package tx

import (
	"github.com/spf13/cobra"

	"agenkas/internal/service"
)

// NewTxCmd groups the transaction subcommands.
func NewTxCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
		Long:  "Manage transactions: list the history, view details, edit, delete, or settle debts.",
	}

	cmd.AddCommand(NewAddCmd(svc))
	cmd.AddCommand(NewListCmd(svc))
	cmd.AddCommand(NewShowCmd(svc))
	cmd.AddCommand(NewEditCmd(svc))
	cmd.AddCommand(NewDeleteCmd(svc))
	cmd.AddCommand(NewPayCmd(svc))

	return cmd
}
