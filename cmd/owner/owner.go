package owner

import (
	"github.com/spf13/cobra"

	"agenkas/internal/service"
)

// NewOwnerCmd groups the owner capital subcommands.
func NewOwnerCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owner",
		Short: "Manage owner capital entries",
		Long:  "Manage owner capital entries. These are bookkeeping records only and never affect the derived balances.",
	}

	cmd.AddCommand(NewAddCmd(svc))
	cmd.AddCommand(NewListCmd(svc))
	cmd.AddCommand(NewEditCmd(svc))
	cmd.AddCommand(NewDeleteCmd(svc))

	return cmd
}
