package tx

import (
	"github.com/spf13/cobra"

	"agenkas/internal/service"
	"agenkas/internal/ui/views"
)

func NewShowCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "show <transaction-id>",
		Short: "Show a transaction's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, err := svc.Transaction.Get(args[0])
			if err != nil {
				return err
			}

			return views.RenderTransactionDetail(*tx, svc.Transaction.DisplayProfit(*tx))
		},
	}
}
