package tx

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"agenkas/internal/constants"
	"agenkas/internal/service"
	"agenkas/internal/ui/views"
)

type listFlags struct {
	Type   string
	Search string
	Limit  int
}

type listRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the transaction history",
		Long:  `List the transaction history newest first, optionally filtered by type or note.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{svc: svc, flags: flags}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Filter by type: withdraw, transfer, or expense")
	cmd.Flags().StringVarP(&flags.Search, "search", "s", "", "Filter by note substring (case-insensitive)")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "n", 0, "Show at most N entries (0 = all)")

	return cmd
}

func (r *listRunner) Run() error {
	filter := service.ListFilter{
		Search: r.flags.Search,
		Limit:  r.flags.Limit,
	}

	if r.flags.Type != "" {
		txType, err := parseTypeArg(r.flags.Type)
		if err != nil {
			return err
		}
		filter.Type = txType
	}

	txs, err := r.svc.Transaction.List(filter)
	if err != nil {
		return err
	}

	all, err := r.svc.Transaction.List(service.ListFilter{})
	if err != nil {
		return err
	}

	items := make([]views.TransactionListItem, 0, len(txs))
	for _, tx := range txs {
		items = append(items, views.TransactionListItem{
			Tx:     tx,
			Profit: r.svc.Transaction.DisplayProfit(tx),
		})
	}

	return views.NewTransactionListView().Render(items, len(all))
}

// parseTypeArg accepts both the stored type names and short aliases.
func parseTypeArg(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "withdraw", "withdrawal", constants.TypeCashWithdrawal:
		return constants.TypeCashWithdrawal, nil
	case constants.TypeTransfer:
		return constants.TypeTransfer, nil
	case constants.TypeExpense:
		return constants.TypeExpense, nil
	}
	return "", fmt.Errorf("invalid type: %s (use withdraw, transfer, or expense)", raw)
}
