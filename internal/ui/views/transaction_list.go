package views

import (
	"github.com/pterm/pterm"

	"agenkas/internal/model"
	"agenkas/internal/utils"
)

// TransactionListItem is one row of the history table.
type TransactionListItem struct {
	Tx     model.Transaction
	Profit int64
}

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

func (v *TransactionListView) Render(items []TransactionListItem, total int) error {
	if len(items) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Println("Transaction History")

	tableData := pterm.TableData{
		{"ID", "Date", "Type", "Status", "Amount", "Profit", "Impact", "Note"},
	}

	for _, item := range items {
		tx := item.Tx
		tableData = append(tableData, []string{
			tx.ID,
			tx.Date,
			TypeBadge(tx.Type),
			StatusBadge(tx),
			pterm.Bold.Sprint(utils.FormatRupiah(model.Clamp(tx.Amount))),
			utils.FormatRupiah(item.Profit),
			ImpactText(tx),
			tx.Note,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("%d transactions shown (total stored: %d)\n", len(items), total)
	return nil
}
