package views

import (
	"github.com/pterm/pterm"

	"agenkas/internal/model"
	"agenkas/internal/utils"
)

// RenderTransactionDetail shows one transaction in full.
func RenderTransactionDetail(tx model.Transaction, profit int64) error {
	pterm.DefaultSection.Println("Transaction Info")

	paidAt := "-"
	if tx.PaidAt != nil {
		paidAt = *tx.PaidAt
	}
	note := tx.Note
	if note == "" {
		note = "-"
	}

	tableData := pterm.TableData{
		{"Field", "Value"},
		{"ID", tx.ID},
		{"Date", tx.Date},
		{"Type", TypeBadge(tx.Type)},
		{"Status", StatusBadge(tx)},
		{"Amount", pterm.Bold.Sprint(utils.FormatRupiah(model.Clamp(tx.Amount)))},
		{"Profit", utils.FormatRupiah(profit)},
		{"Impact", ImpactText(tx)},
		{"Paid At", paidAt},
		{"Note", note},
		{"Created At", tx.CreatedAt},
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
