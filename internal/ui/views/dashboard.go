package views

import (
	"github.com/pterm/pterm"

	"agenkas/internal/model"
	"agenkas/internal/utils"
)

// RenderDashboard shows the derived snapshot.
func RenderDashboard(snap model.Snapshot, lastUpdate string) error {
	pterm.DefaultSection.Println("Balance Overview")

	tableData := pterm.TableData{
		{"Total Balance", pterm.Bold.Sprint(utils.FormatRupiah(snap.Total))},
		{"Cash", utils.FormatRupiah(snap.Cash)},
		{"ATM Custody", utils.FormatRupiah(snap.ATM)},
		{"Accrued Profit", pterm.Green(utils.FormatRupiah(snap.Profit))},
		{"Outstanding Debt", debtCell(snap.Debt)},
	}

	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	if lastUpdate != "" {
		pterm.Info.Printf("Last update: %s\n", lastUpdate)
	}
	return nil
}

func debtCell(debt int64) string {
	if debt > 0 {
		return pterm.Yellow(utils.FormatRupiah(debt))
	}
	return utils.FormatRupiah(debt)
}
