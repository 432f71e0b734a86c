package views

import (
	"github.com/pterm/pterm"

	"agenkas/internal/model"
	"agenkas/internal/utils"
)

// RenderOwnerList shows the capital contribution entries.
func RenderOwnerList(owners []model.Owner) error {
	if len(owners) == 0 {
		pterm.Warning.Println("No owners recorded")
		return nil
	}

	pterm.DefaultSection.Println("Owner Capital")

	tableData := pterm.TableData{
		{"ID", "Name", "Capital", "Note"},
	}
	for _, o := range owners {
		tableData = append(tableData, []string{
			o.ID,
			pterm.Bold.Sprint(o.Name),
			utils.FormatRupiah(o.Amount),
			o.Note,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("%d owners\n", len(owners))
	return nil
}
