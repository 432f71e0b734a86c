package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"agenkas/internal/constants"
	"agenkas/internal/model"
	"agenkas/internal/utils"
)

// TypeBadge colors a transaction type the way the history table does:
// withdrawals blue, transfers green, expenses red.
func TypeBadge(txType string) string {
	label := model.TypeLabel(txType)
	switch txType {
	case constants.TypeCashWithdrawal:
		return pterm.Blue(label)
	case constants.TypeTransfer:
		return pterm.Green(label)
	case constants.TypeExpense:
		return pterm.Red(label)
	}
	return label
}

// StatusBadge renders the settlement state.
func StatusBadge(tx model.Transaction) string {
	if tx.IsDebt {
		if tx.Paid {
			return pterm.Green("Lunas")
		}
		return pterm.Yellow("Hutang")
	}
	return "Normal"
}

// ImpactText describes how the entry moves money between the pools.
func ImpactText(tx model.Transaction) string {
	amount := utils.FormatRupiah(model.Clamp(tx.Amount))

	if tx.Pending() {
		return "Not counted yet (awaiting payment)"
	}

	switch tx.Type {
	case constants.TypeCashWithdrawal:
		return fmt.Sprintf("Cash -%s / ATM +%s", amount, amount)
	case constants.TypeTransfer:
		return fmt.Sprintf("ATM -%s / Cash +%s", amount, amount)
	case constants.TypeExpense:
		pool := "Cash"
		if tx.Source == constants.SourceATM {
			pool = "ATM"
		}
		return fmt.Sprintf("%s -%s (total shrinks)", pool, amount)
	}
	return "-"
}
