// Package ledger holds the derivation core: the profit tariff, the replay
// fold that turns the transaction history into a balance snapshot, and the
// settlement guard. Everything in here is a pure function over plain data;
// persistence and presentation live elsewhere.
package ledger

import (
	"agenkas/internal/constants"
	"agenkas/internal/model"
)

// ProfitFor returns the fee earned on a settled transaction.
//
// Cash withdrawals and transfers earn a flat Rp 5.000 per started million:
// 1.000-999.999 earns 5.000, 1.000.000-1.999.999 earns 10.000, and so on
// without an upper bound. Expenses and amounts under the Rp 1.000 minimum
// earn nothing.
func ProfitFor(txType string, amount int64) int64 {
	if amount < constants.MinAmount {
		return 0
	}
	if !model.DebtEligible(txType) {
		return 0
	}
	return (amount/constants.ProfitBracket + 1) * constants.ProfitStep
}
