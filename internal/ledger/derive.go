package ledger

import (
	"sort"

	"agenkas/internal/constants"
	"agenkas/internal/model"
)

// Derive replays the transaction history on top of the initial balances and
// returns the resulting snapshot.
//
// Transactions are replayed in (date, createdAt) order regardless of the
// order they are passed in, so the result is deterministic for any
// permutation of the same history. Unpaid debt contributes its amount to the
// debt total and nothing else; settled transactions move money between the
// pools and accrue profit. Unknown types and negative amounts contribute
// zero effect rather than failing, so a corrupt stored record can never
// break the derivation.
func Derive(init model.Balances, txs []model.Transaction) model.Snapshot {
	cash := model.Clamp(init.Cash)
	atm := model.Clamp(init.ATM)

	sorted := make([]model.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].CreatedAt < sorted[j].CreatedAt
	})

	var profit, debt int64
	for _, tx := range sorted {
		amount := model.Clamp(tx.Amount)

		if tx.Pending() {
			debt += amount
			continue
		}

		cash, atm = applyEffect(cash, atm, tx.Type, tx.Source, amount)
		profit += ProfitFor(tx.Type, amount)
	}

	return model.Snapshot{
		Cash:   cash,
		ATM:    atm,
		Total:  cash + atm,
		Profit: profit,
		Debt:   debt,
	}
}

// applyEffect moves amount between the pools according to the transaction
// type. An unrecognized type leaves both pools untouched.
func applyEffect(cash, atm int64, txType, source string, amount int64) (int64, int64) {
	switch txType {
	case constants.TypeCashWithdrawal:
		cash -= amount
		atm += amount
	case constants.TypeTransfer:
		atm -= amount
		cash += amount
	case constants.TypeExpense:
		if source == constants.SourceATM {
			atm -= amount
		} else {
			cash -= amount
		}
	}
	return cash, atm
}
