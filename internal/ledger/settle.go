package ledger

import (
	"agenkas/internal/model"
)

// CanSettle reports whether applying the transaction's balance effect on top
// of the snapshot leaves both pools non-negative.
//
// The snapshot must be derived with the candidate excluded: for a new entry
// that is the full history, for an edit the history without the record being
// replaced, and for a debt settlement the history without the record being
// paid. The caller treats the candidate as settled here even when its paid
// flag has not been flipped yet.
//
// This guard is the only thing standing between the ledger and a negative
// pool; every mutation that settles a transaction must check it first and
// reject the mutation outright when it returns false.
func CanSettle(snap model.Snapshot, tx model.Transaction) bool {
	cash, atm := applyEffect(snap.Cash, snap.ATM, tx.Type, tx.Source, model.Clamp(tx.Amount))
	return cash >= 0 && atm >= 0
}
