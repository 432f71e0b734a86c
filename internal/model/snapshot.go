package model

// Snapshot is the derived state of the ledger after replaying every
// transaction. It is never persisted; it is recomputed on every read so that
// edits and deletes anywhere in the history stay consistent.
type Snapshot struct {
	Cash   int64 `json:"cash"`
	ATM    int64 `json:"atm"`
	Total  int64 `json:"total"`
	Profit int64 `json:"profit"`
	Debt   int64 `json:"debt"`
}
