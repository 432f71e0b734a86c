package service

import (
	"fmt"

	"agenkas/internal/ledger"
	"agenkas/internal/model"
	"agenkas/internal/store"
)

// LedgerService computes derived snapshots and manages the initial balances.
// It never caches: every snapshot is a fresh replay of the stored history, so
// edits and deletes anywhere in the timeline are always reflected.
type LedgerService struct {
	repo store.Repository
}

func NewLedgerService(repo store.Repository) *LedgerService {
	return &LedgerService{repo: repo}
}

// Snapshot derives the current balances, profit and debt from the full
// transaction history.
func (ls *LedgerService) Snapshot() (model.Snapshot, error) {
	return ls.SnapshotExcluding("")
}

// SnapshotExcluding derives a snapshot with one transaction left out of the
// replay. This is the baseline for validating an edit or a debt settlement:
// the record being changed must not count against its own headroom.
func (ls *LedgerService) SnapshotExcluding(id string) (model.Snapshot, error) {
	bal, err := ls.repo.InitialBalances()
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to load initial balances: %w", err)
	}

	txs, err := ls.repo.ListTransactions()
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to load transactions: %w", err)
	}

	if id != "" {
		kept := txs[:0]
		for _, tx := range txs {
			if tx.ID != id {
				kept = append(kept, tx)
			}
		}
		txs = kept
	}

	return ledger.Derive(bal, txs), nil
}

func (ls *LedgerService) InitialBalances() (model.Balances, error) {
	return ls.repo.InitialBalances()
}

// SetInitialBalances overwrites the starting point of the derivation fold.
// Changing it retroactively shifts every derived total.
func (ls *LedgerService) SetInitialBalances(cash, atm int64) error {
	bal := model.Balances{Cash: model.Clamp(cash), ATM: model.Clamp(atm)}
	if err := ls.repo.SetInitialBalances(bal); err != nil {
		return fmt.Errorf("failed to save initial balances: %w", err)
	}
	return nil
}

func (ls *LedgerService) LastUpdatedAt() (string, error) {
	return ls.repo.LastUpdatedAt()
}
