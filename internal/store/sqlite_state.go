package store

import (
	"fmt"

	"agenkas/internal/model"
)

// ReplaceAll swaps the entire stored state in one database transaction.
// Used by import: either everything lands or nothing does.
func (s *Store) ReplaceAll(bal model.Balances, owners []model.Owner, txs []model.Transaction) error {
	return s.ExecTx(func(r Repository) error {
		txStore, ok := r.(*Store)
		if !ok {
			return fmt.Errorf("unexpected repository type in transaction")
		}

		if err := txStore.wipe(); err != nil {
			return err
		}

		if err := txStore.SetInitialBalances(bal); err != nil {
			return err
		}
		for _, o := range owners {
			if err := txStore.InsertOwner(o); err != nil {
				return err
			}
		}
		for _, tx := range txs {
			if err := txStore.InsertTransaction(tx); err != nil {
				return err
			}
		}
		return nil
	})
}

// Reset wipes all transactions and owners and zeroes the initial balances.
func (s *Store) Reset() error {
	return s.ExecTx(func(r Repository) error {
		txStore, ok := r.(*Store)
		if !ok {
			return fmt.Errorf("unexpected repository type in transaction")
		}
		if err := txStore.wipe(); err != nil {
			return err
		}
		return txStore.SetInitialBalances(model.Balances{})
	})
}

func (s *Store) wipe() error {
	if _, err := s.db.Exec(`DELETE FROM transactions`); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	if _, err := s.db.Exec(`DELETE FROM owners`); err != nil {
		return fmt.Errorf("failed to clear owners: %w", err)
	}
	return nil
}
