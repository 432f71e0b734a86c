package store

import (
	"fmt"

	"agenkas/internal/model"
)

func (s *Store) InitialBalances() (model.Balances, error) {
	var bal model.Balances
	err := s.db.QueryRow(`
		SELECT init_cash, init_atm
		FROM settings
		WHERE id = 1
	`).Scan(&bal.Cash, &bal.ATM)
	if err != nil {
		return model.Balances{}, fmt.Errorf("failed to read initial balances: %w", err)
	}
	return bal, nil
}

func (s *Store) SetInitialBalances(bal model.Balances) error {
	_, err := s.db.Exec(`
		UPDATE settings
		SET init_cash = ?, init_atm = ?, updated_at = ?
		WHERE id = 1
	`, model.Clamp(bal.Cash), model.Clamp(bal.ATM), nowISO())
	if err != nil {
		return fmt.Errorf("failed to save initial balances: %w", err)
	}
	return nil
}

func (s *Store) LastUpdatedAt() (string, error) {
	var updatedAt string
	err := s.db.QueryRow(`SELECT updated_at FROM settings WHERE id = 1`).Scan(&updatedAt)
	if err != nil {
		return "", fmt.Errorf("failed to read last update time: %w", err)
	}
	return updatedAt, nil
}
