package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"agenkas/internal/model"
)

func (s *Store) InsertTransaction(tx model.Transaction) error {
	stmt, err := s.db.Prepare(`
		INSERT INTO transactions (id, date, created_at, type, amount, source, is_debt, paid, paid_at, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare SQL: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(
		tx.ID, tx.Date, tx.CreatedAt, tx.Type, tx.Amount,
		tx.Source, tx.IsDebt, tx.Paid, tx.PaidAt, tx.Note,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: %s", ErrDuplicateID, tx.ID)
		}
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return s.touch()
}

func (s *Store) ReplaceTransaction(tx model.Transaction) error {
	result, err := s.db.Exec(`
		UPDATE transactions
		SET date = ?, created_at = ?, type = ?, amount = ?, source = ?,
		    is_debt = ?, paid = ?, paid_at = ?, note = ?
		WHERE id = ?
	`, tx.Date, tx.CreatedAt, tx.Type, tx.Amount, tx.Source,
		tx.IsDebt, tx.Paid, tx.PaidAt, tx.Note, tx.ID)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrTransactionNotFound, tx.ID)
	}

	return s.touch()
}

func (s *Store) DeleteTransaction(id string) error {
	result, err := s.db.Exec(`DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrTransactionNotFound, id)
	}

	return s.touch()
}

func (s *Store) GetTransaction(id string) (*model.Transaction, error) {
	row := s.db.QueryRow(`
		SELECT id, date, created_at, type, amount, source, is_debt, paid, paid_at, note
		FROM transactions
		WHERE id = ?
	`, id)

	tx, err := scanTransaction(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrTransactionNotFound, id)
		}
		return nil, fmt.Errorf("failed to query transaction %s: %w", id, err)
	}
	return tx, nil
}

func (s *Store) ListTransactions() ([]model.Transaction, error) {
	rows, err := s.db.Query(`
		SELECT id, date, created_at, type, amount, source, is_debt, paid, paid_at, note
		FROM transactions
		ORDER BY date, created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txs []model.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, *tx)
	}

	return txs, rows.Err()
}

func scanTransaction(scan func(dest ...any) error) (*model.Transaction, error) {
	tx := &model.Transaction{}
	var paidAt sql.NullString

	err := scan(
		&tx.ID, &tx.Date, &tx.CreatedAt, &tx.Type, &tx.Amount,
		&tx.Source, &tx.IsDebt, &tx.Paid, &paidAt, &tx.Note,
	)
	if err != nil {
		return nil, err
	}

	if paidAt.Valid {
		tx.PaidAt = &paidAt.String
	}

	// stored rows go through the same normalization as imported ones, so a
	// hand-edited database can not crash the derivation
	normalized := model.Normalize(*tx)
	return &normalized, nil
}
