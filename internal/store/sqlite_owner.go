package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"agenkas/internal/model"
)

func (s *Store) InsertOwner(o model.Owner) error {
	stmt, err := s.db.Prepare(`
		INSERT INTO owners (id, name, amount, note, created_at)
		VALUES (?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare SQL: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(o.ID, o.Name, o.Amount, o.Note, o.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: %s", ErrDuplicateID, o.ID)
		}
		return fmt.Errorf("failed to insert owner: %w", err)
	}

	return s.touch()
}

func (s *Store) ReplaceOwner(o model.Owner) error {
	result, err := s.db.Exec(`
		UPDATE owners
		SET name = ?, amount = ?, note = ?, created_at = ?
		WHERE id = ?
	`, o.Name, o.Amount, o.Note, o.CreatedAt, o.ID)
	if err != nil {
		return fmt.Errorf("failed to update owner: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrOwnerNotFound, o.ID)
	}

	return s.touch()
}

func (s *Store) DeleteOwner(id string) error {
	result, err := s.db.Exec(`DELETE FROM owners WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete owner: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrOwnerNotFound, id)
	}

	return s.touch()
}

func (s *Store) GetOwner(id string) (*model.Owner, error) {
	row := s.db.QueryRow(`
		SELECT id, name, amount, note, created_at
		FROM owners
		WHERE id = ?
	`, id)

	o := &model.Owner{}
	err := row.Scan(&o.ID, &o.Name, &o.Amount, &o.Note, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrOwnerNotFound, id)
		}
		return nil, fmt.Errorf("failed to query owner %s: %w", id, err)
	}
	return o, nil
}

func (s *Store) ListOwners() ([]model.Owner, error) {
	rows, err := s.db.Query(`
		SELECT id, name, amount, note, created_at
		FROM owners
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query owners: %w", err)
	}
	defer rows.Close()

	var owners []model.Owner
	for rows.Next() {
		var o model.Owner
		if err := rows.Scan(&o.ID, &o.Name, &o.Amount, &o.Note, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan owner: %w", err)
		}
		owners = append(owners, o)
	}

	return owners, rows.Err()
}
