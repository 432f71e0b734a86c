// Package storetest provides an in-memory store.Repository for tests.
package storetest

import (
	"fmt"
	"sort"
	"time"

	"agenkas/internal/model"
	"agenkas/internal/store"
)

// Repo keeps the whole state in maps. It is not safe for concurrent use;
// tests are single-threaded like the CLI itself.
type Repo struct {
	balances  model.Balances
	txs       map[string]model.Transaction
	owners    map[string]model.Owner
	updatedAt string
}

var _ store.Repository = (*Repo)(nil)

func New() *Repo {
	return &Repo{
		txs:       make(map[string]model.Transaction),
		owners:    make(map[string]model.Owner),
		updatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

func (m *Repo) InitialBalances() (model.Balances, error) { return m.balances, nil }

func (m *Repo) SetInitialBalances(bal model.Balances) error {
	m.balances = model.Balances{Cash: model.Clamp(bal.Cash), ATM: model.Clamp(bal.ATM)}
	return nil
}

func (m *Repo) LastUpdatedAt() (string, error) { return m.updatedAt, nil }

func (m *Repo) InsertTransaction(tx model.Transaction) error {
	if _, ok := m.txs[tx.ID]; ok {
		return fmt.Errorf("%w: %s", store.ErrDuplicateID, tx.ID)
	}
	m.txs[tx.ID] = tx
	return nil
}

func (m *Repo) ReplaceTransaction(tx model.Transaction) error {
	if _, ok := m.txs[tx.ID]; !ok {
		return fmt.Errorf("%w: %s", store.ErrTransactionNotFound, tx.ID)
	}
	m.txs[tx.ID] = tx
	return nil
}

func (m *Repo) DeleteTransaction(id string) error {
	if _, ok := m.txs[id]; !ok {
		return fmt.Errorf("%w: %s", store.ErrTransactionNotFound, id)
	}
	delete(m.txs, id)
	return nil
}

func (m *Repo) GetTransaction(id string) (*model.Transaction, error) {
	tx, ok := m.txs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", store.ErrTransactionNotFound, id)
	}
	return &tx, nil
}

func (m *Repo) ListTransactions() ([]model.Transaction, error) {
	out := make([]model.Transaction, 0, len(m.txs))
	for _, tx := range m.txs {
		out = append(out, tx)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].CreatedAt < out[j].CreatedAt
	})
	return out, nil
}

func (m *Repo) InsertOwner(o model.Owner) error {
	if _, ok := m.owners[o.ID]; ok {
		return fmt.Errorf("%w: %s", store.ErrDuplicateID, o.ID)
	}
	m.owners[o.ID] = o
	return nil
}

func (m *Repo) ReplaceOwner(o model.Owner) error {
	if _, ok := m.owners[o.ID]; !ok {
		return fmt.Errorf("%w: %s", store.ErrOwnerNotFound, o.ID)
	}
	m.owners[o.ID] = o
	return nil
}

func (m *Repo) DeleteOwner(id string) error {
	if _, ok := m.owners[id]; !ok {
		return fmt.Errorf("%w: %s", store.ErrOwnerNotFound, id)
	}
	delete(m.owners, id)
	return nil
}

func (m *Repo) GetOwner(id string) (*model.Owner, error) {
	o, ok := m.owners[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", store.ErrOwnerNotFound, id)
	}
	return &o, nil
}

func (m *Repo) ListOwners() ([]model.Owner, error) {
	out := make([]model.Owner, 0, len(m.owners))
	for _, o := range m.owners {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Repo) ReplaceAll(bal model.Balances, owners []model.Owner, txs []model.Transaction) error {
	m.balances = bal
	m.txs = make(map[string]model.Transaction, len(txs))
	for _, tx := range txs {
		m.txs[tx.ID] = tx
	}
	m.owners = make(map[string]model.Owner, len(owners))
	for _, o := range owners {
		m.owners[o.ID] = o
	}
	return nil
}

func (m *Repo) Reset() error {
	return m.ReplaceAll(model.Balances{}, nil, nil)
}

func (m *Repo) Close() error { return nil }
