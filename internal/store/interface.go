package store

import "agenkas/internal/model"

// Repository is the persistence surface the services talk to. The sqlite
// Store is the only production implementation; tests substitute an in-memory
// fake.
type Repository interface {
	// Settings
	InitialBalances() (model.Balances, error)
	SetInitialBalances(bal model.Balances) error
	LastUpdatedAt() (string, error)

	// Transactions
	InsertTransaction(tx model.Transaction) error
	ReplaceTransaction(tx model.Transaction) error
	DeleteTransaction(id string) error
	GetTransaction(id string) (*model.Transaction, error)
	ListTransactions() ([]model.Transaction, error)

	// Owners
	InsertOwner(o model.Owner) error
	ReplaceOwner(o model.Owner) error
	DeleteOwner(id string) error
	GetOwner(id string) (*model.Owner, error)
	ListOwners() ([]model.Owner, error)

	// Whole-state operations (import / reset)
	ReplaceAll(bal model.Balances, owners []model.Owner, txs []model.Transaction) error
	Reset() error

	Close() error
}
