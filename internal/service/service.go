package service

import (
	"agenkas/internal/store"
)

type Service struct {
	Ledger      *LedgerService
	Transaction *TransactionService
	Owner       *OwnerService
}

func NewService(repo store.Repository) *Service {
	ledger := NewLedgerService(repo)
	return &Service{
		Ledger:      ledger,
		Transaction: NewTransactionService(repo, ledger),
		Owner:       NewOwnerService(repo),
	}
}
