package service

import "errors"

var (
	// ErrInsufficientBalance rejects a settlement that would drive the cash
	// or ATM pool negative. The attempted mutation is never applied.
	ErrInsufficientBalance = errors.New("insufficient balance: cash or ATM custody would go negative")

	ErrNotDebt     = errors.New("transaction is not recorded as debt")
	ErrAlreadyPaid = errors.New("debt is already settled")
)
