package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"agenkas/internal/constants"
	"agenkas/internal/ledger"
	"agenkas/internal/model"
	"agenkas/internal/store"
)

// TransactionInput is what the CLI collects for a new or edited transaction.
type TransactionInput struct {
	Date   string
	Type   string
	Amount int64
	Source string
	IsDebt bool
	Note   string
}

// ListFilter narrows the history listing.
type ListFilter struct {
	Type   string // empty = all types
	Search string // case-insensitive substring match on the note
	Limit  int    // 0 = no limit
}

type TransactionService struct {
	repo   store.Repository
	ledger *LedgerService
}

func NewTransactionService(repo store.Repository, ledger *LedgerService) *TransactionService {
	return &TransactionService{repo: repo, ledger: ledger}
}

// Create records a new transaction. A non-debt entry settles immediately and
// is therefore checked against the current snapshot first; a rejected entry
// is never stored.
func (ts *TransactionService) Create(input TransactionInput) (*model.Transaction, error) {
	tx := ts.build(model.NewID("tx"), nowISO(), input)

	if err := tx.Validate(); err != nil {
		return nil, err
	}

	if !tx.Pending() {
		snap, err := ts.ledger.Snapshot()
		if err != nil {
			return nil, err
		}
		if !ledger.CanSettle(snap, tx) {
			return nil, ErrInsufficientBalance
		}
	}

	if err := ts.repo.InsertTransaction(tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// Update replaces a transaction wholesale. The replacement keeps the id and
// creation time of the original and is re-validated from scratch against the
// snapshot derived without the original, so the old version of the record
// does not count against its own headroom.
func (ts *TransactionService) Update(id string, input TransactionInput) (*model.Transaction, error) {
	existing, err := ts.repo.GetTransaction(id)
	if err != nil {
		return nil, err
	}

	tx := ts.build(existing.ID, existing.CreatedAt, input)

	if err := tx.Validate(); err != nil {
		return nil, err
	}

	if !tx.Pending() {
		snap, err := ts.ledger.SnapshotExcluding(id)
		if err != nil {
			return nil, err
		}
		if !ledger.CanSettle(snap, tx) {
			return nil, ErrInsufficientBalance
		}
	}

	if err := ts.repo.ReplaceTransaction(tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// MarkPaid settles a pending debt. The transition is guarded by the same
// negative-balance check as a fresh entry, computed as if the debt were
// already settled, and is irreversible once applied.
func (ts *TransactionService) MarkPaid(id string) (*model.Transaction, error) {
	tx, err := ts.repo.GetTransaction(id)
	if err != nil {
		return nil, err
	}
	if !tx.IsDebt {
		return nil, ErrNotDebt
	}
	if tx.Paid {
		return nil, ErrAlreadyPaid
	}

	snap, err := ts.ledger.SnapshotExcluding(id)
	if err != nil {
		return nil, err
	}

	settled := *tx
	settled.Paid = true
	if !ledger.CanSettle(snap, settled) {
		return nil, ErrInsufficientBalance
	}

	at := nowISO()
	settled.PaidAt = &at
	if err := ts.repo.ReplaceTransaction(settled); err != nil {
		return nil, err
	}
	return &settled, nil
}

func (ts *TransactionService) Delete(id string) error {
	return ts.repo.DeleteTransaction(id)
}

func (ts *TransactionService) Get(id string) (*model.Transaction, error) {
	return ts.repo.GetTransaction(id)
}

// List returns the history newest first, optionally filtered by type and
// note search.
func (ts *TransactionService) List(filter ListFilter) ([]model.Transaction, error) {
	txs, err := ts.repo.ListTransactions()
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	sort.SliceStable(txs, func(i, j int) bool {
		if txs[i].Date != txs[j].Date {
			return txs[i].Date > txs[j].Date
		}
		return txs[i].CreatedAt > txs[j].CreatedAt
	})

	query := strings.ToLower(strings.TrimSpace(filter.Search))

	var out []model.Transaction
	for _, tx := range txs {
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(tx.Note), query) {
			continue
		}
		out = append(out, tx)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}

// DisplayProfit is the profit shown next to a history entry: zero while the
// debt is pending, the full tariff once settled.
func (ts *TransactionService) DisplayProfit(tx model.Transaction) int64 {
	if tx.Pending() {
		return 0
	}
	return ledger.ProfitFor(tx.Type, model.Clamp(tx.Amount))
}

// build assembles a normalized transaction from user input. The settled/debt
// state is always derived from the input: editing a settled record as debt
// re-enters it as pending, editing a pending record without the debt flag
// settles it now.
func (ts *TransactionService) build(id, createdAt string, input TransactionInput) model.Transaction {
	date := strings.TrimSpace(input.Date)
	if date == "" {
		date = time.Now().Format(constants.DateFormat)
	}

	isDebt := input.IsDebt && model.DebtEligible(input.Type)

	tx := model.Transaction{
		ID:        id,
		Date:      date,
		CreatedAt: createdAt,
		Type:      input.Type,
		Amount:    input.Amount,
		Source:    input.Source,
		IsDebt:    isDebt,
		Paid:      !isDebt,
		Note:      strings.TrimSpace(input.Note),
	}
	if tx.Paid {
		at := nowISO()
		tx.PaidAt = &at
	}

	return model.Normalize(tx)
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
