package model

import (
	"fmt"
	"strings"
	"time"

	"agenkas/internal/constants"
)

// Transaction is a single ledger entry. Dates are kept as ISO strings so the
// replay order (date, then createdAt) is a plain lexicographic comparison.
type Transaction struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	CreatedAt string  `json:"createdAt"`
	Type      string  `json:"type"`
	Amount    int64   `json:"amount"`
	Source    string  `json:"source,omitempty"`
	IsDebt    bool    `json:"isDebt"`
	Paid      bool    `json:"paid"`
	PaidAt    *string `json:"paidAt"`
	Note      string  `json:"note,omitempty"`
}

// Balances are the starting point of the derivation fold.
type Balances struct {
	Cash int64 `json:"cash"`
	ATM  int64 `json:"atm"`
}

// Pending reports whether the entry is recorded debt that has not been
// settled yet. Pending entries count toward debt only.
func (t Transaction) Pending() bool {
	return t.IsDebt && !t.Paid
}

// DebtEligible reports whether the type may be recorded as debt.
// Expenses are always settled immediately.
func DebtEligible(txType string) bool {
	return txType == constants.TypeCashWithdrawal || txType == constants.TypeTransfer
}

// Clamp truncates a value to the non-negative range.
func Clamp(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}

// Normalize repairs a transaction loaded from storage or an imported backup
// so the derivation only ever sees well-formed values. Malformed fields fall
// back to a zero-effect default instead of failing: a negative or missing
// amount becomes 0, an unknown expense source becomes cash, and debt flags on
// ineligible types are dropped.
func Normalize(t Transaction) Transaction {
	t.Amount = Clamp(t.Amount)
	t.Note = strings.TrimSpace(t.Note)

	if d, err := time.Parse(constants.DateFormat, t.Date); err == nil {
		t.Date = d.Format(constants.DateFormat)
	}

	if t.Type == constants.TypeExpense {
		if t.Source != constants.SourceATM {
			t.Source = constants.SourceCash
		}
	} else {
		t.Source = ""
	}

	if !DebtEligible(t.Type) {
		t.IsDebt = false
	}
	if !t.IsDebt {
		t.Paid = true
	}
	if !t.Paid {
		t.PaidAt = nil
	}

	return t
}

// Validate enforces the entry rules for a new or edited transaction.
// It is stricter than Normalize: records that Normalize would quietly
// repair are rejected here, because they came from the user, not storage.
func (t Transaction) Validate() error {
	switch t.Type {
	case constants.TypeCashWithdrawal, constants.TypeTransfer, constants.TypeExpense:
	default:
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}

	if t.Amount < constants.MinAmount {
		return fmt.Errorf("amount must be at least Rp %d", constants.MinAmount)
	}

	if _, err := time.Parse(constants.DateFormat, t.Date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", t.Date)
	}

	if t.Type == constants.TypeExpense {
		if t.Source != constants.SourceCash && t.Source != constants.SourceATM {
			return fmt.Errorf("expense source must be %q or %q", constants.SourceCash, constants.SourceATM)
		}
	}

	if t.IsDebt && !DebtEligible(t.Type) {
		return fmt.Errorf("only %s and %s can be recorded as debt", constants.TypeCashWithdrawal, constants.TypeTransfer)
	}

	return nil
}

// TypeLabel returns the display name of a transaction type.
func TypeLabel(txType string) string {
	switch txType {
	case constants.TypeCashWithdrawal:
		return "Tarik Tunai"
	case constants.TypeTransfer:
		return "Transfer"
	case constants.TypeExpense:
		return "Pengeluaran"
	}
	return txType
}
