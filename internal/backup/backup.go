// Package backup serializes the entire ledger state to a single JSON
// document and restores it. The document layout is
// {init, owners, transactions, meta} with integer amounts.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"agenkas/internal/model"
	"agenkas/internal/store"
)

var (
	// ErrInvalidDocument rejects an import whose payload is not a JSON
	// object or lacks a transactions array. Nothing is committed.
	ErrInvalidDocument = errors.New("invalid backup document: missing transactions")
)

// Document is the exported state.
type Document struct {
	Init         model.Balances      `json:"init"`
	Owners       []model.Owner       `json:"owners"`
	Transactions []model.Transaction `json:"transactions"`
	Meta         Meta                `json:"meta"`
}

type Meta struct {
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// DefaultFileName returns the dated export name, e.g.
// "agenkas-backup-2025-09-01.json".
func DefaultFileName(now time.Time) string {
	return fmt.Sprintf("agenkas-backup-%s.json", now.Format("2006-01-02"))
}

// Export writes the full stored state to path as indented JSON.
func Export(repo store.Repository, path string) error {
	bal, err := repo.InitialBalances()
	if err != nil {
		return fmt.Errorf("failed to load initial balances: %w", err)
	}
	owners, err := repo.ListOwners()
	if err != nil {
		return fmt.Errorf("failed to load owners: %w", err)
	}
	txs, err := repo.ListTransactions()
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	updatedAt, err := repo.LastUpdatedAt()
	if err != nil {
		return fmt.Errorf("failed to load last update time: %w", err)
	}

	doc := Document{
		Init:         bal,
		Owners:       owners,
		Transactions: txs,
		Meta: Meta{
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
			UpdatedAt: updatedAt,
		},
	}
	if doc.Owners == nil {
		doc.Owners = []model.Owner{}
	}
	if doc.Transactions == nil {
		doc.Transactions = []model.Transaction{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// Import replaces the entire stored state with the document at path. The
// document must be a JSON object with a transactions array; anything else is
// rejected and the prior state is preserved unchanged. Missing init, owners
// or meta sections default to their zero values, and each transaction is
// normalized so a hand-edited backup cannot poison the derivation.
func Import(repo store.Repository, path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup file: %w", err)
	}

	doc, err := Decode(data)
	if err != nil {
		return nil, err
	}

	if err := repo.ReplaceAll(doc.Init, doc.Owners, doc.Transactions); err != nil {
		return nil, fmt.Errorf("failed to restore state: %w", err)
	}
	return doc, nil
}

// Decode parses and normalizes a backup document without touching storage.
func Decode(data []byte) (*Document, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	rawTxs, ok := probe["transactions"]
	if !ok {
		return nil, ErrInvalidDocument
	}
	var txList []json.RawMessage
	if err := json.Unmarshal(rawTxs, &txList); err != nil {
		return nil, ErrInvalidDocument
	}

	doc := &Document{}
	if raw, ok := probe["init"]; ok {
		var init rawBalances
		if err := json.Unmarshal(raw, &init); err == nil {
			doc.Init = model.Balances{Cash: roundAmount(init.Cash), ATM: roundAmount(init.ATM)}
		}
	}
	if raw, ok := probe["owners"]; ok {
		var owners []rawOwner
		if err := json.Unmarshal(raw, &owners); err == nil {
			for _, o := range owners {
				doc.Owners = append(doc.Owners, o.toModel())
			}
		}
	}
	if raw, ok := probe["meta"]; ok {
		_ = json.Unmarshal(raw, &doc.Meta)
	}

	for _, rawTx := range txList {
		var tx rawTransaction
		if err := json.Unmarshal(rawTx, &tx); err != nil {
			// a single corrupt record contributes nothing instead of
			// failing the whole import
			continue
		}
		doc.Transactions = append(doc.Transactions, tx.toModel())
	}

	return doc, nil
}

// raw* mirror the document types with float64 amounts so documents produced
// by tools that write fractional numbers still round-trip to integers.
type rawBalances struct {
	Cash float64 `json:"cash"`
	ATM  float64 `json:"atm"`
}

type rawOwner struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Note      string  `json:"note"`
	CreatedAt string  `json:"createdAt"`
}

func (o rawOwner) toModel() model.Owner {
	id := o.ID
	if id == "" {
		id = model.NewID("own")
	}
	return model.Owner{
		ID:        id,
		Name:      o.Name,
		Amount:    model.Clamp(roundAmount(o.Amount)),
		Note:      o.Note,
		CreatedAt: o.CreatedAt,
	}
}

type rawTransaction struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	CreatedAt string  `json:"createdAt"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Source    string  `json:"source"`
	IsDebt    bool    `json:"isDebt"`
	Paid      bool    `json:"paid"`
	PaidAt    *string `json:"paidAt"`
	Note      string  `json:"note"`
}

func (t rawTransaction) toModel() model.Transaction {
	id := t.ID
	if id == "" {
		id = model.NewID("tx")
	}
	return model.Normalize(model.Transaction{
		ID:        id,
		Date:      t.Date,
		CreatedAt: t.CreatedAt,
		Type:      t.Type,
		Amount:    roundAmount(t.Amount),
		Source:    t.Source,
		IsDebt:    t.IsDebt,
		Paid:      t.Paid,
		PaidAt:    t.PaidAt,
		Note:      t.Note,
	})
}

func roundAmount(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int64(math.Round(f))
}
