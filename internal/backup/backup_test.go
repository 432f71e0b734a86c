package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agenkas/internal/constants"
	"agenkas/internal/model"
	"agenkas/internal/store/storetest"
)

func TestDecodeRejectsMalformedDocuments(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not json", "not a document"},
		{"not an object", `[1, 2, 3]`},
		{"missing transactions", `{"init": {"cash": 100}}`},
		{"transactions not an array", `{"transactions": {"a": 1}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.data))
			assert.ErrorIs(t, err, ErrInvalidDocument)
		})
	}
}

func TestDecodeDefaultsMissingSections(t *testing.T) {
	doc, err := Decode([]byte(`{"transactions": []}`))
	require.NoError(t, err)
	assert.Equal(t, model.Balances{}, doc.Init)
	assert.Empty(t, doc.Owners)
	assert.Empty(t, doc.Transactions)
}

func TestDecodeNormalizesRecords(t *testing.T) {
	data := `{
		"init": {"cash": 5000.6, "atm": -200},
		"transactions": [
			{"id": "tx_1", "date": "2025-01-01", "type": "expense", "amount": 1500.4, "source": "wallet"},
			{"id": "tx_2", "date": "2025-01-02", "type": "transfer", "amount": -99, "isDebt": true},
			"garbage entry"
		]
	}`
	doc, err := Decode([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, model.Balances{Cash: 5001, ATM: -200}, doc.Init)
	require.Len(t, doc.Transactions, 2, "corrupt records are skipped")

	expense := doc.Transactions[0]
	assert.Equal(t, int64(1500), expense.Amount)
	assert.Equal(t, constants.SourceCash, expense.Source, "unknown source defaults to cash")
	assert.True(t, expense.Paid, "expenses are always settled")

	debt := doc.Transactions[1]
	assert.Equal(t, int64(0), debt.Amount)
	assert.True(t, debt.Pending())
}

func TestExportImportRoundTrip(t *testing.T) {
	repo := storetest.New()
	require.NoError(t, repo.SetInitialBalances(model.Balances{Cash: 100_000, ATM: 50_000}))

	at := "2025-01-02T09:00:00Z"
	txs := []model.Transaction{
		{
			ID: "tx_a", Date: "2025-01-01", CreatedAt: "2025-01-01T08:00:00Z",
			Type: constants.TypeCashWithdrawal, Amount: 50_000, Paid: true, PaidAt: &at,
			Note: "warung",
		},
		{
			ID: "tx_b", Date: "2025-01-02", CreatedAt: "2025-01-02T08:00:00Z",
			Type: constants.TypeTransfer, Amount: 20_000, IsDebt: true,
		},
	}
	for _, tx := range txs {
		require.NoError(t, repo.InsertTransaction(tx))
	}
	require.NoError(t, repo.InsertOwner(model.Owner{
		ID: "own_a", Name: "Budi", Amount: 500_000, CreatedAt: "2025-01-01T00:00:00Z",
	}))

	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, Export(repo, path))

	fresh := storetest.New()
	doc, err := Import(fresh, path)
	require.NoError(t, err)
	assert.Len(t, doc.Transactions, 2)

	bal, err := fresh.InitialBalances()
	require.NoError(t, err)
	assert.Equal(t, model.Balances{Cash: 100_000, ATM: 50_000}, bal)

	restored, err := fresh.ListTransactions()
	require.NoError(t, err)
	require.Len(t, restored, 2)
	assert.Equal(t, "tx_a", restored[0].ID)
	assert.Equal(t, int64(50_000), restored[0].Amount)

	owners, err := fresh.ListOwners()
	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.Equal(t, "Budi", owners[0].Name)
}

func TestImportLeavesStateOnFailure(t *testing.T) {
	repo := storetest.New()
	require.NoError(t, repo.SetInitialBalances(model.Balances{Cash: 42_000}))

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"owners": []}`), 0644))

	_, err := Import(repo, path)
	require.ErrorIs(t, err, ErrInvalidDocument)

	bal, err := repo.InitialBalances()
	require.NoError(t, err)
	assert.Equal(t, int64(42_000), bal.Cash, "prior state preserved")
}

func TestDefaultFileName(t *testing.T) {
	now := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "agenkas-backup-2025-09-01.json", DefaultFileName(now))
}
