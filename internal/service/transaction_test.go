package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agenkas/internal/constants"
	"agenkas/internal/model"
	"agenkas/internal/store/storetest"
)

func newTestService(t *testing.T, cash, atm int64) *Service {
	t.Helper()
	repo := storetest.New()
	require.NoError(t, repo.SetInitialBalances(model.Balances{Cash: cash, ATM: atm}))
	return NewService(repo)
}

func TestCreateRejectsBelowMinimum(t *testing.T) {
	svc := newTestService(t, 100_000, 0)

	_, err := svc.Transaction.Create(TransactionInput{
		Date:   "2025-01-01",
		Type:   constants.TypeCashWithdrawal,
		Amount: 999,
	})
	require.Error(t, err)

	snap, err := svc.Ledger.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, int64(100_000), snap.Cash, "rejected entry must not change state")
}

func TestCreateRejectsInsufficientBalance(t *testing.T) {
	svc := newTestService(t, 0, 0)

	_, err := svc.Transaction.Create(TransactionInput{
		Date:   "2025-01-01",
		Type:   constants.TypeCashWithdrawal,
		Amount: 1000,
	})
	require.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestCreateDebtSkipsSettlementGuard(t *testing.T) {
	svc := newTestService(t, 0, 0)

	// a debt is not settled, so it may be recorded against an empty ledger
	tx, err := svc.Transaction.Create(TransactionInput{
		Date:   "2025-01-01",
		Type:   constants.TypeCashWithdrawal,
		Amount: 50_000,
		IsDebt: true,
	})
	require.NoError(t, err)
	assert.True(t, tx.Pending())
	assert.Nil(t, tx.PaidAt)

	snap, err := svc.Ledger.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, model.Snapshot{Debt: 50_000}, snap)
}

func TestEndToEndFlow(t *testing.T) {
	svc := newTestService(t, 100_000, 0)

	_, err := svc.Transaction.Create(TransactionInput{
		Date:   "2025-01-01",
		Type:   constants.TypeCashWithdrawal,
		Amount: 50_000,
	})
	require.NoError(t, err)

	snap, err := svc.Ledger.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, model.Snapshot{Cash: 50_000, ATM: 50_000, Total: 100_000, Profit: 5_000}, snap)

	debt, err := svc.Transaction.Create(TransactionInput{
		Date:   "2025-01-02",
		Type:   constants.TypeTransfer,
		Amount: 20_000,
		IsDebt: true,
	})
	require.NoError(t, err)

	snap, err = svc.Ledger.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, model.Snapshot{Cash: 50_000, ATM: 50_000, Total: 100_000, Profit: 5_000, Debt: 20_000}, snap)

	paid, err := svc.Transaction.MarkPaid(debt.ID)
	require.NoError(t, err)
	assert.True(t, paid.Paid)
	require.NotNil(t, paid.PaidAt)

	snap, err = svc.Ledger.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, model.Snapshot{Cash: 70_000, ATM: 30_000, Total: 100_000, Profit: 15_000, Debt: 0}, snap)
}

func TestMarkPaidGuards(t *testing.T) {
	svc := newTestService(t, 100_000, 0)

	normal, err := svc.Transaction.Create(TransactionInput{
		Date:   "2025-01-01",
		Type:   constants.TypeCashWithdrawal,
		Amount: 10_000,
	})
	require.NoError(t, err)

	_, err = svc.Transaction.MarkPaid(normal.ID)
	assert.ErrorIs(t, err, ErrNotDebt)

	// transfer debt that the ATM pool cannot cover
	debt, err := svc.Transaction.Create(TransactionInput{
		Date:   "2025-01-02",
		Type:   constants.TypeTransfer,
		Amount: 50_000,
		IsDebt: true,
	})
	require.NoError(t, err)

	_, err = svc.Transaction.MarkPaid(debt.ID)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// still pending after the rejected settlement
	got, err := svc.Transaction.Get(debt.ID)
	require.NoError(t, err)
	assert.True(t, got.Pending())
}

func TestMarkPaidIsIrreversibleAndOnce(t *testing.T) {
	svc := newTestService(t, 0, 100_000)

	debt, err := svc.Transaction.Create(TransactionInput{
		Date:   "2025-01-01",
		Type:   constants.TypeTransfer,
		Amount: 30_000,
		IsDebt: true,
	})
	require.NoError(t, err)

	_, err = svc.Transaction.MarkPaid(debt.ID)
	require.NoError(t, err)

	_, err = svc.Transaction.MarkPaid(debt.ID)
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestUpdateExcludesSelfFromBaseline(t *testing.T) {
	svc := newTestService(t, 50_000, 0)

	tx, err := svc.Transaction.Create(TransactionInput{
		Date:   "2025-01-01",
		Type:   constants.TypeCashWithdrawal,
		Amount: 50_000,
	})
	require.NoError(t, err)

	// cash is now 0; without excluding itself from the baseline this edit
	// would always be rejected
	updated, err := svc.Transaction.Update(tx.ID, TransactionInput{
		Date:   "2025-01-01",
		Type:   constants.TypeCashWithdrawal,
		Amount: 40_000,
	})
	require.NoError(t, err)
	assert.Equal(t, tx.ID, updated.ID)
	assert.Equal(t, tx.CreatedAt, updated.CreatedAt)

	snap, err := svc.Ledger.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, model.Snapshot{Cash: 10_000, ATM: 40_000, Total: 50_000, Profit: 5_000}, snap)

	// but it still cannot grow beyond the available headroom
	_, err = svc.Transaction.Update(tx.ID, TransactionInput{
		Date:   "2025-01-01",
		Type:   constants.TypeCashWithdrawal,
		Amount: 60_000,
	})
	assert.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestListFilterAndSearch(t *testing.T) {
	svc := newTestService(t, 1_000_000, 1_000_000)

	mk := func(date, txType, note string) {
		t.Helper()
		_, err := svc.Transaction.Create(TransactionInput{
			Date: date, Type: txType, Amount: 10_000, Note: note,
			Source: constants.SourceCash,
		})
		require.NoError(t, err)
	}
	mk("2025-01-01", constants.TypeCashWithdrawal, "warung Pak Budi")
	mk("2025-01-02", constants.TypeTransfer, "kirim ke Siti")
	mk("2025-01-03", constants.TypeExpense, "beli kertas struk")

	all, err := svc.Transaction.List(ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2025-01-03", all[0].Date, "newest first")

	transfers, err := svc.Transaction.List(ListFilter{Type: constants.TypeTransfer})
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	assert.Equal(t, "kirim ke Siti", transfers[0].Note)

	found, err := svc.Transaction.List(ListFilter{Search: "budi"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, constants.TypeCashWithdrawal, found[0].Type)

	limited, err := svc.Transaction.List(ListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestDisplayProfitHeldWhilePending(t *testing.T) {
	svc := newTestService(t, 0, 0)

	debt, err := svc.Transaction.Create(TransactionInput{
		Date:   "2025-01-01",
		Type:   constants.TypeTransfer,
		Amount: 1_500_000,
		IsDebt: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), svc.Transaction.DisplayProfit(*debt))

	settled := *debt
	settled.Paid = true
	assert.Equal(t, int64(10_000), svc.Transaction.DisplayProfit(settled))
}

func TestSetInitialBalancesClampsAndShiftsTotals(t *testing.T) {
	svc := newTestService(t, 0, 0)

	require.NoError(t, svc.Ledger.SetInitialBalances(-5, 30_000))

	bal, err := svc.Ledger.InitialBalances()
	require.NoError(t, err)
	assert.Equal(t, model.Balances{Cash: 0, ATM: 30_000}, bal)

	snap, err := svc.Ledger.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, int64(30_000), snap.Total)
}
