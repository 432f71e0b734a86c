package ledger

import (
	"testing"

	"agenkas/internal/constants"
	"agenkas/internal/model"
)

func tx(id, date, createdAt, txType string, amount int64) model.Transaction {
	return model.Transaction{
		ID:        id,
		Date:      date,
		CreatedAt: createdAt,
		Type:      txType,
		Amount:    amount,
		Paid:      true,
	}
}

func TestDeriveEmpty(t *testing.T) {
	snap := Derive(model.Balances{Cash: 100, ATM: 200}, nil)
	want := model.Snapshot{Cash: 100, ATM: 200, Total: 300}
	if snap != want {
		t.Fatalf("got %+v, want %+v", snap, want)
	}
}

func TestDeriveClampsNegativeInputs(t *testing.T) {
	txs := []model.Transaction{
		tx("a", "2025-01-01", "2025-01-01T00:00:00Z", constants.TypeCashWithdrawal, -5000),
	}
	snap := Derive(model.Balances{Cash: -100, ATM: -100}, txs)
	if snap.Cash != 0 || snap.ATM != 0 || snap.Profit != 0 {
		t.Fatalf("negative inputs must clamp to zero effect, got %+v", snap)
	}
}

func TestDeriveOrderIndependence(t *testing.T) {
	a := tx("a", "2025-01-01", "2025-01-01T08:00:00Z", constants.TypeCashWithdrawal, 50_000)
	b := tx("b", "2025-01-02", "2025-01-02T08:00:00Z", constants.TypeTransfer, 20_000)
	c := tx("c", "2025-01-02", "2025-01-02T09:00:00Z", constants.TypeExpense, 10_000)
	c.Source = constants.SourceCash

	init := model.Balances{Cash: 100_000, ATM: 0}

	first := Derive(init, []model.Transaction{a, b, c})
	perms := [][]model.Transaction{
		{a, c, b},
		{b, a, c},
		{b, c, a},
		{c, a, b},
		{c, b, a},
	}
	for i, p := range perms {
		if got := Derive(init, p); got != first {
			t.Errorf("permutation %d: got %+v, want %+v", i, got, first)
		}
	}
}

func TestDeriveIdempotent(t *testing.T) {
	txs := []model.Transaction{
		tx("a", "2025-03-10", "2025-03-10T10:00:00Z", constants.TypeTransfer, 1_500_000),
		tx("b", "2025-03-11", "2025-03-11T10:00:00Z", constants.TypeCashWithdrawal, 250_000),
	}
	init := model.Balances{Cash: 500_000, ATM: 2_000_000}

	if first, second := Derive(init, txs), Derive(init, txs); first != second {
		t.Fatalf("re-derivation differs: %+v vs %+v", first, second)
	}
}

func TestDeriveDebtExclusion(t *testing.T) {
	debt := tx("d", "2025-01-05", "2025-01-05T08:00:00Z", constants.TypeTransfer, 20_000)
	debt.IsDebt = true
	debt.Paid = false

	init := model.Balances{Cash: 100_000, ATM: 50_000}

	pending := Derive(init, []model.Transaction{debt})
	if pending.Cash != 100_000 || pending.ATM != 50_000 || pending.Profit != 0 {
		t.Fatalf("pending debt must not touch balances or profit, got %+v", pending)
	}
	if pending.Debt != 20_000 {
		t.Fatalf("pending debt total = %d, want 20000", pending.Debt)
	}

	debt.Paid = true
	settled := Derive(init, []model.Transaction{debt})

	never := tx("n", "2025-01-05", "2025-01-05T08:00:00Z", constants.TypeTransfer, 20_000)
	equivalent := Derive(init, []model.Transaction{never})

	if settled != equivalent {
		t.Fatalf("paid debt %+v differs from never-debt equivalent %+v", settled, equivalent)
	}
	if settled.Debt != 0 {
		t.Fatalf("settled debt total = %d, want 0", settled.Debt)
	}
}

func TestDeriveEndToEndScenario(t *testing.T) {
	init := model.Balances{Cash: 100_000, ATM: 0}

	withdrawal := tx("w", "2025-02-01", "2025-02-01T08:00:00Z", constants.TypeCashWithdrawal, 50_000)
	snap := Derive(init, []model.Transaction{withdrawal})
	want := model.Snapshot{Cash: 50_000, ATM: 50_000, Total: 100_000, Profit: 5_000}
	if snap != want {
		t.Fatalf("after withdrawal: got %+v, want %+v", snap, want)
	}

	debt := tx("d", "2025-02-02", "2025-02-02T08:00:00Z", constants.TypeTransfer, 20_000)
	debt.IsDebt = true
	debt.Paid = false
	snap = Derive(init, []model.Transaction{withdrawal, debt})
	want.Debt = 20_000
	if snap != want {
		t.Fatalf("after debt transfer: got %+v, want %+v", snap, want)
	}

	debt.Paid = true
	snap = Derive(init, []model.Transaction{withdrawal, debt})
	want = model.Snapshot{Cash: 70_000, ATM: 30_000, Total: 100_000, Profit: 15_000, Debt: 0}
	if snap != want {
		t.Fatalf("after settlement: got %+v, want %+v", snap, want)
	}
}

func TestDeriveExpenseSources(t *testing.T) {
	init := model.Balances{Cash: 50_000, ATM: 50_000}

	fromATM := tx("e1", "2025-02-01", "2025-02-01T08:00:00Z", constants.TypeExpense, 10_000)
	fromATM.Source = constants.SourceATM
	snap := Derive(init, []model.Transaction{fromATM})
	if snap.Cash != 50_000 || snap.ATM != 40_000 || snap.Profit != 0 {
		t.Fatalf("expense from atm: got %+v", snap)
	}

	// unrecognized source falls back to cash
	fromJunk := tx("e2", "2025-02-01", "2025-02-01T08:00:00Z", constants.TypeExpense, 10_000)
	fromJunk.Source = "wallet"
	snap = Derive(init, []model.Transaction{fromJunk})
	if snap.Cash != 40_000 || snap.ATM != 50_000 {
		t.Fatalf("expense with unknown source must debit cash, got %+v", snap)
	}
}

func TestDeriveUnknownTypeIsNoOp(t *testing.T) {
	junk := tx("j", "2025-02-01", "2025-02-01T08:00:00Z", "deposit", 30_000)
	snap := Derive(model.Balances{Cash: 10_000, ATM: 10_000}, []model.Transaction{junk})
	if snap.Cash != 10_000 || snap.ATM != 10_000 || snap.Profit != 0 || snap.Debt != 0 {
		t.Fatalf("unknown type must contribute nothing, got %+v", snap)
	}
}
