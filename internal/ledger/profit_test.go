package ledger

import (
	"testing"

	"agenkas/internal/constants"
)

func TestProfitFor(t *testing.T) {
	cases := []struct {
		txType string
		amount int64
		want   int64
	}{
		{constants.TypeCashWithdrawal, 999, 0},
		{constants.TypeCashWithdrawal, 1000, 5000},
		{constants.TypeCashWithdrawal, 50000, 5000},
		{constants.TypeTransfer, 999_999, 5000},
		{constants.TypeTransfer, 1_000_000, 10000},
		{constants.TypeTransfer, 1_999_999, 10000},
		{constants.TypeTransfer, 2_500_000, 15000},
		{constants.TypeExpense, 5_000_000, 0},
		{constants.TypeExpense, 1000, 0},
		{"unknown", 1_000_000, 0},
		{constants.TypeTransfer, 0, 0},
	}
	for _, tc := range cases {
		if got := ProfitFor(tc.txType, tc.amount); got != tc.want {
			t.Errorf("ProfitFor(%s, %d) = %d, want %d", tc.txType, tc.amount, got, tc.want)
		}
	}
}
