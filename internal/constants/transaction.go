package constants

const (
	// Transaction Types
	TypeCashWithdrawal = "cash_withdrawal"
	TypeTransfer       = "transfer"
	TypeExpense        = "expense"

	// Expense Sources
	SourceCash = "cash"
	SourceATM  = "atm"

	// Date Layout
	DateFormat = "2006-01-02"
)

const (
	// MinAmount is the smallest accepted transaction amount in rupiah.
	MinAmount = 1000

	// Profit tariff: a flat ProfitStep per started ProfitBracket.
	ProfitStep    = 5_000
	ProfitBracket = 1_000_000
)
