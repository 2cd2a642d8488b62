package model

// Account is a tracked bank account as reported by an account source.
// Balance is the current cleared balance in minor units.
type Account struct {
	ID       string
	BudgetID string
	Name     string
	Currency string
	Balance  int64
	Closed   bool
}
