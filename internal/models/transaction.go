package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Valid reports whether the type is one of the two known variants.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a one-off dated income or expense record.
// Amount is stored in centavos; the sign is derived from Type, never
// from the amount itself. Transactions are immutable after creation:
// they can only be added or deleted, never updated.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      int64           `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    Category        `json:"category"`
	Date        time.Time       `json:"date"`
}
