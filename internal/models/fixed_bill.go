package models

import "time"

// FixedBill represents a recurring monthly obligation tracked as a single
// record with a paid/unpaid flag. There is no per-period ledger: IsPaid is
// a single flag on the one record and never auto-resets. Fixed bills are
// always treated as expenses.
type FixedBill struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      int64     `json:"amount"`
	DueDate     time.Time `json:"due_date"`
	IsPaid      bool      `json:"is_paid"`
}
