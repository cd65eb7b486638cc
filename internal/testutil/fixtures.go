package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"financaspro/internal/models"
	"financaspro/internal/uuid"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date builds a midnight-UTC calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Transaction builds a transaction record with a fresh id, dated today.
// Amount is in centavos.
func Transaction(txType models.TransactionType, amount int64, category models.Category) models.Transaction {
	return TransactionOn(txType, amount, category, time.Now().UTC().Truncate(24*time.Hour))
}

// TransactionOn builds a transaction record attributed to the given date.
func TransactionOn(txType models.TransactionType, amount int64, category models.Category, date time.Time) models.Transaction {
	return models.Transaction{
		ID:          uuid.New(),
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Amount:      amount,
		Type:        txType,
		Category:    category,
		Date:        date,
	}
}

// FixedBill builds an unpaid fixed bill record with a fresh id.
func FixedBill(amount int64) models.FixedBill {
	return models.FixedBill{
		ID:          uuid.New(),
		Description: fmt.Sprintf("Test Bill %d", nextID()),
		Amount:      amount,
		DueDate:     time.Now().UTC().Truncate(24 * time.Hour),
		IsPaid:      false,
	}
}
