// Package store holds the canonical in-memory collections of transactions
// and fixed bills. All mutations go through the Store; the raw slices never
// escape. Every mutation re-serializes its collection through the snapshot
// gateway, and persistence is best-effort: a failed save is logged and the
// store keeps serving from memory for the rest of the session.
package store

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	apperrors "financaspro/internal/errors"
	"financaspro/internal/logger"
	"financaspro/internal/models"
	"financaspro/internal/storage"
	"financaspro/internal/uuid"
)

// Storage keys, one per collection. These are the keys the original
// browser build used for local storage, kept for data compatibility.
const (
	TransactionsKey = "financas_pro_data"
	FixedBillsKey   = "financas_pro_fixed"
)

// schemaVersion is written into every persisted envelope so a future
// format change can detect and migrate old payloads.
const schemaVersion = 1

type envelope[T any] struct {
	SchemaVersion int `json:"schema_version"`
	Records       []T `json:"records"`
}

// Store owns both collections for the lifetime of the process. Mutations
// are serialized by the mutex, so each persisted snapshot reflects every
// mutation applied before it.
type Store struct {
	mu           sync.Mutex
	gateway      storage.SnapshotGateway
	transactions []models.Transaction
	fixedBills   []models.FixedBill
}

// New creates a Store initialized from the snapshot gateway. A missing or
// unreadable snapshot starts the collection empty; the error is logged and
// the store operates in-memory-only.
func New(gateway storage.SnapshotGateway) *Store {
	return &Store{
		gateway:      gateway,
		transactions: loadCollection[models.Transaction](gateway, TransactionsKey),
		fixedBills:   loadCollection[models.FixedBill](gateway, FixedBillsKey),
	}
}

func loadCollection[T any](gateway storage.SnapshotGateway, key string) []T {
	payload, ok, err := gateway.Load(key)
	if err != nil {
		logger.Get().Errorw("failed to load snapshot, starting empty",
			"key", key,
			"error", err.Error(),
		)
		return nil
	}
	if !ok {
		return nil
	}

	var env envelope[T]
	if err := json.Unmarshal(payload, &env); err != nil {
		logger.Get().Errorw("failed to decode snapshot, starting empty",
			"key", key,
			"error", err.Error(),
		)
		return nil
	}
	return env.Records
}

// TransactionInput holds the caller-supplied fields for a new transaction.
type TransactionInput struct {
	Description string
	Amount      int64
	Type        models.TransactionType
	Category    models.Category
	Date        time.Time
}

// FixedBillInput holds the caller-supplied fields for a new fixed bill.
// There is deliberately no paid flag: bills are always created unpaid.
type FixedBillInput struct {
	Description string
	Amount      int64
	DueDate     time.Time
}

// AddTransaction validates the input, assigns a fresh id and prepends the
// record to the transaction collection. The updated collection is persisted
// before returning.
func (s *Store) AddTransaction(in TransactionInput) (*models.Transaction, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if in.Amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if !in.Type.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be INCOME or EXPENSE")
	}
	if !in.Category.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown category "+string(in.Category))
	}
	if in.Date.IsZero() {
		in.Date = time.Now().UTC().Truncate(24 * time.Hour)
	}

	tx := models.Transaction{
		ID:          uuid.New(),
		Description: in.Description,
		Amount:      in.Amount,
		Type:        in.Type,
		Category:    in.Category,
		Date:        in.Date,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append([]models.Transaction{tx}, s.transactions...)
	s.persistTransactions()
	return &tx, nil
}

// DeleteTransaction removes the transaction with the given id. Deleting an
// id that is not present is a silent no-op, not an error.
func (s *Store) DeleteTransaction(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, tx := range s.transactions {
		if tx.ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			s.persistTransactions()
			return
		}
	}
}

// AddFixedBill validates the input and appends a new bill. IsPaid is forced
// to false regardless of anything the caller supplied upstream.
func (s *Store) AddFixedBill(in FixedBillInput) (*models.FixedBill, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if in.Amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if in.DueDate.IsZero() {
		in.DueDate = time.Now().UTC().Truncate(24 * time.Hour)
	}

	bill := models.FixedBill{
		ID:          uuid.New(),
		Description: in.Description,
		Amount:      in.Amount,
		DueDate:     in.DueDate,
		IsPaid:      false,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.fixedBills = append(s.fixedBills, bill)
	s.persistFixedBills()
	return &bill, nil
}

// ToggleFixedBill flips the paid flag of the bill with the given id and
// returns the updated record. An absent id is a silent no-op returning nil.
func (s *Store) ToggleFixedBill(id string) *models.FixedBill {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.fixedBills {
		if s.fixedBills[i].ID == id {
			s.fixedBills[i].IsPaid = !s.fixedBills[i].IsPaid
			s.persistFixedBills()
			bill := s.fixedBills[i]
			return &bill
		}
	}
	return nil
}

// DeleteFixedBill removes the bill with the given id; no-op if absent.
func (s *Store) DeleteFixedBill(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, bill := range s.fixedBills {
		if bill.ID == id {
			s.fixedBills = append(s.fixedBills[:i], s.fixedBills[i+1:]...)
			s.persistFixedBills()
			return
		}
	}
}

// Transactions returns a read-only snapshot of the transaction collection.
func (s *Store) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]models.Transaction, len(s.transactions))
	copy(snapshot, s.transactions)
	return snapshot
}

// FixedBills returns a read-only snapshot of the fixed bill collection.
func (s *Store) FixedBills() []models.FixedBill {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]models.FixedBill, len(s.fixedBills))
	copy(snapshot, s.fixedBills)
	return snapshot
}

// persistTransactions and persistFixedBills must be called with the mutex
// held so the saved snapshot matches the in-memory state.

func (s *Store) persistTransactions() {
	saveCollection(s.gateway, TransactionsKey, s.transactions)
}

func (s *Store) persistFixedBills() {
	saveCollection(s.gateway, FixedBillsKey, s.fixedBills)
}

func saveCollection[T any](gateway storage.SnapshotGateway, key string, records []T) {
	payload, err := json.Marshal(envelope[T]{SchemaVersion: schemaVersion, Records: records})
	if err != nil {
		logger.Get().Errorw("failed to encode snapshot", "key", key, "error", err.Error())
		return
	}
	if err := gateway.Save(key, payload); err != nil {
		logger.Get().Errorw("failed to persist snapshot, continuing in-memory",
			"key", key,
			"error", err.Error(),
		)
	}
}
