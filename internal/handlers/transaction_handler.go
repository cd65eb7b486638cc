package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"financaspro/internal/models"
	"financaspro/internal/pagination"
	"financaspro/internal/store"
)

// TransactionHandler handles transaction-related requests
type TransactionHandler struct {
	store *store.Store
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(s *store.Store) *TransactionHandler {
	return &TransactionHandler{store: s}
}

// CreateTransactionRequest represents the request payload for creating a transaction.
// Amount is in centavos.
type CreateTransactionRequest struct {
	Description string                 `json:"description" binding:"required"`
	Amount      int64                  `json:"amount" binding:"required,min=0"`
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
	Category    models.Category        `json:"category" binding:"required,category"`
	Date        string                 `json:"date"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record a one-off income or expense transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parseDateField(req.Date, "date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.store.AddTransaction(store.TransactionInput{
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Date:        date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// GetTransactions handles the retrieval of the transaction list
// @Summary     List transactions
// @Description Get transactions sorted by date descending
// @Tags        transactions
// @Produce     json
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid pagination parameters"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	page.Defaults()

	// The store keeps insertion order; the list view sorts by date.
	transactions := h.store.Transactions()
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})

	total := int64(len(transactions))
	result := pagination.NewPageResponse(pagination.Slice(transactions, page), page.Page, page.PageSize, total)
	c.JSON(http.StatusOK, result)
}

// DeleteTransaction handles deleting a transaction
// @Summary     Delete transaction
// @Description Delete a transaction by ID; deleting an unknown ID is a no-op
// @Tags        transactions
// @Param       id path string true "Transaction ID"
// @Success     204 "Deleted (or no such transaction)"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	h.store.DeleteTransaction(c.Param("id"))
	c.Status(http.StatusNoContent)
}
