package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financaspro/internal/store"
)

// FixedBillHandler handles fixed bill requests
type FixedBillHandler struct {
	store *store.Store
}

// NewFixedBillHandler creates a new FixedBillHandler
func NewFixedBillHandler(s *store.Store) *FixedBillHandler {
	return &FixedBillHandler{store: s}
}

// CreateFixedBillRequest represents the request payload for creating a fixed
// bill. Amount is in centavos. There is no paid flag: new bills always start
// unpaid.
type CreateFixedBillRequest struct {
	Description string `json:"description" binding:"required"`
	Amount      int64  `json:"amount" binding:"required,min=0"`
	DueDate     string `json:"due_date"`
}

// CreateFixedBill handles the creation of a new fixed bill
// @Summary     Create a fixed bill
// @Description Record a recurring monthly obligation; it starts unpaid
// @Tags        fixed-bills
// @Accept      json
// @Produce     json
// @Param       request body CreateFixedBillRequest true "Fixed bill details"
// @Success     201 {object} models.FixedBill "Fixed bill created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /fixed-bills [post]
func (h *FixedBillHandler) CreateFixedBill(c *gin.Context) {
	var req CreateFixedBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dueDate, err := parseDateField(req.DueDate, "due_date")
	if err != nil {
		respondWithError(c, err)
		return
	}

	bill, err := h.store.AddFixedBill(store.FixedBillInput{
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     dueDate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"fixed_bill": bill})
}

// GetFixedBills handles the retrieval of all fixed bills
// @Summary     List fixed bills
// @Description Get every fixed bill with its paid flag
// @Tags        fixed-bills
// @Produce     json
// @Success     200 {array} models.FixedBill "List of fixed bills"
// @Router      /fixed-bills [get]
func (h *FixedBillHandler) GetFixedBills(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fixed_bills": h.store.FixedBills()})
}

// ToggleFixedBill handles flipping a bill's paid flag
// @Summary     Toggle paid flag
// @Description Flip the paid flag of a fixed bill; an unknown ID is a no-op
// @Tags        fixed-bills
// @Produce     json
// @Param       id path string true "Fixed bill ID"
// @Success     200 {object} models.FixedBill "Updated bill, or null when the ID is unknown"
// @Router      /fixed-bills/{id}/toggle [post]
func (h *FixedBillHandler) ToggleFixedBill(c *gin.Context) {
	bill := h.store.ToggleFixedBill(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"fixed_bill": bill})
}

// DeleteFixedBill handles deleting a fixed bill
// @Summary     Delete fixed bill
// @Description Delete a fixed bill by ID; deleting an unknown ID is a no-op
// @Tags        fixed-bills
// @Param       id path string true "Fixed bill ID"
// @Success     204 "Deleted (or no such bill)"
// @Router      /fixed-bills/{id} [delete]
func (h *FixedBillHandler) DeleteFixedBill(c *gin.Context) {
	h.store.DeleteFixedBill(c.Param("id"))
	c.Status(http.StatusNoContent)
}
