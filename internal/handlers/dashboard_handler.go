package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financaspro/internal/aggregate"
	"financaspro/internal/store"
)

// DashboardHandler serves the aggregated dashboard view.
type DashboardHandler struct {
	store *store.Store
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(s *store.Store) *DashboardHandler {
	return &DashboardHandler{store: s}
}

// TotalsResponse is the headline totals block, amounts in centavos. Balance
// here includes fixed bills in the expense side; the advice prompt's "real
// balance" does not.
type TotalsResponse struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Fixed   int64 `json:"fixed"`
	Balance int64 `json:"balance"`
}

// DashboardResponse bundles everything the dashboard renders.
type DashboardResponse struct {
	Totals      TotalsResponse             `json:"totals"`
	ByCategory  []aggregate.CategoryAmount `json:"by_category"`
	Composition aggregate.Composition      `json:"composition"`
	Monthly     []aggregate.MonthlySummary `json:"monthly"`
}

// GetDashboard handles the aggregated dashboard request
// @Summary     Get dashboard
// @Description Totals, category breakdown, expense composition and monthly summaries
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} DashboardResponse "Aggregated dashboard"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	transactions := h.store.Transactions()
	fixedBills := h.store.FixedBills()

	totals := aggregate.ComputeTotals(transactions, fixedBills)

	c.JSON(http.StatusOK, DashboardResponse{
		Totals: TotalsResponse{
			Income:  totals.Income,
			Expense: totals.Expense,
			Fixed:   totals.Fixed,
			Balance: totals.Balance(),
		},
		ByCategory:  aggregate.ComputeCategoryBreakdown(transactions, fixedBills),
		Composition: aggregate.ComputeComposition(totals),
		Monthly:     aggregate.ComputeMonthlySummaries(transactions),
	})
}
