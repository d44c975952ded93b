package v1

import (
	"fmt"

	"github.com/envelope-zero/networth/internal/httputil"
	"github.com/envelope-zero/networth/internal/models"
	"github.com/gin-gonic/gin"
)

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/financial-records/0d2fd8a6-bb40-4cc9-8e2c-3e5b7cd5e7a5/expenses/5b8a0ed7-6f5c-4b0e-9ff6-b58b0b3c8f0e"` // The expense itself
}

// Expense is the API v1 representation of an expense.
type Expense struct {
	models.Expense
	Links ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, recordID string, model models.Expense) Expense {
	return Expense{
		Expense: model,
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/financial-records/%s/expenses/%s", httputil.BaseURL(c), recordID, model.ID),
		},
	}
}

type ExpenseListResponse struct {
	Data  []Expense `json:"data"`                                                          // List of expenses
	Error *string   `json:"error" example:"there is no financial record matching your query"` // The error, if any occurred
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                 // Data for the expense
	Error *string  `json:"error" example:"there is no expense matching your query"` // The error, if any occurred
}
