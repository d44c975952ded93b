// Package v1 contains the HTTP handlers for version 1 of the API.
package v1

import (
	"github.com/envelope-zero/networth/internal/repository"
	"github.com/gin-gonic/gin"
)

// Controller bundles the repositories the handlers operate on.
type Controller struct {
	SavingsSources   *repository.SavingsSources
	FinancialRecords *repository.FinancialRecords
	Expenses         *repository.Expenses
	Transfer         *repository.Transfer
}

// New returns a Controller with all repositories sharing the store.
func New(store *repository.Store) Controller {
	return Controller{
		SavingsSources:   repository.NewSavingsSources(store),
		FinancialRecords: repository.NewFinancialRecords(store),
		Expenses:         repository.NewExpenses(store),
		Transfer:         repository.NewTransfer(store),
	}
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)

	co.RegisterSavingsSourceRoutes(r.Group("/savings-sources"))
	co.RegisterFinancialRecordRoutes(r.Group("/financial-records"))
	co.RegisterExportRoutes(r.Group("/export"))
	co.RegisterImportRoutes(r.Group("/import"))
}
