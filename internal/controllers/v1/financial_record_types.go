package v1

import (
	"fmt"

	"github.com/envelope-zero/networth/internal/calculation"
	"github.com/envelope-zero/networth/internal/httputil"
	"github.com/envelope-zero/networth/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// FinancialRecordEditable represents all user configurable parameters
type FinancialRecordEditable struct {
	Values []models.ValueInput `json:"values"` // Amounts per savings source. Savings sources without an amount are set to 0
}

// model returns the repository input for the editable fields
func (editable FinancialRecordEditable) model() models.FinancialRecordInput {
	return models.FinancialRecordInput{
		Values: editable.Values,
	}
}

type FinancialRecordLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/financial-records/0d2fd8a6-bb40-4cc9-8e2c-3e5b7cd5e7a5"`              // The financial record itself
	Expenses string `json:"expenses" example:"https://example.com/api/v1/financial-records/0d2fd8a6-bb40-4cc9-8e2c-3e5b7cd5e7a5/expenses"` // Expenses of the financial record
}

// FinancialRecord is the API v1 representation of a financial record.
type FinancialRecord struct {
	models.FinancialRecord
	Links FinancialRecordLinks `json:"links"`

	// These fields are computed
	Total         decimal.Decimal `json:"total" example:"12731.55"`       // Sum of all values
	ExpensesTotal decimal.Decimal `json:"expensesTotal" example:"480.5"` // Sum of all expenses
}

func newFinancialRecord(c *gin.Context, model models.FinancialRecord) FinancialRecord {
	url := httputil.BaseURL(c)

	return FinancialRecord{
		FinancialRecord: model,
		Links: FinancialRecordLinks{
			Self:     fmt.Sprintf("%s/v1/financial-records/%s", url, model.ID),
			Expenses: fmt.Sprintf("%s/v1/financial-records/%s/expenses", url, model.ID),
		},
		Total:         calculation.Total(model),
		ExpensesTotal: calculation.ExpensesTotal(model),
	}
}

// FinancialRecordSummary is a financial record in the list, together with
// the change to the record created before it.
type FinancialRecordSummary struct {
	FinancialRecord
	Difference calculation.Change `json:"difference"` // Change of the total compared to the previous record
}

// ValueDifference is the change of the amount of one savings source
// compared to the previous record.
type ValueDifference struct {
	SavingsSourceID string `json:"savingsSourceId" example:"8e7c1a0f-4a4b-4f0d-b3d3-4dd1d2b3a6c9"` // ID of the savings source
	calculation.Change
}

// FinancialRecordPair is a financial record together with its predecessor
// and the changes between them.
type FinancialRecordPair struct {
	Current          FinancialRecord    `json:"current"`          // The requested financial record
	Previous         *FinancialRecord   `json:"previous"`         // The record created before, null for the oldest record
	Difference       calculation.Change `json:"difference"`       // Change of the total
	ValueDifferences []ValueDifference  `json:"valueDifferences"` // Change per savings source of the current record
}

func newFinancialRecordPair(c *gin.Context, pair models.FinancialRecordPair) FinancialRecordPair {
	p := FinancialRecordPair{
		Current:          newFinancialRecord(c, pair.Current),
		Difference:       calculation.PairDifference(pair),
		ValueDifferences: make([]ValueDifference, 0, len(pair.Current.Values)),
	}

	if pair.Previous != nil {
		previous := newFinancialRecord(c, *pair.Previous)
		p.Previous = &previous
	}

	for _, value := range pair.Current.Values {
		d := ValueDifference{
			SavingsSourceID: value.SavingsSource.ID,
			Change: calculation.Change{
				Amount:     decimal.Zero,
				Percentage: decimal.Zero,
			},
		}

		// A savings source created after the previous record is compared to zero
		if pair.Previous != nil {
			before, _ := pair.Previous.Value(value.SavingsSource.ID)
			d.Amount = calculation.ValueDifference(value, before)
			d.Percentage = calculation.ValueDifferencePercentage(value, before)
		}

		p.ValueDifferences = append(p.ValueDifferences, d)
	}

	return p
}

type FinancialRecordListResponse struct {
	Data  []FinancialRecordSummary `json:"data"`                                                          // List of financial records, newest first
	Error *string                  `json:"error" example:"there is no financial record matching your query"` // The error, if any occurred
}

type FinancialRecordResponse struct {
	Data  *FinancialRecord `json:"data"`                                                          // Data for the financial record
	Error *string          `json:"error" example:"there is no financial record matching your query"` // The error, if any occurred
}

type FinancialRecordPairResponse struct {
	Data  *FinancialRecordPair `json:"data"`                                                          // Data for the financial record and its predecessor
	Error *string              `json:"error" example:"there is no financial record matching your query"` // The error, if any occurred
}

type SeedResponse struct {
	Data  []models.SavingsSourceValue `json:"data"`                                            // Values to prefill a new financial record with
	Error *string                     `json:"error" example:"stored data could not be read"` // The error, if any occurred
}
