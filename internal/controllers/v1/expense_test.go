package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/envelope-zero/networth/internal/controllers/v1"
	"github.com/envelope-zero/networth/internal/models"
	"github.com/envelope-zero/networth/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestExpense(t *testing.T, record v1.FinancialRecordResponse, e models.ExpenseInput, expectedStatus ...int) v1.ExpenseResponse {
	if e.Name == "" {
		e.Name = "Car repair"
	}

	if e.Amount.IsZero() {
		e.Amount = decimal.RequireFromString("480.50")
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, suite.store, http.MethodPost, record.Data.Links.Expenses, e)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var expense v1.ExpenseResponse
	test.DecodeResponse(t, &r, &expense)

	return expense
}

func (suite *TestSuiteStandard) TestExpensesOptions() {
	record := suite.createTestFinancialRecord(suite.T(), v1.FinancialRecordEditable{})
	expense := suite.createTestExpense(suite.T(), record, models.ExpenseInput{})

	tests := []struct {
		path     string
		response string
	}{
		{record.Data.Links.Expenses, "OPTIONS, GET, POST"},
		{expense.Data.Links.Self, "OPTIONS, PATCH, DELETE"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, suite.store, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.response, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesCreate() {
	record := suite.createTestFinancialRecord(suite.T(), v1.FinancialRecordEditable{})
	expense := suite.createTestExpense(suite.T(), record, models.ExpenseInput{Name: " Rent ", Amount: decimal.NewFromInt(800)})

	assert.Equal(suite.T(), "Rent", expense.Data.Name)
	assert.Equal(suite.T(), "800", expense.Data.Amount.String())
	assert.Equal(suite.T(), fmt.Sprintf("%s/%s", record.Data.Links.Expenses, expense.Data.ID), expense.Data.Links.Self)

	// The record includes the expense in its totals
	r := test.Request(suite.T(), suite.store, http.MethodGet, record.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.FinancialRecordPairResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "800", response.Data.Current.ExpensesTotal.String())
	assert.True(suite.T(), response.Data.Current.UpdatedAt.Equal(expense.Data.CreatedAt))
}

func (suite *TestSuiteStandard) TestExpensesCreateFails() {
	record := suite.createTestFinancialRecord(suite.T(), v1.FinancialRecordEditable{})

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Unknown financial record", fmt.Sprintf("http://example.com/v1/financial-records/%s/expenses", uuid.NewString()), models.ExpenseInput{Name: "Rent", Amount: decimal.NewFromInt(1)}, http.StatusNotFound},
		{"Negative amount", record.Data.Links.Expenses, models.ExpenseInput{Name: "Rent", Amount: decimal.NewFromInt(-1)}, http.StatusBadRequest},
		{"Empty name", record.Data.Links.Expenses, models.ExpenseInput{Name: " ", Amount: decimal.NewFromInt(1)}, http.StatusBadRequest},
		{"Empty body", record.Data.Links.Expenses, "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.store, http.MethodPost, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesGet() {
	record := suite.createTestFinancialRecord(suite.T(), v1.FinancialRecordEditable{})

	r := test.Request(suite.T(), suite.store, http.MethodGet, record.Data.Links.Expenses, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.NotNil(suite.T(), response.Data)
	assert.Empty(suite.T(), response.Data)

	_ = suite.createTestExpense(suite.T(), record, models.ExpenseInput{Name: "Rent"})
	_ = suite.createTestExpense(suite.T(), record, models.ExpenseInput{Name: "Groceries"})

	r = test.Request(suite.T(), suite.store, http.MethodGet, record.Data.Links.Expenses, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	response = v1.ExpenseListResponse{}
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Rent", response.Data[0].Name)
	assert.Equal(suite.T(), "Groceries", response.Data[1].Name)

	r = test.Request(suite.T(), suite.store, http.MethodGet, fmt.Sprintf("http://example.com/v1/financial-records/%s/expenses", uuid.NewString()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpensesUpdate() {
	record := suite.createTestFinancialRecord(suite.T(), v1.FinancialRecordEditable{})
	expense := suite.createTestExpense(suite.T(), record, models.ExpenseInput{Name: "Rent", Amount: decimal.NewFromInt(800)})

	r := test.Request(suite.T(), suite.store, http.MethodPatch, expense.Data.Links.Self, map[string]any{"amount": 850})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Rent", response.Data.Name, "Name changed without being sent")
	assert.Equal(suite.T(), "850", response.Data.Amount.String())

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Empty name", expense.Data.Links.Self, map[string]any{"name": ""}, http.StatusBadRequest},
		{"Zero amount", expense.Data.Links.Self, map[string]any{"amount": 0}, http.StatusBadRequest},
		{"Unknown expense", fmt.Sprintf("%s/%s", record.Data.Links.Expenses, uuid.NewString()), map[string]any{"name": "Rent"}, http.StatusNotFound},
		{"Unknown financial record", fmt.Sprintf("http://example.com/v1/financial-records/%s/expenses/%s", uuid.NewString(), expense.Data.ID), map[string]any{"name": "Rent"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.store, http.MethodPatch, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesDelete() {
	record := suite.createTestFinancialRecord(suite.T(), v1.FinancialRecordEditable{})
	expense := suite.createTestExpense(suite.T(), record, models.ExpenseInput{})

	r := test.Request(suite.T(), suite.store, http.MethodDelete, expense.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), suite.store, http.MethodDelete, expense.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	assert.Contains(suite.T(), test.DecodeError(suite.T(), r.Body.Bytes()), "there are no expenses for this financial record")
}
