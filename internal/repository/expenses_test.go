package repository_test

import (
	"context"

	"github.com/envelope-zero/networth/internal/models"
	"github.com/envelope-zero/networth/internal/repository"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestExpensesAdd() {
	r := repository.NewExpenses(suite.store)
	record := suite.createTestRecord(nil)

	expense, err := r.Add(context.Background(), record.ID, models.ExpenseInput{Name: " Car repair ", Amount: decimal.RequireFromString("480.50")})
	suite.Require().Nil(err)
	suite.Assert().NotEmpty(expense.ID)
	suite.Assert().Equal("Car repair", expense.Name)
	suite.Assert().Equal("480.5", expense.Amount.String())

	stored := suite.getRecord(record.ID)
	suite.Require().Len(stored.Expenses, 1)
	suite.Assert().Equal(expense.ID, stored.Expenses[0].ID)
	suite.Assert().Equal(expense.CreatedAt, stored.UpdatedAt, "Financial record has not been touched")
	suite.Assert().Equal(record.CreatedAt, stored.CreatedAt)
	suite.assertCoversSources(stored)
}

func (suite *TestSuiteStandard) TestExpensesAddErrors() {
	r := repository.NewExpenses(suite.store)
	record := suite.createTestRecord(nil)

	tests := []struct {
		name     string
		recordID string
		input    models.ExpenseInput
		err      error
	}{
		{"Missing record", "does-not-exist", models.ExpenseInput{Name: "Rent", Amount: decimal.NewFromInt(1)}, repository.ErrNotFound},
		{"Empty name", record.ID, models.ExpenseInput{Name: "  ", Amount: decimal.NewFromInt(1)}, repository.ErrInvalidInput},
		{"Zero amount", record.ID, models.ExpenseInput{Name: "Rent", Amount: decimal.Zero}, repository.ErrInvalidInput},
	}

	for _, tt := range tests {
		_, err := r.Add(context.Background(), tt.recordID, tt.input)
		suite.Assert().ErrorIs(err, tt.err, tt.name)
	}

	suite.Assert().Empty(suite.getRecord(record.ID).Expenses)
}

func (suite *TestSuiteStandard) TestExpensesList() {
	r := repository.NewExpenses(suite.store)
	record := suite.createTestRecord(nil)

	expenses, err := r.List(context.Background(), record.ID)
	suite.Require().Nil(err)
	suite.Assert().NotNil(expenses)
	suite.Assert().Empty(expenses)

	first, err := r.Add(context.Background(), record.ID, models.ExpenseInput{Name: "Rent", Amount: decimal.NewFromInt(800)})
	suite.Require().Nil(err)
	second, err := r.Add(context.Background(), record.ID, models.ExpenseInput{Name: "Groceries", Amount: decimal.NewFromInt(120)})
	suite.Require().Nil(err)

	expenses, err = r.List(context.Background(), record.ID)
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 2)
	suite.Assert().Equal(first.ID, expenses[0].ID)
	suite.Assert().Equal(second.ID, expenses[1].ID)

	_, err = r.List(context.Background(), "does-not-exist")
	suite.Assert().ErrorIs(err, repository.ErrNotFound)
}

func (suite *TestSuiteStandard) TestExpensesUpdate() {
	r := repository.NewExpenses(suite.store)
	record := suite.createTestRecord(nil)

	expense, err := r.Add(context.Background(), record.ID, models.ExpenseInput{Name: "Rent", Amount: decimal.NewFromInt(800)})
	suite.Require().Nil(err)

	name := "Rent March"
	updated, err := r.Update(context.Background(), record.ID, expense.ID, models.ExpenseUpdate{Name: &name})
	suite.Require().Nil(err)
	suite.Assert().Equal(name, updated.Name)
	suite.Assert().Equal("800", updated.Amount.String(), "Amount changed without being set")
	suite.Assert().Equal(expense.CreatedAt, updated.CreatedAt)
	suite.Assert().True(updated.UpdatedAt.After(expense.UpdatedAt))

	amount := decimal.NewFromInt(850)
	updated, err = r.Update(context.Background(), record.ID, expense.ID, models.ExpenseUpdate{Amount: &amount})
	suite.Require().Nil(err)
	suite.Assert().Equal(name, updated.Name)
	suite.Assert().Equal("850", updated.Amount.String())

	stored := suite.getRecord(record.ID)
	suite.Assert().Equal(updated.UpdatedAt, stored.UpdatedAt)
	suite.Assert().Equal(updated.ID, stored.Expenses[0].ID)
	suite.Assert().Equal("850", stored.Expenses[0].Amount.String())
}

func (suite *TestSuiteStandard) TestExpensesUpdateErrors() {
	r := repository.NewExpenses(suite.store)
	empty := suite.createTestRecord(nil)
	record := suite.createTestRecord(nil)

	expense, err := r.Add(context.Background(), record.ID, models.ExpenseInput{Name: "Rent", Amount: decimal.NewFromInt(800)})
	suite.Require().Nil(err)

	name := "Valid"
	negative := decimal.NewFromInt(-5)

	tests := []struct {
		name      string
		recordID  string
		expenseID string
		update    models.ExpenseUpdate
		err       error
	}{
		{"Missing record", "does-not-exist", expense.ID, models.ExpenseUpdate{Name: &name}, repository.ErrNotFound},
		{"No expenses", empty.ID, expense.ID, models.ExpenseUpdate{Name: &name}, repository.ErrNotFound},
		{"Missing expense", record.ID, "does-not-exist", models.ExpenseUpdate{Name: &name}, repository.ErrNotFound},
		{"Negative amount", record.ID, expense.ID, models.ExpenseUpdate{Amount: &negative}, repository.ErrInvalidInput},
	}

	for _, tt := range tests {
		_, err := r.Update(context.Background(), tt.recordID, tt.expenseID, tt.update)
		suite.Assert().ErrorIs(err, tt.err, tt.name)
	}
}

func (suite *TestSuiteStandard) TestExpensesDelete() {
	r := repository.NewExpenses(suite.store)
	record := suite.createTestRecord(nil)

	expense, err := r.Add(context.Background(), record.ID, models.ExpenseInput{Name: "Rent", Amount: decimal.NewFromInt(800)})
	suite.Require().Nil(err)
	before := suite.getRecord(record.ID)

	suite.Require().Nil(r.Delete(context.Background(), record.ID, expense.ID))

	stored := suite.getRecord(record.ID)
	suite.Assert().Empty(stored.Expenses)
	suite.Assert().True(stored.UpdatedAt.After(before.UpdatedAt))

	// Without expenses, the record reports that there are none
	err = r.Delete(context.Background(), record.ID, expense.ID)
	suite.Assert().ErrorIs(err, repository.ErrNotFound)
	suite.Assert().Contains(err.Error(), "there are no expenses for this financial record")
}
