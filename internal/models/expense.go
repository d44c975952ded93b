package models

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	ExpenseNameMinLength = 1
	ExpenseNameMaxLength = 100
)

var (
	ErrExpenseNameLength    = fmt.Errorf("the name of an expense must be between %d and %d characters long", ExpenseNameMinLength, ExpenseNameMaxLength)
	ErrExpenseAmountInvalid = errors.New("the amount of an expense must be positive")
)

// Expense is a free-form expense line item recorded with a financial record.
type Expense struct {
	DefaultModel
	Name   string          `json:"name" example:"Car repair"`
	Amount decimal.Decimal `json:"amount" example:"480.50"`
}

// ExpenseInput contains the fields for a new expense.
type ExpenseInput struct {
	Name   string          `json:"name" example:"Car repair"`
	Amount decimal.Decimal `json:"amount" example:"480.50"`
}

// ExpenseUpdate contains the fields of an expense to update. Nil fields are
// left untouched.
type ExpenseUpdate struct {
	Name   *string          `json:"name" example:"Car repair"`
	Amount *decimal.Decimal `json:"amount" example:"480.50"`
}

// Normalize converts the timestamps of the expense to UTC.
func (e *Expense) Normalize() {
	e.normalize()
}

// Validate cleans the name and verifies name and amount.
func (i *ExpenseInput) Validate() error {
	i.Name = CleanName(i.Name)
	if err := validateExpenseName(i.Name); err != nil {
		return err
	}

	return validateExpenseAmount(i.Amount)
}

// Validate cleans the name and verifies all fields that are set.
func (u *ExpenseUpdate) Validate() error {
	if u.Name != nil {
		name := CleanName(*u.Name)
		if err := validateExpenseName(name); err != nil {
			return err
		}
		u.Name = &name
	}

	if u.Amount != nil {
		return validateExpenseAmount(*u.Amount)
	}

	return nil
}

func validateExpenseName(name string) error {
	length := utf8.RuneCountInString(name)
	if length < ExpenseNameMinLength || length > ExpenseNameMaxLength {
		return ErrExpenseNameLength
	}

	return nil
}

func validateExpenseAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrExpenseAmountInvalid
	}

	return nil
}
