package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var ErrNegativeAmount = errors.New("the amount of a savings source value must not be negative")

// SavingsSourceValue is the amount held in one savings source at the time of
// a financial record.
//
// The savings source is embedded as a copy, not referenced by ID. Changes to
// the savings source must therefore be propagated to all financial records.
type SavingsSourceValue struct {
	SavingsSource SavingsSource   `json:"savingsSource"`
	Amount        decimal.Decimal `json:"amount" example:"2735.17"`
}

// FinancialRecord is a snapshot of the amounts held in all savings sources at
// one point in time.
type FinancialRecord struct {
	DefaultModel
	Values   []SavingsSourceValue `json:"values"`
	Expenses []Expense            `json:"expenses"`
}

// FinancialRecordPair is a financial record together with its chronological
// predecessor. Previous is nil for the oldest record.
type FinancialRecordPair struct {
	Current  FinancialRecord  `json:"current"`
	Previous *FinancialRecord `json:"previous"`
}

// ValueInput is the amount for one savings source as sent by clients.
type ValueInput struct {
	SavingsSourceID string          `json:"savingsSourceId" example:"8e7c1a0f-4a4b-4f0d-b3d3-4dd1d2b3a6c9"`
	Amount          decimal.Decimal `json:"amount" example:"173.12"`
}

// FinancialRecordInput contains the values for creating or updating a
// financial record.
type FinancialRecordInput struct {
	Values []ValueInput `json:"values"`
}

// Validate verifies that no amount is negative.
func (i FinancialRecordInput) Validate() error {
	for _, v := range i.Values {
		if v.Amount.IsNegative() {
			return ErrNegativeAmount
		}
	}

	return nil
}

// Amounts maps the savings source IDs of the input to their amounts.
// If an ID is given more than once, the last amount wins.
func (i FinancialRecordInput) Amounts() map[string]decimal.Decimal {
	amounts := make(map[string]decimal.Decimal, len(i.Values))
	for _, v := range i.Values {
		amounts[v.SavingsSourceID] = v.Amount
	}

	return amounts
}

// Normalize converts all timestamps of the record, including the ones of
// the embedded savings sources and the expenses, to UTC.
func (r *FinancialRecord) Normalize() {
	r.normalize()

	if r.Values == nil {
		r.Values = []SavingsSourceValue{}
	}
	for i := range r.Values {
		r.Values[i].SavingsSource.Normalize()
	}

	if r.Expenses == nil {
		r.Expenses = []Expense{}
	}
	for i := range r.Expenses {
		r.Expenses[i].Normalize()
	}
}

// Value returns the value for a savings source.
func (r FinancialRecord) Value(sourceID string) (SavingsSourceValue, bool) {
	idx := r.valueIndex(sourceID)
	if idx == -1 {
		return SavingsSourceValue{}, false
	}

	return r.Values[idx], true
}

// valueIndex returns the index of the value for a savings source or -1.
func (r FinancialRecord) valueIndex(sourceID string) int {
	return slices.IndexFunc(r.Values, func(v SavingsSourceValue) bool {
		return v.SavingsSource.ID == sourceID
	})
}

// AppendSource adds a zero value for a new savings source.
func (r *FinancialRecord) AppendSource(source SavingsSource) {
	r.Values = append(r.Values, SavingsSourceValue{
		SavingsSource: source,
		Amount:        decimal.Zero,
	})
}

// ReplaceSource replaces the embedded copy of a savings source.
func (r *FinancialRecord) ReplaceSource(source SavingsSource) bool {
	idx := r.valueIndex(source.ID)
	if idx == -1 {
		return false
	}

	r.Values[idx].SavingsSource = source
	return true
}

// RemoveSource removes the value of a savings source.
func (r *FinancialRecord) RemoveSource(sourceID string) bool {
	idx := r.valueIndex(sourceID)
	if idx == -1 {
		return false
	}

	r.Values = slices.Delete(r.Values, idx, idx+1)
	return true
}

// FoldSource removes the value of a savings source and adds its amount to
// the value of the fallback source. The total of the record is unchanged.
//
// If the record has no value for the fallback source, it is created.
func (r *FinancialRecord) FoldSource(sourceID string, fallback SavingsSource) bool {
	idx := r.valueIndex(sourceID)
	if idx == -1 {
		return false
	}

	amount := r.Values[idx].Amount
	r.Values = slices.Delete(r.Values, idx, idx+1)

	na := slices.IndexFunc(r.Values, func(v SavingsSourceValue) bool {
		return v.SavingsSource.IsNA
	})
	if na == -1 {
		r.Values = append(r.Values, SavingsSourceValue{
			SavingsSource: fallback,
			Amount:        amount,
		})
		return true
	}

	r.Values[na].Amount = r.Values[na].Amount.Add(amount)
	return true
}

// SortByCreatedAt sorts records by creation time, newest first.
//
// The sort is stable, so records created at the same instant keep
// the order in which they are stored.
func SortByCreatedAt(records []FinancialRecord) {
	slices.SortStableFunc(records, func(a, b FinancialRecord) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
