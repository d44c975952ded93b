// Package calculation computes totals and period-over-period differences
// of financial records.
//
// All functions are pure and never modify their arguments.
package calculation

import (
	"github.com/envelope-zero/networth/internal/models"
	"github.com/shopspring/decimal"
)

// PercentagePlaces is the number of decimal places percentages are rounded to.
const PercentagePlaces = 8

var hundred = decimal.NewFromInt(100)

// Change is the change between a financial record and its predecessor.
type Change struct {
	Amount     decimal.Decimal `json:"amount" example:"-12.5"`
	Percentage decimal.Decimal `json:"percentage" example:"-2.5"`
}

// Total returns the sum of all values of a financial record.
func Total(record models.FinancialRecord) decimal.Decimal {
	total := decimal.Zero
	for _, v := range record.Values {
		total = total.Add(v.Amount)
	}

	return total
}

// ExpensesTotal returns the sum of all expenses of a financial record.
func ExpensesTotal(record models.FinancialRecord) decimal.Decimal {
	total := decimal.Zero
	for _, e := range record.Expenses {
		total = total.Add(e.Amount)
	}

	return total
}

// Difference returns the difference of the totals of two financial records.
func Difference(current, previous models.FinancialRecord) decimal.Decimal {
	return Total(current).Sub(Total(previous))
}

// DifferencePercentage returns the change of the total from previous
// to current in percent of the previous total.
func DifferencePercentage(current, previous models.FinancialRecord) decimal.Decimal {
	return percentage(Total(current), Total(previous))
}

// ValueDifference returns the difference between two values of a savings source.
func ValueDifference(current, previous models.SavingsSourceValue) decimal.Decimal {
	return current.Amount.Sub(previous.Amount)
}

// ValueDifferencePercentage returns the change from previous to current in
// percent of the previous amount.
func ValueDifferencePercentage(current, previous models.SavingsSourceValue) decimal.Decimal {
	return percentage(current.Amount, previous.Amount)
}

// PairDifference returns the difference between the records of a pair.
// Without a previous record, the difference is zero.
func PairDifference(pair models.FinancialRecordPair) Change {
	if pair.Previous == nil {
		return Change{
			Amount:     decimal.Zero,
			Percentage: decimal.Zero,
		}
	}

	return Change{
		Amount:     Difference(pair.Current, *pair.Previous),
		Percentage: DifferencePercentage(pair.Current, *pair.Previous),
	}
}

// percentage returns (current - previous) / |previous| * 100.
//
// If previous is zero, any growth counts as 100 percent and everything
// else as 0.
func percentage(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}

	return current.Sub(previous).Mul(hundred).DivRound(previous.Abs(), PercentagePlaces)
}
