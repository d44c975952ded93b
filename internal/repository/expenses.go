package repository

import (
	"context"

	"github.com/envelope-zero/networth/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Expenses manages the expenses recorded with financial records.
//
// Every change to an expense also updates the modification time of its
// financial record.
type Expenses struct {
	store *Store
}

// NewExpenses returns the expense repository for a store.
func NewExpenses(store *Store) *Expenses {
	return &Expenses{store: store}
}

// List returns the expenses of a financial record.
func (r *Expenses) List(ctx context.Context, recordID string) ([]models.Expense, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, err := r.store.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	idx := recordIndex(records, recordID)
	if idx == -1 {
		return nil, recordNotFound(recordID)
	}

	if records[idx].Expenses == nil {
		return []models.Expense{}, nil
	}

	return records[idx].Expenses, nil
}

// Add adds an expense to a financial record.
func (r *Expenses) Add(ctx context.Context, recordID string, input models.ExpenseInput) (models.Expense, error) {
	if err := input.Validate(); err != nil {
		return models.Expense{}, invalidInput(err)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, err := r.store.loadRecords(ctx)
	if err != nil {
		return models.Expense{}, err
	}

	idx := recordIndex(records, recordID)
	if idx == -1 {
		return models.Expense{}, recordNotFound(recordID)
	}

	now := r.store.timestamp()
	expense := models.Expense{
		DefaultModel: models.DefaultModel{
			ID: uuid.NewString(),
			Timestamps: models.Timestamps{
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		Name:   input.Name,
		Amount: input.Amount,
	}

	records[idx].Expenses = append(records[idx].Expenses, expense)
	records[idx].Touch(now)

	err = r.store.save(ctx, nil, records)
	if err != nil {
		return models.Expense{}, err
	}

	log.Debug().Str("id", expense.ID).Str("financialRecordId", recordID).Msg("expense added")
	return expense, nil
}

// Update changes the fields of an expense that are set in the update.
func (r *Expenses) Update(ctx context.Context, recordID, expenseID string, update models.ExpenseUpdate) (models.Expense, error) {
	if err := update.Validate(); err != nil {
		return models.Expense{}, invalidInput(err)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, idx, expenseIdx, err := r.find(ctx, recordID, expenseID)
	if err != nil {
		return models.Expense{}, err
	}

	now := r.store.timestamp()
	expense := records[idx].Expenses[expenseIdx]
	if update.Name != nil {
		expense.Name = *update.Name
	}
	if update.Amount != nil {
		expense.Amount = *update.Amount
	}
	expense.Touch(now)

	records[idx].Expenses[expenseIdx] = expense
	records[idx].Touch(now)

	err = r.store.save(ctx, nil, records)
	if err != nil {
		return models.Expense{}, err
	}

	log.Debug().Str("id", expense.ID).Str("financialRecordId", recordID).Msg("expense updated")
	return expense, nil
}

// Delete removes an expense from a financial record.
func (r *Expenses) Delete(ctx context.Context, recordID, expenseID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, idx, expenseIdx, err := r.find(ctx, recordID, expenseID)
	if err != nil {
		return err
	}

	records[idx].Expenses = slices.Delete(records[idx].Expenses, expenseIdx, expenseIdx+1)
	records[idx].Touch(r.store.timestamp())

	err = r.store.save(ctx, nil, records)
	if err != nil {
		return err
	}

	log.Debug().Str("id", expenseID).Str("financialRecordId", recordID).Msg("expense deleted")
	return nil
}

// find loads all records and locates a financial record and one of its expenses.
func (r *Expenses) find(ctx context.Context, recordID, expenseID string) ([]models.FinancialRecord, int, int, error) {
	records, err := r.store.loadRecords(ctx)
	if err != nil {
		return nil, 0, 0, err
	}

	idx := recordIndex(records, recordID)
	if idx == -1 {
		return nil, 0, 0, recordNotFound(recordID)
	}

	if len(records[idx].Expenses) == 0 {
		return nil, 0, 0, newError(CodeNotFound, "there are no expenses for this financial record", Params{"id": recordID}, nil)
	}

	expenseIdx := slices.IndexFunc(records[idx].Expenses, func(e models.Expense) bool {
		return e.ID == expenseID
	})
	if expenseIdx == -1 {
		return nil, 0, 0, notFound("expense", Params{"id": expenseID, "financialRecordId": recordID})
	}

	return records, idx, expenseIdx, nil
}
