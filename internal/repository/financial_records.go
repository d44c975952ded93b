package repository

import (
	"context"

	"github.com/envelope-zero/networth/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// FinancialRecords manages the financial records.
//
// The values of a financial record always contain exactly one entry per
// existing savings source. Values are derived from the current savings
// sources on every write, values for unknown savings sources are ignored
// and missing ones are set to zero.
type FinancialRecords struct {
	store *Store
}

// NewFinancialRecords returns the financial record repository for a store.
func NewFinancialRecords(store *Store) *FinancialRecords {
	return &FinancialRecords{store: store}
}

// List returns all financial records, newest first.
func (r *FinancialRecords) List(ctx context.Context) ([]models.FinancialRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, err := r.store.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	models.SortByCreatedAt(records)
	return records, nil
}

// Get returns a single financial record.
func (r *FinancialRecords) Get(ctx context.Context, id string) (models.FinancialRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, err := r.store.loadRecords(ctx)
	if err != nil {
		return models.FinancialRecord{}, err
	}

	idx := recordIndex(records, id)
	if idx == -1 {
		return models.FinancialRecord{}, recordNotFound(id)
	}

	return records[idx], nil
}

// Create creates a new financial record.
func (r *FinancialRecords) Create(ctx context.Context, input models.FinancialRecordInput) (models.FinancialRecord, error) {
	if err := input.Validate(); err != nil {
		return models.FinancialRecord{}, invalidInput(err)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, err := r.store.loadRecords(ctx)
	if err != nil {
		return models.FinancialRecord{}, err
	}

	values, err := r.values(ctx, input.Amounts())
	if err != nil {
		return models.FinancialRecord{}, err
	}

	now := r.store.timestamp()
	record := models.FinancialRecord{
		DefaultModel: models.DefaultModel{
			ID: uuid.NewString(),
			Timestamps: models.Timestamps{
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		Values:   values,
		Expenses: []models.Expense{},
	}

	records = append(records, record)
	err = r.store.save(ctx, nil, records)
	if err != nil {
		return models.FinancialRecord{}, err
	}

	log.Debug().Str("id", record.ID).Int("values", len(values)).Msg("financial record created")
	return record, nil
}

// Update replaces the values of a financial record.
//
// The creation time and the expenses of the record are kept.
func (r *FinancialRecords) Update(ctx context.Context, id string, input models.FinancialRecordInput) (models.FinancialRecord, error) {
	if err := input.Validate(); err != nil {
		return models.FinancialRecord{}, invalidInput(err)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, err := r.store.loadRecords(ctx)
	if err != nil {
		return models.FinancialRecord{}, err
	}

	idx := recordIndex(records, id)
	if idx == -1 {
		return models.FinancialRecord{}, recordNotFound(id)
	}

	values, err := r.values(ctx, input.Amounts())
	if err != nil {
		return models.FinancialRecord{}, err
	}

	record := records[idx]
	record.Values = values
	record.Touch(r.store.timestamp())
	records[idx] = record

	err = r.store.save(ctx, nil, records)
	if err != nil {
		return models.FinancialRecord{}, err
	}

	log.Debug().Str("id", record.ID).Msg("financial record updated")
	return record, nil
}

// Delete removes a financial record together with its expenses.
func (r *FinancialRecords) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, err := r.store.loadRecords(ctx)
	if err != nil {
		return err
	}

	idx := recordIndex(records, id)
	if idx == -1 {
		return recordNotFound(id)
	}

	records = slices.Delete(records, idx, idx+1)
	err = r.store.save(ctx, nil, records)
	if err != nil {
		return err
	}

	log.Debug().Str("id", id).Msg("financial record deleted")
	return nil
}

// Pair returns a financial record together with the record created
// immediately before it.
//
// Records created at the same instant are ordered as they are stored.
func (r *FinancialRecords) Pair(ctx context.Context, id string) (models.FinancialRecordPair, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, err := r.store.loadRecords(ctx)
	if err != nil {
		return models.FinancialRecordPair{}, err
	}

	models.SortByCreatedAt(records)
	idx := recordIndex(records, id)
	if idx == -1 {
		return models.FinancialRecordPair{}, recordNotFound(id)
	}

	pair := models.FinancialRecordPair{
		Current: records[idx],
	}

	if idx+1 < len(records) {
		previous := records[idx+1]
		pair.Previous = &previous
	}

	return pair, nil
}

// Seed returns the values to prefill a new financial record with.
//
// There is one value for every current savings source. Amounts are copied
// from the latest financial record, savings sources without a value there
// start at zero.
func (r *FinancialRecords) Seed(ctx context.Context) ([]models.SavingsSourceValue, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, err := r.store.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	amounts := map[string]decimal.Decimal{}
	if len(records) > 0 {
		models.SortByCreatedAt(records)
		for _, v := range records[0].Values {
			amounts[v.SavingsSource.ID] = v.Amount
		}
	}

	return r.values(ctx, amounts)
}

// values builds the values for all current savings sources with the
// amounts given. Sources without an amount get zero.
func (r *FinancialRecords) values(ctx context.Context, amounts map[string]decimal.Decimal) ([]models.SavingsSourceValue, error) {
	sources, err := r.store.loadSources(ctx)
	if err != nil {
		return nil, err
	}

	values := make([]models.SavingsSourceValue, 0, len(sources))
	for _, source := range sources {
		amount, ok := amounts[source.ID]
		if !ok {
			amount = decimal.Zero
		}

		values = append(values, models.SavingsSourceValue{
			SavingsSource: source,
			Amount:        amount,
		})
	}

	return values, nil
}

func recordIndex(records []models.FinancialRecord, id string) int {
	return slices.IndexFunc(records, func(r models.FinancialRecord) bool {
		return r.ID == id
	})
}

func recordNotFound(id string) *Error {
	return notFound("financial record", Params{"id": id})
}
