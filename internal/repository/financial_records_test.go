package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/envelope-zero/networth/internal/models"
	"github.com/envelope-zero/networth/internal/repository"
	"github.com/envelope-zero/networth/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestFinancialRecordsCreateNormalizesValues() {
	bank := suite.createTestSource("Bank")

	record := suite.createTestRecord(map[string]string{
		bank.ID:           "10.5",
		"unknown-source": "99",
	})

	suite.Assert().NotEmpty(record.ID)
	suite.Assert().Equal(record.CreatedAt, record.UpdatedAt)
	suite.Assert().NotNil(record.Expenses)
	suite.Assert().Empty(record.Expenses)

	// Values follow the order of the savings sources
	suite.Require().Len(record.Values, 2)
	suite.Assert().Equal(models.NASourceID, record.Values[0].SavingsSource.ID)
	suite.Assert().Equal(bank.ID, record.Values[1].SavingsSource.ID)
	suite.Assert().Equal(map[string]string{models.NASourceID: "0", bank.ID: "10.5"}, amounts(record))

	suite.assertCoversSources(suite.getRecord(record.ID))
}

func (suite *TestSuiteStandard) TestFinancialRecordsCreateNegative() {
	_, err := repository.NewFinancialRecords(suite.store).Create(context.Background(), models.FinancialRecordInput{
		Values: []models.ValueInput{{SavingsSourceID: models.NASourceID, Amount: decimal.NewFromInt(-1)}},
	})

	suite.Assert().ErrorIs(err, repository.ErrInvalidInput)
	suite.Assert().ErrorIs(err, models.ErrNegativeAmount)

	_, ok, _ := suite.medium.Load(context.Background(), storage.KeyFinancialRecords)
	suite.Assert().False(ok, "Invalid financial record has been stored")
}

func (suite *TestSuiteStandard) TestFinancialRecordsList() {
	r := repository.NewFinancialRecords(suite.store)

	records, err := r.List(context.Background())
	suite.Require().Nil(err)
	suite.Assert().NotNil(records)
	suite.Assert().Empty(records)

	a := suite.createTestRecord(nil)
	b := suite.createTestRecord(nil)
	c := suite.createTestRecord(nil)

	records, err = r.List(context.Background())
	suite.Require().Nil(err)
	suite.Require().Len(records, 3)
	suite.Assert().Equal([]string{c.ID, b.ID, a.ID}, []string{records[0].ID, records[1].ID, records[2].ID})
}

func (suite *TestSuiteStandard) TestFinancialRecordsPair() {
	r := repository.NewFinancialRecords(suite.store)

	a := suite.createTestRecord(nil)
	b := suite.createTestRecord(nil)
	c := suite.createTestRecord(nil)

	tests := []struct {
		name     string
		id       string
		previous string
	}{
		{"Newest", c.ID, b.ID},
		{"Middle", b.ID, a.ID},
		{"Oldest", a.ID, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			pair, err := r.Pair(context.Background(), tt.id)
			require.Nil(t, err)
			assert.Equal(t, tt.id, pair.Current.ID)

			if tt.previous == "" {
				assert.Nil(t, pair.Previous)
				return
			}

			require.NotNil(t, pair.Previous)
			assert.Equal(t, tt.previous, pair.Previous.ID)
		})
	}

	_, err := r.Pair(context.Background(), "does-not-exist")
	suite.Assert().ErrorIs(err, repository.ErrNotFound)
}

func (suite *TestSuiteStandard) TestFinancialRecordsPairSameInstant() {
	instant := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := repository.NewStore(suite.medium, repository.WithClock(func() time.Time { return instant }))
	r := repository.NewFinancialRecords(store)

	first, err := r.Create(context.Background(), models.FinancialRecordInput{})
	suite.Require().Nil(err)
	second, err := r.Create(context.Background(), models.FinancialRecordInput{})
	suite.Require().Nil(err)

	// Records with the same creation time keep their stored order
	records, err := r.List(context.Background())
	suite.Require().Nil(err)
	suite.Assert().Equal(first.ID, records[0].ID)
	suite.Assert().Equal(second.ID, records[1].ID)

	pair, err := r.Pair(context.Background(), first.ID)
	suite.Require().Nil(err)
	suite.Require().NotNil(pair.Previous)
	suite.Assert().Equal(second.ID, pair.Previous.ID)

	pair, err = r.Pair(context.Background(), second.ID)
	suite.Require().Nil(err)
	suite.Assert().Nil(pair.Previous)
}

func (suite *TestSuiteStandard) TestFinancialRecordsUpdate() {
	ctx := context.Background()
	bank := suite.createTestSource("Bank")
	record := suite.createTestRecord(map[string]string{bank.ID: "10", models.NASourceID: "3"})

	_, err := repository.NewExpenses(suite.store).Add(ctx, record.ID, models.ExpenseInput{Name: "Rent", Amount: decimal.NewFromInt(800)})
	suite.Require().Nil(err)

	updated, err := repository.NewFinancialRecords(suite.store).Update(ctx, record.ID, models.FinancialRecordInput{
		Values: []models.ValueInput{{SavingsSourceID: bank.ID, Amount: decimal.NewFromInt(20)}},
	})
	suite.Require().Nil(err)

	suite.Assert().Equal(record.ID, updated.ID)
	suite.Assert().Equal(record.CreatedAt, updated.CreatedAt)
	suite.Assert().True(updated.UpdatedAt.After(record.UpdatedAt))
	suite.Assert().Len(updated.Expenses, 1)
	suite.Assert().Equal(map[string]string{models.NASourceID: "0", bank.ID: "20"}, amounts(updated))

	suite.assertCoversSources(suite.getRecord(record.ID))
}

func (suite *TestSuiteStandard) TestFinancialRecordsUpdateErrors() {
	r := repository.NewFinancialRecords(suite.store)
	record := suite.createTestRecord(nil)

	_, err := r.Update(context.Background(), "does-not-exist", models.FinancialRecordInput{})
	suite.Assert().ErrorIs(err, repository.ErrNotFound)

	_, err = r.Update(context.Background(), record.ID, models.FinancialRecordInput{
		Values: []models.ValueInput{{SavingsSourceID: models.NASourceID, Amount: decimal.RequireFromString("-0.01")}},
	})
	suite.Assert().ErrorIs(err, repository.ErrInvalidInput)
}

func (suite *TestSuiteStandard) TestFinancialRecordsDelete() {
	r := repository.NewFinancialRecords(suite.store)
	keep := suite.createTestRecord(nil)
	remove := suite.createTestRecord(nil)

	suite.Require().Nil(r.Delete(context.Background(), remove.ID))

	_, err := r.Get(context.Background(), remove.ID)
	suite.Assert().ErrorIs(err, repository.ErrNotFound)

	records, err := r.List(context.Background())
	suite.Require().Nil(err)
	suite.Require().Len(records, 1)
	suite.Assert().Equal(keep.ID, records[0].ID)

	suite.Assert().ErrorIs(r.Delete(context.Background(), remove.ID), repository.ErrNotFound)
}

func (suite *TestSuiteStandard) TestFinancialRecordsSeed() {
	r := repository.NewFinancialRecords(suite.store)

	values, err := r.Seed(context.Background())
	suite.Require().Nil(err)
	suite.Require().Len(values, 1)
	suite.Assert().Equal(models.NASourceID, values[0].SavingsSource.ID)
	suite.Assert().True(values[0].Amount.IsZero())

	bank := suite.createTestSource("Bank")
	suite.createTestRecord(map[string]string{bank.ID: "1"})
	suite.createTestRecord(map[string]string{bank.ID: "250.75", models.NASourceID: "4"})
	depot := suite.createTestSource("Depot")

	values, err = r.Seed(context.Background())
	suite.Require().Nil(err)
	suite.Assert().Equal(map[string]string{
		models.NASourceID: "4",
		bank.ID:           "250.75",
		depot.ID:          "0",
	}, amounts(models.FinancialRecord{Values: values}))
}
