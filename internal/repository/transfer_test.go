package repository_test

import (
	"context"
	"encoding/json"

	"github.com/envelope-zero/networth/internal/models"
	"github.com/envelope-zero/networth/internal/repository"
	"github.com/envelope-zero/networth/internal/storage"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestTransferExportEmpty() {
	doc, err := repository.NewTransfer(suite.store).Export(context.Background())
	suite.Require().Nil(err)

	suite.Assert().NotNil(doc.FinancialRecords)
	suite.Assert().Empty(doc.FinancialRecords)
	suite.Require().Len(doc.SavingsSources, 1)
	suite.Assert().Equal(models.NASourceID, doc.SavingsSources[0].ID)
}

func (suite *TestSuiteStandard) TestTransferRoundTrip() {
	ctx := context.Background()
	bank := suite.createTestSource("Bank")
	record := suite.createTestRecord(map[string]string{bank.ID: "1234.56"})
	suite.createTestRecord(map[string]string{models.NASourceID: "3"})

	_, err := repository.NewExpenses(suite.store).Add(ctx, record.ID, models.ExpenseInput{Name: "Rent", Amount: decimal.NewFromInt(800)})
	suite.Require().Nil(err)

	exported, err := repository.NewTransfer(suite.store).Export(ctx)
	suite.Require().Nil(err)
	data, err := json.Marshal(exported)
	suite.Require().Nil(err)

	// Import into a fresh store
	target := repository.NewStore(storage.NewMemory())
	transfer := repository.NewTransfer(target)

	imported, err := transfer.Import(ctx, data)
	suite.Require().Nil(err)
	suite.Assert().Len(imported.SavingsSources, 2)
	suite.Assert().Len(imported.FinancialRecords, 2)

	again, err := transfer.Export(ctx)
	suite.Require().Nil(err)
	result, err := json.Marshal(again)
	suite.Require().Nil(err)

	suite.Assert().JSONEq(string(data), string(result))

	// Timestamps survive with millisecond precision
	got, err := repository.NewFinancialRecords(target).Get(ctx, record.ID)
	suite.Require().Nil(err)
	suite.Assert().True(record.CreatedAt.Equal(got.CreatedAt))
}

func (suite *TestSuiteStandard) TestTransferImportReplaces() {
	ctx := context.Background()
	suite.createTestSource("Bank")
	suite.createTestRecord(nil)

	doc := `{
		"savingsSources": [{"id": "depot", "name": "Depot", "isNA": false, "createdAt": "2024-01-01T10:00:00.000+02:00", "updatedAt": "2024-01-01T10:00:00.000+02:00"}],
		"financialRecords": []
	}`

	_, err := repository.NewTransfer(suite.store).Import(ctx, []byte(doc))
	suite.Require().Nil(err)

	sources, err := repository.NewSavingsSources(suite.store).List(ctx)
	suite.Require().Nil(err)
	suite.Require().Len(sources, 1)
	suite.Assert().Equal("depot", sources[0].ID)
	suite.Assert().Equal("2024-01-01T08:00:00Z", sources[0].CreatedAt.Format("2006-01-02T15:04:05Z07:00"))

	records, err := repository.NewFinancialRecords(suite.store).List(ctx)
	suite.Require().Nil(err)
	suite.Assert().Empty(records)
}

func (suite *TestSuiteStandard) TestTransferImportInvalid() {
	ctx := context.Background()
	bank := suite.createTestSource("Bank")
	record := suite.createTestRecord(map[string]string{bank.ID: "10"})

	tests := []struct {
		name string
		data string
	}{
		{"Not JSON", `{"savingsSources": [`},
		{"Missing financial records", `{"savingsSources": []}`},
		{"Savings sources not an array", `{"savingsSources": {}, "financialRecords": []}`},
		{"Broken timestamp", `{"savingsSources": [], "financialRecords": [{"id": "x", "createdAt": "yesterday"}]}`},
	}

	for _, tt := range tests {
		_, err := repository.NewTransfer(suite.store).Import(ctx, []byte(tt.data))
		suite.Assert().ErrorIs(err, repository.ErrInvalidInput, tt.name)
		suite.Assert().ErrorIs(err, models.ErrInvalidDocument, tt.name)
	}

	// Nothing has been written
	suite.Assert().Equal(map[string]string{models.NASourceID: "0", bank.ID: "10"}, amounts(suite.getRecord(record.ID)))

	sources, err := repository.NewSavingsSources(suite.store).List(ctx)
	suite.Require().Nil(err)
	suite.Assert().Len(sources, 2)
}

func (suite *TestSuiteStandard) TestTransferImportAlignsValues() {
	ctx := context.Background()

	doc := `{
		"savingsSources": [
			{"id": "na-source", "name": "NA", "isNA": true, "createdAt": "2024-01-01T00:00:00.000Z", "updatedAt": "2024-01-01T00:00:00.000Z"},
			{"id": "b", "name": "Bank", "isNA": false, "createdAt": "2024-01-02T00:00:00.000Z", "updatedAt": "2024-01-02T00:00:00.000Z"}
		],
		"financialRecords": [
			{
				"id": "r1",
				"createdAt": "2024-02-01T00:00:00.000Z",
				"updatedAt": "2024-02-01T00:00:00.000Z",
				"values": [
					{"savingsSource": {"id": "gone", "name": "Closed account", "isNA": false, "createdAt": "2023-12-01T00:00:00.000Z", "updatedAt": "2023-12-01T00:00:00.000Z"}, "amount": 250.75}
				],
				"expenses": []
			}
		]
	}`

	imported, err := repository.NewTransfer(suite.store).Import(ctx, []byte(doc))
	suite.Require().Nil(err)
	suite.Assert().Len(imported.SavingsSources, 2)

	records, err := repository.NewFinancialRecords(suite.store).List(ctx)
	suite.Require().Nil(err)
	suite.Require().Len(records, 1)

	suite.assertCoversSources(records[0])
	suite.Assert().Equal(map[string]string{models.NASourceID: "250.75", "b": "0"}, amounts(records[0]))
}
