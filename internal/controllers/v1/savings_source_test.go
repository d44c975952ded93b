package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/envelope-zero/networth/internal/controllers/v1"
	"github.com/envelope-zero/networth/internal/httputil"
	"github.com/envelope-zero/networth/internal/models"
	"github.com/envelope-zero/networth/internal/repository"
	"github.com/envelope-zero/networth/internal/storage"
	"github.com/envelope-zero/networth/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestSavingsSource(t *testing.T, s v1.SavingsSourceEditable, expectedStatus ...int) v1.SavingsSourceResponse {
	if s.Name == "" {
		s.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, suite.store, http.MethodPost, "http://example.com/v1/savings-sources", s)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var source v1.SavingsSourceResponse
	test.DecodeResponse(t, &r, &source)

	return source
}

// TestSavingsSourcesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestSavingsSourcesDBClosed() {
	suite.CloseDB()

	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{"GET list", http.MethodGet, "http://example.com/v1/savings-sources", ""},
		{"GET single", http.MethodGet, "http://example.com/v1/savings-sources/na-source", ""},
		{"POST", http.MethodPost, "http://example.com/v1/savings-sources", v1.SavingsSourceEditable{Name: "Bank"}},
		{"DELETE", http.MethodDelete, "http://example.com/v1/savings-sources/na-source", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.store, tt.method, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), storage.ErrGeneral.Error())
		})
	}
}

// TestSavingsSourcesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestSavingsSourcesOptions() {
	tests := []struct {
		name   string
		id     string // path at the savings sources endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No savings source with this ID", uuid.New().String(), http.StatusNotFound},
		{"Fallback source", models.NASourceID, http.StatusNoContent},
		{"Savings source exists", suite.createTestSavingsSource(suite.T(), v1.SavingsSourceEditable{}).Data.ID, http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/savings-sources", tt.id)
			r := test.Request(t, suite.store, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestSavingsSourcesGet() {
	r := test.Request(suite.T(), suite.store, http.MethodGet, "http://example.com/v1/savings-sources", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SavingsSourceListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1, "The fallback source has not been created")
	assert.Equal(suite.T(), models.NASourceID, response.Data[0].ID)
	assert.True(suite.T(), response.Data[0].IsNA)
	assert.Equal(suite.T(), "http://example.com/v1/savings-sources/na-source", response.Data[0].Links.Self)
	assert.Nil(suite.T(), response.Error)
}

func (suite *TestSuiteStandard) TestSavingsSourcesGetSingle() {
	s := suite.createTestSavingsSource(suite.T(), v1.SavingsSourceEditable{Name: "Bank"})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing savings source", s.Data.ID, http.StatusOK},
		{"Unknown ID", uuid.NewString(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.store, http.MethodGet, fmt.Sprintf("http://example.com/v1/savings-sources/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.SavingsSourceResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status == http.StatusOK {
				assert.Equal(t, "Bank", response.Data.Name)
				return
			}
			assert.Contains(t, *response.Error, "there is no savings source matching your query")
		})
	}
}

func (suite *TestSuiteStandard) TestSavingsSourcesFilter() {
	_ = suite.createTestSavingsSource(suite.T(), v1.SavingsSourceEditable{Name: "Bank checking"})
	_ = suite.createTestSavingsSource(suite.T(), v1.SavingsSourceEditable{Name: "Bank savings"})
	_ = suite.createTestSavingsSource(suite.T(), v1.SavingsSourceEditable{Name: "Depot"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 4},
		{"Prefix", "name=Bank*", 2},
		{"Exact", "name=Depot", 1},
		{"Suffix", "name=*savings", 1},
		{"Fallback", "name=NA", 1},
		{"No match", "name=Credit*", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.store, http.MethodGet, fmt.Sprintf("http://example.com/v1/savings-sources?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.SavingsSourceListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.len, "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestSavingsSourcesCreate() {
	s := suite.createTestSavingsSource(suite.T(), v1.SavingsSourceEditable{Name: "  Bank  "})
	assert.Equal(suite.T(), "Bank", s.Data.Name)
	assert.False(suite.T(), s.Data.IsNA)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/savings-sources/%s", s.Data.ID), s.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestSavingsSourcesCreateFails() {
	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Broken body", `{ "name": 2" }`, http.StatusBadRequest, httputil.ErrInvalidBody.Error()},
		{"Empty body", "", http.StatusBadRequest, httputil.ErrRequestBodyEmpty.Error()},
		{"Name too short", v1.SavingsSourceEditable{Name: " B "}, http.StatusBadRequest, models.ErrSourceNameLength.Error()},
		{"Wrong type", `{ "name": 2 }`, http.StatusBadRequest, "cannot unmarshal number"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.store, http.MethodPost, "http://example.com/v1/savings-sources", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestSavingsSourcesUpdate() {
	s := suite.createTestSavingsSource(suite.T(), v1.SavingsSourceEditable{Name: "Bank"})
	record := suite.createTestFinancialRecord(suite.T(), v1.FinancialRecordEditable{})

	tests := []struct {
		name     string
		id       string
		body     any
		status   int
		expected string
	}{
		{"Rename", s.Data.ID, map[string]any{"name": "Checking account"}, http.StatusOK, "Checking account"},
		{"Blank name keeps name", s.Data.ID, map[string]any{"name": "  "}, http.StatusOK, "Checking account"},
		{"Missing name keeps name", s.Data.ID, map[string]any{}, http.StatusOK, "Checking account"},
		{"Name too short", s.Data.ID, map[string]any{"name": "C"}, http.StatusBadRequest, ""},
		{"Unknown ID", uuid.NewString(), map[string]any{"name": "Checking account"}, http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.store, http.MethodPatch, fmt.Sprintf("http://example.com/v1/savings-sources/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			var response v1.SavingsSourceResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.expected, response.Data.Name)
		})
	}

	// The new name is propagated to the financial record
	r := test.Request(suite.T(), suite.store, http.MethodGet, record.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.FinancialRecordPairResponse
	test.DecodeResponse(suite.T(), &r, &response)

	value, ok := response.Data.Current.Value(s.Data.ID)
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), "Checking account", value.SavingsSource.Name)
}

func (suite *TestSuiteStandard) TestSavingsSourcesDelete() {
	s := suite.createTestSavingsSource(suite.T(), v1.SavingsSourceEditable{Name: "Bank"})
	record := suite.createTestFinancialRecord(suite.T(), v1.FinancialRecordEditable{
		Values: []models.ValueInput{
			{SavingsSourceID: s.Data.ID, Amount: decimal.RequireFromString("500")},
			{SavingsSourceID: models.NASourceID, Amount: decimal.RequireFromString("20")},
		},
	})

	r := test.Request(suite.T(), suite.store, http.MethodDelete, s.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), suite.store, http.MethodGet, s.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), suite.store, http.MethodGet, record.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.FinancialRecordPairResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data.Current.Values, 1)
	assert.Equal(suite.T(), models.NASourceID, response.Data.Current.Values[0].SavingsSource.ID)
	assert.Equal(suite.T(), "520", response.Data.Current.Values[0].Amount.String())
	assert.Equal(suite.T(), "520", response.Data.Current.Total.String())

	r = test.Request(suite.T(), suite.store, http.MethodDelete, s.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSavingsSourcesNAProtection() {
	protected := repository.NewStore(suite.db, repository.WithNAProtection(true))
	path := "http://example.com/v1/savings-sources/na-source"

	r := test.Request(suite.T(), protected, http.MethodPatch, path, map[string]any{"name": "Other"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = test.Request(suite.T(), protected, http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)
	assert.Contains(suite.T(), test.DecodeError(suite.T(), r.Body.Bytes()), "the fallback savings source cannot be changed")

	// Without protection, the fallback source can be deleted
	r = test.Request(suite.T(), suite.store, http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
