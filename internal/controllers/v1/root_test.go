package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/ledgerbook/backend/internal/controllers/v1"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRoot() {
	r := test.Request(suite.T(), http.MethodGet, baseURL+"/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response[v1.Links]
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().True(response.IsSuccess)
	suite.Assert().Nil(response.Error)
	suite.Assert().Equal("http://example.com/v1/transaction", response.Data.Transactions)
	suite.Assert().Equal("http://example.com/v1/reconciliation", response.Data.Reconciliation)
}

func (suite *TestSuiteStandard) TestAuthentication() {
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"Missing", map[string]string{}},
		{"Not a UUID", map[string]string{v1.HeaderUserID: "admin"}},
		{"Nil UUID", map[string]string{v1.HeaderUserID: "00000000-0000-0000-0000-000000000000"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			for _, path := range []string{"/v1/accounts", "/v1/transaction", "/v1/budgets", "/v1/categories", "/v1/reconciliation/notifications"} {
				r := test.Request(t, http.MethodGet, baseURL+path, "", tt.headers)
				test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)

				var response v1.Response[*struct{}]
				test.DecodeResponse(t, &r, &response)
				assert.False(t, response.IsSuccess)
				assert.Contains(t, *response.Error, v1.HeaderUserID)
				assert.Equal(t, "Unauthorized", response.Message)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"/v1", "OPTIONS, GET"},
		{"/v1/accounts", "OPTIONS, GET, POST"},
		{"/v1/budgets", "OPTIONS, GET, POST"},
		{"/v1/categories", "OPTIONS, GET, POST"},
		{"/v1/transaction", "OPTIONS, GET, POST"},
		{"/v1/reconciliation/notifications", "OPTIONS, GET"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := suite.request(http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestDatabaseError() {
	suite.CloseDB()

	r := suite.request(http.MethodGet, "/v1/accounts", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().NotContains(suite.decodeError(&r), "sql")
}

// CloseDB closes the database connection. This enables testing the handling
// of database errors.
func (suite *TestSuiteStandard) CloseDB() {
	sqlDB, err := models.DB.DB()
	if err != nil {
		suite.Assert().FailNowf("Failed to get database resource for teardown: %v", err.Error())
	}
	sqlDB.Close()
}
