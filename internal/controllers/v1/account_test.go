package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/ledgerbook/backend/internal/controllers/v1"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAccountLifecycle() {
	account := suite.createTestAccount(v1.AccountEditable{
		Name:     "Checking",
		Balance:  decimal.NewFromInt(250),
		Currency: "eur",
	})

	suite.Assert().Equal("EUR", account.Currency)
	suite.Assert().True(account.IsActive, "accounts are active by default")
	suite.Assert().Equal(suite.user, account.OwnerID)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/accounts/%s", account.ID), account.Links.Self)
	suite.assertBalance(250, account.ID)

	// The balance is only set on creation
	inactive := false
	r := suite.request(http.MethodPut, fmt.Sprintf("/v1/accounts/%s", account.ID), v1.AccountEditable{
		Name:     "Main account",
		Type:     models.AccountTypeBank,
		Balance:  decimal.NewFromInt(1_000_000),
		IsActive: &inactive,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	updated := suite.getAccount(account.ID)
	suite.Assert().Equal("Main account", updated.Name)
	suite.Assert().False(updated.IsActive)
	suite.assertBalance(250, account.ID)

	r = suite.request(http.MethodGet, "/v1/accounts?active=true", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	var list v1.Response[[]v1.Account]
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 0)

	r = suite.request(http.MethodDelete, fmt.Sprintf("/v1/accounts/%s", account.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(http.MethodGet, fmt.Sprintf("/v1/accounts/%s", account.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("there is no account matching your query", suite.decodeError(&r))
}

func (suite *TestSuiteStandard) TestAccountCreditCard() {
	account := suite.createTestAccount(v1.AccountEditable{
		Type:         models.AccountTypeCreditCard,
		Balance:      decimal.NewFromInt(-250),
		CreditLimit:  decimal.NewNullDecimal(decimal.NewFromInt(1000)),
		StatementDay: 15,
	})

	suite.Require().NotNil(account.AvailableCredit)
	suite.Assert().True(decimal.NewFromInt(750).Equal(*account.AvailableCredit))

	bank := suite.createTestAccount(v1.AccountEditable{})
	suite.Assert().Nil(bank.AvailableCredit)
}

func (suite *TestSuiteStandard) TestAccountErrors() {
	existing := suite.createTestAccount(v1.AccountEditable{Name: "Wallet", Type: models.AccountTypeCash})

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"Duplicate name", http.MethodPost, "/v1/accounts", v1.AccountEditable{Name: "Wallet", Type: models.AccountTypeCash}, http.StatusConflict},
		{"Invalid type", http.MethodPost, "/v1/accounts", v1.AccountEditable{Name: "Vault", Type: "VAULT"}, http.StatusBadRequest},
		{"Empty body", http.MethodPost, "/v1/accounts", "", http.StatusBadRequest},
		{"Broken body", http.MethodPost, "/v1/accounts", `{ "name": 2 `, http.StatusBadRequest},
		{"Invalid ID", http.MethodGet, "/v1/accounts/NotParseableAsUUID", "", http.StatusBadRequest},
		{"Unknown ID", http.MethodGet, fmt.Sprintf("/v1/accounts/%s", uuid.New()), "", http.StatusNotFound},
		{"Update unknown", http.MethodPut, fmt.Sprintf("/v1/accounts/%s", uuid.New()), v1.AccountEditable{Name: "X", Type: models.AccountTypeCash}, http.StatusNotFound},
		{"Delete unknown", http.MethodDelete, fmt.Sprintf("/v1/accounts/%s", uuid.New()), "", http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(tt.method, tt.path, tt.body)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
			suite.Assert().NotEmpty(suite.decodeError(&r))
		})
	}

	// Accounts of other users do not exist for the user
	other := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s/v1/accounts/%s", baseURL, existing.ID), "", map[string]string{v1.HeaderUserID: uuid.NewString()})
	test.AssertHTTPStatus(suite.T(), &other, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAccountDeleteWithTransfer() {
	source := suite.createTestAccount(v1.AccountEditable{Balance: decimal.NewFromInt(500)})
	target := suite.createTestAccount(v1.AccountEditable{Balance: decimal.NewFromInt(200)})

	transfer := suite.createTestTransaction(v1.TransactionEditable{
		AccountID:       source.ID,
		TargetAccountID: &target.ID,
		Type:            models.TransactionTypeTransfer,
		Amount:          decimal.NewFromInt(120),
	})
	suite.assertBalance(320, target.ID)

	r := suite.request(http.MethodDelete, fmt.Sprintf("/v1/accounts/%s", source.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
	suite.Assert().Contains(suite.decodeError(&r), "still has transactions")

	r = suite.request(http.MethodDelete, fmt.Sprintf("/v1/accounts/%s", target.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	// Both legs are reverted when the transfer is deleted
	r = suite.request(http.MethodDelete, fmt.Sprintf("/v1/transaction/%s", transfer.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.assertBalance(500, source.ID)
	suite.assertBalance(200, target.ID)

	r = suite.request(http.MethodDelete, fmt.Sprintf("/v1/accounts/%s", source.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
