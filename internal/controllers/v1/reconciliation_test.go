package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/ledgerbook/backend/internal/controllers/v1"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/reconciliation"
	"github.com/ledgerbook/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) getReconciliation(account uuid.UUID) reconciliation.Statement {
	r := suite.request(http.MethodGet, fmt.Sprintf("/v1/reconciliation/%s", account), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response[reconciliation.Statement]
	test.DecodeResponse(suite.T(), &r, &response)
	return response.Data
}

func (suite *TestSuiteStandard) getNotifications(acceptLanguage string) []reconciliation.Notification {
	r := suite.request(http.MethodGet, "/v1/reconciliation/notifications", "", map[string]string{"Accept-Language": acceptLanguage})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response[[]reconciliation.Notification]
	test.DecodeResponse(suite.T(), &r, &response)
	return response.Data
}

func (suite *TestSuiteStandard) TestReconciliation() {
	account := suite.createTestAccount(v1.AccountEditable{Name: "Checking"})
	lastMonth := suite.monthStart().AddDate(0, 0, -1)

	old := suite.createTestTransaction(v1.TransactionEditable{AccountID: account.ID, Note: "Rent", Amount: decimal.NewFromInt(700), Date: lastMonth, Type: "income"})
	coffee := suite.createTestTransaction(v1.TransactionEditable{AccountID: account.ID, Note: "Coffee shop", Type: "income"})
	coffeeAgain := suite.createTestTransaction(v1.TransactionEditable{AccountID: account.ID, Note: "Coffee shop.", Type: "income"})

	statement := suite.getReconciliation(account.ID)
	suite.Assert().Equal(suite.monthStart().String(), statement.Period.Start.String())
	suite.Assert().Len(statement.Transactions, 3)
	suite.Require().Len(statement.Duplicates, 1)
	suite.Assert().ElementsMatch([]uuid.UUID{coffee.Data.ID, coffeeAgain.Data.ID}, statement.Duplicates[0].TransactionIDs[:])
	suite.Assert().Greater(statement.Duplicates[0].Similarity, 0.9)

	english := suite.getNotifications("en-US,en;q=0.9")
	suite.Require().Len(english, 1)
	suite.Assert().Equal(account.ID, english[0].AccountID)
	suite.Assert().Equal(int64(1), english[0].Count)
	suite.Assert().Equal(fmt.Sprintf("1 transaction in Checking is waiting for reconciliation since the statement of %s", suite.monthStart()), english[0].Message)

	german := suite.getNotifications("de-DE")
	suite.Require().Len(german, 1)
	suite.Assert().Equal(fmt.Sprintf("1 Buchung in Checking wartet seit dem Abschluss vom %s auf den Abgleich", suite.monthStart()), german[0].Message)

	// Unsupported languages fall back to English
	suite.Assert().Equal(english[0].Message, suite.getNotifications("fr-FR")[0].Message)

	r := suite.request(http.MethodPost, fmt.Sprintf("/v1/reconciliation/%s/confirm", account.ID), v1.ReconciliationConfirm{
		Confirmed: []uuid.UUID{old.Data.ID, coffee.Data.ID},
		Deferred:  []uuid.UUID{coffeeAgain.Data.ID},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var result v1.Response[reconciliation.Result]
	test.DecodeResponse(suite.T(), &r, &result)
	suite.Assert().Equal(2, result.Data.Reconciled)
	suite.Assert().Equal(1, result.Data.Deferred)
	suite.Assert().Equal(suite.monthStart().AddDate(0, 2, 0).String(), result.Data.DeferredUntil.String())

	// The deferred transaction is due in the next statement period
	suite.Assert().Len(suite.getReconciliation(account.ID).Transactions, 0)
	suite.Assert().Len(suite.getNotifications("en"), 0)
	suite.Assert().Len(suite.listTransactions("?reconciled=true").Data, 2)
}

func (suite *TestSuiteStandard) TestReconciliationTransfer() {
	bank := suite.createTestAccount(v1.AccountEditable{Name: "Checking"})
	savings := suite.createTestAccount(v1.AccountEditable{Name: "Savings", Type: models.AccountTypeSavings})

	transfer := suite.createTestTransaction(v1.TransactionEditable{
		AccountID:       bank.ID,
		TargetAccountID: &savings.ID,
		Type:            models.TransactionTypeTransfer,
		Amount:          decimal.NewFromInt(200),
	})

	r := suite.request(http.MethodPost, fmt.Sprintf("/v1/reconciliation/%s/confirm", savings.ID), v1.ReconciliationConfirm{
		Confirmed: []uuid.UUID{transfer.Data.ID},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// Each account reconciles its own side of the transfer
	suite.Assert().Len(suite.getReconciliation(savings.ID).Transactions, 0)
	suite.Assert().Len(suite.getReconciliation(bank.ID).Transactions, 1)

	suite.Assert().Len(suite.listTransactions(fmt.Sprintf("?account=%s&reconciled=true", savings.ID)).Data, 1)
	suite.Assert().Len(suite.listTransactions(fmt.Sprintf("?account=%s&reconciled=false", bank.ID)).Data, 1)
	suite.Assert().Len(suite.listTransactions("?reconciled=true").Data, 0)

	r = suite.request(http.MethodPost, fmt.Sprintf("/v1/reconciliation/%s/confirm", bank.ID), v1.ReconciliationConfirm{
		Confirmed: []uuid.UUID{transfer.Data.ID},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Len(suite.listTransactions("?reconciled=true").Data, 1)
}

func (suite *TestSuiteStandard) TestReconciliationErrors() {
	account := suite.createTestAccount(v1.AccountEditable{})
	transaction := suite.createTestTransaction(v1.TransactionEditable{AccountID: account.ID})
	other := suite.createTestTransaction(v1.TransactionEditable{})

	tests := []struct {
		name   string
		body   v1.ReconciliationConfirm
		status int
	}{
		{"Nothing to confirm", v1.ReconciliationConfirm{}, http.StatusBadRequest},
		{"Confirmed and deferred", v1.ReconciliationConfirm{Confirmed: []uuid.UUID{transaction.Data.ID}, Deferred: []uuid.UUID{transaction.Data.ID}}, http.StatusConflict},
		{"Transaction of another account", v1.ReconciliationConfirm{Confirmed: []uuid.UUID{other.Data.ID}}, http.StatusBadRequest},
		{"Unknown transaction", v1.ReconciliationConfirm{Deferred: []uuid.UUID{uuid.New()}}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPost, fmt.Sprintf("/v1/reconciliation/%s/confirm", account.ID), tt.body)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
		})
	}

	// Nothing was reconciled
	suite.Assert().Len(suite.getReconciliation(account.ID).Transactions, 1)

	r := suite.request(http.MethodGet, fmt.Sprintf("/v1/reconciliation/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("there is no account matching your query", suite.decodeError(&r))

	r = suite.request(http.MethodPost, fmt.Sprintf("/v1/reconciliation/%s/confirm", uuid.New()), v1.ReconciliationConfirm{Confirmed: []uuid.UUID{transaction.Data.ID}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(http.MethodGet, "/v1/reconciliation/NotParseableAsUUID", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
