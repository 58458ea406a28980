package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/budgeting"
	"github.com/ledgerbook/backend/internal/httputil"
	"github.com/ledgerbook/backend/internal/ledger"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
	ez_uuid "github.com/ledgerbook/backend/internal/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionExtraEditable struct {
	ExtraAdd        decimal.Decimal `json:"extraAdd" example:"100"`             // Reduces the net amount of an expense, increases it for income
	ExtraAddLabel   string          `json:"extraAddLabel" example:"coupon"`     // Defaults to "discount"
	ExtraMinus      decimal.Decimal `json:"extraMinus" example:"10"`            // Increases the net amount of an expense, reduces it for income
	ExtraMinusLabel string          `json:"extraMinusLabel" example:"shipping"` // Defaults to "fee"
}

type TransactionEditable struct {
	AccountID       uuid.UUID                 `json:"accountId" example:"3ff3e6ac-2b3b-4f7d-8d6e-2a2a0f6b2f55"`
	TargetAccountID *uuid.UUID                `json:"targetAccountId" example:"9d1b6a36-49b6-4bd0-9a44-c0f8c3c1f0c5"` // Only for transfers
	CategoryID      *uuid.UUID                `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`
	Type            models.TransactionType    `json:"type" example:"EXPENSE"`
	Amount          decimal.Decimal           `json:"amount" example:"1000"` // Negative amounts are converted to positive ones
	Date            types.Date                `json:"date" swaggertype:"string" example:"2026-10-17"`
	Note            string                    `json:"note" example:"Groceries"`
	LinkID          *uuid.UUID                `json:"linkId"`
	Extra           *TransactionExtraEditable `json:"extra"` // Adjustments to the amount. Ignored for transfers

	ConfirmBackdated bool `json:"confirmBackdated" example:"false"` // Confirms the recalculation of closed budget periods
}

func (editable TransactionEditable) draft() ledger.Draft {
	d := ledger.Draft{
		AccountID:        editable.AccountID,
		TargetAccountID:  editable.TargetAccountID,
		CategoryID:       editable.CategoryID,
		Type:             models.TransactionType(strings.ToUpper(string(editable.Type))),
		Amount:           editable.Amount,
		Date:             editable.Date,
		Note:             editable.Note,
		LinkID:           editable.LinkID,
		ConfirmBackdated: editable.ConfirmBackdated,
	}

	if editable.Extra != nil {
		d.Extra = &models.TransactionExtra{
			ExtraAdd:        editable.Extra.ExtraAdd,
			ExtraAddLabel:   editable.Extra.ExtraAddLabel,
			ExtraMinus:      editable.Extra.ExtraMinus,
			ExtraMinusLabel: editable.Extra.ExtraMinusLabel,
		}
	}

	return d
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transaction/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the API representation of a transaction.
type Transaction struct {
	models.Transaction
	Links TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.ContextURL))

	return Transaction{
		Transaction: model,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transaction/%s", url, model.ID),
		},
	}
}

type TransactionQueryFilter struct {
	AccountID  ez_uuid.UUID `form:"account"`    // By ID of the account, regardless of source or target
	CategoryID ez_uuid.UUID `form:"category"`   // By ID of the category or any of its sub categories
	Type       string       `form:"type"`       // By type
	FromDate   types.Date   `form:"fromDate"`   // Transactions at and after this date
	UntilDate  types.Date   `form:"untilDate"`  // Transactions before and at this date
	Note       string       `form:"note"`       // Glob pattern for the note, e.g. "*coffee*"
	Reconciled *bool        `form:"reconciled"` // By reconciliation state
	Offset     uint         `form:"offset"`     // The offset of the first transaction returned
	Limit      *int         `form:"limit"`      // Maximum number of transactions to return
}

type TransactionListResponse struct {
	Response[[]Transaction]
	Pagination *Pagination `json:"pagination"` // Pagination information
}

// TransactionsOnDate are the transactions of a day with the budgets that
// a change on that day would recalculate.
type TransactionsOnDate struct {
	Date         types.Date         `json:"date" swaggertype:"string" example:"2026-10-17"`
	Transactions []Transaction      `json:"transactions"`
	Backdated    bool               `json:"backdated"` // Is the date in a closed period of an active budget?
	Budgets      []budgeting.Impact `json:"budgets"`   // Budgets that a change on this date recalculates
}

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsTransactionList)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
		r.GET("/date", co.GetTransactionsOnDate)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
		r.PUT("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

func (co Controller) getTransaction(c *gin.Context) (models.Transaction, bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		fail(c, err)
		return models.Transaction{}, false
	}

	var transaction models.Transaction
	err = co.db(c).Preload("Extra").Where(&models.Transaction{OwnerID: owner(c)}).First(&transaction, "id = ?", uri.ID.UUID).Error
	if err != nil {
		fail(c, err)
		return models.Transaction{}, false
	}

	return transaction, true
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transaction [options]
func (co Controller) OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transaction/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	_, ok := co.getTransaction(c)
	if !ok {
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Get transactions
// @Description	Returns a list of transactions, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Router			/v1/transaction [get]
// @Param			account		query	string	false	"Filter by ID of the account, regardless of source or target"
// @Param			category	query	string	false	"Filter by ID of the category, including its sub categories"
// @Param			type		query	string	false	"Filter by type"
// @Param			fromDate	query	string	false	"Transactions at and after this date"
// @Param			untilDate	query	string	false	"Transactions before and at this date"
// @Param			note		query	string	false	"Glob pattern for the note, e.g. *coffee*"
// @Param			reconciled	query	bool	false	"Filter by reconciliation state. With an account filter, the side of the transaction on that account counts"
// @Param			offset		query	uint	false	"The offset of the first Transaction returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Transactions to return. Defaults to 50."
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		fail(c, err)
		return
	}

	id := owner(c)
	q := co.db(c).
		Model(&models.Transaction{}).
		Where(&models.Transaction{OwnerID: id}).
		Order("date DESC, created_at DESC")

	if filter.AccountID != ez_uuid.Nil {
		q = q.Where("(account_id = ? OR target_account_id = ?)", filter.AccountID.UUID, filter.AccountID.UUID)
	}

	if filter.CategoryID != ez_uuid.Nil {
		categories, err := models.Descendants(co.db(c), id, []uuid.UUID{filter.CategoryID.UUID})
		if err != nil {
			fail(c, err)
			return
		}
		q = q.Where("category_id IN ?", categories)
	}

	if filter.Type != "" {
		t := models.TransactionType(strings.ToUpper(filter.Type))
		if !t.Valid() {
			fail(c, errTypeInvalid)
			return
		}
		q = q.Where("type = ?", t)
	}

	if !filter.FromDate.IsZero() {
		q = q.Where("date >= ?", filter.FromDate)
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("date < ?", filter.UntilDate.AddDate(0, 0, 1))
	}

	// With an account, the leg of the transaction on that account counts
	if filter.Reconciled != nil && filter.AccountID != ez_uuid.Nil {
		q = q.Where("((account_id = @account AND reconciled_source = @reconciled) OR (target_account_id = @account AND reconciled_destination = @reconciled))", map[string]any{
			"account":    filter.AccountID.UUID,
			"reconciled": *filter.Reconciled,
		})
	} else if filter.Reconciled != nil {
		q = q.Where("is_reconciled = ?", *filter.Reconciled)
	}

	limit := 50
	if filter.Limit != nil {
		if *filter.Limit < 0 {
			fail(c, errLimitInvalid)
			return
		}
		limit = *filter.Limit
	}

	q = q.Session(&gorm.Session{})

	var transactions []models.Transaction
	var total int64

	if filter.Note == "" {
		err := q.Preload("Extra").Offset(int(filter.Offset)).Limit(limit).Find(&transactions).Error
		if err != nil {
			fail(c, err)
			return
		}

		err = q.Count(&total).Error
		if err != nil {
			fail(c, err)
			return
		}
	} else {
		// Glob patterns cannot be expressed portably in SQL, the note
		// filter and the pagination are applied here
		var all []models.Transaction
		err := q.Preload("Extra").Find(&all).Error
		if err != nil {
			fail(c, err)
			return
		}

		pattern := strings.ToLower(filter.Note)
		for _, t := range all {
			if glob.Glob(pattern, strings.ToLower(t.Note)) {
				transactions = append(transactions, t)
			}
		}

		total = int64(len(transactions))
		start := min(int(filter.Offset), len(transactions))
		end := min(start+limit, len(transactions))
		transactions = transactions[start:end]
	}

	data := make([]Transaction, 0)
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Response: Response[[]Transaction]{
			IsSuccess: true,
			Data:      data,
		},
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get transactions on a date
// @Description	Returns the transactions of a day and the budgets with a closed period on that day. Changes on a date with closed periods must be confirmed.
// @Tags			Transactions
// @Produce		json
// @Success		200		{object}	Response[TransactionsOnDate]
// @Failure		400		{object}	httpError
// @Param			date	query		string	true	"Date in YYYY-MM-DD format"
// @Router			/v1/transaction/date [get]
func (co Controller) GetTransactionsOnDate(c *gin.Context) {
	var query struct {
		Date types.Date `form:"date"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		fail(c, err)
		return
	}

	if query.Date.IsZero() {
		fail(c, errDateMissing)
		return
	}

	var transactions []models.Transaction
	err := co.db(c).
		Preload("Extra").
		Where(&models.Transaction{OwnerID: owner(c)}).
		Where("date = ?", query.Date).
		Order("created_at ASC").
		Find(&transactions).Error
	if err != nil {
		fail(c, err)
		return
	}

	impacts, err := co.Budgets.Backdating(co.db(c), owner(c), query.Date)
	if err != nil {
		fail(c, err)
		return
	}

	data := TransactionsOnDate{
		Date:         query.Date,
		Transactions: make([]Transaction, 0),
		Backdated:    len(impacts) > 0,
		Budgets:      impacts,
	}
	for _, transaction := range transactions {
		data.Transactions = append(data.Transactions, newTransaction(c, transaction))
	}

	respond(c, http.StatusOK, data)
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	Response[Transaction]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transaction/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	transaction, ok := co.getTransaction(c)
	if !ok {
		return
	}

	respond(c, http.StatusOK, newTransaction(c, transaction))
}

// @Summary		Create transaction
// @Description	Creates a transaction and updates the balances of its accounts. The message contains notices about adjustments that were made.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	Response[Transaction]
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		409			{object}	httpError
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transaction [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		fail(c, err)
		return
	}

	result, err := co.Ledger.Create(c.Request.Context(), owner(c), editable.draft())
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusCreated, newTransaction(c, result.Transaction), result.Notices...)
}

// @Summary		Update transaction
// @Description	Replaces a transaction. The balance changes of the previous version are reversed.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	Response[Transaction]
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		409			{object}	httpError
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transaction/{id} [put]
func (co Controller) UpdateTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		fail(c, err)
		return
	}

	var editable TransactionEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		fail(c, err)
		return
	}

	result, err := co.Ledger.Update(c.Request.Context(), owner(c), uri.ID.UUID, editable.draft())
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, newTransaction(c, result.Transaction), result.Notices...)
}

// @Summary		Delete transaction
// @Description	Deletes a transaction and reverses its balance changes
// @Tags			Transactions
// @Success		204
// @Failure		400					{object}	httpError
// @Failure		404					{object}	httpError
// @Failure		409					{object}	httpError
// @Param			id					path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			confirmBackdated	query		bool	false	"Confirms the recalculation of closed budget periods"
// @Router			/v1/transaction/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		fail(c, err)
		return
	}

	var query struct {
		ConfirmBackdated bool `form:"confirmBackdated"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		fail(c, err)
		return
	}

	err = co.Ledger.Delete(c.Request.Context(), owner(c), uri.ID.UUID, query.ConfirmBackdated)
	if err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
