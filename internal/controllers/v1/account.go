package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/backend/internal/httputil"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/shopspring/decimal"
)

type AccountEditable struct {
	Name         string              `json:"name" example:"Checking"`
	Type         models.AccountType  `json:"type" example:"BANK"`
	Balance      decimal.Decimal     `json:"balance" example:"1250.75"` // Opening balance. Only used on creation, afterwards the balance is changed by transactions only
	CreditLimit  decimal.NullDecimal `json:"creditLimit" swaggertype:"string" example:"5000"`
	Currency     string              `json:"currency" example:"EUR"`
	StatementDay int                 `json:"statementDay" example:"15"`
	Icon         string              `json:"icon" example:"bank"`
	Color        string              `json:"color" example:"#2563eb"`
	IsActive     *bool               `json:"isActive" example:"true"` // Defaults to true
}

// editableAccountFields are the fields that can be changed after creation.
var editableAccountFields = []string{"Name", "Type", "CreditLimit", "Currency", "StatementDay", "Icon", "Color", "IsActive", "UpdatedAt"}

func (editable AccountEditable) apply(account *models.Account) {
	account.Name = editable.Name
	account.Type = editable.Type
	account.CreditLimit = editable.CreditLimit
	account.Currency = editable.Currency
	account.StatementDay = editable.StatementDay
	account.Icon = editable.Icon
	account.Color = editable.Color
	if editable.IsActive != nil {
		account.IsActive = *editable.IsActive
	}
}

type AccountLinks struct {
	Self           string `json:"self" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                    // The account itself
	Transactions   string `json:"transactions" example:"https://example.com/api/v1/transaction?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Transactions referencing the account
	Reconciliation string `json:"reconciliation" example:"https://example.com/api/v1/reconciliation/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`    // Reconciliation data for the account
}

// Account is the API representation of an account.
type Account struct {
	models.Account
	AvailableCredit *decimal.Decimal `json:"availableCredit" swaggertype:"string" example:"3749.25"` // Credit limit plus balance, only for credit cards
	Links           AccountLinks     `json:"links"`
}

func newAccount(c *gin.Context, model models.Account) Account {
	url := c.GetString(string(models.ContextURL))

	a := Account{
		Account: model,
		Links: AccountLinks{
			Self:           fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
			Transactions:   fmt.Sprintf("%s/v1/transaction?account=%s", url, model.ID),
			Reconciliation: fmt.Sprintf("%s/v1/reconciliation/%s", url, model.ID),
		},
	}

	if available, ok := model.AvailableCredit(); ok {
		a.AvailableCredit = &available
	}

	return a
}

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func (co Controller) RegisterAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsAccountList)
		r.GET("", co.GetAccounts)
		r.POST("", co.CreateAccount)
	}

	// Account with ID
	{
		r.OPTIONS("/:id", co.OptionsAccountDetail)
		r.GET("/:id", co.GetAccount)
		r.PUT("/:id", co.UpdateAccount)
		r.DELETE("/:id", co.DeleteAccount)
	}
}

func (co Controller) getAccount(c *gin.Context) (models.Account, bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		fail(c, err)
		return models.Account{}, false
	}

	var account models.Account
	err = co.db(c).Where(&models.Account{OwnerID: owner(c)}).First(&account, "id = ?", uri.ID.UUID).Error
	if err != nil {
		fail(c, err)
		return models.Account{}, false
	}

	return account, true
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts [options]
func (co Controller) OptionsAccountList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id} [options]
func (co Controller) OptionsAccountDetail(c *gin.Context) {
	_, ok := co.getAccount(c)
	if !ok {
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		List accounts
// @Description	Returns all accounts of the user
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	Response[[]Account]
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			active	query		bool	false	"Filter by active state"
// @Router			/v1/accounts [get]
func (co Controller) GetAccounts(c *gin.Context) {
	var filter struct {
		Active *bool `form:"active"`
	}
	if err := c.ShouldBindQuery(&filter); err != nil {
		fail(c, err)
		return
	}

	q := co.db(c).Where(&models.Account{OwnerID: owner(c)}).Order("name ASC")
	if filter.Active != nil {
		q = q.Where("is_active = ?", *filter.Active)
	}

	var accounts []models.Account
	err := q.Find(&accounts).Error
	if err != nil {
		fail(c, err)
		return
	}

	// An empty list, not null
	data := make([]Account, 0)
	for _, account := range accounts {
		data = append(data, newAccount(c, account))
	}

	respond(c, http.StatusOK, data)
}

// @Summary		Get account
// @Description	Returns a specific account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	Response[Account]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id} [get]
func (co Controller) GetAccount(c *gin.Context) {
	account, ok := co.getAccount(c)
	if !ok {
		return
	}

	respond(c, http.StatusOK, newAccount(c, account))
}

// @Summary		Create account
// @Description	Creates a new account
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		201		{object}	Response[Account]
// @Failure		400		{object}	httpError
// @Failure		409		{object}	httpError
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts [post]
func (co Controller) CreateAccount(c *gin.Context) {
	var editable AccountEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		fail(c, err)
		return
	}

	account := models.Account{
		OwnerID:  owner(c),
		Balance:  editable.Balance,
		IsActive: true,
	}
	editable.apply(&account)

	err = co.db(c).Create(&account).Error
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusCreated, newAccount(c, account))
}

// @Summary		Update account
// @Description	Updates an account. The balance can only be changed by transactions.
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		200		{object}	Response[Account]
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts/{id} [put]
func (co Controller) UpdateAccount(c *gin.Context) {
	account, ok := co.getAccount(c)
	if !ok {
		return
	}

	var editable AccountEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		fail(c, err)
		return
	}

	editable.apply(&account)

	err = co.db(c).Select(editableAccountFields).Save(&account).Error
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, newAccount(c, account))
}

// @Summary		Delete account
// @Description	Deletes an account. Accounts that are still used by transactions cannot be deleted.
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id} [delete]
func (co Controller) DeleteAccount(c *gin.Context) {
	account, ok := co.getAccount(c)
	if !ok {
		return
	}

	err := co.db(c).Delete(&account).Error
	if err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
