package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/httputil"
	"github.com/ledgerbook/backend/internal/reconciliation"
	"golang.org/x/text/language"
)

var languages = language.NewMatcher(reconciliation.Languages)

// ReconciliationConfirm partitions the open transactions of an account.
type ReconciliationConfirm struct {
	Confirmed []uuid.UUID `json:"confirmed"` // Transactions that match the statement
	Deferred  []uuid.UUID `json:"deferred"`  // Transactions that appear on a later statement
}

// RegisterReconciliationRoutes registers the routes for reconciliation with
// the RouterGroup that is passed.
func (co Controller) RegisterReconciliationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/notifications", co.OptionsReconciliationNotifications)
	r.GET("/notifications", co.GetReconciliationNotifications)

	r.OPTIONS("/:accountId", co.OptionsReconciliation)
	r.GET("/:accountId", co.GetReconciliation)

	r.OPTIONS("/:accountId/confirm", co.OptionsReconciliationConfirm)
	r.POST("/:accountId/confirm", co.ConfirmReconciliation)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reconciliation
// @Success		204
// @Router			/v1/reconciliation/notifications [options]
func (co Controller) OptionsReconciliationNotifications(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reconciliation
// @Success		204
// @Param			accountId	path	string	true	"ID of the account"
// @Router			/v1/reconciliation/{accountId} [options]
func (co Controller) OptionsReconciliation(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reconciliation
// @Success		204
// @Param			accountId	path	string	true	"ID of the account"
// @Router			/v1/reconciliation/{accountId}/confirm [options]
func (co Controller) OptionsReconciliationConfirm(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get reconciliation notifications
// @Description	Returns one notification per account with transactions from past statement periods that are not reconciled yet. The message is localized with the Accept-Language header.
// @Tags			Reconciliation
// @Produce		json
// @Success		200				{object}	Response[[]reconciliation.Notification]
// @Failure		401				{object}	httpError
// @Param			Accept-Language	header		string	false	"Language of the messages, e.g. de-DE"
// @Router			/v1/reconciliation/notifications [get]
func (co Controller) GetReconciliationNotifications(c *gin.Context) {
	tags, _, _ := language.ParseAcceptLanguage(c.GetHeader("Accept-Language"))
	_, index, _ := languages.Match(tags...)

	notifications, err := reconciliation.Notifications(co.db(c), owner(c), co.now(), reconciliation.Languages[index])
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, notifications)
}

// @Summary		Get reconciliation data
// @Description	Returns the current statement period of the account, the transactions open for reconciliation and possible duplicates among them
// @Tags			Reconciliation
// @Produce		json
// @Success		200			{object}	Response[reconciliation.Statement]
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Param			accountId	path		string	true	"ID of the account"
// @Router			/v1/reconciliation/{accountId} [get]
func (co Controller) GetReconciliation(c *gin.Context) {
	var uri URIAccountID
	if err := c.ShouldBindUri(&uri); err != nil {
		fail(c, err)
		return
	}

	statement, err := reconciliation.Data(co.db(c), owner(c), uri.AccountID.UUID, co.now())
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, statement)
}

// @Summary		Confirm reconciliation
// @Description	Marks the confirmed transactions as reconciled and moves the deferred ones to the next statement period
// @Tags			Reconciliation
// @Accept			json
// @Produce		json
// @Success		200			{object}	Response[reconciliation.Result]
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		409			{object}	httpError
// @Param			accountId	path		string					true	"ID of the account"
// @Param			partition	body		ReconciliationConfirm	true	"Confirmed and deferred transactions"
// @Router			/v1/reconciliation/{accountId}/confirm [post]
func (co Controller) ConfirmReconciliation(c *gin.Context) {
	var uri URIAccountID
	if err := c.ShouldBindUri(&uri); err != nil {
		fail(c, err)
		return
	}

	var data ReconciliationConfirm
	if err := httputil.BindData(c, &data); err != nil {
		fail(c, err)
		return
	}

	result, err := reconciliation.Confirm(co.db(c), owner(c), uri.AccountID.UUID, data.Confirmed, data.Deferred, co.now())
	if err != nil {
		fail(c, err)
		return
	}

	respond(c, http.StatusOK, result)
}
