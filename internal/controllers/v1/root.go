package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/backend/internal/httputil"
	"github.com/ledgerbook/backend/internal/models"
)

type Links struct {
	Accounts       string `json:"accounts" example:"https://example.com/api/v1/accounts"`             // URL of Account collection endpoint
	Budgets        string `json:"budgets" example:"https://example.com/api/v1/budgets"`               // URL of Budget collection endpoint
	Categories     string `json:"categories" example:"https://example.com/api/v1/categories"`         // URL of Category collection endpoint
	Transactions   string `json:"transactions" example:"https://example.com/api/v1/transaction"`      // URL of Transaction collection endpoint
	Reconciliation string `json:"reconciliation" example:"https://example.com/api/v1/reconciliation"` // URL of the reconciliation endpoints
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response[Links]
//	@Router			/v1 [get]
func (co Controller) Get(c *gin.Context) {
	url := c.GetString(string(models.ContextURL))

	respond(c, http.StatusOK, Links{
		Accounts:       url + "/v1/accounts",
		Budgets:        url + "/v1/budgets",
		Categories:     url + "/v1/categories",
		Transactions:   url + "/v1/transaction",
		Reconciliation: url + "/v1/reconciliation",
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func (co Controller) Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
