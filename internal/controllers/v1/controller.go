package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/backend/internal/budgeting"
	"github.com/ledgerbook/backend/internal/cache"
	"github.com/ledgerbook/backend/internal/ledger"
	"gorm.io/gorm"
)

// Controller holds the engines the handlers use.
type Controller struct {
	DB      *gorm.DB
	Ledger  ledger.Engine
	Budgets budgeting.Engine
	Cache   cache.Cache

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// New returns a Controller for the database.
func New(db *gorm.DB, c cache.Cache, lease time.Duration) Controller {
	budgets := budgeting.Engine{Lease: lease, Now: time.Now}

	return Controller{
		DB:      db,
		Ledger:  ledger.Engine{DB: db, Budgets: budgets},
		Budgets: budgets,
		Cache:   c,
		Now:     time.Now,
	}
}

func (co Controller) now() time.Time {
	if co.Now == nil {
		return time.Now()
	}
	return co.Now()
}

// db returns the database session for the request.
func (co Controller) db(c *gin.Context) *gorm.DB {
	return co.DB.WithContext(c.Request.Context())
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", co.Get)
	r.OPTIONS("", co.Options)

	authenticated := r.Group("", Authenticate())
	co.RegisterTransactionRoutes(authenticated.Group("/transaction"))
	co.RegisterReconciliationRoutes(authenticated.Group("/reconciliation"))
	co.RegisterBudgetRoutes(authenticated.Group("/budgets"))
	co.RegisterAccountRoutes(authenticated.Group("/accounts"))
	co.RegisterCategoryRoutes(authenticated.Group("/categories"))
}
