package healthz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/backend/internal/httputil"
	"gorm.io/gorm"
)

// Response is returned when the backend is not healthy.
type Response struct {
	IsSuccess bool    `json:"isSuccess"`
	Error     *string `json:"error" example:"sql: database is closed"`
}

// RegisterRoutes registers the healthz routes. The database is pinged
// on every request.
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	r.OPTIONS("", Options)
	r.GET("", Get(db))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	Response
// @Router			/healthz [get]
func Get(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}

		if err != nil {
			e := err.Error()
			c.AbortWithStatusJSON(http.StatusInternalServerError, Response{Error: &e})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
