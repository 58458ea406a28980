package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/models"
)

// HeaderUserID carries the ID of the user authenticated by the gateway.
const HeaderUserID = "X-User-Id"

// Authenticate rejects requests without a valid user ID and stores the ID
// in the request context.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.GetHeader(HeaderUserID))
		if err != nil || id == uuid.Nil {
			fail(c, errUserMissing)
			return
		}

		c.Set(string(models.ContextUserID), id)
		c.Next()
	}
}

// owner returns the ID of the authenticated user.
func owner(c *gin.Context) uuid.UUID {
	return c.MustGet(string(models.ContextUserID)).(uuid.UUID)
}
