package public

import (
	handlershared "github.com/packzo/ishop/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUint(c, handlershared.ContextKeyUserID)
}
