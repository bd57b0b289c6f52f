package seller

import (
	"strconv"

	handlershared "github.com/packzo/ishop/internal/http/handlers/shared"
	"github.com/packzo/ishop/internal/service"

	"github.com/gin-gonic/gin"
)

func getSellerID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUint(c, handlershared.ContextKeySellerID)
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		handlershared.RespondServiceError(c, service.ErrInvalidInput)
		return 0, false
	}
	return uint(parsed), true
}
