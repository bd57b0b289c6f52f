package shared

import (
	"net/http"

	"github.com/packzo/ishop/internal/http/response"
	"github.com/packzo/ishop/internal/logger"

	"github.com/gin-gonic/gin"
)

// ContextKeyUserID 登录买家 ID 的上下文键
const ContextKeyUserID = "user_id"

// ContextKeySellerID 登录卖家 ID 的上下文键
const ContextKeySellerID = "seller_id"

// GetContextUint 从 gin 上下文读取 uint 值，缺失或类型错误时返回 401
func GetContextUint(c *gin.Context, key string) (uint, bool) {
	value, exists := c.Get(key)
	if !exists {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return 0, false
	}
	id, ok := value.(uint)
	if !ok || id == 0 {
		logger.Warnw("context_identity_invalid", "key", key)
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return 0, false
	}
	return id, true
}
