package seller

import (
	"errors"
	"net/http"

	handlershared "github.com/packzo/ishop/internal/http/handlers/shared"
	"github.com/packzo/ishop/internal/http/response"
	"github.com/packzo/ishop/internal/service"

	"github.com/gin-gonic/gin"
)

// Dashboard 卖家工作台：账号信息与名下店铺
// 尚未开店时 shop 为 null，前端据此引导开店
func (h *Handler) Dashboard(c *gin.Context) {
	sid, ok := getSellerID(c)
	if !ok {
		return
	}
	seller, err := h.SellerRepo.FindByID(sid)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	shop, err := h.ShopService.GetBySeller(sid)
	if err != nil && !errors.Is(err, service.ErrShopNotFound) {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.OK(c, gin.H{"seller": seller, "shop": shop})
}
