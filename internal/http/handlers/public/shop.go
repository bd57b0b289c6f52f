package public

import (
	"strconv"

	handlershared "github.com/packzo/ishop/internal/http/handlers/shared"
	"github.com/packzo/ishop/internal/http/response"
	"github.com/packzo/ishop/internal/service"

	"github.com/gin-gonic/gin"
)

// ListShops 营业中的店铺列表
func (h *Handler) ListShops(c *gin.Context) {
	shops, err := h.ShopService.ListOpen()
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.OK(c, shops)
}

// ListShopProducts 店铺已上架商品列表
func (h *Handler) ListShopProducts(c *gin.Context) {
	shopID, ok := parseUintParam(c, "shopId")
	if !ok {
		return
	}
	products, err := h.ProductService.ListPublished(shopID)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.OK(c, products)
}

// ListSlots 当天取货时段列表
func (h *Handler) ListSlots(c *gin.Context) {
	response.OK(c, h.SlotService.ListSlots())
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
