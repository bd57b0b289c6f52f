package public

import (
	"net/http"
	"strings"

	handlershared "github.com/packzo/ishop/internal/http/handlers/shared"
	"github.com/packzo/ishop/internal/http/response"
	"github.com/packzo/ishop/internal/service"

	"github.com/gin-gonic/gin"
)

// AddToCartRequest 加购请求（携带加购时刻的商品快照字段）
type AddToCartRequest struct {
	ProductID uint   `json:"productId" binding:"required"`
	ShopID    uint   `json:"shopId"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

// GetCart 获取购物车条目列表
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	shopID, ok := parseUintParam(c, "shopId")
	if !ok {
		return
	}
	snapshot, err := h.CartService.Load(uid, shopID)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.OK(c, snapshot.Items)
}

// AddToCart 加购商品
// 名称与价格以服务端商品数据为准，请求体中的快照字段仅兼容旧客户端
func (h *Handler) AddToCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}
	snapshot, err := h.CartService.Add(service.AddToCartInput{
		UserID:    uid,
		ProductID: req.ProductID,
		ShopID:    req.ShopID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Created(c, snapshot.Items)
}

// IncreaseQuantity 购物车项数量加一
func (h *Handler) IncreaseQuantity(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseUintParam(c, "itemId")
	if !ok {
		return
	}
	snapshot, err := h.CartService.Increase(uid, itemID)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.OK(c, snapshot.Items)
}

// DecreaseQuantity 购物车项数量减一，removeDirectly=true 时直接删除
func (h *Handler) DecreaseQuantity(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseUintParam(c, "itemId")
	if !ok {
		return
	}
	removeDirectly := strings.EqualFold(c.Query("removeDirectly"), "true")
	snapshot, err := h.CartService.Decrease(uid, itemID, removeDirectly)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.OK(c, snapshot.Items)
}
