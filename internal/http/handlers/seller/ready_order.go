package seller

import (
	"net/http"

	"github.com/packzo/ishop/internal/constants"
	handlershared "github.com/packzo/ishop/internal/http/handlers/shared"
	"github.com/packzo/ishop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// StatusUpdateRequest 订单状态更新请求
type StatusUpdateRequest struct {
	Status  string `json:"status" binding:"required"`
	Context string `json:"context"`
}

// ListReadyOrders 店铺自提订单列表
func (h *Handler) ListReadyOrders(c *gin.Context) {
	sid, ok := getSellerID(c)
	if !ok {
		return
	}
	shopID, ok := parseUintParam(c, "shopId")
	if !ok {
		return
	}
	orders, err := h.ReadyOrderService.ListByShop(sid, shopID)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.OK(c, orders)
}

// UpdateReadyOrderStatus 更新自提订单状态
func (h *Handler) UpdateReadyOrderStatus(c *gin.Context) {
	sid, ok := getSellerID(c)
	if !ok {
		return
	}
	orderID, ok := parseUintParam(c, "orderId")
	if !ok {
		return
	}
	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.Context != "" && req.Context != constants.StatusContextReady {
		response.Error(c, http.StatusBadRequest, "Invalid status context")
		return
	}
	order, err := h.ReadyOrderService.SetStatus(sid, orderID, req.Status)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.OK(c, order)
}
