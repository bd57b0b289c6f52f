package public

import (
	"net/http"
	"strings"

	handlershared "github.com/packzo/ishop/internal/http/handlers/shared"
	"github.com/packzo/ishop/internal/http/response"
	"github.com/packzo/ishop/internal/models"
	"github.com/packzo/ishop/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmitReadyOrderRequest 自提下单请求
// orderType/paymentMethod/items 为兼容字段，服务端以购物车数据为准
type SubmitReadyOrderRequest struct {
	ShopID              uint          `json:"shopId" binding:"required"`
	FullName            string        `json:"fullName"`
	Phone               string        `json:"phone"`
	PreferredPackedTime string        `json:"preferredPackedTime"`
	PaymentMethod       string        `json:"paymentMethod"`
	OrderType           string        `json:"orderType"`
	OrderNotes          string        `json:"orderNotes"`
	TotalAmount         *models.Money `json:"totalAmount"`
	Items               []gin.H       `json:"items"`
	IdempotencyKey      string        `json:"idempotencyKey"`
}

// SubmitReadyOrder 提交自提订单
func (h *Handler) SubmitReadyOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req SubmitReadyOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}
	receipt, err := h.ReadyOrderService.Submit(c.Request.Context(), service.SubmitReadyOrderInput{
		UserID:              uid,
		ShopID:              req.ShopID,
		FullName:            req.FullName,
		Phone:               req.Phone,
		PreferredPackedTime: req.PreferredPackedTime,
		OrderNotes:          req.OrderNotes,
		TotalAmount:         req.TotalAmount,
		IdempotencyKey:      strings.TrimSpace(req.IdempotencyKey),
	})
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Created(c, receipt)
}

// ListReadyOrders 用户自提订单列表，grouped=true 时按下单日期分组
func (h *Handler) ListReadyOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orders, err := h.ReadyOrderService.ListByUser(uid)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	if strings.EqualFold(c.Query("grouped"), "true") {
		response.OK(c, h.ReadyOrderService.GroupByDate(orders))
		return
	}
	response.OK(c, orders)
}

// ReadyOrderSummary 下单确认页一次性回执
func (h *Handler) ReadyOrderSummary(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	receipt, hit, err := h.ReadyOrderService.TakeReceipt(c.Request.Context(), uid)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	if !hit {
		response.Error(c, http.StatusNotFound, "No recent order summary")
		return
	}
	response.OK(c, receipt)
}
