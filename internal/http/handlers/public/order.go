package public

import (
	"net/http"

	handlershared "github.com/packzo/ishop/internal/http/handlers/shared"
	"github.com/packzo/ishop/internal/http/response"
	"github.com/packzo/ishop/internal/models"
	"github.com/packzo/ishop/internal/service"

	"github.com/gin-gonic/gin"
)

// PlaceOrderRequest 预约配送下单请求
type PlaceOrderRequest struct {
	ShopID                uint          `json:"shopId" binding:"required"`
	BuyerName             string        `json:"buyerName"`
	Address               string        `json:"address"`
	Phone                 string        `json:"phone"`
	PreferredDeliveryTime string        `json:"preferredDeliveryTime"`
	PaymentMethod         string        `json:"paymentMethod"`
	OrderNotes            string        `json:"orderNotes"`
	TotalAmount           *models.Money `json:"totalAmount"`
}

// PlaceOrder 提交配送订单
func (h *Handler) PlaceOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}
	order, err := h.OrderService.Place(service.PlaceOrderInput{
		UserID:                uid,
		ShopID:                req.ShopID,
		BuyerName:             req.BuyerName,
		Address:               req.Address,
		Phone:                 req.Phone,
		PreferredDeliveryTime: req.PreferredDeliveryTime,
		PaymentMethod:         req.PaymentMethod,
		OrderNotes:            req.OrderNotes,
		TotalAmount:           req.TotalAmount,
	})
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Created(c, order)
}

// ListOrders 用户配送订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orders, err := h.OrderService.ListByUser(uid)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.OK(c, orders)
}
