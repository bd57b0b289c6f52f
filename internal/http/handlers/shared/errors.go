package shared

import (
	"errors"
	"net/http"

	"github.com/packzo/ishop/internal/http/response"
	"github.com/packzo/ishop/internal/logger"
	"github.com/packzo/ishop/internal/service"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// 服务层哨兵错误到 HTTP 状态码与提示文案的映射
var serviceErrorMappings = []errorMapping{
	{service.ErrFullNameTooShort, http.StatusBadRequest, "Full name must be at least 3 characters"},
	{service.ErrPhoneInvalid, http.StatusBadRequest, "Enter a valid 10-digit mobile number starting with 6-9"},
	{service.ErrSlotRequired, http.StatusBadRequest, "Please select a delivery time slot"},
	{service.ErrSlotUnavailable, http.StatusBadRequest, "Selected delivery time slot is no longer available"},
	{service.ErrNotesTooLong, http.StatusBadRequest, "Order notes must be at most 200 characters"},
	{service.ErrStatusInvalid, http.StatusBadRequest, "Invalid order status"},
	{service.ErrInvalidInput, http.StatusBadRequest, "Invalid request"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{service.ErrAccountDisabled, http.StatusForbidden, "Account disabled"},
	{service.ErrNotShopOwner, http.StatusForbidden, "You do not have access to this shop"},
	{service.ErrShopNotFound, http.StatusNotFound, "Shop not found"},
	{service.ErrProductNotFound, http.StatusNotFound, "Product not found"},
	{service.ErrCartItemNotFound, http.StatusNotFound, "Cart item not found"},
	{service.ErrOrderNotFound, http.StatusNotFound, "Order not found"},
	{service.ErrCartEmpty, http.StatusBadRequest, "Your cart is empty"},
	{service.ErrCartUnavailable, http.StatusConflict, "Some items in your cart are unavailable. Remove them to continue."},
	{service.ErrCartStale, http.StatusConflict, "Your cart has changed. Please review it and try again."},
	{service.ErrShopClosed, http.StatusConflict, "Shop is currently closed"},
	{service.ErrProductUnavailable, http.StatusConflict, "Product is unavailable"},
	{service.ErrStatusTerminal, http.StatusConflict, "Order is already finalized"},
	{service.ErrEmailTaken, http.StatusConflict, "Email already registered"},
	{service.ErrDuplicateSubmit, http.StatusConflict, "Order already submitted"},
}

// RespondServiceError 将服务层错误映射为 HTTP 响应
func RespondServiceError(c *gin.Context, err error) {
	for _, mapping := range serviceErrorMappings {
		if errors.Is(err, mapping.target) {
			response.Error(c, mapping.status, mapping.message)
			return
		}
	}
	logger.Errorw("request_failed", "path", c.FullPath(), "error", err)
	response.Error(c, http.StatusInternalServerError, "Something went wrong")
}
