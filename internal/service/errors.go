package service

import "errors"

// 服务层哨兵错误，handler 通过 errors.Is 映射为 HTTP 状态码与提示文案
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrShopNotFound       = errors.New("shop not found")
	ErrShopClosed         = errors.New("shop is closed")
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product unavailable")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrCartUnavailable    = errors.New("cart contains unavailable items")
	ErrCartStale          = errors.New("cart total mismatch")
	ErrFullNameTooShort   = errors.New("full name must be at least 3 characters")
	ErrPhoneInvalid       = errors.New("enter a valid 10-digit mobile number starting with 6-9")
	ErrSlotRequired       = errors.New("please select a delivery time slot")
	ErrSlotUnavailable    = errors.New("selected delivery time slot is no longer available")
	ErrNotesTooLong       = errors.New("order notes too long")
	ErrOrderNotFound      = errors.New("order not found")
	ErrStatusInvalid      = errors.New("invalid order status")
	ErrStatusTerminal     = errors.New("order is in a terminal status")
	ErrNotShopOwner       = errors.New("shop does not belong to seller")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrEmailTaken         = errors.New("email already registered")
	ErrDuplicateSubmit    = errors.New("duplicate order submission")
)
