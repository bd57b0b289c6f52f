package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/packzo/ishop/internal/models"
)

const receiptTTL = 30 * time.Minute

// OrderReceipt 下单回执（确认页一次性读取，读后即删）
type OrderReceipt struct {
	FullName      string       `json:"fullName"`
	Phone         string       `json:"phone"`
	TotalAmount   models.Money `json:"totalAmount"`
	PickupCode    string       `json:"pickupCode"`
	OrderType     string       `json:"orderType"`
	PaymentMethod string       `json:"paymentMethod"`
}

func receiptKey(userID uint) string {
	return fmt.Sprintf("receipt:user:%d", userID)
}

// SetOrderReceipt 写入下单回执
func SetOrderReceipt(ctx context.Context, userID uint, receipt *OrderReceipt) error {
	if userID == 0 || receipt == nil {
		return nil
	}
	return SetJSON(ctx, receiptKey(userID), receipt, receiptTTL)
}

// TakeOrderReceipt 读取并删除下单回执
func TakeOrderReceipt(ctx context.Context, userID uint) (*OrderReceipt, bool, error) {
	if userID == 0 {
		return nil, false, nil
	}
	var receipt OrderReceipt
	hit, err := GetDelJSON(ctx, receiptKey(userID), &receipt)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &receipt, true, nil
}
