package cache

import (
	"context"
	"fmt"
	"time"
)

const idempotencyTTL = 24 * time.Hour

// IdempotentResult 幂等键对应的首次提交结果
type IdempotentResult struct {
	ReadyOrderID uint   `json:"readyOrderId"`
	PickupCode   string `json:"pickupCode"`
}

func idempotencyKey(userID uint, key string) string {
	return fmt.Sprintf("idem:user:%d:%s", userID, key)
}

// ReserveIdempotencyKey 预占幂等键，返回是否为首次提交
func ReserveIdempotencyKey(ctx context.Context, userID uint, key string) (bool, error) {
	if userID == 0 || key == "" {
		return true, nil
	}
	return SetNXJSON(ctx, idempotencyKey(userID, key), &IdempotentResult{}, idempotencyTTL)
}

// StoreIdempotentResult 记录首次提交的订单结果，供重复提交回放
func StoreIdempotentResult(ctx context.Context, userID uint, key string, result *IdempotentResult) error {
	if userID == 0 || key == "" || result == nil {
		return nil
	}
	return SetJSON(ctx, idempotencyKey(userID, key), result, idempotencyTTL)
}

// GetIdempotentResult 读取幂等键对应的订单结果
func GetIdempotentResult(ctx context.Context, userID uint, key string) (*IdempotentResult, bool, error) {
	if userID == 0 || key == "" {
		return nil, false, nil
	}
	var result IdempotentResult
	hit, err := GetJSON(ctx, idempotencyKey(userID, key), &result)
	if err != nil || !hit {
		return nil, hit, err
	}
	if result.ReadyOrderID == 0 {
		// 首次提交仍在处理中
		return nil, false, nil
	}
	return &result, true, nil
}
