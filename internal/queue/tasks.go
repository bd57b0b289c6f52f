package queue

import (
	"encoding/json"

	"github.com/packzo/ishop/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskReadyOrderExpire 自提订单日终过期任务
	TaskReadyOrderExpire = constants.TaskReadyOrderExpire
	// TaskOrderTimeoutCancel 配送订单超时取消任务
	TaskOrderTimeoutCancel = constants.TaskOrderTimeoutCancel
)

// ReadyOrderExpirePayload 自提订单过期任务载荷
type ReadyOrderExpirePayload struct {
	ReadyOrderID uint `json:"readyOrderId"`
}

// OrderTimeoutCancelPayload 超时取消任务载荷
type OrderTimeoutCancelPayload struct {
	OrderID uint `json:"orderId"`
}

// NewReadyOrderExpireTask 创建自提订单过期任务
func NewReadyOrderExpireTask(payload ReadyOrderExpirePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskReadyOrderExpire, body), nil
}

// NewOrderTimeoutCancelTask 创建超时取消任务
func NewOrderTimeoutCancelTask(payload OrderTimeoutCancelPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderTimeoutCancel, body), nil
}
