package worker

import (
	"context"
	"encoding/json"

	"github.com/packzo/ishop/internal/logger"
	"github.com/packzo/ishop/internal/provider"
	"github.com/packzo/ishop/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskReadyOrderExpire, c.handleReadyOrderExpire)
	mux.HandleFunc(queue.TaskOrderTimeoutCancel, c.handleOrderTimeoutCancel)
}

// handleReadyOrderExpire 日终仍未取货的自提订单自动取消
func (c *Consumer) handleReadyOrderExpire(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.ReadyOrderExpirePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_ready_order_expire_unmarshal_failed", "error", err)
		return err
	}
	if payload.ReadyOrderID == 0 {
		logger.Debugw("worker_ready_order_expire_skip_invalid_payload")
		return nil
	}
	if err := c.ReadyOrderService.ExpireDayEnd(payload.ReadyOrderID); err != nil {
		logger.Warnw("worker_ready_order_expire_failed", "order_id", payload.ReadyOrderID, "error", err)
		return err
	}
	return nil
}

// handleOrderTimeoutCancel 超时未配送的预约订单自动取消
func (c *Consumer) handleOrderTimeoutCancel(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.OrderTimeoutCancelPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_timeout_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_timeout_skip_invalid_payload")
		return nil
	}
	if err := c.OrderService.TimeoutCancel(payload.OrderID); err != nil {
		logger.Warnw("worker_order_timeout_cancel_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	return nil
}
