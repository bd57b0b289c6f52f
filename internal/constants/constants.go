package constants

// 取货订单状态常量
const (
	ReadyOrderStatusPending   = "Pending"
	ReadyOrderStatusReady     = "Ready"
	ReadyOrderStatusPicked    = "Picked"
	ReadyOrderStatusCancelled = "Cancelled"
)

// ReadyOrderStatuses 取货订单全部合法状态
var ReadyOrderStatuses = []string{
	ReadyOrderStatusPending,
	ReadyOrderStatusReady,
	ReadyOrderStatusPicked,
	ReadyOrderStatusCancelled,
}

// 配送订单状态常量
const (
	OrderStatusPending   = "Pending"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

// 订单类型常量
const (
	OrderTypeReady    = "ready"
	OrderTypeDelivery = "delivery"
)

// 支付方式常量（当前仅货到付款）
const (
	PaymentMethodCOD = "cod"
)

// 状态流转上下文常量
const (
	StatusContextReady    = "ready"
	StatusContextDelivery = "delivery"
)

// 取货时段常量
const (
	SlotOpenHour  = 8  // 第一个时段的起始小时
	SlotCloseHour = 22 // 最后一个时段的结束小时
	SlotImmediate = "immediate"

	DeliveryImmediate = "Immediate"
)

// 时区常量（订单按门店本地时间分组展示）
const (
	ShopTimezone = "Asia/Kolkata"
)

// 账号状态常量
const (
	AccountStatusActive   = "active"
	AccountStatusDisabled = "disabled"
)

// 角色常量
const (
	RoleUser   = "user"
	RoleSeller = "seller"
)

// 队列常量
const (
	QueueDefault           = "default"
	TaskReadyOrderExpire   = "ready_order:day_end_expire"
	TaskOrderTimeoutCancel = "order:timeout_cancel"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "pz"
)

// 取货码长度
const (
	PickupCodeLength = 6
)

// 表单校验常量
const (
	FullNameMinLength  = 3
	OrderNotesMaxChars = 200
)
