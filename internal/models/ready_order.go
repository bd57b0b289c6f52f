package models

import (
	"time"

	"gorm.io/gorm"
)

// ReadyOrder 到店自提订单表
type ReadyOrder struct {
	ID                  uint             `gorm:"primarykey" json:"id"`                   // 主键
	UserID              uint             `gorm:"index;not null" json:"userId"`           // 下单用户
	ShopID              uint             `gorm:"index;not null" json:"shopId"`           // 取货店铺
	FullName            string           `gorm:"not null" json:"fullName"`               // 取货人姓名
	Phone               string           `gorm:"not null" json:"phone"`                  // 取货人手机号
	TotalAmount         Money            `gorm:"type:decimal(20,2)" json:"totalAmount"`  // 订单总额
	PickupCode          string           `gorm:"uniqueIndex;not null" json:"pickupCode"` // 取货码
	PreferredPackedTime string           `gorm:"default:''" json:"preferredPackedTime"`  // 取货时段（如 10-11，立即取货为 immediate）
	OrderNotes          string           `gorm:"default:''" json:"orderNotes"`           // 订单备注
	OrderType           string           `gorm:"default:'ready'" json:"orderType"`       // 订单类型
	PaymentMethod       string           `gorm:"default:'cod'" json:"paymentMethod"`     // 支付方式
	Status              string           `gorm:"index;default:'Pending'" json:"status"`  // 状态：Pending/Ready/Picked/Cancelled
	PlacedAt            time.Time        `gorm:"index" json:"placedAt"`                  // 下单时间
	Items               []ReadyOrderItem `gorm:"foreignKey:ReadyOrderID" json:"items"`   // 订单明细
	CreatedAt           time.Time        `json:"createdAt"`                              // 创建时间
	UpdatedAt           time.Time        `json:"updatedAt"`                              // 更新时间
	DeletedAt           gorm.DeletedAt   `gorm:"index" json:"-"`                         // 软删除时间
}

// TableName 指定表名
func (ReadyOrder) TableName() string {
	return "ready_orders"
}

// ReadyOrderItem 自提订单明细表
type ReadyOrderItem struct {
	ID           uint      `gorm:"primarykey" json:"id"`               // 主键
	ReadyOrderID uint      `gorm:"index;not null" json:"readyOrderId"` // 所属订单
	ProductID    uint      `gorm:"index;not null" json:"productId"`    // 商品 ID
	Name         string    `gorm:"not null" json:"name"`               // 下单时商品名快照
	Image        string    `gorm:"default:''" json:"image"`            // 下单时图片快照
	Price        Money     `gorm:"type:decimal(20,2)" json:"price"`    // 下单时单价快照
	Quantity     int       `gorm:"not null;default:1" json:"quantity"` // 数量
	CreatedAt    time.Time `json:"createdAt"`                          // 创建时间
	UpdatedAt    time.Time `json:"updatedAt"`                          // 更新时间
}

// TableName 指定表名
func (ReadyOrderItem) TableName() string {
	return "ready_order_items"
}
