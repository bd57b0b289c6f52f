package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 预约配送订单表
type Order struct {
	ID                    uint           `gorm:"primarykey" json:"id"`                     // 主键
	UserID                uint           `gorm:"index;not null" json:"userId"`             // 下单用户
	ShopID                uint           `gorm:"index;not null" json:"shopId"`             // 店铺 ID
	BuyerName             string         `gorm:"not null" json:"buyerName"`                // 收货人姓名
	Address               string         `gorm:"not null" json:"address"`                  // 收货地址
	Phone                 string         `gorm:"not null" json:"phone"`                    // 收货人手机号
	PreferredDeliveryTime string         `gorm:"default:''" json:"preferredDeliveryTime"`  // 期望配送时段（Immediate 表示尽快）
	PaymentMethod         string         `gorm:"default:'cod'" json:"paymentMethod"`       // 支付方式
	OrderNotes            string         `gorm:"default:''" json:"orderNotes"`             // 订单备注
	TotalAmount           Money          `gorm:"type:decimal(20,2)" json:"totalAmount"`    // 订单总额
	Status                string         `gorm:"index;default:'Pending'" json:"status"`    // 状态：Pending/Delivered/Cancelled
	PlacedAt              time.Time      `gorm:"index" json:"placedAt"`                    // 下单时间
	Items                 []OrderItem    `gorm:"foreignKey:OrderID" json:"items"`          // 订单明细
	CreatedAt             time.Time      `json:"createdAt"`                                // 创建时间
	UpdatedAt             time.Time      `json:"updatedAt"`                                // 更新时间
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-"`                           // 软删除时间
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// OrderItem 配送订单明细表
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`               // 主键
	OrderID   uint      `gorm:"index;not null" json:"orderId"`      // 所属订单
	ProductID uint      `gorm:"index;not null" json:"productId"`    // 商品 ID
	Name      string    `gorm:"not null" json:"name"`               // 下单时商品名快照
	Image     string    `gorm:"default:''" json:"image"`            // 下单时图片快照
	Price     Money     `gorm:"type:decimal(20,2)" json:"price"`    // 下单时单价快照
	Quantity  int       `gorm:"not null;default:1" json:"quantity"` // 数量
	CreatedAt time.Time `json:"createdAt"`                          // 创建时间
	UpdatedAt time.Time `json:"updatedAt"`                          // 更新时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
