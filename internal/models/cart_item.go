package models

import (
	"time"

	"gorm.io/gorm"
)

// CartItem 购物车条目（按用户 + 商品唯一）
type CartItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                // 主键
	UserID    uint           `gorm:"uniqueIndex:idx_cart_user_product" json:"userId"`     // 所属用户
	ProductID uint           `gorm:"uniqueIndex:idx_cart_user_product" json:"productId"`  // 商品 ID
	ShopID    uint           `gorm:"index;not null" json:"shopId"`                        // 店铺 ID
	Name      string         `gorm:"not null" json:"name"`                                // 加购时商品名快照
	Image     string         `gorm:"default:''" json:"image"`                             // 加购时图片快照
	Price     Money          `gorm:"type:decimal(20,2)" json:"price"`                     // 加购时单价快照
	Quantity  int            `gorm:"not null;default:1" json:"quantity"`                  // 数量（最小 1）
	CreatedAt time.Time      `json:"createdAt"`                                           // 创建时间
	UpdatedAt time.Time      `json:"updatedAt"`                                           // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                      // 软删除时间
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
