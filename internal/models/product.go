package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`             // 主键
	ShopID      uint           `gorm:"index;not null" json:"shopId"`     // 所属店铺
	Name        string         `gorm:"not null" json:"name"`             // 商品名称
	Description string         `gorm:"default:''" json:"description"`    // 商品描述
	Category    string         `gorm:"index;default:''" json:"category"` // 分类
	MRP         Money          `gorm:"type:decimal(20,2)" json:"mrp"`    // 标价
	Price       Money          `gorm:"type:decimal(20,2)" json:"price"`  // 售价
	Image       string         `gorm:"default:''" json:"image"`          // 商品图片
	// 布尔列不带默认值标签，false 才能原样写入（带默认值标签时 gorm 在 INSERT 中忽略零值）
	InStock   bool           `gorm:"not null" json:"inStock"`     // 是否有货
	Published bool           `gorm:"not null" json:"isPublished"` // 是否上架
	CreatedAt time.Time      `gorm:"index" json:"createdAt"`      // 创建时间
	UpdatedAt time.Time      `json:"updatedAt"`                   // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`              // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
