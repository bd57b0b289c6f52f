package models

import (
	"time"

	"gorm.io/gorm"
)

// Shop 店铺表
type Shop struct {
	ID          uint           `gorm:"primarykey" json:"id"`             // 主键
	SellerID    uint           `gorm:"index;not null" json:"sellerId"`   // 所属卖家
	Name        string         `gorm:"not null" json:"name"`             // 店铺名称
	Description string         `gorm:"default:''" json:"description"`    // 店铺简介
	Image       string         `gorm:"default:''" json:"image"`          // 门头图片
	Address     string         `gorm:"default:''" json:"address"`        // 店铺地址
	Open        bool           `gorm:"not null" json:"open"` // 是否营业中（不带默认值标签，false 才能原样写入）
	CreatedAt   time.Time      `gorm:"index" json:"createdAt"`           // 创建时间
	UpdatedAt   time.Time      `json:"updatedAt"`                        // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                   // 软删除时间
}

// TableName 指定表名
func (Shop) TableName() string {
	return "shops"
}
