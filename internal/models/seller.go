package models

import (
	"time"

	"gorm.io/gorm"
)

// Seller 卖家账号表
type Seller struct {
	ID           uint           `gorm:"primarykey" json:"id"`              // 主键
	Email        string         `gorm:"uniqueIndex;not null" json:"email"` // 邮箱
	PasswordHash string         `gorm:"not null" json:"-"`                 // 密码哈希（不返回给前端）
	Name         string         `gorm:"default:''" json:"name"`            // 卖家名称
	Phone        string         `gorm:"default:''" json:"phone"`           // 联系电话
	Address      string         `gorm:"default:''" json:"address"`         // 经营地址
	Status       string         `gorm:"default:'active'" json:"status"`    // 账号状态
	LastLoginAt  *time.Time     `json:"lastLoginAt"`                       // 最后登录时间
	CreatedAt    time.Time      `gorm:"index" json:"createdAt"`            // 创建时间
	UpdatedAt    time.Time      `json:"updatedAt"`                         // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                    // 软删除时间
}

// TableName 指定表名
func (Seller) TableName() string {
	return "sellers"
}
