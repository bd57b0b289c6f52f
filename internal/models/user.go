package models

import (
	"time"

	"gorm.io/gorm"
)

// User 买家账号表
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`              // 主键
	Email        string         `gorm:"uniqueIndex;not null" json:"email"` // 邮箱
	PasswordHash string         `gorm:"not null" json:"-"`                 // 密码哈希（不返回给前端）
	Name         string         `gorm:"default:''" json:"name"`            // 姓名
	Phone        string         `gorm:"default:''" json:"phone"`           // 手机号
	Address      string         `gorm:"default:''" json:"address"`         // 默认收货地址
	Status       string         `gorm:"default:'active'" json:"status"`    // 账号状态
	LastLoginAt  *time.Time     `json:"lastLoginAt"`                       // 最后登录时间
	CreatedAt    time.Time      `gorm:"index" json:"createdAt"`            // 创建时间
	UpdatedAt    time.Time      `json:"updatedAt"`                         // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                    // 软删除时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
