package models

import (
	"github.com/packzo/ishop/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

// InitDefaultSeller 初始化默认卖家账号（首次启动时可直接登录商家后台）
func InitDefaultSeller(email, password string) error {
	var count int64
	DB.Model(&Seller{}).Count(&count)
	if count > 0 {
		return nil
	}

	if email == "" {
		email = "seller@packzo.local"
	}
	if password == "" {
		password = "seller123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	seller := Seller{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Packzo Seller",
	}
	if err := DB.Create(&seller).Error; err != nil {
		return err
	}

	if password == "seller123" {
		logger.Warnw("default_seller_created_with_default_password", "email", email)
		logger.Warnw("default_seller_password_change_required", "email", email)
	} else {
		logger.Warnw("default_seller_created", "email", email, "password_hidden", true)
	}
	return nil
}
