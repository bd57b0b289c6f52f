package repository

import (
	"time"

	"github.com/packzo/ishop/internal/models"

	"gorm.io/gorm"
)

// SellerRepository 卖家数据访问接口
type SellerRepository interface {
	FindByID(id uint) (*models.Seller, error)
	FindByEmail(email string) (*models.Seller, error)
	Create(seller *models.Seller) error
	TouchLastLogin(id uint) error
}

// GormSellerRepository GORM 实现
type GormSellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository 创建卖家仓库
func NewSellerRepository(db *gorm.DB) *GormSellerRepository {
	return &GormSellerRepository{db: db}
}

// FindByID 按主键查询卖家
func (r *GormSellerRepository) FindByID(id uint) (*models.Seller, error) {
	var seller models.Seller
	if err := r.db.First(&seller, id).Error; err != nil {
		return nil, err
	}
	return &seller, nil
}

// FindByEmail 按邮箱查询卖家
func (r *GormSellerRepository) FindByEmail(email string) (*models.Seller, error) {
	var seller models.Seller
	if err := r.db.Where("email = ?", email).First(&seller).Error; err != nil {
		return nil, err
	}
	return &seller, nil
}

// Create 创建卖家
func (r *GormSellerRepository) Create(seller *models.Seller) error {
	return r.db.Create(seller).Error
}

// TouchLastLogin 更新最后登录时间
func (r *GormSellerRepository) TouchLastLogin(id uint) error {
	now := time.Now()
	return r.db.Model(&models.Seller{}).Where("id = ?", id).Update("last_login_at", &now).Error
}
