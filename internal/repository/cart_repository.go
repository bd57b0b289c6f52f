package repository

import (
	"errors"

	"github.com/packzo/ishop/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListByUserAndShop(userID, shopID uint) ([]models.CartItem, error)
	FindByID(itemID uint) (*models.CartItem, error)
	Upsert(item *models.CartItem) error
	UpdateQuantity(itemID uint, quantity int) error
	DeleteByID(itemID uint) error
	ClearByUserAndShop(userID, shopID uint) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListByUserAndShop 获取用户在指定店铺的购物车项
func (r *GormCartRepository) ListByUserAndShop(userID, shopID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Where("user_id = ? AND shop_id = ?", userID, shopID).Order("created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID 按主键查询购物车项
func (r *GormCartRepository) FindByID(itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.First(&item, itemID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Upsert 添加购物车项，已存在则累加数量
func (r *GormCartRepository) Upsert(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	var existing models.CartItem
	err := r.db.Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(item).Error
	}
	if err != nil {
		return err
	}
	return r.db.Model(&existing).Update("quantity", existing.Quantity+item.Quantity).Error
}

// UpdateQuantity 更新购物车项数量
func (r *GormCartRepository) UpdateQuantity(itemID uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).Where("id = ?", itemID).Update("quantity", quantity).Error
}

// DeleteByID 删除购物车项
func (r *GormCartRepository) DeleteByID(itemID uint) error {
	return r.db.Delete(&models.CartItem{}, itemID).Error
}

// ClearByUserAndShop 清空用户在指定店铺的购物车
func (r *GormCartRepository) ClearByUserAndShop(userID, shopID uint) error {
	return r.db.Where("user_id = ? AND shop_id = ?", userID, shopID).Delete(&models.CartItem{}).Error
}
