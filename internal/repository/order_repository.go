package repository

import (
	"time"

	"github.com/packzo/ishop/internal/constants"
	"github.com/packzo/ishop/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 配送订单数据访问接口
type OrderRepository interface {
	Create(order *models.Order) error
	FindByID(id uint) (*models.Order, error)
	ListByUser(userID uint) ([]models.Order, error)
	ListByShop(shopID uint) ([]models.Order, error)
	ListPendingBefore(cutoff time.Time) ([]models.Order, error)
	UpdateStatus(id uint, status string) error
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建配送订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Create 创建配送订单（含明细）
func (r *GormOrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// FindByID 按主键查询配送订单
func (r *GormOrderRepository) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByUser 获取用户配送订单（新单在前）
func (r *GormOrderRepository) ListByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Where("user_id = ?", userID).Order("placed_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByShop 获取店铺配送订单（新单在前）
func (r *GormOrderRepository) ListByShop(shopID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Where("shop_id = ?", shopID).Order("placed_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListPendingBefore 获取截止时间前下单且仍未完结的配送订单
func (r *GormOrderRepository) ListPendingBefore(cutoff time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("placed_at < ? AND status = ?", cutoff, constants.OrderStatusPending).Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus 更新订单状态
func (r *GormOrderRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
}
