package repository

import (
	"time"

	"github.com/packzo/ishop/internal/constants"
	"github.com/packzo/ishop/internal/models"

	"gorm.io/gorm"
)

// ReadyOrderRepository 自提订单数据访问接口
type ReadyOrderRepository interface {
	Create(order *models.ReadyOrder) error
	FindByID(id uint) (*models.ReadyOrder, error)
	ListByUser(userID uint) ([]models.ReadyOrder, error)
	ListByShop(shopID uint) ([]models.ReadyOrder, error)
	ListActiveBefore(cutoff time.Time) ([]models.ReadyOrder, error)
	UpdateStatus(id uint, status string) error
	WithTx(tx *gorm.DB) *GormReadyOrderRepository
}

// GormReadyOrderRepository GORM 实现
type GormReadyOrderRepository struct {
	db *gorm.DB
}

// NewReadyOrderRepository 创建自提订单仓库
func NewReadyOrderRepository(db *gorm.DB) *GormReadyOrderRepository {
	return &GormReadyOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormReadyOrderRepository) WithTx(tx *gorm.DB) *GormReadyOrderRepository {
	if tx == nil {
		return r
	}
	return &GormReadyOrderRepository{db: tx}
}

// Create 创建自提订单（含明细）
func (r *GormReadyOrderRepository) Create(order *models.ReadyOrder) error {
	return r.db.Create(order).Error
}

// FindByID 按主键查询自提订单
func (r *GormReadyOrderRepository) FindByID(id uint) (*models.ReadyOrder, error) {
	var order models.ReadyOrder
	if err := r.db.Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByUser 获取用户自提订单（新单在前）
func (r *GormReadyOrderRepository) ListByUser(userID uint) ([]models.ReadyOrder, error) {
	var orders []models.ReadyOrder
	if err := r.db.Preload("Items").Where("user_id = ?", userID).Order("placed_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByShop 获取店铺自提订单（卖家后台，新单在前）
func (r *GormReadyOrderRepository) ListByShop(shopID uint) ([]models.ReadyOrder, error) {
	var orders []models.ReadyOrder
	if err := r.db.Preload("Items").Where("shop_id = ?", shopID).Order("placed_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListActiveBefore 获取截止时间前下单且仍未完结的自提订单
func (r *GormReadyOrderRepository) ListActiveBefore(cutoff time.Time) ([]models.ReadyOrder, error) {
	var orders []models.ReadyOrder
	err := r.db.Where("placed_at < ? AND status IN ?", cutoff, []string{
		constants.ReadyOrderStatusPending,
		constants.ReadyOrderStatusReady,
	}).Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus 更新订单状态
func (r *GormReadyOrderRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.ReadyOrder{}).Where("id = ?", id).Update("status", status).Error
}
