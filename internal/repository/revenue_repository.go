package repository

import (
	"time"

	"github.com/packzo/ishop/internal/constants"
	"github.com/packzo/ishop/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RevenueRow 按日聚合的营收行
type RevenueRow struct {
	Day    string          `json:"day"`
	Orders int64           `json:"orders"`
	Amount decimal.Decimal `json:"amount"`
}

// RevenueRepository 营收统计数据访问接口
type RevenueRepository interface {
	ShopTotals(shopID uint) (int64, decimal.Decimal, error)
	ShopDaily(shopID uint, since time.Time) ([]RevenueRow, error)
}

// GormRevenueRepository GORM 实现
type GormRevenueRepository struct {
	db *gorm.DB
}

// NewRevenueRepository 创建营收仓库
func NewRevenueRepository(db *gorm.DB) *GormRevenueRepository {
	return &GormRevenueRepository{db: db}
}

// ShopTotals 统计店铺已取货自提订单的总单数与总金额
func (r *GormRevenueRepository) ShopTotals(shopID uint) (int64, decimal.Decimal, error) {
	type row struct {
		Orders int64
		Amount decimal.Decimal
	}
	var result row
	err := r.db.Model(&models.ReadyOrder{}).
		Select("COUNT(*) AS orders, COALESCE(SUM(total_amount), 0) AS amount").
		Where("shop_id = ? AND status = ?", shopID, constants.ReadyOrderStatusPicked).
		Scan(&result).Error
	if err != nil {
		return 0, decimal.Zero, err
	}
	return result.Orders, result.Amount, nil
}

// ShopDaily 按下单日期聚合店铺已取货订单
func (r *GormRevenueRepository) ShopDaily(shopID uint, since time.Time) ([]RevenueRow, error) {
	var rows []RevenueRow
	err := r.db.Model(&models.ReadyOrder{}).
		Select("DATE(placed_at) AS day, COUNT(*) AS orders, COALESCE(SUM(total_amount), 0) AS amount").
		Where("shop_id = ? AND status = ? AND placed_at >= ?", shopID, constants.ReadyOrderStatusPicked, since).
		Group("DATE(placed_at)").
		Order("day desc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
