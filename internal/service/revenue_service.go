package service

import (
	"time"

	"github.com/packzo/ishop/internal/models"
	"github.com/packzo/ishop/internal/repository"
)

// RevenueSummary 店铺营收汇总
type RevenueSummary struct {
	TotalOrders int64                   `json:"totalOrders"`
	TotalAmount models.Money            `json:"totalAmount"`
	Daily       []repository.RevenueRow `json:"daily"`
}

// RevenueService 营收统计服务
type RevenueService struct {
	revenueRepo repository.RevenueRepository
	shopRepo    repository.ShopRepository
}

// NewRevenueService 创建营收服务
func NewRevenueService(revenueRepo repository.RevenueRepository, shopRepo repository.ShopRepository) *RevenueService {
	return &RevenueService{
		revenueRepo: revenueRepo,
		shopRepo:    shopRepo,
	}
}

// ShopSummary 卖家店铺营收汇总（最近 days 天的按日明细）
func (s *RevenueService) ShopSummary(sellerID, shopID uint, days int) (*RevenueSummary, error) {
	if sellerID == 0 || shopID == 0 {
		return nil, ErrInvalidInput
	}
	shop, err := s.shopRepo.FindByID(shopID)
	if err != nil {
		return nil, ErrShopNotFound
	}
	if shop.SellerID != sellerID {
		return nil, ErrNotShopOwner
	}
	if days <= 0 {
		days = 30
	}

	orders, amount, err := s.revenueRepo.ShopTotals(shopID)
	if err != nil {
		return nil, err
	}
	since := time.Now().AddDate(0, 0, -days)
	daily, err := s.revenueRepo.ShopDaily(shopID, since)
	if err != nil {
		return nil, err
	}
	return &RevenueSummary{
		TotalOrders: orders,
		TotalAmount: models.NewMoneyFromDecimal(amount),
		Daily:       daily,
	}, nil
}
