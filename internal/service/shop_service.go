package service

import (
	"errors"
	"strings"

	"github.com/packzo/ishop/internal/models"
	"github.com/packzo/ishop/internal/repository"

	"gorm.io/gorm"
)

// ShopInput 店铺创建/编辑输入
type ShopInput struct {
	Name        string
	Description string
	Image       string
	Address     string
}

// ShopService 店铺服务
type ShopService struct {
	shopRepo repository.ShopRepository
}

// NewShopService 创建店铺服务
func NewShopService(shopRepo repository.ShopRepository) *ShopService {
	return &ShopService{shopRepo: shopRepo}
}

// ListOpen 买家可见的营业中店铺
func (s *ShopService) ListOpen() ([]models.Shop, error) {
	return s.shopRepo.ListOpen()
}

// GetBySeller 卖家名下店铺
func (s *ShopService) GetBySeller(sellerID uint) (*models.Shop, error) {
	if sellerID == 0 {
		return nil, ErrInvalidInput
	}
	shop, err := s.shopRepo.FindBySeller(sellerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrShopNotFound
	}
	if err != nil {
		return nil, err
	}
	return shop, nil
}

// Create 卖家开店
func (s *ShopService) Create(sellerID uint, input ShopInput) (*models.Shop, error) {
	if sellerID == 0 {
		return nil, ErrInvalidInput
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	shop := &models.Shop{
		SellerID:    sellerID,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Image:       strings.TrimSpace(input.Image),
		Address:     strings.TrimSpace(input.Address),
		Open:        true,
	}
	if err := s.shopRepo.Create(shop); err != nil {
		return nil, err
	}
	return shop, nil
}

// SetOpen 切换营业状态
func (s *ShopService) SetOpen(sellerID uint, open bool) (*models.Shop, error) {
	shop, err := s.GetBySeller(sellerID)
	if err != nil {
		return nil, err
	}
	if err := s.shopRepo.SetOpen(shop.ID, open); err != nil {
		return nil, err
	}
	shop.Open = open
	return shop, nil
}
