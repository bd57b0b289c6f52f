package repository

import (
	"github.com/packzo/ishop/internal/models"

	"gorm.io/gorm"
)

// ShopRepository 店铺数据访问接口
type ShopRepository interface {
	FindByID(id uint) (*models.Shop, error)
	FindBySeller(sellerID uint) (*models.Shop, error)
	ListOpen() ([]models.Shop, error)
	Create(shop *models.Shop) error
	Update(shop *models.Shop) error
	SetOpen(shopID uint, open bool) error
}

// GormShopRepository GORM 实现
type GormShopRepository struct {
	db *gorm.DB
}

// NewShopRepository 创建店铺仓库
func NewShopRepository(db *gorm.DB) *GormShopRepository {
	return &GormShopRepository{db: db}
}

// FindByID 按主键查询店铺
func (r *GormShopRepository) FindByID(id uint) (*models.Shop, error) {
	var shop models.Shop
	if err := r.db.First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// FindBySeller 查询卖家名下店铺
func (r *GormShopRepository) FindBySeller(sellerID uint) (*models.Shop, error) {
	var shop models.Shop
	if err := r.db.Where("seller_id = ?", sellerID).First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// ListOpen 列出营业中的店铺
func (r *GormShopRepository) ListOpen() ([]models.Shop, error) {
	var shops []models.Shop
	if err := r.db.Where("open = ?", true).Order("created_at desc").Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// Create 创建店铺
func (r *GormShopRepository) Create(shop *models.Shop) error {
	return r.db.Create(shop).Error
}

// Update 保存店铺
func (r *GormShopRepository) Update(shop *models.Shop) error {
	return r.db.Save(shop).Error
}

// SetOpen 切换营业状态
func (r *GormShopRepository) SetOpen(shopID uint, open bool) error {
	return r.db.Model(&models.Shop{}).Where("id = ?", shopID).Update("open", open).Error
}
