package repository

import (
	"github.com/packzo/ishop/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	FindByID(id uint) (*models.Product, error)
	FindByIDs(ids []uint) ([]models.Product, error)
	ListPublishedByShop(shopID uint) ([]models.Product, error)
	ListByShop(shopID uint, page, pageSize int) ([]models.Product, int64, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
	SetInStock(id uint, inStock bool) error
	SetPublished(id uint, published bool) error
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID 按主键查询商品
func (r *GormProductRepository) FindByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByIDs 按主键批量查询商品
func (r *GormProductRepository) FindByIDs(ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []models.Product
	if err := r.db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListPublishedByShop 列出店铺已上架商品（买家可见）
func (r *GormProductRepository) ListPublishedByShop(shopID uint) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("shop_id = ? AND published = ?", shopID, true).Order("created_at desc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListByShop 列出店铺全部商品（卖家后台，含未上架）
func (r *GormProductRepository) ListByShop(shopID uint, page, pageSize int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64
	query := r.db.Model(&models.Product{}).Where("shop_id = ?", shopID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query = query.Order("created_at desc")
	// pageSize<=0 表示不分页，返回全部
	if pageSize > 0 {
		if page < 1 {
			page = 1
		}
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// Create 创建商品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update 保存商品
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete 删除商品
func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

// SetInStock 切换库存状态
func (r *GormProductRepository) SetInStock(id uint, inStock bool) error {
	return r.db.Model(&models.Product{}).Where("id = ?", id).Update("in_stock", inStock).Error
}

// SetPublished 切换上架状态
func (r *GormProductRepository) SetPublished(id uint, published bool) error {
	return r.db.Model(&models.Product{}).Where("id = ?", id).Update("published", published).Error
}
