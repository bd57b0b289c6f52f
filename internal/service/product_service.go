package service

import (
	"errors"
	"strings"

	"github.com/packzo/ishop/internal/models"
	"github.com/packzo/ishop/internal/repository"

	"gorm.io/gorm"
)

// ProductInput 商品创建/编辑输入
type ProductInput struct {
	Name        string
	Description string
	Category    string
	MRP         models.Money
	Price       models.Money
	Image       string
	InStock     *bool
	Published   *bool
}

// ProductService 商品服务
type ProductService struct {
	productRepo repository.ProductRepository
	shopRepo    repository.ShopRepository
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, shopRepo repository.ShopRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		shopRepo:    shopRepo,
	}
}

// ListPublished 买家视角的店铺商品列表
func (s *ProductService) ListPublished(shopID uint) ([]models.Product, error) {
	if shopID == 0 {
		return nil, ErrInvalidInput
	}
	shop, err := s.shopRepo.FindByID(shopID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrShopNotFound
	} else if err != nil {
		return nil, err
	}
	if !shop.Open {
		return nil, ErrShopClosed
	}
	return s.productRepo.ListPublishedByShop(shopID)
}

// ListForSeller 卖家后台商品列表（含未上架）
func (s *ProductService) ListForSeller(sellerID, shopID uint, page, pageSize int) ([]models.Product, int64, error) {
	if err := s.ensureOwnership(sellerID, shopID); err != nil {
		return nil, 0, err
	}
	return s.productRepo.ListByShop(shopID, page, pageSize)
}

// Create 卖家创建商品
func (s *ProductService) Create(sellerID, shopID uint, input ProductInput) (*models.Product, error) {
	if err := s.ensureOwnership(sellerID, shopID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	product := &models.Product{
		ShopID:      shopID,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Category:    strings.TrimSpace(input.Category),
		MRP:         input.MRP,
		Price:       input.Price,
		Image:       strings.TrimSpace(input.Image),
		InStock:     true,
		Published:   true,
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	}
	if input.Published != nil {
		product.Published = *input.Published
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update 卖家编辑商品
func (s *ProductService) Update(sellerID, productID uint, input ProductInput) (*models.Product, error) {
	product, err := s.ownedProduct(sellerID, productID)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		product.Name = name
	}
	product.Description = strings.TrimSpace(input.Description)
	if category := strings.TrimSpace(input.Category); category != "" {
		product.Category = category
	}
	if !input.MRP.Decimal.IsZero() {
		product.MRP = input.MRP
	}
	if !input.Price.Decimal.IsZero() {
		product.Price = input.Price
	}
	if image := strings.TrimSpace(input.Image); image != "" {
		product.Image = image
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	}
	if input.Published != nil {
		product.Published = *input.Published
	}
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete 卖家删除商品
func (s *ProductService) Delete(sellerID, productID uint) error {
	product, err := s.ownedProduct(sellerID, productID)
	if err != nil {
		return err
	}
	return s.productRepo.Delete(product.ID)
}

// SetInStock 切换库存状态
func (s *ProductService) SetInStock(sellerID, productID uint, inStock bool) (*models.Product, error) {
	product, err := s.ownedProduct(sellerID, productID)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.SetInStock(product.ID, inStock); err != nil {
		return nil, err
	}
	product.InStock = inStock
	return product, nil
}

// TogglePublish 切换上架状态
func (s *ProductService) TogglePublish(sellerID, productID uint) (*models.Product, error) {
	product, err := s.ownedProduct(sellerID, productID)
	if err != nil {
		return nil, err
	}
	published := !product.Published
	if err := s.productRepo.SetPublished(product.ID, published); err != nil {
		return nil, err
	}
	product.Published = published
	return product, nil
}

func (s *ProductService) ensureOwnership(sellerID, shopID uint) error {
	if sellerID == 0 || shopID == 0 {
		return ErrInvalidInput
	}
	shop, err := s.shopRepo.FindByID(shopID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrShopNotFound
	}
	if err != nil {
		return err
	}
	if shop.SellerID != sellerID {
		return ErrNotShopOwner
	}
	return nil
}

func (s *ProductService) ownedProduct(sellerID, productID uint) (*models.Product, error) {
	if sellerID == 0 || productID == 0 {
		return nil, ErrInvalidInput
	}
	product, err := s.productRepo.FindByID(productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.ensureOwnership(sellerID, product.ShopID); err != nil {
		return nil, err
	}
	return product, nil
}
