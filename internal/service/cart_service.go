package service

import (
	"errors"

	"github.com/packzo/ishop/internal/models"
	"github.com/packzo/ishop/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartLine 购物车条目视图（叠加商品最新可用性）
type CartLine struct {
	ID            uint         `json:"id"`
	ProductID     uint         `json:"productId"`
	ShopID        uint         `json:"shopId"`
	Name          string       `json:"name"`
	Image         string       `json:"image"`
	Price         models.Money `json:"price"`
	Quantity      int          `json:"quantity"`
	IsOutOfStock  bool         `json:"isOutOfStock"`
	IsUnpublished bool         `json:"isUnpublished"`
}

// CartSnapshot 购物车快照：总额只计可购买项
type CartSnapshot struct {
	Items          []CartLine   `json:"items"`
	Total          models.Money `json:"total"`
	HasUnavailable bool         `json:"hasUnavailable"`
}

// AddToCartInput 加购输入
type AddToCartInput struct {
	UserID    uint
	ProductID uint
	ShopID    uint
	Quantity  int
}

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	shopRepo    repository.ShopRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, shopRepo repository.ShopRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		shopRepo:    shopRepo,
	}
}

// Load 加载用户在指定店铺的购物车快照
// 每次变更后都应重新调用，保证可用性标记与总额基于商品最新状态
func (s *CartService) Load(userID, shopID uint) (*CartSnapshot, error) {
	if userID == 0 || shopID == 0 {
		return nil, ErrInvalidInput
	}
	items, err := s.cartRepo.ListByUserAndShop(userID, shopID)
	if err != nil {
		return nil, err
	}

	productIDs := make([]uint, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := s.productRepo.FindByIDs(productIDs)
	if err != nil {
		return nil, err
	}
	productByID := make(map[uint]models.Product, len(products))
	for _, product := range products {
		productByID[product.ID] = product
	}

	snapshot := &CartSnapshot{Items: make([]CartLine, 0, len(items))}
	total := decimal.Zero
	for _, item := range items {
		line := CartLine{
			ID:        item.ID,
			ProductID: item.ProductID,
			ShopID:    item.ShopID,
			Name:      item.Name,
			Image:     item.Image,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
		product, found := productByID[item.ProductID]
		if !found {
			// 商品已被删除，按下架处理
			line.IsUnpublished = true
		} else {
			line.IsOutOfStock = !product.InStock
			line.IsUnpublished = !product.Published
		}
		if line.IsOutOfStock || line.IsUnpublished {
			snapshot.HasUnavailable = true
		} else {
			total = total.Add(item.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
		snapshot.Items = append(snapshot.Items, line)
	}
	snapshot.Total = models.NewMoneyFromDecimal(total)
	return snapshot, nil
}

// Add 加购：写入加购时刻的商品快照，已有条目则累加数量
func (s *CartService) Add(input AddToCartInput) (*CartSnapshot, error) {
	if input.UserID == 0 || input.ProductID == 0 {
		return nil, ErrInvalidInput
	}
	if input.Quantity <= 0 {
		input.Quantity = 1
	}

	product, err := s.productRepo.FindByID(input.ProductID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	if !product.Published || !product.InStock {
		return nil, ErrProductUnavailable
	}
	if input.ShopID == 0 {
		input.ShopID = product.ShopID
	}
	shop, err := s.shopRepo.FindByID(input.ShopID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrShopNotFound
	}
	if err != nil {
		return nil, err
	}
	if !shop.Open {
		return nil, ErrShopClosed
	}

	item := &models.CartItem{
		UserID:    input.UserID,
		ProductID: product.ID,
		ShopID:    input.ShopID,
		Name:      product.Name,
		Image:     product.Image,
		Price:     product.Price,
		Quantity:  input.Quantity,
	}
	if err := s.cartRepo.Upsert(item); err != nil {
		return nil, err
	}
	return s.Load(input.UserID, input.ShopID)
}

// Increase 数量加一，返回重载后的快照
func (s *CartService) Increase(userID, itemID uint) (*CartSnapshot, error) {
	item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.UpdateQuantity(item.ID, item.Quantity+1); err != nil {
		return nil, err
	}
	return s.Load(userID, item.ShopID)
}

// Decrease 数量减一，下限为 1；removeDirectly 为 true 时直接删除条目
func (s *CartService) Decrease(userID, itemID uint, removeDirectly bool) (*CartSnapshot, error) {
	item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	if removeDirectly {
		if err := s.cartRepo.DeleteByID(item.ID); err != nil {
			return nil, err
		}
		return s.Load(userID, item.ShopID)
	}
	if item.Quantity > 1 {
		if err := s.cartRepo.UpdateQuantity(item.ID, item.Quantity-1); err != nil {
			return nil, err
		}
	}
	return s.Load(userID, item.ShopID)
}

func (s *CartService) ownedItem(userID, itemID uint) (*models.CartItem, error) {
	if userID == 0 || itemID == 0 {
		return nil, ErrInvalidInput
	}
	item, err := s.cartRepo.FindByID(itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}
	if item.UserID != userID {
		return nil, ErrCartItemNotFound
	}
	return item, nil
}
