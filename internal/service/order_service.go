package service

import (
	"errors"
	"strings"
	"time"

	"github.com/packzo/ishop/internal/constants"
	"github.com/packzo/ishop/internal/logger"
	"github.com/packzo/ishop/internal/models"
	"github.com/packzo/ishop/internal/repository"

	"gorm.io/gorm"
)

// PlaceOrderInput 预约配送下单输入
type PlaceOrderInput struct {
	UserID                uint
	ShopID                uint
	BuyerName             string
	Address               string
	Phone                 string
	PreferredDeliveryTime string
	PaymentMethod         string
	OrderNotes            string
	TotalAmount           *models.Money
}

// TimeoutEnqueuer 配送订单超时取消任务入队
type TimeoutEnqueuer interface {
	EnqueueOrderTimeoutCancel(orderID uint, delay time.Duration) error
}

// OrderService 预约配送订单服务
type OrderService struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	cartService *CartService
	enqueuer    TimeoutEnqueuer
	expireHours int
}

// NewOrderService 创建配送订单服务
func NewOrderService(db *gorm.DB, orderRepo repository.OrderRepository, cartRepo repository.CartRepository, cartService *CartService, enqueuer TimeoutEnqueuer, expireHours int) *OrderService {
	if expireHours <= 0 {
		expireHours = 24
	}
	return &OrderService{
		db:          db,
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		cartService: cartService,
		enqueuer:    enqueuer,
		expireHours: expireHours,
	}
}

// Place 提交配送订单：校验表单与整车可用性，事务内建单并清空购物车
func (s *OrderService) Place(input PlaceOrderInput) (*models.Order, error) {
	if input.UserID == 0 || input.ShopID == 0 {
		return nil, ErrInvalidInput
	}
	if len(strings.TrimSpace(input.BuyerName)) < constants.FullNameMinLength {
		return nil, ErrFullNameTooShort
	}
	if strings.TrimSpace(input.Address) == "" {
		return nil, ErrInvalidInput
	}
	if !phonePattern.MatchString(strings.TrimSpace(input.Phone)) {
		return nil, ErrPhoneInvalid
	}
	if len([]rune(strings.TrimSpace(input.OrderNotes))) > constants.OrderNotesMaxChars {
		return nil, ErrNotesTooLong
	}

	snapshot, err := s.cartService.Load(input.UserID, input.ShopID)
	if err != nil {
		return nil, err
	}
	if len(snapshot.Items) == 0 {
		return nil, ErrCartEmpty
	}
	if snapshot.HasUnavailable {
		return nil, ErrCartUnavailable
	}
	if input.TotalAmount != nil && !input.TotalAmount.Equal(snapshot.Total) {
		return nil, ErrCartStale
	}

	preferred := strings.TrimSpace(input.PreferredDeliveryTime)
	if preferred == "" {
		preferred = constants.DeliveryImmediate
	}
	paymentMethod := strings.TrimSpace(input.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = constants.PaymentMethodCOD
	}

	now := time.Now()
	order := &models.Order{
		UserID:                input.UserID,
		ShopID:                input.ShopID,
		BuyerName:             strings.TrimSpace(input.BuyerName),
		Address:               strings.TrimSpace(input.Address),
		Phone:                 strings.TrimSpace(input.Phone),
		PreferredDeliveryTime: preferred,
		PaymentMethod:         paymentMethod,
		OrderNotes:            strings.TrimSpace(input.OrderNotes),
		TotalAmount:           snapshot.Total,
		Status:                constants.OrderStatusPending,
		PlacedAt:              now,
	}
	for _, line := range snapshot.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Image:     line.Image,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order); err != nil {
			return err
		}
		return s.cartRepo.WithTx(tx).ClearByUserAndShop(input.UserID, input.ShopID)
	})
	if err != nil {
		return nil, err
	}

	if s.enqueuer != nil {
		delay := time.Duration(s.expireHours) * time.Hour
		if err := s.enqueuer.EnqueueOrderTimeoutCancel(order.ID, delay); err != nil {
			logger.Warnw("order_timeout_enqueue_failed", "order_id", order.ID, "error", err)
		}
	}

	logger.Infow("order_placed", "order_id", order.ID, "user_id", input.UserID, "shop_id", input.ShopID, "total", order.TotalAmount.String())
	return order, nil
}

// ListByUser 获取用户配送订单
func (s *OrderService) ListByUser(userID uint) ([]models.Order, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.orderRepo.ListByUser(userID)
}

// TimeoutCancel 超时仍未配送的订单自动取消（worker 调用）
func (s *OrderService) TimeoutCancel(orderID uint) error {
	order, err := s.orderRepo.FindByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if order.Status != constants.OrderStatusPending {
		return nil
	}
	if err := s.orderRepo.UpdateStatus(order.ID, constants.OrderStatusCancelled); err != nil {
		return err
	}
	logger.Infow("order_timeout_cancelled", "order_id", order.ID)
	return nil
}
