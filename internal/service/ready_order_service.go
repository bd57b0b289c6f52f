package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/packzo/ishop/internal/cache"
	"github.com/packzo/ishop/internal/constants"
	"github.com/packzo/ishop/internal/logger"
	"github.com/packzo/ishop/internal/models"
	"github.com/packzo/ishop/internal/repository"

	"gorm.io/gorm"
)

var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

const pickupCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// SubmitReadyOrderInput 自提下单输入
type SubmitReadyOrderInput struct {
	UserID              uint
	ShopID              uint
	FullName            string
	Phone               string
	PreferredPackedTime string
	OrderNotes          string
	TotalAmount         *models.Money
	IdempotencyKey      string
}

// ReadyOrderReceipt 下单结果
type ReadyOrderReceipt struct {
	OrderID       uint         `json:"orderId"`
	FullName      string       `json:"fullName"`
	Phone         string       `json:"phone"`
	TotalAmount   models.Money `json:"totalAmount"`
	PickupCode    string       `json:"pickupCode"`
	OrderType     string       `json:"orderType"`
	PaymentMethod string       `json:"paymentMethod"`
}

// DateGroup 按下单日期分组的订单（新日期在前）
type DateGroup struct {
	Date   string              `json:"date"`
	Orders []models.ReadyOrder `json:"orders"`
}

// ExpireEnqueuer 自提订单到期任务入队
type ExpireEnqueuer interface {
	EnqueueReadyOrderExpire(orderID uint, dueAt time.Time) error
}

// ReadyOrderService 自提订单服务
type ReadyOrderService struct {
	db          *gorm.DB
	orderRepo   repository.ReadyOrderRepository
	cartRepo    repository.CartRepository
	shopRepo    repository.ShopRepository
	cartService *CartService
	slotService *SlotService
	enqueuer    ExpireEnqueuer
	location    *time.Location
}

// NewReadyOrderService 创建自提订单服务
func NewReadyOrderService(
	db *gorm.DB,
	orderRepo repository.ReadyOrderRepository,
	cartRepo repository.CartRepository,
	shopRepo repository.ShopRepository,
	cartService *CartService,
	slotService *SlotService,
	enqueuer ExpireEnqueuer,
) *ReadyOrderService {
	location, err := time.LoadLocation(constants.ShopTimezone)
	if err != nil {
		location = time.FixedZone("IST", 5*3600+1800)
	}
	return &ReadyOrderService{
		db:          db,
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		shopRepo:    shopRepo,
		cartService: cartService,
		slotService: slotService,
		enqueuer:    enqueuer,
		location:    location,
	}
}

// Submit 提交自提订单：校验表单、整车可用性检查、生成取货码、清空购物车
// 整个写入在事务内完成，购物车存在不可购买项时不产生任何写入
func (s *ReadyOrderService) Submit(ctx context.Context, input SubmitReadyOrderInput) (*ReadyOrderReceipt, error) {
	if input.UserID == 0 || input.ShopID == 0 {
		return nil, ErrInvalidInput
	}
	if err := s.validateForm(&input); err != nil {
		return nil, err
	}

	// 幂等键：重复提交直接回放首次结果
	if input.IdempotencyKey != "" {
		if replayed, hit, err := cache.GetIdempotentResult(ctx, input.UserID, input.IdempotencyKey); err == nil && hit {
			order, err := s.orderRepo.FindByID(replayed.ReadyOrderID)
			if err != nil {
				return nil, err
			}
			return receiptFromOrder(order), nil
		}
		first, err := cache.ReserveIdempotencyKey(ctx, input.UserID, input.IdempotencyKey)
		if err != nil {
			logger.Warnw("idempotency_reserve_failed", "error", err)
		} else if !first {
			return nil, ErrDuplicateSubmit
		}
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
	// 客户端传来的总额仅作一致性校验，金额以服务端重新计算为准
	if input.TotalAmount != nil && !input.TotalAmount.Equal(snapshot.Total) {
		return nil, ErrCartStale
	}

	pickupCode, err := generatePickupCode()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &models.ReadyOrder{
		UserID:              input.UserID,
		ShopID:              input.ShopID,
		FullName:            strings.TrimSpace(input.FullName),
		Phone:               strings.TrimSpace(input.Phone),
		TotalAmount:         snapshot.Total,
		PickupCode:          pickupCode,
		PreferredPackedTime: strings.TrimSpace(input.PreferredPackedTime),
		OrderNotes:          strings.TrimSpace(input.OrderNotes),
		OrderType:           constants.OrderTypeReady,
		PaymentMethod:       constants.PaymentMethodCOD,
		Status:              constants.ReadyOrderStatusPending,
		PlacedAt:            now,
	}
	for _, line := range snapshot.Items {
		order.Items = append(order.Items, models.ReadyOrderItem{
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

	receipt := receiptFromOrder(order)

	if input.IdempotencyKey != "" {
		_ = cache.StoreIdempotentResult(ctx, input.UserID, input.IdempotencyKey, &cache.IdempotentResult{
			ReadyOrderID: order.ID,
			PickupCode:   order.PickupCode,
		})
	}
	// 确认页一次性回执
	if err := cache.SetOrderReceipt(ctx, input.UserID, &cache.OrderReceipt{
		FullName:      receipt.FullName,
		Phone:         receipt.Phone,
		TotalAmount:   receipt.TotalAmount,
		PickupCode:    receipt.PickupCode,
		OrderType:     receipt.OrderType,
		PaymentMethod: receipt.PaymentMethod,
	}); err != nil {
		logger.Warnw("order_receipt_cache_failed", "order_id", order.ID, "error", err)
	}

	if s.enqueuer != nil {
		if err := s.enqueuer.EnqueueReadyOrderExpire(order.ID, s.dayEnd(now)); err != nil {
			logger.Warnw("ready_order_expire_enqueue_failed", "order_id", order.ID, "error", err)
		}
	}

	logger.Infow("ready_order_placed", "order_id", order.ID, "user_id", input.UserID, "shop_id", input.ShopID, "total", order.TotalAmount.String())
	return receipt, nil
}

// TakeReceipt 读取并清除确认页回执
func (s *ReadyOrderService) TakeReceipt(ctx context.Context, userID uint) (*cache.OrderReceipt, bool, error) {
	return cache.TakeOrderReceipt(ctx, userID)
}

// ListByUser 获取用户自提订单
func (s *ReadyOrderService) ListByUser(userID uint) ([]models.ReadyOrder, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.orderRepo.ListByUser(userID)
}

// ListByShop 获取店铺自提订单（校验店铺归属）
func (s *ReadyOrderService) ListByShop(sellerID, shopID uint) ([]models.ReadyOrder, error) {
	if sellerID == 0 || shopID == 0 {
		return nil, ErrInvalidInput
	}
	shop, err := s.shopRepo.FindByID(shopID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrShopNotFound
	}
	if err != nil {
		return nil, err
	}
	if shop.SellerID != sellerID {
		return nil, ErrNotShopOwner
	}
	return s.orderRepo.ListByShop(shopID)
}

// SetStatus 更新自提订单状态
// Picked 与 Cancelled 为终态，不允许再变更；Pending 与 Ready 可改为任意合法状态
func (s *ReadyOrderService) SetStatus(sellerID, orderID uint, status string) (*models.ReadyOrder, error) {
	if sellerID == 0 || orderID == 0 {
		return nil, ErrInvalidInput
	}
	if !isReadyOrderStatus(status) {
		return nil, ErrStatusInvalid
	}
	order, err := s.orderRepo.FindByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	shop, err := s.shopRepo.FindByID(order.ShopID)
	if err != nil {
		return nil, err
	}
	if shop.SellerID != sellerID {
		return nil, ErrNotShopOwner
	}
	if isTerminalReadyOrderStatus(order.Status) {
		return nil, ErrStatusTerminal
	}
	if err := s.orderRepo.UpdateStatus(order.ID, status); err != nil {
		return nil, err
	}
	order.Status = status
	logger.Infow("ready_order_status_changed", "order_id", order.ID, "status", status)
	return order, nil
}

// ExpireDayEnd 日终过期：仍未取货的订单自动取消（worker 调用）
func (s *ReadyOrderService) ExpireDayEnd(orderID uint) error {
	order, err := s.orderRepo.FindByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if isTerminalReadyOrderStatus(order.Status) {
		return nil
	}
	if err := s.orderRepo.UpdateStatus(order.ID, constants.ReadyOrderStatusCancelled); err != nil {
		return err
	}
	logger.Infow("ready_order_expired", "order_id", order.ID)
	return nil
}

// SweepExpired 兜底清理：取消营业结束仍未取货的订单（队列任务丢失时由巡检触发）
func (s *ReadyOrderService) SweepExpired(now time.Time) (int, error) {
	local := now.In(s.location)
	cutoff := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.location)
	if !local.Before(s.dayEnd(now)) {
		cutoff = local
	}
	orders, err := s.orderRepo.ListActiveBefore(cutoff)
	if err != nil {
		return 0, err
	}
	cancelled := 0
	for _, order := range orders {
		if err := s.orderRepo.UpdateStatus(order.ID, constants.ReadyOrderStatusCancelled); err != nil {
			logger.Errorw("ready_order_sweep_failed", "order_id", order.ID, "error", err)
			continue
		}
		cancelled++
	}
	if cancelled > 0 {
		logger.Infow("ready_order_sweep_done", "cancelled", cancelled)
	}
	return cancelled, nil
}

// GroupByDate 按下单日期分组，新日期在前，组内保持新单在前
func (s *ReadyOrderService) GroupByDate(orders []models.ReadyOrder) []DateGroup {
	groups := make([]DateGroup, 0)
	index := make(map[string]int)
	for _, order := range orders {
		label := s.dateLabel(order.PlacedAt)
		at, found := index[label]
		if !found {
			groups = append(groups, DateGroup{Date: label})
			at = len(groups) - 1
			index[label] = at
		}
		groups[at].Orders = append(groups[at].Orders, order)
	}
	return groups
}

func (s *ReadyOrderService) validateForm(input *SubmitReadyOrderInput) error {
	if len(strings.TrimSpace(input.FullName)) < constants.FullNameMinLength {
		return ErrFullNameTooShort
	}
	if !phonePattern.MatchString(strings.TrimSpace(input.Phone)) {
		return ErrPhoneInvalid
	}
	if err := s.slotService.ValidateSlot(input.PreferredPackedTime); err != nil {
		return err
	}
	if len([]rune(strings.TrimSpace(input.OrderNotes))) > constants.OrderNotesMaxChars {
		return ErrNotesTooLong
	}
	return nil
}

// dateLabel 以店铺时区格式化下单日期，如 12 Mar 2026
func (s *ReadyOrderService) dateLabel(at time.Time) string {
	return at.In(s.location).Format("2 Jan 2006")
}

// dayEnd 店铺时区当天营业结束时刻
func (s *ReadyOrderService) dayEnd(now time.Time) time.Time {
	local := now.In(s.location)
	return time.Date(local.Year(), local.Month(), local.Day(), constants.SlotCloseHour, 0, 0, 0, s.location)
}

func receiptFromOrder(order *models.ReadyOrder) *ReadyOrderReceipt {
	return &ReadyOrderReceipt{
		OrderID:       order.ID,
		FullName:      order.FullName,
		Phone:         order.Phone,
		TotalAmount:   order.TotalAmount,
		PickupCode:    order.PickupCode,
		OrderType:     order.OrderType,
		PaymentMethod: order.PaymentMethod,
	}
}

func isReadyOrderStatus(status string) bool {
	for _, candidate := range constants.ReadyOrderStatuses {
		if candidate == status {
			return true
		}
	}
	return false
}

func isTerminalReadyOrderStatus(status string) bool {
	return status == constants.ReadyOrderStatusPicked || status == constants.ReadyOrderStatusCancelled
}

// generatePickupCode 生成取货码（去除易混淆字符）
func generatePickupCode() (string, error) {
	code := make([]byte, constants.PickupCodeLength)
	max := big.NewInt(int64(len(pickupCodeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate pickup code failed: %w", err)
		}
		code[i] = pickupCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}
