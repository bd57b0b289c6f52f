package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/packzo/ishop/internal/constants"
	"github.com/packzo/ishop/internal/models"
	"github.com/packzo/ishop/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type recordingEnqueuer struct {
	orderIDs []uint
}

func (r *recordingEnqueuer) EnqueueReadyOrderExpire(orderID uint, dueAt time.Time) error {
	r.orderIDs = append(r.orderIDs, orderID)
	return nil
}

type readyOrderFixture struct {
	db       *gorm.DB
	svc      *ReadyOrderService
	cart     *CartService
	shop     models.Shop
	enqueuer *recordingEnqueuer
}

func newReadyOrderFixture(t *testing.T, name string) *readyOrderFixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Shop{}, &models.Product{}, &models.CartItem{}, &models.ReadyOrder{}, &models.ReadyOrderItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	shop := models.Shop{SellerID: 1, Name: "Corner Store", Open: true}
	if err := db.Create(&shop).Error; err != nil {
		t.Fatalf("create shop failed: %v", err)
	}

	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	shopRepo := repository.NewShopRepository(db)
	cartService := NewCartService(cartRepo, productRepo, shopRepo)

	slotService := NewSlotService()
	slotService.now = func() time.Time {
		return time.Date(2026, 3, 10, 9, 30, 0, 0, slotService.location)
	}

	enqueuer := &recordingEnqueuer{}
	svc := NewReadyOrderService(db, repository.NewReadyOrderRepository(db), cartRepo, shopRepo, cartService, slotService, enqueuer)
	return &readyOrderFixture{db: db, svc: svc, cart: cartService, shop: shop, enqueuer: enqueuer}
}

func (f *readyOrderFixture) seedProduct(t *testing.T, name string, price int64, inStock, published bool) models.Product {
	t.Helper()
	product := models.Product{
		ShopID:    f.shop.ID,
		Name:      name,
		Price:     models.NewMoneyFromInt(price),
		MRP:       models.NewMoneyFromInt(price),
		InStock:   inStock,
		Published: published,
	}
	if err := f.db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func (f *readyOrderFixture) fillCart(t *testing.T, userID uint, product models.Product, quantity int) {
	t.Helper()
	if _, err := f.cart.Add(AddToCartInput{UserID: userID, ProductID: product.ID, ShopID: f.shop.ID, Quantity: quantity}); err != nil {
		t.Fatalf("fill cart failed: %v", err)
	}
}

func validSubmitInput(userID, shopID uint) SubmitReadyOrderInput {
	return SubmitReadyOrderInput{
		UserID:              userID,
		ShopID:              shopID,
		FullName:            "Asha Rao",
		Phone:               "9876543210",
		PreferredPackedTime: "10-11",
	}
}

func TestSubmitValidationMessages(t *testing.T) {
	f := newReadyOrderFixture(t, "ready_validation")
	product := f.seedProduct(t, "Milk", 40, true, true)
	f.fillCart(t, 7, product, 1)
	ctx := context.Background()

	input := validSubmitInput(7, f.shop.ID)
	input.FullName = "Al"
	if _, err := f.svc.Submit(ctx, input); err != ErrFullNameTooShort {
		t.Fatalf("short name: expected ErrFullNameTooShort, got %v", err)
	}

	input = validSubmitInput(7, f.shop.ID)
	input.Phone = "1234567890"
	if _, err := f.svc.Submit(ctx, input); err != ErrPhoneInvalid {
		t.Fatalf("bad phone prefix: expected ErrPhoneInvalid, got %v", err)
	}

	input = validSubmitInput(7, f.shop.ID)
	input.Phone = "98765"
	if _, err := f.svc.Submit(ctx, input); err != ErrPhoneInvalid {
		t.Fatalf("short phone: expected ErrPhoneInvalid, got %v", err)
	}

	input = validSubmitInput(7, f.shop.ID)
	input.PreferredPackedTime = ""
	if _, err := f.svc.Submit(ctx, input); err != ErrSlotRequired {
		t.Fatalf("missing slot: expected ErrSlotRequired, got %v", err)
	}

	input = validSubmitInput(7, f.shop.ID)
	input.PreferredPackedTime = "8-9"
	if _, err := f.svc.Submit(ctx, input); err != ErrSlotUnavailable {
		t.Fatalf("expired slot: expected ErrSlotUnavailable, got %v", err)
	}

	input = validSubmitInput(7, f.shop.ID)
	for len(input.OrderNotes) <= 200 {
		input.OrderNotes += "please ring the bell "
	}
	if _, err := f.svc.Submit(ctx, input); err != ErrNotesTooLong {
		t.Fatalf("long notes: expected ErrNotesTooLong, got %v", err)
	}

	// 校验失败不应产生订单
	var count int64
	f.db.Model(&models.ReadyOrder{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no orders after validation failures, got %d", count)
	}
}

func TestSubmitImmediateSlotAccepted(t *testing.T) {
	f := newReadyOrderFixture(t, "ready_immediate")
	product := f.seedProduct(t, "Milk", 40, true, true)
	f.fillCart(t, 7, product, 1)

	input := validSubmitInput(7, f.shop.ID)
	input.PreferredPackedTime = constants.SlotImmediate
	receipt, err := f.svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("immediate pickup should skip slot validation: %v", err)
	}
	if receipt.PickupCode == "" {
		t.Fatalf("expected pickup code")
	}
}

func TestSubmitCreatesOrderAndClearsCart(t *testing.T) {
	f := newReadyOrderFixture(t, "ready_submit")
	milk := f.seedProduct(t, "Milk", 40, true, true)
	f.fillCart(t, 7, milk, 2)

	receipt, err := f.svc.Submit(context.Background(), validSubmitInput(7, f.shop.ID))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !receipt.TotalAmount.Decimal.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("expected total 80, got %s", receipt.TotalAmount.String())
	}
	if len(receipt.PickupCode) != constants.PickupCodeLength {
		t.Fatalf("unexpected pickup code: %s", receipt.PickupCode)
	}
	if receipt.OrderType != constants.OrderTypeReady || receipt.PaymentMethod != constants.PaymentMethodCOD {
		t.Fatalf("unexpected receipt defaults: %+v", receipt)
	}

	order, err := f.svc.orderRepo.FindByID(receipt.OrderID)
	if err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if order.Status != constants.ReadyOrderStatusPending {
		t.Fatalf("expected Pending status, got %s", order.Status)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 2 {
		t.Fatalf("unexpected order items: %+v", order.Items)
	}

	snapshot, err := f.cart.Load(7, f.shop.ID)
	if err != nil {
		t.Fatalf("reload cart failed: %v", err)
	}
	if len(snapshot.Items) != 0 {
		t.Fatalf("expected cart cleared after submit, got %d items", len(snapshot.Items))
	}

	if len(f.enqueuer.orderIDs) != 1 || f.enqueuer.orderIDs[0] != receipt.OrderID {
		t.Fatalf("expected expire task enqueued for order %d, got %v", receipt.OrderID, f.enqueuer.orderIDs)
	}
}

func TestSubmitAllOrNothingWithUnavailableItems(t *testing.T) {
	f := newReadyOrderFixture(t, "ready_all_or_nothing")
	milk := f.seedProduct(t, "Milk", 40, true, true)
	bread := f.seedProduct(t, "Bread", 30, true, true)
	f.fillCart(t, 7, milk, 2)
	f.fillCart(t, 7, bread, 1)

	// 提交前 Bread 售罄
	if err := f.db.Model(&models.Product{}).Where("id = ?", bread.ID).Update("in_stock", false).Error; err != nil {
		t.Fatalf("mark out of stock failed: %v", err)
	}

	if _, err := f.svc.Submit(context.Background(), validSubmitInput(7, f.shop.ID)); err != ErrCartUnavailable {
		t.Fatalf("expected ErrCartUnavailable, got %v", err)
	}

	// 整单拒绝：订单不落库，购物车原样保留
	var orderCount int64
	f.db.Model(&models.ReadyOrder{}).Count(&orderCount)
	if orderCount != 0 {
		t.Fatalf("expected no orders, got %d", orderCount)
	}
	snapshot, err := f.cart.Load(7, f.shop.ID)
	if err != nil {
		t.Fatalf("reload cart failed: %v", err)
	}
	if len(snapshot.Items) != 2 {
		t.Fatalf("expected cart untouched, got %d items", len(snapshot.Items))
	}
}

func TestSubmitRejectsStaleClientTotal(t *testing.T) {
	f := newReadyOrderFixture(t, "ready_stale_total")
	milk := f.seedProduct(t, "Milk", 40, true, true)
	f.fillCart(t, 7, milk, 2)

	stale := models.NewMoneyFromInt(120)
	input := validSubmitInput(7, f.shop.ID)
	input.TotalAmount = &stale
	if _, err := f.svc.Submit(context.Background(), input); err != ErrCartStale {
		t.Fatalf("expected ErrCartStale, got %v", err)
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	f := newReadyOrderFixture(t, "ready_empty_cart")
	if _, err := f.svc.Submit(context.Background(), validSubmitInput(7, f.shop.ID)); err != ErrCartEmpty {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestSetStatusTransitions(t *testing.T) {
	f := newReadyOrderFixture(t, "ready_status")
	milk := f.seedProduct(t, "Milk", 40, true, true)
	f.fillCart(t, 7, milk, 1)
	receipt, err := f.svc.Submit(context.Background(), validSubmitInput(7, f.shop.ID))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if _, err := f.svc.SetStatus(1, receipt.OrderID, "Shipped"); err != ErrStatusInvalid {
		t.Fatalf("unknown status: expected ErrStatusInvalid, got %v", err)
	}
	if _, err := f.svc.SetStatus(2, receipt.OrderID, constants.ReadyOrderStatusReady); err != ErrNotShopOwner {
		t.Fatalf("foreign seller: expected ErrNotShopOwner, got %v", err)
	}

	order, err := f.svc.SetStatus(1, receipt.OrderID, constants.ReadyOrderStatusReady)
	if err != nil {
		t.Fatalf("Pending->Ready failed: %v", err)
	}
	if order.Status != constants.ReadyOrderStatusReady {
		t.Fatalf("expected Ready, got %s", order.Status)
	}

	// Ready 可以回到 Pending
	if _, err := f.svc.SetStatus(1, receipt.OrderID, constants.ReadyOrderStatusPending); err != nil {
		t.Fatalf("Ready->Pending failed: %v", err)
	}
	if _, err := f.svc.SetStatus(1, receipt.OrderID, constants.ReadyOrderStatusPicked); err != nil {
		t.Fatalf("Pending->Picked failed: %v", err)
	}

	// Picked 为终态
	if _, err := f.svc.SetStatus(1, receipt.OrderID, constants.ReadyOrderStatusPending); err != ErrStatusTerminal {
		t.Fatalf("expected ErrStatusTerminal after Picked, got %v", err)
	}
}

func TestExpireDayEndSkipsTerminalOrders(t *testing.T) {
	f := newReadyOrderFixture(t, "ready_expire")
	milk := f.seedProduct(t, "Milk", 40, true, true)
	f.fillCart(t, 7, milk, 1)
	receipt, err := f.svc.Submit(context.Background(), validSubmitInput(7, f.shop.ID))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if err := f.svc.ExpireDayEnd(receipt.OrderID); err != nil {
		t.Fatalf("expire failed: %v", err)
	}
	order, err := f.svc.orderRepo.FindByID(receipt.OrderID)
	if err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if order.Status != constants.ReadyOrderStatusCancelled {
		t.Fatalf("expected Cancelled after day end, got %s", order.Status)
	}

	// 已取消订单再次过期无副作用
	if err := f.svc.ExpireDayEnd(receipt.OrderID); err != nil {
		t.Fatalf("second expire failed: %v", err)
	}
}

func TestGroupByDateNewestFirst(t *testing.T) {
	f := newReadyOrderFixture(t, "ready_grouping")
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	orders := []models.ReadyOrder{
		{ID: 3, PlacedAt: base},
		{ID: 2, PlacedAt: base.Add(-2 * time.Hour)},
		{ID: 1, PlacedAt: base.AddDate(0, 0, -1)},
	}

	groups := f.svc.GroupByDate(orders)
	if len(groups) != 2 {
		t.Fatalf("expected 2 date groups, got %d", len(groups))
	}
	if len(groups[0].Orders) != 2 || groups[0].Orders[0].ID != 3 {
		t.Fatalf("expected newest day first with newest order first: %+v", groups[0])
	}
	if len(groups[1].Orders) != 1 || groups[1].Orders[0].ID != 1 {
		t.Fatalf("unexpected second group: %+v", groups[1])
	}
	if groups[0].Date == groups[1].Date {
		t.Fatalf("expected distinct date labels")
	}
}

func TestGeneratePickupCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := generatePickupCode()
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if len(code) != constants.PickupCodeLength {
			t.Fatalf("unexpected code length: %s", code)
		}
		for _, c := range code {
			if c == 'O' || c == '0' || c == 'I' || c == '1' {
				t.Fatalf("ambiguous character in code: %s", code)
			}
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Fatalf("codes should vary, got %d unique of 50", len(seen))
	}
}
