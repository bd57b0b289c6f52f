package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/packzo/ishop/internal/constants"
	"github.com/packzo/ishop/internal/models"
	"github.com/packzo/ishop/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type recordingTimeoutEnqueuer struct {
	orderIDs []uint
	delays   []time.Duration
}

func (r *recordingTimeoutEnqueuer) EnqueueOrderTimeoutCancel(orderID uint, delay time.Duration) error {
	r.orderIDs = append(r.orderIDs, orderID)
	r.delays = append(r.delays, delay)
	return nil
}

func newOrderTestService(t *testing.T, name string) (*OrderService, *gorm.DB, *recordingTimeoutEnqueuer) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Shop{}, &models.Product{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	enqueuer := &recordingTimeoutEnqueuer{}
	cartService := newCartTestService(db)
	orderService := NewOrderService(db, repository.NewOrderRepository(db), repository.NewCartRepository(db), cartService, enqueuer, 24)
	return orderService, db, enqueuer
}

func validPlaceInput(shopID uint) PlaceOrderInput {
	return PlaceOrderInput{
		UserID:    1,
		ShopID:    shopID,
		BuyerName: "Asha Rao",
		Address:   "14 Cross, Indiranagar",
		Phone:     "9876543210",
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	svc, db, _ := newOrderTestService(t, "place_validation")
	shop := seedCartShop(t, db)

	cases := []struct {
		name    string
		mutate  func(*PlaceOrderInput)
		wantErr error
	}{
		{"short name", func(in *PlaceOrderInput) { in.BuyerName = "Al" }, ErrFullNameTooShort},
		{"missing address", func(in *PlaceOrderInput) { in.Address = "  " }, ErrInvalidInput},
		{"bad phone", func(in *PlaceOrderInput) { in.Phone = "1234567890" }, ErrPhoneInvalid},
		{"empty cart", func(in *PlaceOrderInput) {}, ErrCartEmpty},
	}
	for _, tc := range cases {
		input := validPlaceInput(shop.ID)
		tc.mutate(&input)
		if _, err := svc.Place(input); err != tc.wantErr {
			t.Fatalf("%s: want %v got %v", tc.name, tc.wantErr, err)
		}
	}

	var count int64
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("no orders should be written on validation failure, got %d", count)
	}
}

func TestPlaceOrderCreatesAndClearsCart(t *testing.T) {
	svc, db, enqueuer := newOrderTestService(t, "place_ok")
	shop := seedCartShop(t, db)
	product := seedCartProduct(t, db, shop.ID, "Milk", 40, true, true)

	cartService := newCartTestService(db)
	if _, err := cartService.Add(AddToCartInput{UserID: 1, ProductID: product.ID, ShopID: shop.ID, Quantity: 2}); err != nil {
		t.Fatalf("seed cart failed: %v", err)
	}

	order, err := svc.Place(validPlaceInput(shop.ID))
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if !order.TotalAmount.Equal(models.NewMoneyFromInt(80)) {
		t.Fatalf("total want 80 got %s", order.TotalAmount)
	}
	if order.PreferredDeliveryTime != constants.DeliveryImmediate {
		t.Fatalf("preferred delivery should default to %s, got %s", constants.DeliveryImmediate, order.PreferredDeliveryTime)
	}
	if order.PaymentMethod != constants.PaymentMethodCOD {
		t.Fatalf("payment method should default to cod, got %s", order.PaymentMethod)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 2 {
		t.Fatalf("order items mismatch: %+v", order.Items)
	}

	snapshot, err := cartService.Load(1, shop.ID)
	if err != nil {
		t.Fatalf("load cart failed: %v", err)
	}
	if len(snapshot.Items) != 0 {
		t.Fatalf("cart should be cleared after placing order")
	}

	if len(enqueuer.orderIDs) != 1 || enqueuer.orderIDs[0] != order.ID {
		t.Fatalf("timeout cancel task should be enqueued for order %d", order.ID)
	}
	if enqueuer.delays[0] != 24*time.Hour {
		t.Fatalf("timeout delay want 24h got %s", enqueuer.delays[0])
	}
}

func TestPlaceOrderRejectsUnavailableCart(t *testing.T) {
	svc, db, _ := newOrderTestService(t, "place_unavailable")
	shop := seedCartShop(t, db)
	product := seedCartProduct(t, db, shop.ID, "Milk", 40, true, true)

	cartService := newCartTestService(db)
	if _, err := cartService.Add(AddToCartInput{UserID: 1, ProductID: product.ID, ShopID: shop.ID, Quantity: 1}); err != nil {
		t.Fatalf("seed cart failed: %v", err)
	}
	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).Update("in_stock", false).Error; err != nil {
		t.Fatalf("mark out of stock failed: %v", err)
	}

	if _, err := svc.Place(validPlaceInput(shop.ID)); err != ErrCartUnavailable {
		t.Fatalf("want ErrCartUnavailable got %v", err)
	}
}

func TestTimeoutCancelOnlyPendingOrders(t *testing.T) {
	svc, db, _ := newOrderTestService(t, "timeout_cancel")

	pending := models.Order{UserID: 1, ShopID: 1, BuyerName: "Asha Rao", Address: "x", Phone: "9876543210", Status: constants.OrderStatusPending, PlacedAt: time.Now()}
	delivered := models.Order{UserID: 1, ShopID: 1, BuyerName: "Asha Rao", Address: "x", Phone: "9876543210", Status: constants.OrderStatusDelivered, PlacedAt: time.Now()}
	if err := db.Create(&pending).Error; err != nil {
		t.Fatalf("create pending order failed: %v", err)
	}
	if err := db.Create(&delivered).Error; err != nil {
		t.Fatalf("create delivered order failed: %v", err)
	}

	if err := svc.TimeoutCancel(pending.ID); err != nil {
		t.Fatalf("timeout cancel failed: %v", err)
	}
	if err := svc.TimeoutCancel(delivered.ID); err != nil {
		t.Fatalf("timeout cancel of delivered order should be a no-op: %v", err)
	}
	if err := svc.TimeoutCancel(9999); err != nil {
		t.Fatalf("timeout cancel of missing order should be a no-op: %v", err)
	}

	var got models.Order
	if err := db.First(&got, pending.ID).Error; err != nil {
		t.Fatalf("load pending order failed: %v", err)
	}
	if got.Status != constants.OrderStatusCancelled {
		t.Fatalf("pending order should be cancelled, got %s", got.Status)
	}
	var kept models.Order
	if err := db.First(&kept, delivered.ID).Error; err != nil {
		t.Fatalf("load delivered order failed: %v", err)
	}
	if kept.Status != constants.OrderStatusDelivered {
		t.Fatalf("delivered order should keep its status, got %s", kept.Status)
	}
}
