package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/packzo/ishop/internal/constants"
	"github.com/packzo/ishop/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupReadyOrderRepositoryTest(t *testing.T) *GormReadyOrderRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.ReadyOrder{}, &models.ReadyOrderItem{}); err != nil {
		t.Fatalf("migrate ready orders failed: %v", err)
	}
	return NewReadyOrderRepository(db)
}

func createReadyOrder(t *testing.T, repo *GormReadyOrderRepository, shopID uint, status string, placedAt time.Time) *models.ReadyOrder {
	t.Helper()
	order := &models.ReadyOrder{
		UserID:      1,
		ShopID:      shopID,
		FullName:    "Asha Rao",
		Phone:       "9876543210",
		TotalAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(80)),
		PickupCode:  fmt.Sprintf("PK%d%s", placedAt.UnixNano(), status[:1]),
		Status:      status,
		PlacedAt:    placedAt,
		Items: []models.ReadyOrderItem{
			{ProductID: 1, Name: "Milk", Price: models.NewMoneyFromDecimal(decimal.NewFromInt(40)), Quantity: 2},
		},
	}
	if err := repo.Create(order); err != nil {
		t.Fatalf("create ready order failed: %v", err)
	}
	return order
}

func TestReadyOrderCreatePersistsItems(t *testing.T) {
	repo := setupReadyOrderRepositoryTest(t)
	created := createReadyOrder(t, repo, 1, constants.ReadyOrderStatusPending, time.Now())

	loaded, err := repo.FindByID(created.ID)
	if err != nil {
		t.Fatalf("find ready order failed: %v", err)
	}
	if len(loaded.Items) != 1 || loaded.Items[0].Name != "Milk" || loaded.Items[0].Quantity != 2 {
		t.Fatalf("items not persisted: %+v", loaded.Items)
	}
	if !loaded.TotalAmount.Equal(models.NewMoneyFromDecimal(decimal.NewFromInt(80))) {
		t.Fatalf("total want 80 got %s", loaded.TotalAmount)
	}
}

func TestReadyOrderListByShopNewestFirst(t *testing.T) {
	repo := setupReadyOrderRepositoryTest(t)
	base := time.Now()
	older := createReadyOrder(t, repo, 7, constants.ReadyOrderStatusPending, base.Add(-2*time.Hour))
	newer := createReadyOrder(t, repo, 7, constants.ReadyOrderStatusReady, base.Add(-time.Hour))
	createReadyOrder(t, repo, 8, constants.ReadyOrderStatusPending, base)

	orders, err := repo.ListByShop(7)
	if err != nil {
		t.Fatalf("list by shop failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("orders want 2 got %d", len(orders))
	}
	if orders[0].ID != newer.ID || orders[1].ID != older.ID {
		t.Fatalf("orders should be newest first: got %d then %d", orders[0].ID, orders[1].ID)
	}
}

func TestReadyOrderListActiveBeforeSkipsTerminal(t *testing.T) {
	repo := setupReadyOrderRepositoryTest(t)
	base := time.Now()
	pending := createReadyOrder(t, repo, 1, constants.ReadyOrderStatusPending, base.Add(-3*time.Hour))
	ready := createReadyOrder(t, repo, 1, constants.ReadyOrderStatusReady, base.Add(-2*time.Hour))
	createReadyOrder(t, repo, 1, constants.ReadyOrderStatusPicked, base.Add(-2*time.Hour))
	createReadyOrder(t, repo, 1, constants.ReadyOrderStatusCancelled, base.Add(-2*time.Hour))
	createReadyOrder(t, repo, 1, constants.ReadyOrderStatusPending, base.Add(time.Hour))

	orders, err := repo.ListActiveBefore(base)
	if err != nil {
		t.Fatalf("list active before failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("active orders want 2 got %d", len(orders))
	}
	got := map[uint]bool{orders[0].ID: true, orders[1].ID: true}
	if !got[pending.ID] || !got[ready.ID] {
		t.Fatalf("active orders mismatch: %+v", got)
	}
}

func TestReadyOrderUpdateStatus(t *testing.T) {
	repo := setupReadyOrderRepositoryTest(t)
	order := createReadyOrder(t, repo, 1, constants.ReadyOrderStatusPending, time.Now())

	if err := repo.UpdateStatus(order.ID, constants.ReadyOrderStatusPicked); err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	loaded, err := repo.FindByID(order.ID)
	if err != nil {
		t.Fatalf("find ready order failed: %v", err)
	}
	if loaded.Status != constants.ReadyOrderStatusPicked {
		t.Fatalf("status want Picked got %s", loaded.Status)
	}
}
