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

func setupRevenueRepositoryTest(t *testing.T) (*GormRevenueRepository, *GormReadyOrderRepository) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.ReadyOrder{}, &models.ReadyOrderItem{}); err != nil {
		t.Fatalf("migrate ready orders failed: %v", err)
	}
	return NewRevenueRepository(db), NewReadyOrderRepository(db)
}

func TestRevenueShopTotalsCountsPickedOnly(t *testing.T) {
	revenueRepo, orderRepo := setupRevenueRepositoryTest(t)
	base := time.Now()
	createReadyOrder(t, orderRepo, 3, constants.ReadyOrderStatusPicked, base.Add(-2*time.Hour))
	createReadyOrder(t, orderRepo, 3, constants.ReadyOrderStatusPicked, base.Add(-time.Hour))
	createReadyOrder(t, orderRepo, 3, constants.ReadyOrderStatusPending, base)
	createReadyOrder(t, orderRepo, 3, constants.ReadyOrderStatusCancelled, base.Add(time.Second))
	createReadyOrder(t, orderRepo, 4, constants.ReadyOrderStatusPicked, base.Add(2*time.Second))

	orders, amount, err := revenueRepo.ShopTotals(3)
	if err != nil {
		t.Fatalf("shop totals failed: %v", err)
	}
	if orders != 2 {
		t.Fatalf("picked orders want 2 got %d", orders)
	}
	if !amount.Equal(decimal.NewFromInt(160)) {
		t.Fatalf("amount want 160 got %s", amount)
	}
}

func TestRevenueShopTotalsEmptyShop(t *testing.T) {
	revenueRepo, _ := setupRevenueRepositoryTest(t)

	orders, amount, err := revenueRepo.ShopTotals(99)
	if err != nil {
		t.Fatalf("shop totals failed: %v", err)
	}
	if orders != 0 || !amount.IsZero() {
		t.Fatalf("empty shop want 0/0 got %d/%s", orders, amount)
	}
}

func TestRevenueShopDailyGroupsByDate(t *testing.T) {
	revenueRepo, orderRepo := setupRevenueRepositoryTest(t)
	today := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	createReadyOrder(t, orderRepo, 5, constants.ReadyOrderStatusPicked, today)
	createReadyOrder(t, orderRepo, 5, constants.ReadyOrderStatusPicked, today.Add(time.Hour))
	createReadyOrder(t, orderRepo, 5, constants.ReadyOrderStatusPicked, yesterday)
	createReadyOrder(t, orderRepo, 5, constants.ReadyOrderStatusPending, today.Add(2*time.Hour))

	rows, err := revenueRepo.ShopDaily(5, yesterday.Add(-time.Hour))
	if err != nil {
		t.Fatalf("shop daily failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("daily rows want 2 got %d", len(rows))
	}
	if rows[0].Day != "2026-09-01" || rows[0].Orders != 2 {
		t.Fatalf("newest day first, want 2026-09-01 with 2 orders got %+v", rows[0])
	}
	if rows[1].Day != "2026-08-31" || rows[1].Orders != 1 {
		t.Fatalf("want 2026-08-31 with 1 order got %+v", rows[1])
	}
	if !rows[0].Amount.Equal(decimal.NewFromInt(160)) {
		t.Fatalf("today amount want 160 got %s", rows[0].Amount)
	}
}

func TestRevenueShopDailyHonorsSince(t *testing.T) {
	revenueRepo, orderRepo := setupRevenueRepositoryTest(t)
	now := time.Now()
	createReadyOrder(t, orderRepo, 6, constants.ReadyOrderStatusPicked, now.AddDate(0, 0, -10))
	createReadyOrder(t, orderRepo, 6, constants.ReadyOrderStatusPicked, now)

	rows, err := revenueRepo.ShopDaily(6, now.AddDate(0, 0, -7))
	if err != nil {
		t.Fatalf("shop daily failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows older than since should be excluded, got %d rows", len(rows))
	}
}
