package service

import (
	"testing"

	"github.com/packzo/ishop/internal/models"
	"github.com/packzo/ishop/internal/repository"

	"gorm.io/gorm"
)

func newProductTestService(t *testing.T, name string) (*ProductService, *gorm.DB) {
	t.Helper()
	db := openCartTestDB(t, name)
	return NewProductService(repository.NewProductRepository(db), repository.NewShopRepository(db)), db
}

func TestListPublishedSkipsHiddenProducts(t *testing.T) {
	svc, db := newProductTestService(t, "list_published")
	shop := seedCartShop(t, db)
	seedCartProduct(t, db, shop.ID, "Milk", 40, true, true)
	seedCartProduct(t, db, shop.ID, "Bread", 30, true, false)

	products, err := svc.ListPublished(shop.ID)
	if err != nil {
		t.Fatalf("list published failed: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Milk" {
		t.Fatalf("only published products should be listed: %+v", products)
	}

	if _, err := svc.ListPublished(9999); err != ErrShopNotFound {
		t.Fatalf("missing shop want ErrShopNotFound got %v", err)
	}
}

func TestListPublishedRejectsClosedShop(t *testing.T) {
	svc, db := newProductTestService(t, "list_published_closed")
	shop := seedCartShop(t, db)
	seedCartProduct(t, db, shop.ID, "Milk", 40, true, true)

	if err := db.Model(&models.Shop{}).Where("id = ?", shop.ID).Update("open", false).Error; err != nil {
		t.Fatalf("close shop failed: %v", err)
	}
	if _, err := svc.ListPublished(shop.ID); err != ErrShopClosed {
		t.Fatalf("closed shop want ErrShopClosed got %v", err)
	}
}

func TestProductCreateDefaultsAndOwnership(t *testing.T) {
	svc, db := newProductTestService(t, "product_create")
	shop := seedCartShop(t, db)

	product, err := svc.Create(shop.SellerID, shop.ID, ProductInput{
		Name:  "Milk",
		Price: models.NewMoneyFromInt(40),
		MRP:   models.NewMoneyFromInt(45),
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if !product.InStock || !product.Published {
		t.Fatalf("new product should default to in stock and published: %+v", product)
	}

	if _, err := svc.Create(shop.SellerID+1, shop.ID, ProductInput{Name: "Bread"}); err != ErrNotShopOwner {
		t.Fatalf("foreign seller want ErrNotShopOwner got %v", err)
	}
	if _, err := svc.Create(shop.SellerID, shop.ID, ProductInput{Name: "   "}); err != ErrInvalidInput {
		t.Fatalf("blank name want ErrInvalidInput got %v", err)
	}
}

func TestProductCreatePersistsFalseFlags(t *testing.T) {
	svc, db := newProductTestService(t, "product_false_flags")
	shop := seedCartShop(t, db)
	no := false

	product, err := svc.Create(shop.SellerID, shop.ID, ProductInput{
		Name:      "Butter Croissant",
		Price:     models.NewMoneyFromInt(75),
		MRP:       models.NewMoneyFromInt(80),
		InStock:   &no,
		Published: &no,
	})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	var loaded models.Product
	if err := db.First(&loaded, product.ID).Error; err != nil {
		t.Fatalf("load product failed: %v", err)
	}
	if loaded.InStock || loaded.Published {
		t.Fatalf("false flags must survive insert: inStock=%v published=%v", loaded.InStock, loaded.Published)
	}
}

func TestProductUpdateKeepsUntouchedFields(t *testing.T) {
	svc, db := newProductTestService(t, "product_update")
	shop := seedCartShop(t, db)
	product := seedCartProduct(t, db, shop.ID, "Milk", 40, true, true)

	updated, err := svc.Update(shop.SellerID, product.ID, ProductInput{
		Price: models.NewMoneyFromInt(42),
	})
	if err != nil {
		t.Fatalf("update product failed: %v", err)
	}
	if updated.Name != "Milk" {
		t.Fatalf("name should be untouched, got %s", updated.Name)
	}
	if !updated.Price.Equal(models.NewMoneyFromInt(42)) {
		t.Fatalf("price want 42 got %s", updated.Price)
	}
	if !updated.MRP.Equal(models.NewMoneyFromInt(40)) {
		t.Fatalf("mrp should be untouched, got %s", updated.MRP)
	}
}

func TestTogglePublishFlipsState(t *testing.T) {
	svc, db := newProductTestService(t, "product_toggle")
	shop := seedCartShop(t, db)
	product := seedCartProduct(t, db, shop.ID, "Milk", 40, true, true)

	toggled, err := svc.TogglePublish(shop.SellerID, product.ID)
	if err != nil {
		t.Fatalf("toggle publish failed: %v", err)
	}
	if toggled.Published {
		t.Fatalf("publish state should flip to false")
	}

	toggled, err = svc.TogglePublish(shop.SellerID, product.ID)
	if err != nil {
		t.Fatalf("toggle publish failed: %v", err)
	}
	if !toggled.Published {
		t.Fatalf("publish state should flip back to true")
	}

	if _, err := svc.TogglePublish(shop.SellerID+1, product.ID); err != ErrNotShopOwner {
		t.Fatalf("foreign seller want ErrNotShopOwner got %v", err)
	}
}

func TestSetInStock(t *testing.T) {
	svc, db := newProductTestService(t, "product_stock")
	shop := seedCartShop(t, db)
	product := seedCartProduct(t, db, shop.ID, "Milk", 40, true, true)

	updated, err := svc.SetInStock(shop.SellerID, product.ID, false)
	if err != nil {
		t.Fatalf("set in stock failed: %v", err)
	}
	if updated.InStock {
		t.Fatalf("product should be out of stock")
	}

	var loaded models.Product
	if err := db.First(&loaded, product.ID).Error; err != nil {
		t.Fatalf("load product failed: %v", err)
	}
	if loaded.InStock {
		t.Fatalf("stock flag should be persisted")
	}
}
