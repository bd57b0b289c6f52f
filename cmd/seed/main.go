package main

import (
	"github.com/packzo/ishop/internal/config"
	"github.com/packzo/ishop/internal/logger"
	"github.com/packzo/ishop/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 演示卖家
	seller := models.Seller{
		Email:        "demo-seller@packzo.local",
		PasswordHash: mustHash(stdLog.Fatalf, "seller123"),
		Name:         "Demo Seller",
		Phone:        "9876543210",
		Address:      "MG Road, Bengaluru",
		Status:       "active",
	}
	var existingSeller models.Seller
	if err := models.DB.Where("email = ?", seller.Email).First(&existingSeller).Error; err != nil {
		if err := models.DB.Create(&seller).Error; err != nil {
			stdLog.Fatalf("Failed to create seller: %v", err)
		}
		stdLog.Printf("Created seller: %s", seller.Email)
	} else {
		seller = existingSeller
		stdLog.Printf("Seller already exists: %s", seller.Email)
	}

	// 演示买家
	user := models.User{
		Email:        "demo-user@packzo.local",
		PasswordHash: mustHash(stdLog.Fatalf, "user123"),
		Name:         "Asha Rao",
		Phone:        "9876500001",
		Address:      "Indiranagar, Bengaluru",
		Status:       "active",
	}
	var existingUser models.User
	if err := models.DB.Where("email = ?", user.Email).First(&existingUser).Error; err != nil {
		if err := models.DB.Create(&user).Error; err != nil {
			stdLog.Printf("Failed to create user: %v", err)
		} else {
			stdLog.Printf("Created user: %s", user.Email)
		}
	} else {
		stdLog.Printf("User already exists: %s", user.Email)
	}

	// 演示店铺
	shops := []models.Shop{
		{
			SellerID:    seller.ID,
			Name:        "Fresh Daily Mart",
			Description: "Groceries and daily essentials",
			Image:       "https://images.unsplash.com/photo-1542838132-92c53300491e?w=800",
			Address:     "12 Market Street, Bengaluru",
			Open:        true,
		},
		{
			SellerID:    seller.ID,
			Name:        "Corner Bakery",
			Description: "Fresh bread and snacks every morning",
			Image:       "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=800",
			Address:     "4 Church Lane, Bengaluru",
			Open:        true,
		},
	}
	shopIDs := map[string]uint{}
	for _, shop := range shops {
		var existing models.Shop
		if err := models.DB.Where("seller_id = ? AND name = ?", shop.SellerID, shop.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&shop).Error; err != nil {
				stdLog.Printf("Failed to create shop %s: %v", shop.Name, err)
				continue
			}
			stdLog.Printf("Created shop: %s", shop.Name)
			shopIDs[shop.Name] = shop.ID
			continue
		}
		stdLog.Printf("Shop already exists: %s", existing.Name)
		shopIDs[existing.Name] = existing.ID
	}

	// 演示商品
	products := []models.Product{
		{
			ShopID:      shopIDs["Fresh Daily Mart"],
			Name:        "Milk",
			Description: "Toned milk, 500ml pouch",
			Category:    "Dairy",
			MRP:         money("45"),
			Price:       money("40"),
			Image:       "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=800",
			InStock:     true,
			Published:   true,
		},
		{
			ShopID:      shopIDs["Fresh Daily Mart"],
			Name:        "Basmati Rice",
			Description: "Premium long grain, 1kg",
			Category:    "Staples",
			MRP:         money("160"),
			Price:       money("145.50"),
			Image:       "https://images.unsplash.com/photo-1586201375761-83865001e31c?w=800",
			InStock:     true,
			Published:   true,
		},
		{
			ShopID:      shopIDs["Corner Bakery"],
			Name:        "Sourdough Loaf",
			Description: "Baked fresh every morning",
			Category:    "Bread",
			MRP:         money("120"),
			Price:       money("110"),
			Image:       "https://images.unsplash.com/photo-1585478259715-876acc5be8eb?w=800",
			InStock:     true,
			Published:   true,
		},
		{
			ShopID:      shopIDs["Corner Bakery"],
			Name:        "Butter Croissant",
			Description: "Flaky and buttery",
			Category:    "Snacks",
			MRP:         money("80"),
			Price:       money("75"),
			Image:       "https://images.unsplash.com/photo-1555507036-ab1f4038808a?w=800",
			InStock:     false,
			Published:   true,
		},
	}
	for _, product := range products {
		if product.ShopID == 0 {
			continue
		}
		var existing models.Product
		if err := models.DB.Where("shop_id = ? AND name = ?", product.ShopID, product.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Name, err)
				continue
			}
			stdLog.Printf("Created product: %s", product.Name)
			continue
		}
		stdLog.Printf("Product already exists: %s", existing.Name)
	}

	stdLog.Printf("Seed finished")
}

func money(value string) models.Money {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return models.Money{}
	}
	return models.NewMoneyFromDecimal(amount)
}

func mustHash(fatalf func(string, ...interface{}), password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fatalf("Failed to hash password: %v", err)
	}
	return string(hash)
}
