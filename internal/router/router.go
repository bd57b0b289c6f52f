package router

import (
	"fmt"
	"strings"

	"github.com/packzo/ishop/internal/cache"
	"github.com/packzo/ishop/internal/config"
	"github.com/packzo/ishop/internal/constants"
	publichandlers "github.com/packzo/ishop/internal/http/handlers/public"
	sellerhandlers "github.com/packzo/ishop/internal/http/handlers/seller"
	"github.com/packzo/ishop/internal/logger"
	"github.com/packzo/ishop/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按买家/卖家分组）
	publicHandler := publichandlers.New(c)
	sellerHandler := sellerhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	redisClient := cache.Client()
	userLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
	}
	sellerLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:seller_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	userAuth := UserAuthMiddleware(cfg, c.UserAuthService, c.UserRepo)
	userRBAC := UserRBACMiddleware(c.AuthzService)
	sellerAuth := SellerAuthMiddleware(cfg, c.SellerAuthService, c.SellerRepo)
	sellerRBAC := SellerRBACMiddleware(c.AuthzService)

	// 静态文件服务（商品图片）
	r.Static("/uploads", "./uploads")

	// 公开接口：店铺浏览、商品列表、取货时段
	r.GET("/api/public-shops", publicHandler.ListShops)
	r.GET("/shop-products/:shopId", publicHandler.ListShopProducts)
	r.GET("/api/slots", publicHandler.ListSlots)

	// 买家账号
	userAPI := r.Group("/api/user")
	{
		userAPI.POST("/register", publicHandler.Register)
		userAPI.POST("/login",
			RateLimitMiddleware(redisClient, userLoginRule, KeyByIPAndJSONField("email")),
			publicHandler.Login)
		userAPI.POST("/logout", userAuth, publicHandler.Logout)
		userAPI.GET("/check-auth", userAuth, publicHandler.CheckAuth)

		orders := userAPI.Group("/orders", userAuth, userRBAC)
		{
			orders.GET("", publicHandler.ListOrders)
			orders.GET("/ready", publicHandler.ListReadyOrders)
			orders.GET("/ready/summary", publicHandler.ReadyOrderSummary)
		}
	}

	// 购物车：历史前端同时使用带 /api 前缀与不带前缀的两套路径
	registerCartRoutes(r.Group("/cart", userAuth, userRBAC), publicHandler)
	registerCartRoutes(r.Group("/api/cart", userAuth, userRBAC), publicHandler)

	// 下单
	r.POST("/api/Rorder", userAuth, userRBAC, publicHandler.SubmitReadyOrder)
	r.POST("/orders", userAuth, userRBAC, publicHandler.PlaceOrder)

	// 卖家端
	sellerAPI := r.Group("/api/seller")
	{
		sellerAPI.POST("/login",
			RateLimitMiddleware(redisClient, sellerLoginRule, KeyByIPAndJSONField("email")),
			sellerHandler.Login)
		sellerAPI.POST("/logout", sellerAuth, sellerHandler.Logout)
		sellerAPI.GET("/check-auth", sellerAuth, sellerHandler.CheckAuth)

		authed := sellerAPI.Group("", sellerAuth, sellerRBAC)
		{
			authed.GET("/dashboard", sellerHandler.Dashboard)
			authed.GET("/shops", sellerHandler.GetShop)
			authed.POST("/shops", sellerHandler.CreateShop)
			authed.PATCH("/shops/status", sellerHandler.SetShopStatus)

			authed.GET("/products/:shopId", sellerHandler.ListProducts)
			authed.POST("/product", sellerHandler.CreateProduct)
			authed.PUT("/product/:id", sellerHandler.UpdateProduct)
			authed.DELETE("/product/:id", sellerHandler.DeleteProduct)
			authed.PUT("/product/toggle-publish/:id", sellerHandler.TogglePublish)
			authed.PUT("/product/stock/:id", sellerHandler.SetProductStock)

			authed.GET("/readyOrder/:shopId", sellerHandler.ListReadyOrders)
			authed.PUT("/readyOrder/:orderId", sellerHandler.UpdateReadyOrderStatus)

			authed.GET("/revenue/:shopId", sellerHandler.Revenue)
		}
	}

	return r
}

// registerCartRoutes 在给定分组下注册购物车路由
func registerCartRoutes(group *gin.RouterGroup, h *publichandlers.Handler) {
	group.GET("/:shopId", h.GetCart)
	group.POST("", h.AddToCart)
	group.PUT("/increase/:itemId", h.IncreaseQuantity)
	group.PUT("/decrease/:itemId", h.DecreaseQuantity)
}
