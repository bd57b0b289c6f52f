package provider

import (
	"github.com/packzo/ishop/internal/authz"
	"github.com/packzo/ishop/internal/cache"
	"github.com/packzo/ishop/internal/config"
	"github.com/packzo/ishop/internal/logger"
	"github.com/packzo/ishop/internal/models"
	"github.com/packzo/ishop/internal/queue"
	"github.com/packzo/ishop/internal/repository"
	"github.com/packzo/ishop/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo       repository.UserRepository
	SellerRepo     repository.SellerRepository
	ShopRepo       repository.ShopRepository
	ProductRepo    repository.ProductRepository
	CartRepo       repository.CartRepository
	ReadyOrderRepo repository.ReadyOrderRepository
	OrderRepo      repository.OrderRepository
	RevenueRepo    repository.RevenueRepository

	// Services
	AuthzService      *authz.Service
	UserAuthService   *service.UserAuthService
	SellerAuthService *service.SellerAuthService
	SlotService       *service.SlotService
	CartService       *service.CartService
	ReadyOrderService *service.ReadyOrderService
	OrderService      *service.OrderService
	ProductService    *service.ProductService
	ShopService       *service.ShopService
	RevenueService    *service.RevenueService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	container := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}
	container.initRepositories()
	container.initServices()
	return container
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.SellerRepo = repository.NewSellerRepository(db)
	c.ShopRepo = repository.NewShopRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.ReadyOrderRepo = repository.NewReadyOrderRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.RevenueRepo = repository.NewRevenueRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
	}
	c.AuthzService = authzService

	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.SellerAuthService = service.NewSellerAuthService(c.Config, c.SellerRepo)
	c.SlotService = service.NewSlotService()
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, c.ShopRepo)
	c.ReadyOrderService = service.NewReadyOrderService(
		models.DB,
		c.ReadyOrderRepo,
		c.CartRepo,
		c.ShopRepo,
		c.CartService,
		c.SlotService,
		c.QueueClient,
	)
	c.OrderService = service.NewOrderService(
		models.DB,
		c.OrderRepo,
		c.CartRepo,
		c.CartService,
		c.QueueClient,
		c.Config.Order.DeliveryExpireHours,
	)
	c.ProductService = service.NewProductService(c.ProductRepo, c.ShopRepo)
	c.ShopService = service.NewShopService(c.ShopRepo)
	c.RevenueService = service.NewRevenueService(c.RevenueRepo, c.ShopRepo)
}
