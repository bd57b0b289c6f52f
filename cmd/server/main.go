package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/packzo/ishop/internal/app"
	"github.com/packzo/ishop/internal/config"
	"github.com/packzo/ishop/internal/logger"
	"github.com/packzo/ishop/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiGreen = "\033[32m"
	ansiCyan  = "\033[36m"
)

func main() {
	printStartupBanner()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	checkJWTSecret(stdLog.Fatalf, stdLog.Printf, cfg.Server.Mode, "user_jwt", cfg.UserJWT.SecretKey)
	checkJWTSecret(stdLog.Fatalf, stdLog.Printf, cfg.Server.Mode, "seller_jwt", cfg.SellerJWT.SecretKey)

	// 初始化数据库
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}

	// 自动迁移数据库表
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}

	// 初始化默认卖家账号
	defaultSellerEmail := os.Getenv("PZ_DEFAULT_SELLER_EMAIL")
	defaultSellerPass := os.Getenv("PZ_DEFAULT_SELLER_PASSWORD")
	if cfg.Server.Mode == "release" && defaultSellerPass == "" {
		stdLog.Printf("警告: 未设置 PZ_DEFAULT_SELLER_PASSWORD，已跳过默认卖家初始化")
	} else if err := models.InitDefaultSeller(defaultSellerEmail, defaultSellerPass); err != nil {
		stdLog.Printf("警告: 初始化默认卖家失败: %v", err)
	}

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 解析命令行参数
	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "启动模式: all (默认), api, worker")
	flag.Parse()

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func checkJWTSecret(fatalf, printf func(string, ...interface{}), mode, name, secret string) {
	if !isWeakSecret(secret) {
		return
	}
	if mode == "release" {
		fatalf("%s secret 过弱或仍为默认值，请在生产环境中配置强随机密钥", name)
		return
	}
	printf("警告: %s secret 过弱或仍为默认值，建议在生产环境中更换", name)
}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	if strings.Contains(normalized, "change-me") ||
		strings.Contains(normalized, "change-in-production") ||
		strings.Contains(normalized, "your-secret-key") {
		return true
	}
	return false
}

func printStartupBanner() {
	fmt.Println(ansiCyan + "██████╗  █████╗  ██████╗██╗  ██╗███████╗ ██████╗ " + ansiReset)
	fmt.Println(ansiCyan + "██╔══██╗██╔══██╗██╔════╝██║ ██╔╝╚══███╔╝██╔═══██╗" + ansiReset)
	fmt.Println(ansiCyan + "██████╔╝███████║██║     █████╔╝   ███╔╝ ██║   ██║" + ansiReset)
	fmt.Println(ansiCyan + "██╔═══╝ ██╔══██║██║     ██╔═██╗  ███╔╝  ██║   ██║" + ansiReset)
	fmt.Println(ansiCyan + "██║     ██║  ██║╚██████╗██║  ██╗███████╗╚██████╔╝" + ansiReset)
	fmt.Println(ansiCyan + "╚═╝     ╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚══════╝ ╚═════╝ " + ansiReset)
	fmt.Println(ansiGreen + ansiBold + "Packzo IShop API" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}
