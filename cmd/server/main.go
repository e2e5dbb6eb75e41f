package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitfantasy/fixera/internal/config"
	"github.com/bitfantasy/fixera/internal/middleware"
	"github.com/bitfantasy/fixera/internal/shop/entity"
	"github.com/bitfantasy/fixera/internal/shop/handler"
	"github.com/bitfantasy/fixera/internal/shop/repository"
	"github.com/bitfantasy/fixera/internal/shop/service"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// 加载 .env 文件
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting fixera service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	// 初始化数据库
	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := entity.AutoMigrate(db); err != nil {
		zapLogger.Fatal("Failed to auto-migrate tables", zap.Error(err))
	}
	zapLogger.Info("Database migration completed")

	// 初始化 Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		zapLogger.Fatal("Failed to connect to redis", zap.Error(err))
	}

	// 装配依赖
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, rdb, cfg)
	handlers := handler.NewHandlers(services, cfg)

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(handlers, cfg, zapLogger)

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 启动服务器
	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func setupRouter(handlers *handler.Handlers, cfg *config.Config, zapLogger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// 健康检查
	router.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "fixera"})
	})
	router.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "fixera"})
	})

	// 版本信息
	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":    "fixera",
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	v1 := router.Group("/api/v1")

	// 认证（公开路由）
	auth := v1.Group("/auth")
	{
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/refresh", handlers.Auth.RefreshToken)
		auth.POST("/logout", handlers.Auth.Logout)
	}

	secured := v1.Group("")
	secured.Use(middleware.JWTAuth(cfg.JWT.Secret))
	{
		secured.GET("/auth/me", handlers.Auth.GetCurrentUser)

		// 用户管理（仅管理员）
		users := secured.Group("/users")
		users.Use(middleware.RequireRole(entity.RoleAdmin))
		{
			users.GET("", handlers.User.List)
			users.POST("", handlers.User.Create)
			users.GET("/:id", handlers.User.Get)
			users.PUT("/:id", handlers.User.Update)
			users.PUT("/:id/password", handlers.User.ChangePassword)
			users.DELETE("/:id", handlers.User.Delete)
		}
		secured.GET("/technicians", handlers.User.ListTechnicians)

		// 客户管理
		customers := secured.Group("/customers")
		{
			customers.GET("", handlers.Customer.List)
			customers.POST("", handlers.Customer.Create)
			customers.GET("/:id", handlers.Customer.Get)
			customers.PUT("/:id", handlers.Customer.Update)
			customers.DELETE("/:id", handlers.Customer.Delete)
		}

		// 商品管理
		products := secured.Group("/products")
		{
			products.GET("", handlers.Product.List)
			products.POST("", handlers.Product.Create)
			products.GET("/:id", handlers.Product.Get)
			products.PUT("/:id", handlers.Product.Update)
			products.DELETE("/:id", handlers.Product.Delete)
		}

		// 售出记录
		soldProducts := secured.Group("/sold-products")
		{
			soldProducts.POST("", handlers.Product.RecordSale)
			soldProducts.GET("/:serial", handlers.Product.GetSoldProduct)
		}

		// 库存管理
		inventory := secured.Group("/inventory")
		{
			inventory.GET("", handlers.Inventory.List)
			inventory.GET("/alerts", handlers.Inventory.GetAlerts)
			inventory.GET("/transactions", handlers.Inventory.ListTransactions)
			inventory.GET("/product/:productId", handlers.Inventory.GetByProduct)
			inventory.POST("/inbound", handlers.Inventory.Inbound)
			inventory.POST("/outbound", handlers.Inventory.Outbound)
			inventory.POST("/adjust", handlers.Inventory.Adjust)
		}

		// 维修工单
		repairs := secured.Group("/repairs")
		{
			repairs.GET("", handlers.Repair.List)
			repairs.POST("", handlers.Repair.Create)
			repairs.GET("/:id", handlers.Repair.Get)
			repairs.PUT("/:id", handlers.Repair.Update)
			repairs.DELETE("/:id", handlers.Repair.Delete)
			repairs.POST("/:id/status", handlers.Repair.ChangeStatus)
			repairs.GET("/:id/next-statuses", handlers.Repair.NextStatuses)
		}

		// 保修查询
		warranty := secured.Group("/warranty")
		{
			warranty.GET("/search/serials", handlers.Warranty.SearchSerials)
			warranty.GET("/search/phones", handlers.Warranty.SearchPhones)
			warranty.GET("/:serial", handlers.Warranty.Resolve)
		}

		// 报表导出
		reports := secured.Group("/reports")
		{
			reports.GET("/repairs.xlsx", handlers.Report.ExportRepairs)
			reports.GET("/inventory.xlsx", handlers.Report.ExportInventory)
		}
	}

	return router
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	return db, nil
}
