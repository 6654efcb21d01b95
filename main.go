package main

import (
	"context"
	"fmt"
	"os"

	"github.com/TIANLI0/LumenKit/config"
	"github.com/TIANLI0/LumenKit/docs"
	"github.com/TIANLI0/LumenKit/handler"
	"github.com/TIANLI0/LumenKit/middleware"
	"github.com/TIANLI0/LumenKit/service"
	"github.com/TIANLI0/LumenKit/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
	GitBranch = "unknown"
)

func main() {
	// 加载配置
	cfg := config.New()

	// 初始化日志
	if err := utils.InitLogger(cfg.Server.Mode); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer utils.Sync()

	utils.Logger.Info("starting LumenKit server",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("git_commit", GitCommit),
		zap.String("git_branch", GitBranch))

	// 初始化Redis（可选结果缓存）
	var redisService *service.RedisService
	if cfg.Redis.Enabled {
		redisService = service.NewRedisService(&cfg.Redis)
		ctx := context.Background()
		if err := redisService.Ping(ctx); err != nil {
			utils.Logger.Warn("redis connection failed, cache disabled", zap.Error(err))
			redisService.Close()
			redisService = nil
		} else {
			utils.Logger.Info("redis connected successfully")
			defer redisService.Close()
		}
	}

	// 初始化强度计算服务
	intensityService := service.NewIntensityService()

	// 初始化Handler
	intensityHandler := handler.NewIntensityHandler(cfg, redisService, intensityService)

	// 设置Gin模式
	gin.SetMode(cfg.Server.Mode)

	// 创建路由
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())

	// 健康检查和版本信息
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	r.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
			"git_branch": GitBranch,
		})
	})

	// API路由
	r.POST("/calculate-intensity", intensityHandler.Calculate)

	// API文档
	r.GET("/swagger-ui", docs.SwaggerUI)
	r.GET("/api-docs/openapi.json", docs.OpenAPISpec)

	// 启动服务器
	utils.Logger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := r.Run(cfg.Server.Port); err != nil {
		utils.Logger.Fatal("failed to start server", zap.Error(err))
	}
}
