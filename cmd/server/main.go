package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"hris/backend/config"
	"hris/backend/internal/api/handler"
	"hris/backend/internal/api/router"
	"hris/backend/internal/repository"
	"hris/backend/internal/service"
	"hris/backend/pkg/database"
	"hris/backend/pkg/logger"
	"hris/backend/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径")
	flag.Parse()

	// ── 配置 ──
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// ── 日志 ──
	zlog, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	// ── 数据库 ──
	db, err := database.NewDB(&cfg.Database, zlog)
	if err != nil {
		zlog.Fatal("连接数据库失败", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		zlog.Fatal("获取底层数据库连接失败", zap.Error(err))
	}
	defer sqlDB.Close()

	// ── 数据库迁移 ──
	if err := database.RunMigrations(sqlDB, zlog); err != nil {
		zlog.Fatal("数据库迁移失败", zap.Error(err))
	}

	// ── Redis（不可用时降级，报表缓存与限流关闭） ──
	rdb, err := redis.NewClient(&cfg.Redis, zlog)
	if err != nil {
		zlog.Warn("Redis 连接失败，缓存与限流降级关闭", zap.Error(err))
		rdb = nil
	} else {
		defer rdb.Close()
	}

	// ── 依赖装配 ──
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, rdb, zlog)
	h := handler.NewHandler(svc)
	r := router.Setup(cfg, h, rdb, zlog)

	// ── HTTP 服务器 ──
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  90 * time.Second,
	}

	go func() {
		zlog.Info("HTTP 服务器启动", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("HTTP 服务器异常退出", zap.Error(err))
		}
	}()

	// ── 优雅关闭 ──
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("收到退出信号，开始优雅关闭")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("优雅关闭失败", zap.Error(err))
	}
	zlog.Info("服务已退出")
}
