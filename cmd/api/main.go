package main

import (
	"NovaAff/internal/api/config"
	"NovaAff/internal/pkg/database"
	"NovaAff/internal/pkg/logger"
	"NovaAff/internal/pkg/security"
	"NovaAff/internal/pkg/storage"
	"NovaAff/internal/wire"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func main() {
	// 加载配置
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}
	cfg := config.Cfg

	// 初始化日志
	logger.InitLogger(cfg.Logstash)
	gin.SetMode(cfg.Server.Mode)

	// 令牌签发
	security.Configure(
		cfg.JWT.Secret,
		cfg.JWT.Issuer,
		time.Duration(cfg.JWT.AccessTTL)*time.Minute,
		time.Duration(cfg.JWT.RefreshTTL)*time.Minute,
	)

	// 数据库连接
	dbCfg := cfg.DB
	db, err := database.NewGormDB(&dbCfg)
	if err != nil {
		log.Error("Fatal error: failed to create database connection", "err", err)
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 附件存储
	store, err := storage.New(ctx, cfg.Storage, cfg.MinIO)
	if err != nil {
		log.Error("Fatal error: failed to initialize attachment storage", "err", err)
		panic(err)
	}

	// 依赖注入
	app, err := wire.BuildApplication(db, store, cfg)
	if err != nil {
		log.Error("Fatal error: failed to create application", "err", err)
		panic(err)
	}

	// 管理员账号
	if err = app.AuthService.BootstrapAdmin(ctx, cfg.Admin); err != nil {
		log.Error("Fatal error: failed to bootstrap admin account", "err", err)
		panic(err)
	}

	g, ctx := errgroup.WithContext(ctx)

	// HTTP 服务器
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	g.Go(func() error {
		log.Info("HTTP Server starting...", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// 优雅退出
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-ctx.Done():
		case sig := <-quit:
			log.Info("Received signal, shutting down...", "signal", sig)
			cancel()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP Server shutdown failed", "err", err)
		}

		if sqlDB, err := app.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		return nil
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("App exited with error", "err", err)
	}
	log.Info("App exited successfully.")
}
