package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"contract-consult/api/handler"
	"contract-consult/api/middleware"
	"contract-consult/api/router"
	"contract-consult/config"
	"contract-consult/logic/chat"
	"contract-consult/logic/consult"
	"contract-consult/pkg/logger"
	"contract-consult/service"
	"contract-consult/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动 Web 服务",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// .env 可选，不覆盖已存在的环境变量
	dotenvErr := godotenv.Load()

	// 1. 配置 + 日志
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(&logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if dotenvErr != nil {
		slog.Debug("no .env loaded", "error", dotenvErr)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 2. 模板，缺失时拒绝启动
	tmpl, err := web.LoadTemplates(cfg.Server.TemplateDir)
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. 初始化 LLM Model（全局复用，只读）
	chatModel, err := chat.NewChatModel(ctx, chat.Options{
		Provider: cfg.LLM.Provider,
		BaseURL:  cfg.LLM.BaseURL,
		APIKey:   cfg.LLM.APIKey,
		Model:    cfg.LLM.Model,
		Timeout:  cfg.LLM.Timeout,
	})
	if err != nil {
		return err
	}
	slog.Info("llm model ready", "provider", cfg.LLM.Provider, "model", cfg.LLM.Model)

	// 4. Service + Handler
	consultSvc := service.NewConsultService(consult.NewGenerator(chatModel), cfg.LLM.Timeout)
	reviewHandler := handler.NewReviewHandler(service.NewFixtureSource(), consultSvc)

	// 5. Web Server
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())
	r.SetHTMLTemplate(tmpl)
	router.RegisterRoutes(r, reviewHandler)

	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:     r,
		ReadTimeout: 30 * time.Second,
		// 需要覆盖一次完整的 LLM 调用
		WriteTimeout: cfg.LLM.Timeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	slog.Info("server exited gracefully")
	return nil
}
