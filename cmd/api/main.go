package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bonellirj/EchoDoTTT/config"
	_ "github.com/bonellirj/EchoDoTTT/docs" // Swagger docs
	"github.com/bonellirj/EchoDoTTT/internal/httpserver"
	taskHTTP "github.com/bonellirj/EchoDoTTT/internal/task/delivery/http"
	"github.com/bonellirj/EchoDoTTT/internal/task/usecase"
	"github.com/bonellirj/EchoDoTTT/pkg/auditlog"
	"github.com/bonellirj/EchoDoTTT/pkg/llmprovider"
	"github.com/bonellirj/EchoDoTTT/pkg/log"
	"github.com/bonellirj/EchoDoTTT/pkg/promptstore"
)

// @title       EchoDo TTT API
// @description Text-to-task: converts free-form natural language into structured tasks via LLM providers.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting EchoDo TTT...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM, nil)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	logger.Infof(ctx, "Configured LLM providers: %v", providers.Names())

	// 4. Prompt store
	prompts, err := promptstore.New(ctx, cfg.PromptStore.TableName, cfg.PromptStore.Region, cfg.PromptStore.CacheSize)
	if err != nil {
		logger.Error(ctx, "Failed to initialize prompt store: ", err)
		return
	}
	logger.Infof(ctx, "Prompt store table: %s, prompt_id: %s", cfg.PromptStore.TableName, cfg.PromptStore.PromptID)

	// 5. Audit logger (best-effort; Nop when disabled)
	var audit auditlog.Logger = auditlog.Nop{}
	if cfg.AuditLog.Enabled && cfg.AuditLog.Authorization != "" {
		audit = auditlog.NewClient(cfg.AuditLog.URL, cfg.AuditLog.Authorization, logger)
		logger.Info(ctx, "Audit logging enabled")
	} else {
		logger.Warn(ctx, "Audit logging disabled: AUDIT_LOG_AUTHORIZATION is missing or audit_log.enabled is false")
	}

	// 6. Task domain
	taskUC := usecase.New(logger, providers, audit)
	taskHandler := taskHTTP.New(logger, taskUC, prompts, cfg.PromptStore.PromptID, audit)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		TaskHandler: taskHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
