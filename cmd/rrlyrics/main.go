package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/hazadus/go-rrlyrics/internal/config"
	"github.com/hazadus/go-rrlyrics/internal/rrjson"
	"github.com/hazadus/go-rrlyrics/internal/s3"
	"github.com/hazadus/go-rrlyrics/internal/uploader"
)

const (
	defaultConfigPath = "~/.rrlyrics"
)

// Application хранит конфигурацию и общие для команд зависимости
type Application struct {
	Config   *config.Config
	FilePath string // Целевой файл .rr.json, с которым работают команды

	// newUploader создает клиент хранилища; подменяется в тестах
	newUploader func(cfg *s3.Config) (uploader.FileStorage, error)
}

// NewApplication создает приложение с файлом по умолчанию из конфигурации
func NewApplication(cfg *config.Config) *Application {
	return &Application{
		Config:      cfg,
		FilePath:    filepath.Join(cfg.OutputDir, rrjson.OutputFileName(cfg.OutputName)),
		newUploader: newS3Uploader,
	}
}

func newS3Uploader(cfg *s3.Config) (uploader.FileStorage, error) {
	return s3.NewUploader(cfg)
}

func main() {
	cfg, err := config.LoadConfig(defaultConfigPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := NewApplication(cfg)
	rootCmd := app.createRootCommand(ctx)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
