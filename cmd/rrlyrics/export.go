package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-rrlyrics/internal/rrjson"
	"github.com/hazadus/go-rrlyrics/internal/s3"
	"github.com/hazadus/go-rrlyrics/internal/track"
	"github.com/hazadus/go-rrlyrics/internal/uploader"
	"github.com/hazadus/go-rrlyrics/internal/utils"
)

type exportFlags struct {
	outDir string
	name   string
	copy   bool
	upload bool
}

// createExportCommand создает команду export с привязкой к экземпляру приложения
func (app *Application) createExportCommand(ctx context.Context) *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print, save, copy or upload the .rr.json document",
		Long: `Export the tracks of the target file. Without flags the document is
printed to stdout. --out writes <name>.rr.json into a directory, --copy puts it
into the clipboard and --upload publishes it to S3 storage.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Создаем контекст с таймаутом для загрузки
			exportCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
			defer cancel()
			return app.export(exportCtx, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.outDir, "out", "o", "", "directory to write <name>.rr.json into")
	cmd.Flags().StringVarP(&flags.name, "name", "n", app.Config.OutputName, "output file name without .rr.json")
	cmd.Flags().BoolVarP(&flags.copy, "copy", "c", false, "copy the document to the clipboard")
	cmd.Flags().BoolVarP(&flags.upload, "upload", "u", false, "upload the document to S3 storage")
	return cmd
}

func (app *Application) export(ctx context.Context, flags *exportFlags) error {
	manager, err := app.loadDocument()
	if err != nil {
		return err
	}

	content, err := rrjson.EncodeDocument(manager.ListTracks(), manager.Notes())
	if err != nil {
		return fmt.Errorf("ошибка сериализации: %w", err)
	}

	if flags.outDir == "" && !flags.copy && !flags.upload {
		fmt.Println(string(content))
		return nil
	}

	if flags.outDir != "" {
		path := filepath.Join(flags.outDir, rrjson.OutputFileName(flags.name))
		if err := os.MkdirAll(flags.outDir, 0755); err != nil {
			return fmt.Errorf("ошибка создания каталога: %w", err)
		}
		if err := os.WriteFile(path, content, 0644); err != nil {
			return fmt.Errorf("ошибка записи файла: %w", err)
		}
		fmt.Printf("💾 Сохранено: %s\n", path)
	}

	if flags.copy {
		if err := utils.CopyToClipboard(string(content)); err != nil {
			return fmt.Errorf("ошибка копирования в буфер обмена: %w", err)
		}
		fmt.Println("📋 Скопировано в буфер обмена")
	}

	if flags.upload {
		if err := app.upload(ctx, manager, flags.name); err != nil {
			return err
		}
	}
	return nil
}

// upload публикует документ в S3 с отображением прогресса
func (app *Application) upload(ctx context.Context, manager *track.Manager, name string) error {
	s3Uploader, err := app.storage()
	if err != nil {
		return err
	}

	fmt.Printf("📤 Загружаем %s в S3:\n", rrjson.OutputFileName(name))
	fmt.Printf("   Бакет: %s\n", app.Config.AwsBucketName)

	// Создаем канал для отслеживания прогресса
	progressChan := make(chan int64)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			select {
			case progress, ok := <-progressChan:
				if !ok {
					return
				}
				fmt.Printf("\r📊 Отправлено: %s", uploader.FormatFileSize(progress))
			case <-ctx.Done():
				fmt.Printf("\n🚫 Загрузка отменена\n")
				return
			}
		}
	}()

	result, err := uploader.NewService(s3Uploader).Publish(ctx, manager, name, func(bytesRead int64) {
		select {
		case progressChan <- bytesRead:
		case <-done:
		}
	})

	close(progressChan)
	<-done

	if err != nil {
		return fmt.Errorf("ошибка публикации: %w", err)
	}

	fmt.Printf("\n✅ Файл загружен: %d треков, %s за %s\n",
		result.Tracks, uploader.FormatFileSize(result.Size), uploader.FormatDuration(result.Duration))
	fmt.Printf("   URL: %s\n", result.URL)
	return nil
}

// storage создает клиент S3 из конфигурации
func (app *Application) storage() (uploader.FileStorage, error) {
	if !app.Config.HasStorage() {
		return nil, fmt.Errorf("хранилище не настроено: укажите aws_bucket_name и aws_region в %s", defaultConfigPath)
	}

	storage, err := app.newUploader(&s3.Config{
		Region:     app.Config.AwsRegion,
		AccessKey:  app.Config.AwsAccessKey,
		SecretKey:  app.Config.AwsSecretKey,
		Endpoint:   app.Config.AwsEndpoint,
		BucketName: app.Config.AwsBucketName,
		Prefix:     app.Config.AwsPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания S3 uploader: %w", err)
	}
	return storage, nil
}
