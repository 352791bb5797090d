package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-rrlyrics/internal/rrjson"
)

// createUnpublishCommand создает команду unpublish с привязкой к экземпляру приложения
func (app *Application) createUnpublishCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "unpublish [name]",
		Short: "Delete a published .rr.json document from S3 storage",
		Long: `Delete <name>.rr.json uploaded with 'export --upload'. Without a name
the output name from the configuration is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := app.Config.OutputName
			if len(args) == 1 {
				name = args[0]
			}

			deleteCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			return app.unpublish(deleteCtx, name)
		},
	}
}

func (app *Application) unpublish(ctx context.Context, name string) error {
	storage, err := app.storage()
	if err != nil {
		return err
	}

	fileName := rrjson.OutputFileName(name)
	fmt.Printf("🗑️  Удаляем из S3: %s\n", fileName)

	if err := storage.DeleteFile(ctx, fileName); err != nil {
		return err
	}

	fmt.Println("✅ Файл удален из S3")
	return nil
}
