package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-rrlyrics/internal/i18n"
	"github.com/hazadus/go-rrlyrics/internal/remote"
	"github.com/hazadus/go-rrlyrics/internal/rrjson"
)

// createImportCommand создает команду import с привязкой к экземпляру приложения
func (app *Application) createImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file|url]",
		Short: "Append tracks from another .rr.json file",
		Long: `Read a .rr.json (or .json) file and append its tracks to the end of the
target file. The source may also be an http(s) URL of a published document.
On any error the target file is left unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.importFile(cmd.Context(), args[0])
		},
	}
}

func (app *Application) importFile(ctx context.Context, source string) error {
	var doc rrjson.Document
	var err error
	if remote.IsURL(source) {
		doc, err = remote.DecodeDocument(ctx, source)
	} else {
		doc, err = rrjson.DecodeFile(source)
	}
	if err != nil {
		fmt.Printf("❌ %s\n", i18n.ImportErrorMessage(app.Config.Locale, err))
		return fmt.Errorf("ошибка импорта %s: %w", source, err)
	}

	manager, err := app.loadDocument()
	if err != nil {
		return err
	}

	for _, record := range doc.Tracks {
		if mergeTrack(manager, record) {
			fmt.Printf("⚠️  Трек заменен: %s\n", record.Filename)
		}
	}
	if manager.Notes() == "" {
		manager.SetNotes(doc.Notes)
	}

	if err := app.saveDocument(manager); err != nil {
		return err
	}

	fmt.Printf("📥 %s %d\n", i18n.T(app.Config.Locale, i18n.ImportDone), len(doc.Tracks))
	fmt.Printf("📦 Файл: %s (треков: %d)\n", app.FilePath, manager.Len())
	return nil
}
