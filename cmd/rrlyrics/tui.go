package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-rrlyrics/internal/tui"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch TUI (Terminal User Interface)",
		Long: `Launch interactive terminal user interface. Tracks of the target file are
loaded at start and kept in memory; use the export screen to write them back.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.launchTUI()
		},
	}
}

func (app *Application) launchTUI() error {
	manager, err := app.loadDocument()
	if err != nil {
		return err
	}

	tuiApp := tui.NewApp(manager, tui.Options{
		Locale:           app.Config.Locale,
		DefaultExtension: app.Config.DefaultExtension,
		OutputDir:        app.Config.OutputDir,
		OutputName:       app.Config.OutputName,
		TargetPath:       app.FilePath,
	})

	if err := tuiApp.Run(); err != nil {
		return fmt.Errorf("ошибка TUI: %w", err)
	}
	return nil
}
