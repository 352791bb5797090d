package main

import (
	"context"

	"github.com/spf13/cobra"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rrlyrics",
		Short: "Build .rr.json lyrics files for audio albums",
		Long: `A command line tool to collect song lyrics for audio files and export them
as a .rr.json document keyed by audio file name.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&app.FilePath, "file", "f", app.FilePath, "target .rr.json file")

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createAddCommand())
	rootCmd.AddCommand(app.createEditCommand())
	rootCmd.AddCommand(app.createDeleteCommand())
	rootCmd.AddCommand(app.createMoveCommand())
	rootCmd.AddCommand(app.createImportCommand())
	rootCmd.AddCommand(app.createExportCommand(ctx))
	rootCmd.AddCommand(app.createUnpublishCommand(ctx))
	rootCmd.AddCommand(app.createListCommand())
	rootCmd.AddCommand(app.createNotesCommand())
	rootCmd.AddCommand(app.createScanCommand())
	rootCmd.AddCommand(app.createSearchCommand())
	rootCmd.AddCommand(app.createTUICommand())

	return rootCmd
}
