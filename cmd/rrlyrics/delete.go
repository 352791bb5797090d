package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createDeleteCommand создает команду delete с привязкой к экземпляру приложения
func (app *Application) createDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete [position]",
		Aliases: []string{"rm"},
		Short:   "Delete a track by position",
		Long:    `Delete a track from the target .rr.json file by its position in the list.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.deleteTrack(args[0])
		},
	}
}

func (app *Application) deleteTrack(position string) error {
	manager, err := app.loadDocument()
	if err != nil {
		return err
	}

	record, err := resolvePosition(manager, position)
	if err != nil {
		return err
	}

	fmt.Printf("🗑️  Удаляем трек: %s\n", record.Filename)
	manager.Remove(record.ID)

	if err := app.saveDocument(manager); err != nil {
		return fmt.Errorf("ошибка сохранения данных: %w", err)
	}

	fmt.Printf("✅ Трек удален, осталось треков: %d\n", manager.Len())
	return nil
}
