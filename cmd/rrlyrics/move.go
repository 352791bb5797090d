package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// createMoveCommand создает команду move с привязкой к экземпляру приложения
func (app *Application) createMoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "move [from] [to]",
		Short: "Move a track to another position",
		Long: `Move the track at position FROM so that it ends up at position TO.
Positions start at 1.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.moveTrack(args[0], args[1])
		},
	}
}

func (app *Application) moveTrack(fromArg, toArg string) error {
	manager, err := app.loadDocument()
	if err != nil {
		return err
	}

	record, err := resolvePosition(manager, fromArg)
	if err != nil {
		return err
	}
	to, err := strconv.Atoi(toArg)
	if err != nil {
		return fmt.Errorf("неверная позиция '%s': позиция должна быть числом", toArg)
	}

	from := manager.IndexOf(record.ID)
	if !manager.Reorder(from, to-1) {
		return fmt.Errorf("позиция %d вне списка (всего треков: %d)", to, manager.Len())
	}

	if err := app.saveDocument(manager); err != nil {
		return err
	}

	fmt.Printf("↕️  Трек %s перемещен: %d → %d\n", record.Filename, from+1, to)
	return nil
}
