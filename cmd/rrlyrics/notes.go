package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// createNotesCommand создает команду notes с привязкой к экземпляру приложения
func (app *Application) createNotesCommand() *cobra.Command {
	var clearNotes bool

	cmd := &cobra.Command{
		Use:   "notes [text]",
		Short: "Show or set album notes",
		Long: `Without arguments print the album notes of the target file.
With arguments replace them. Notes are stored under the reserved "_meta" key.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return app.albumNotes(args, clearNotes)
		},
	}
	cmd.Flags().BoolVar(&clearNotes, "clear", false, "remove album notes")
	return cmd
}

func (app *Application) albumNotes(args []string, clearNotes bool) error {
	manager, err := app.loadDocument()
	if err != nil {
		return err
	}

	if len(args) == 0 && !clearNotes {
		if manager.Notes() == "" {
			fmt.Println("📝 Заметок нет")
			return nil
		}
		fmt.Printf("📝 %s\n", manager.Notes())
		return nil
	}

	manager.SetNotes(strings.TrimSpace(strings.Join(args, " ")))
	if err := app.saveDocument(manager); err != nil {
		return err
	}

	if manager.Notes() == "" {
		fmt.Println("🧹 Заметки удалены")
	} else {
		fmt.Println("✅ Заметки сохранены")
	}
	return nil
}
