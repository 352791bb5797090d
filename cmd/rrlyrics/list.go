package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/hazadus/go-rrlyrics/internal/utils"
)

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tracks of the target file",
		Long:    `Display the tracks of the target .rr.json file with a short lyrics preview.`,
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.listTracks()
		},
	}
}

func (app *Application) listTracks() error {
	manager, err := app.loadDocument()
	if err != nil {
		return err
	}

	if notes := manager.Notes(); notes != "" {
		fmt.Printf("📝 Заметки: %s\n", notes)
	}

	if manager.Len() == 0 {
		fmt.Println("📚 Треков пока нет. Добавьте трек с помощью команды 'add' или 'import'.")
		return nil
	}

	fmt.Printf("📚 Найдено треков: %d\n\n", manager.Len())

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Файл", "Текст", "Автор слов", "Композитор"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetRowLine(false)

	for i, t := range manager.ListTracks() {
		table.Append([]string{
			strconv.Itoa(i + 1),
			t.Filename,
			utils.LyricsPreview(t.Lyrics),
			t.Lyricist,
			t.Composer,
		})
	}
	table.Render()

	fmt.Println()
	fmt.Println("💡 Используйте 'rrlyrics edit [номер]' для изменения трека")
	return nil
}
