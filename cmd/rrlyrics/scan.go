package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-rrlyrics/internal/metadata"
)

// createScanCommand создает команду scan с привязкой к экземпляру приложения
func (app *Application) createScanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [directory]",
		Short: "Add tracks from lyrics embedded in audio files",
		Long: `Read tags of audio files in a directory and add a track for every file
that carries embedded lyrics. The file name becomes the key, the composer tag
is kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.scanDirectory(args[0])
		},
	}
}

func (app *Application) scanDirectory(dir string) error {
	infos, err := metadata.NewExtractor().ScanDir(dir)
	if err != nil {
		return err
	}

	if len(infos) == 0 {
		fmt.Printf("🔍 В каталоге %s нет аудиофайлов\n", dir)
		return nil
	}

	manager, err := app.loadDocument()
	if err != nil {
		return err
	}

	added := 0
	for _, info := range infos {
		record, ok := info.Record()
		if !ok {
			fmt.Printf("⏭️  Без текста: %s\n", info.Filename)
			continue
		}
		added++
		if mergeTrack(manager, record) {
			fmt.Printf("⚠️  Трек заменен: %s\n", record.Filename)
			continue
		}
		fmt.Printf("🎵 %s\n", record.Filename)
	}

	if added == 0 {
		fmt.Println("🔍 Ни в одном файле нет встроенного текста")
		return nil
	}

	if err := app.saveDocument(manager); err != nil {
		return err
	}

	fmt.Printf("✅ Добавлено треков: %d из %d\n", added, len(infos))
	return nil
}
