package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-rrlyrics/internal/data"
	"github.com/hazadus/go-rrlyrics/internal/track"
)

// createEditCommand создает команду edit с привязкой к экземпляру приложения
func (app *Application) createEditCommand() *cobra.Command {
	flags := &trackFlags{}

	cmd := &cobra.Command{
		Use:   "edit [position]",
		Short: "Edit a track by position",
		Long: `Edit a track in place. Only the given flags are changed; the track keeps
its position. Use --lyricist "" or --composer "" to clear a credit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.editTrack(cmd, args[0], flags)
		},
	}
	flags.register(cmd, app.Config.DefaultExtension)
	return cmd
}

func (app *Application) editTrack(cmd *cobra.Command, position string, flags *trackFlags) error {
	manager, err := app.loadDocument()
	if err != nil {
		return err
	}

	target, err := resolvePosition(manager, position)
	if err != nil {
		return err
	}

	record, _ := manager.BeginEdit(target.ID)
	fields := track.EditFields{
		Filename: record.Filename,
		Lyrics:   record.Lyrics,
		Lyricist: record.Lyricist,
		Composer: record.Composer,
	}

	changed := cmd.Flags().Changed
	filename, err := editedFilename(record.Filename, flags, changed)
	if err != nil {
		return err
	}
	fields.Filename = filename
	if other, ok := manager.TrackByFilename(filename); ok && other.ID != target.ID {
		manager.CancelEdit()
		return fmt.Errorf("%w: %q (номер %d)", errDuplicateFilename, filename, manager.IndexOf(other.ID)+1)
	}

	if changed("lyrics") || changed("lyrics-file") {
		lyrics, err := flags.readLyrics(cmd.InOrStdin())
		if err != nil {
			return err
		}
		fields.Lyrics = strings.TrimSpace(lyrics)
	}
	if changed("lyricist") {
		fields.Lyricist = strings.TrimSpace(flags.lyricist)
	}
	if changed("composer") {
		fields.Composer = strings.TrimSpace(flags.composer)
	}

	if !manager.SubmitEdit(fields) {
		return errRequiredFields
	}
	if err := app.saveDocument(manager); err != nil {
		return err
	}

	updated, _ := manager.TrackByID(target.ID)
	fmt.Printf("✏️  Трек обновлен: %s. %s\n", position, updated.Filename)
	return nil
}

// editedFilename применяет флаги имени файла к текущему имени
func editedFilename(current string, flags *trackFlags, changed func(string) bool) (string, error) {
	if changed("filename") {
		return flags.filename, nil
	}
	if !changed("track") && !changed("title") && !changed("ext") {
		return current, nil
	}
	if err := flags.validateExtension(); err != nil {
		return "", err
	}

	number, title, extension, ok := data.ParseFilename(current)
	if !ok && (!changed("track") || !changed("title")) {
		return "", fmt.Errorf("имя файла %q не разбирается на номер и название, укажите --track и --title или --filename", current)
	}
	if changed("track") {
		number = flags.trackNumber
	}
	if changed("title") {
		title = strings.TrimSpace(flags.title)
	}
	if changed("ext") || !ok {
		extension = flags.extension
	}

	filename := data.FormatFilename(number, title, extension)
	if filename == "" {
		return "", errRequiredFields
	}
	return filename, nil
}
