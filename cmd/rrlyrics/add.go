package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/hazadus/go-rrlyrics/internal/data"
	"github.com/hazadus/go-rrlyrics/internal/i18n"
)

var (
	// errRequiredFields возвращается, если имя файла или текст не заданы
	errRequiredFields = errors.New("имя файла и текст песни обязательны")
	// errDuplicateFilename возвращается, если трек с таким именем файла уже есть
	errDuplicateFilename = errors.New("трек с таким именем файла уже есть")
)

// stdinIsTerminal сообщает, можно ли задать недостающие поля в интерактивной форме
var stdinIsTerminal = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// trackFlags поля трека, задаваемые флагами команд add и edit
type trackFlags struct {
	trackNumber string
	title       string
	extension   string
	filename    string
	lyrics      string
	lyricsFile  string
	lyricist    string
	composer    string
}

func (f *trackFlags) register(cmd *cobra.Command, defaultExtension string) {
	cmd.Flags().StringVar(&f.trackNumber, "track", "", "track number (digits, up to 2)")
	cmd.Flags().StringVar(&f.title, "title", "", "song title")
	cmd.Flags().StringVar(&f.extension, "ext", defaultExtension, "audio file extension "+strings.Join(data.Extensions, ", "))
	cmd.Flags().StringVar(&f.filename, "filename", "", "full audio file name (overrides --track, --title and --ext)")
	cmd.Flags().StringVar(&f.lyrics, "lyrics", "", "song lyrics")
	cmd.Flags().StringVar(&f.lyricsFile, "lyrics-file", "", "read lyrics from file ('-' for stdin)")
	cmd.Flags().StringVar(&f.lyricist, "lyricist", "", "lyricist")
	cmd.Flags().StringVar(&f.composer, "composer", "", "composer")
}

// validateExtension проверяет, что расширение входит в список поддерживаемых
func (f *trackFlags) validateExtension() error {
	if !slices.Contains(data.Extensions, f.extension) {
		return fmt.Errorf("неподдерживаемое расширение %q, допустимые: %s", f.extension, strings.Join(data.Extensions, ", "))
	}
	return nil
}

// readLyrics возвращает текст из --lyrics или --lyrics-file
func (f *trackFlags) readLyrics(stdin io.Reader) (string, error) {
	if f.lyricsFile == "" {
		return f.lyrics, nil
	}

	var raw []byte
	var err error
	if f.lyricsFile == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(f.lyricsFile)
	}
	if err != nil {
		return "", fmt.Errorf("ошибка чтения текста: %w", err)
	}
	return string(raw), nil
}

// createAddCommand создает команду add с привязкой к экземпляру приложения
func (app *Application) createAddCommand() *cobra.Command {
	flags := &trackFlags{}
	var replace bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a track with lyrics",
		Long: `Add a track to the target .rr.json file. The file name is built from
--track, --title and --ext ("01 - Title.m4a") or given with --filename.
Missing fields are asked interactively when stdin is a terminal.
A track with an existing file name is refused unless --replace is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.addTrack(cmd, flags, replace)
		},
	}
	flags.register(cmd, app.Config.DefaultExtension)
	cmd.Flags().BoolVar(&replace, "replace", false, "replace the track with the same file name in place")
	return cmd
}

func (app *Application) addTrack(cmd *cobra.Command, flags *trackFlags, replace bool) error {
	if err := flags.validateExtension(); err != nil {
		return err
	}

	lyrics, err := flags.readLyrics(cmd.InOrStdin())
	if err != nil {
		return err
	}

	filename := flags.filename
	if filename == "" {
		filename = data.FormatFilename(flags.trackNumber, strings.TrimSpace(flags.title), flags.extension)
	}

	if (filename == "" || strings.TrimSpace(lyrics) == "") && flags.lyricsFile != "-" && stdinIsTerminal() {
		form := &trackForm{
			trackNumber: flags.trackNumber,
			title:       flags.title,
			extension:   flags.extension,
			lyrics:      lyrics,
			lyricist:    flags.lyricist,
			composer:    flags.composer,
		}
		if err := form.run(app.Config.Locale); err != nil {
			return fmt.Errorf("ошибка ввода: %w", err)
		}
		filename = data.FormatFilename(form.trackNumber, strings.TrimSpace(form.title), form.extension)
		lyrics, flags.lyricist, flags.composer = form.lyrics, form.lyricist, form.composer
	}

	lyrics = strings.TrimSpace(lyrics)
	record := data.NewTrackRecord(filename, lyrics, strings.TrimSpace(flags.lyricist), strings.TrimSpace(flags.composer))
	if !record.IsValid() {
		return errRequiredFields
	}

	manager, err := app.loadDocument()
	if err != nil {
		return err
	}
	if existing, ok := manager.TrackByFilename(record.Filename); ok && !replace {
		return fmt.Errorf("%w: %q (номер %d), используйте --replace или edit",
			errDuplicateFilename, record.Filename, manager.IndexOf(existing.ID)+1)
	}

	replaced := mergeTrack(manager, record)
	if err := app.saveDocument(manager); err != nil {
		return err
	}

	if replaced {
		existing, _ := manager.TrackByFilename(record.Filename)
		fmt.Printf("♻️  Трек заменен: %d. %s\n", manager.IndexOf(existing.ID)+1, record.Filename)
	} else {
		fmt.Printf("✅ Трек добавлен: %d. %s\n", manager.Len(), record.Filename)
	}
	fmt.Printf("📦 Файл: %s\n", app.FilePath)
	return nil
}

// trackForm интерактивная форма трека
type trackForm struct {
	trackNumber string
	title       string
	extension   string
	lyrics      string
	lyricist    string
	composer    string
}

func (f *trackForm) run(locale string) error {
	t := func(key i18n.Key) string { return i18n.T(locale, key) }

	required := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(t(i18n.FormRequiredFields))
		}
		return nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(t(i18n.FormTrackNumber)).
				Placeholder("01").
				CharLimit(2).
				Validate(func(s string) error {
					if data.SanitizeTrackNumber(s) != s {
						return errors.New("только цифры")
					}
					return required(s)
				}).
				Value(&f.trackNumber),
			huh.NewInput().
				Title(t(i18n.FormSongTitle)).
				Validate(required).
				Value(&f.title),
			huh.NewSelect[string]().
				Title(t(i18n.FormExtension)).
				Options(huh.NewOptions(data.Extensions...)...).
				Value(&f.extension),
		),
		huh.NewGroup(
			huh.NewText().
				Title(t(i18n.FormLyrics)).
				Validate(required).
				Value(&f.lyrics),
			huh.NewInput().
				Title(t(i18n.FormLyricist)).
				Value(&f.lyricist),
			huh.NewInput().
				Title(t(i18n.FormComposer)).
				Value(&f.composer),
		),
	).Run()
}
