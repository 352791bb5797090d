// Package i18n содержит переводы сообщений интерфейса
package i18n

import (
	"errors"
	"sort"

	"github.com/hazadus/go-rrlyrics/internal/rrjson"
)

// DefaultLocale язык по умолчанию
const DefaultLocale = "ru"

// Key ключ сообщения
type Key string

// Ключи сообщений
const (
	ImportInvalidFormat Key = "import.error.invalid_format"
	ImportInvalidJSON   Key = "import.error.invalid_json"
	ImportEmpty         Key = "import.error.empty"
	ImportParseFailed   Key = "import.error.parse_failed"
	ImportPrompt        Key = "import.prompt"
	ImportDone          Key = "import.done"
	ImportLoading       Key = "import.loading"
	ImportHelp          Key = "import.help"

	FormTitleAdd       Key = "form.title.add"
	FormTitleEdit      Key = "form.title.edit"
	FormTrackNumber    Key = "form.track_number"
	FormSongTitle      Key = "form.song_title"
	FormExtension      Key = "form.extension"
	FormFilename       Key = "form.filename"
	FormLyrics         Key = "form.lyrics"
	FormLyricist       Key = "form.lyricist"
	FormComposer       Key = "form.composer"
	FormSearchLyrics   Key = "form.search_lyrics"
	FormButtonAdd      Key = "form.button.add"
	FormButtonUpdate   Key = "form.button.update"
	FormRequiredFields Key = "form.required"
	FormHelp           Key = "form.help"

	ListTitle     Key = "list.title"
	ListEmpty     Key = "list.empty"
	ListEmptyHint Key = "list.empty_hint"
	ListHelp      Key = "list.help"
	ListGoodbye   Key = "list.goodbye"

	PreviewTitle    Key = "preview.title"
	PreviewCopy     Key = "preview.copy"
	PreviewCopied   Key = "preview.copied"
	PreviewSaved    Key = "preview.saved"
	PreviewHelp     Key = "preview.help"
	PreviewFilename Key = "preview.filename"
)

var translations = map[string]map[Key]string{
	"en": {
		ImportInvalidFormat: "Please select a .rr.json file",
		ImportInvalidJSON:   "Invalid JSON format. Expected an object.",
		ImportEmpty:         "No tracks found in the file.",
		ImportParseFailed:   "Failed to parse JSON file.",
		ImportPrompt:        "Path to .rr.json file",
		ImportDone:          "Imported tracks:",
		ImportLoading:       "⏳ Loading...",
		ImportHelp:          "enter: import • esc: back",

		FormTitleAdd:       "Add Track",
		FormTitleEdit:      "Edit Track",
		FormTrackNumber:    "Track #",
		FormSongTitle:      "Song Title",
		FormExtension:      "Format",
		FormFilename:       "Filename:",
		FormLyrics:         "Lyrics",
		FormLyricist:       "Lyricist",
		FormComposer:       "Composer",
		FormSearchLyrics:   "Search Lyrics",
		FormButtonAdd:      "Add Track",
		FormButtonUpdate:   "Update Track",
		FormRequiredFields: "Track number, title and lyrics are required",
		FormHelp:           "tab/shift+tab: fields • ←/→: format • ctrl+o: open search • ctrl+s: save • esc: cancel",

		ListTitle:     "Added Tracks",
		ListEmpty:     "No tracks added yet.",
		ListEmptyHint: "Press a to add a track or i to import a file.",
		ListGoodbye:   "Bye!",
		ListHelp:      "a: add • e/enter: edit • d: remove • K/J: move • i: import • x: export • q: quit",

		PreviewTitle:    "Output",
		PreviewCopy:     "Copy",
		PreviewCopied:   "Copied!",
		PreviewSaved:    "Saved:",
		PreviewHelp:     "c: copy • w: save file • esc: back",
		PreviewFilename: "Output Filename",
	},
	"ja": {
		ImportInvalidFormat: ".rr.jsonファイルを選択してください",
		ImportInvalidJSON:   "無効なJSON形式です。オブジェクト形式が必要です。",
		ImportEmpty:         "ファイルにトラックが見つかりません。",
		ImportParseFailed:   "JSONファイルの解析に失敗しました。",
		ImportLoading:       "⏳ 読み込み中...",

		FormTitleAdd:     "トラック追加",
		FormTitleEdit:    "トラック編集",
		FormTrackNumber:  "トラック#",
		FormSongTitle:    "曲名",
		FormFilename:     "ファイル名:",
		FormLyrics:       "歌詞",
		FormLyricist:     "作詞",
		FormComposer:     "作曲",
		FormSearchLyrics: "歌詞検索",
		FormButtonAdd:    "追加",
		FormButtonUpdate: "更新",

		ListTitle:     "追加済みトラック",
		ListEmpty:     "トラックがありません。",
		ListEmptyHint: "a でトラックを追加、i でファイルをインポート。",
		ListGoodbye:   "さようなら！",

		PreviewTitle:    "出力",
		PreviewCopy:     "コピー",
		PreviewCopied:   "コピー完了",
		PreviewFilename: "出力ファイル名",
	},
	"ru": {
		ImportInvalidFormat: "Выберите файл .rr.json",
		ImportInvalidJSON:   "Неверный формат JSON. Ожидался объект.",
		ImportEmpty:         "В файле нет треков.",
		ImportParseFailed:   "Не удалось разобрать JSON-файл.",
		ImportPrompt:        "Путь к файлу .rr.json",
		ImportDone:          "Импортировано треков:",
		ImportLoading:       "⏳ Загрузка...",
		ImportHelp:          "Enter: импорт • Esc: назад",

		FormTitleAdd:       "Добавление трека",
		FormTitleEdit:      "Редактирование трека",
		FormTrackNumber:    "Номер",
		FormSongTitle:      "Название",
		FormExtension:      "Формат",
		FormFilename:       "Имя файла:",
		FormLyrics:         "Текст",
		FormLyricist:       "Автор слов",
		FormComposer:       "Композитор",
		FormSearchLyrics:   "Поиск текста",
		FormButtonAdd:      "Добавить",
		FormButtonUpdate:   "Сохранить",
		FormRequiredFields: "Номер, название и текст обязательны",
		FormHelp:           "Tab/Shift+Tab: поля • ←/→: формат • Ctrl+O: открыть поиск • Ctrl+S: сохранить • Esc: отмена",

		ListTitle:     "Треки",
		ListEmpty:     "Треков пока нет.",
		ListEmptyHint: "a: добавить трек • i: импортировать файл",
		ListGoodbye:   "До свидания!",
		ListHelp:      "a: добавить • e/Enter: редактировать • d: удалить • K/J: переместить • i: импорт • x: экспорт • q: выход",

		PreviewTitle:    "Результат",
		PreviewCopy:     "Копировать",
		PreviewCopied:   "Скопировано!",
		PreviewSaved:    "Сохранено:",
		PreviewHelp:     "c: копировать • w: сохранить файл • Esc: назад",
		PreviewFilename: "Имя файла",
	},
}

// T возвращает перевод сообщения. Если перевода нет, используется английский, затем сам ключ.
func T(locale string, key Key) string {
	if s, ok := translations[locale][key]; ok {
		return s
	}
	if s, ok := translations["en"][key]; ok {
		return s
	}
	return string(key)
}

// IsSupported сообщает, есть ли переводы для языка
func IsSupported(locale string) bool {
	_, ok := translations[locale]
	return ok
}

// Locales возвращает список поддерживаемых языков
func Locales() []string {
	locales := make([]string, 0, len(translations))
	for locale := range translations {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// ImportErrorMessage переводит ошибку импорта в сообщение для пользователя
func ImportErrorMessage(locale string, err error) string {
	switch {
	case errors.Is(err, rrjson.ErrInvalidFileName):
		return T(locale, ImportInvalidFormat)
	case errors.Is(err, rrjson.ErrShape):
		return T(locale, ImportInvalidJSON)
	case errors.Is(err, rrjson.ErrEmpty):
		return T(locale, ImportEmpty)
	case errors.Is(err, rrjson.ErrParse):
		return T(locale, ImportParseFailed)
	default:
		return err.Error()
	}
}
