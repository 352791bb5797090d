// Package data содержит модель трека, с которой работают хранилище и кодек
package data

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DefaultExtension расширение аудиофайла по умолчанию
const DefaultExtension = ".m4a"

// Extensions перечисляет расширения, которые предлагаются при сборке имени файла
var Extensions = []string{".m4a", ".mp3", ".flac", ".wav", ".aiff"}

// TrackRecord описывает один трек: имя аудиофайла, текст песни и авторов.
// ID существует только в памяти и никогда не сериализуется.
// Пустые Lyricist и Composer означают, что поле отсутствует.
type TrackRecord struct {
	ID       string
	Filename string
	Lyrics   string
	Lyricist string
	Composer string
}

// NewTrackRecord создает запись с новым уникальным идентификатором
func NewTrackRecord(filename, lyrics, lyricist, composer string) TrackRecord {
	return TrackRecord{
		ID:       uuid.NewString(),
		Filename: filename,
		Lyrics:   lyrics,
		Lyricist: NormalizeOptional(lyricist),
		Composer: NormalizeOptional(composer),
	}
}

// HasCredits сообщает, указан ли у трека автор слов или композитор
func (r TrackRecord) HasCredits() bool {
	return r.Lyricist != "" || r.Composer != ""
}

// IsValid проверяет, что запись можно отправить в хранилище
func (r TrackRecord) IsValid() bool {
	return strings.TrimSpace(r.Filename) != "" && strings.TrimSpace(r.Lyrics) != ""
}

// NormalizeOptional превращает строку из одних пробелов в пустую.
// Остальные значения возвращаются как есть.
func NormalizeOptional(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}

// SanitizeTrackNumber оставляет в номере трека только цифры, не больше двух
func SanitizeTrackNumber(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == 2 {
				break
			}
		}
	}
	return b.String()
}

// FormatFilename собирает имя файла вида "01 - Title.m4a".
// Возвращает пустую строку, если номер или название не заданы.
func FormatFilename(trackNumber, title, extension string) string {
	number := SanitizeTrackNumber(trackNumber)
	if number == "" || title == "" {
		return ""
	}
	if len(number) < 2 {
		number = "0" + number
	}
	return fmt.Sprintf("%s - %s%s", number, title, extension)
}

// ParseFilename разбирает имя вида "01 - Title.m4a" на части.
// ok равно false, если имя не следует этому соглашению.
func ParseFilename(filename string) (trackNumber, title, extension string, ok bool) {
	number, rest, found := strings.Cut(filename, " - ")
	if !found || number == "" || SanitizeTrackNumber(number) != number {
		return "", "", "", false
	}
	for _, ext := range Extensions {
		if strings.HasSuffix(rest, ext) && len(rest) > len(ext) {
			return number, strings.TrimSuffix(rest, ext), ext, true
		}
	}
	return "", "", "", false
}
