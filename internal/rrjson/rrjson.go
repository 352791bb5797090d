// Package rrjson переводит список треков в формат .rr.json и обратно.
//
// Файл .rr.json это JSON-объект, ключи которого имена аудиофайлов, а значения
// либо строка с текстом песни, либо объект {lyrics, lyricist?, composer?}.
// Порядок ключей совпадает с порядком треков. Зарезервированный ключ "_meta"
// хранит заметки к альбому и пишется только если они заданы.
package rrjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/hazadus/go-rrlyrics/internal/data"
)

const (
	// FileSuffix расширение файлов с текстами
	FileSuffix = ".rr.json"
	// DefaultName имя файла экспорта по умолчанию (без расширения)
	DefaultName = "lyrics"
	// MetaKey зарезервированный ключ для заметок к альбому
	MetaKey = "_meta"

	indent = "  "
)

// Ошибки импорта. Все они не фатальны: хранилище остается без изменений.
var (
	ErrInvalidFileName = errors.New("файл должен иметь расширение .json или .rr.json")
	ErrParse           = errors.New("не удалось разобрать JSON")
	ErrShape           = errors.New("ожидался JSON-объект")
	ErrEmpty           = errors.New("в файле нет треков")
)

// ErrReservedKey возвращается при экспорте, если трек назван "_meta", а заметки заданы
var ErrReservedKey = errors.New(`имя "_meta" зарезервировано для заметок к альбому`)

// Document результат декодирования файла
type Document struct {
	Tracks []data.TrackRecord
	Notes  string
}

// extendedLyrics значение трека с указанием авторов
type extendedLyrics struct {
	Lyrics   string `json:"lyrics"`
	Lyricist string `json:"lyricist,omitempty"`
	Composer string `json:"composer,omitempty"`
}

type metaInfo struct {
	Notes string `json:"notes,omitempty"`
}

// Encode сериализует треки в .rr.json
func Encode(records []data.TrackRecord) ([]byte, error) {
	return EncodeDocument(records, "")
}

// EncodeDocument сериализует треки и заметки к альбому.
// Трек с именем "_meta" при заданных заметках дает ErrReservedKey.
// При совпадении имен файлов побеждает более поздний трек, а ключ остается
// на позиции первого вхождения.
func EncodeDocument(records []data.TrackRecord, notes string) ([]byte, error) {
	entries := orderedmap.New[string, any]()
	if strings.TrimSpace(notes) != "" {
		for _, record := range records {
			if record.Filename == MetaKey {
				return nil, fmt.Errorf("%w: уберите заметки или переименуйте трек", ErrReservedKey)
			}
		}
		entries.Set(MetaKey, metaInfo{Notes: notes})
	}
	for _, record := range records {
		entries.Set(record.Filename, entryValue(record))
	}

	var compact bytes.Buffer
	compact.WriteByte('{')
	for pair := entries.Oldest(); pair != nil; pair = pair.Next() {
		if compact.Len() > 1 {
			compact.WriteByte(',')
		}
		key, err := marshal(pair.Key)
		if err != nil {
			return nil, fmt.Errorf("ошибка сериализации имени %q: %w", pair.Key, err)
		}
		value, err := marshal(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("ошибка сериализации трека %q: %w", pair.Key, err)
		}
		compact.Write(key)
		compact.WriteByte(':')
		compact.Write(value)
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", indent); err != nil {
		return nil, fmt.Errorf("ошибка форматирования JSON: %w", err)
	}
	return out.Bytes(), nil
}

// entryValue возвращает строку, если авторы не указаны, иначе объект
func entryValue(record data.TrackRecord) any {
	if !record.HasCredits() {
		return record.Lyrics
	}
	return extendedLyrics{
		Lyrics:   record.Lyrics,
		Lyricist: record.Lyricist,
		Composer: record.Composer,
	}
}

// marshal сериализует значение без экранирования HTML-символов
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Decode разбирает содержимое .rr.json в список треков с новыми ID.
// При ErrEmpty документ все равно содержит заметки, если они были в файле.
func Decode(raw []byte) (Document, error) {
	if !json.Valid(raw) {
		return Document{}, ErrParse
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	token, err := decoder.Token()
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return Document{}, fmt.Errorf("%w, получено: %s", ErrShape, describeToken(token))
	}

	// Повторяющиеся ключи: последнее значение на месте первого, как в JSON.parse
	entries := orderedmap.New[string, json.RawMessage]()
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return Document{}, fmt.Errorf("%w: %v", ErrParse, err)
		}
		key, ok := token.(string)
		if !ok {
			return Document{}, fmt.Errorf("%w: неожиданный ключ %v", ErrParse, token)
		}
		var value json.RawMessage
		if err := decoder.Decode(&value); err != nil {
			return Document{}, fmt.Errorf("%w: %v", ErrParse, err)
		}
		entries.Set(key, value)
	}

	doc := Document{Tracks: make([]data.TrackRecord, 0, entries.Len())}
	for pair := entries.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key == MetaKey {
			if notes, ok := decodeMeta(pair.Value); ok {
				doc.Notes = notes
				continue
			}
		}
		record, err := decodeEntry(pair.Key, pair.Value)
		if err != nil {
			return Document{}, err
		}
		doc.Tracks = append(doc.Tracks, record)
	}

	if len(doc.Tracks) == 0 {
		return doc, ErrEmpty
	}
	return doc, nil
}

// decodeEntry создает трек из значения: строки или объекта
func decodeEntry(filename string, value json.RawMessage) (data.TrackRecord, error) {
	value = bytes.TrimSpace(value)
	if len(value) == 0 {
		return data.TrackRecord{}, fmt.Errorf("%w: пустое значение трека %q", ErrShape, filename)
	}

	switch value[0] {
	case '"':
		var lyrics string
		if err := json.Unmarshal(value, &lyrics); err != nil {
			return data.TrackRecord{}, fmt.Errorf("%w: трек %q: %v", ErrParse, filename, err)
		}
		return data.NewTrackRecord(filename, lyrics, "", ""), nil
	case '{':
		var entry extendedLyrics
		if err := json.Unmarshal(value, &entry); err != nil {
			return data.TrackRecord{}, fmt.Errorf("%w: трек %q: поля должны быть строками", ErrShape, filename)
		}
		return data.NewTrackRecord(filename, entry.Lyrics, entry.Lyricist, entry.Composer), nil
	default:
		return data.TrackRecord{}, fmt.Errorf("%w: трек %q должен быть строкой или объектом", ErrShape, filename)
	}
}

// decodeMeta читает заметки из "_meta". Объект с полем lyrics считается треком.
func decodeMeta(value json.RawMessage) (string, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(value, &fields); err != nil || fields == nil {
		return "", false
	}
	if _, isTrack := fields["lyrics"]; isTrack {
		return "", false
	}
	var meta metaInfo
	if err := json.Unmarshal(value, &meta); err != nil {
		return "", false
	}
	return meta.Notes, true
}

func describeToken(token json.Token) string {
	switch v := token.(type) {
	case nil:
		return "null"
	case json.Delim:
		if v == '[' {
			return "массив"
		}
		return v.String()
	case string:
		return "строка"
	case bool:
		return "логическое значение"
	default:
		return "число"
	}
}

// ValidateFileName проверяет, что имя файла оканчивается на .json или .rr.json
func ValidateFileName(path string) error {
	name := filepath.Base(path)
	if !strings.HasSuffix(name, ".json") {
		return fmt.Errorf("%w: %s", ErrInvalidFileName, name)
	}
	return nil
}

// DecodeFile проверяет имя файла, читает его и декодирует
func DecodeFile(path string) (Document, error) {
	if err := ValidateFileName(path); err != nil {
		return Document{}, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("ошибка чтения файла %s: %w", path, err)
	}
	return Decode(raw)
}

// OutputFileName возвращает имя файла экспорта вида "<name>.rr.json"
func OutputFileName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(name, FileSuffix)
	if name == "" {
		name = DefaultName
	}
	return name + FileSuffix
}

// IsImportError сообщает, относится ли ошибка к одному из видов ошибок импорта
func IsImportError(err error) bool {
	return errors.Is(err, ErrInvalidFileName) ||
		errors.Is(err, ErrParse) ||
		errors.Is(err, ErrShape) ||
		errors.Is(err, ErrEmpty)
}
