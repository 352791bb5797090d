// Package metadata предоставляет функционал для извлечения текстов и авторов из аудиофайлов
package metadata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/dhowden/tag"

	"github.com/hazadus/go-rrlyrics/internal/data"
)

// TrackInfo хранит сведения об аудиофайле, нужные для записи трека
type TrackInfo struct {
	Filename    string // Имя файла без каталога, ключ в .rr.json
	Title       string
	Artist      string
	TrackNumber int
	Lyrics      string
	Composer    string
}

// Record превращает сведения в трек. ok равно false, если в файле нет текста.
func (i TrackInfo) Record() (record data.TrackRecord, ok bool) {
	record = data.NewTrackRecord(i.Filename, i.Lyrics, "", i.Composer)
	return record, record.IsValid()
}

// SearchQuery возвращает строку для поиска текста песни
func (i TrackInfo) SearchQuery() string {
	if i.Artist == "" {
		return i.Title
	}
	return i.Artist + " " + i.Title
}

// Extractor извлекает метаданные из аудиофайлов
type Extractor struct{}

// NewExtractor создает новый экстрактор метаданных
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractFromReader извлекает метаданные из io.ReadSeeker
func (e *Extractor) ExtractFromReader(reader io.ReadSeeker, source string) TrackInfo {
	info := e.getDefaultInfo(source)

	// Сбрасываем reader в начало
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return info
	}

	metadata, err := tag.ReadFrom(reader)
	if err != nil {
		return info
	}

	if title := strings.TrimSpace(metadata.Title()); title != "" {
		info.Title = title
	}
	if number, _ := metadata.Track(); number > 0 {
		info.TrackNumber = number
	}
	info.Artist = strings.TrimSpace(metadata.Artist())
	info.Lyrics = strings.TrimSpace(metadata.Lyrics())
	info.Composer = strings.TrimSpace(metadata.Composer())
	return info
}

// ExtractFromFile извлекает метаданные из файла
func (e *Extractor) ExtractFromFile(filePath string) TrackInfo {
	file, err := os.Open(filePath)
	if err != nil {
		return e.getDefaultInfo(filePath)
	}
	defer file.Close()

	return e.ExtractFromReader(file, filePath)
}

// ScanDir извлекает метаданные из всех аудиофайлов каталога в порядке имен
func (e *Extractor) ScanDir(dir string) ([]TrackInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения каталога: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !IsAudioFile(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	infos := make([]TrackInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, e.ExtractFromFile(filepath.Join(dir, name)))
	}
	return infos, nil
}

// IsAudioFile проверяет расширение файла
func IsAudioFile(name string) bool {
	return slices.Contains(data.Extensions, strings.ToLower(filepath.Ext(name)))
}

// getDefaultInfo возвращает сведения на основе имени файла
func (e *Extractor) getDefaultInfo(source string) TrackInfo {
	fileName := filepath.Base(source)
	info := TrackInfo{
		Filename: fileName,
		Title:    strings.TrimSuffix(fileName, filepath.Ext(fileName)),
	}

	// Пытаемся разобрать имя файла в формате "01 - Title.m4a"
	if number, title, _, ok := data.ParseFilename(fileName); ok {
		info.Title = title
		info.TrackNumber, _ = strconv.Atoi(number)
	}
	return info
}
