package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hazadus/go-rrlyrics/internal/data"
	"github.com/hazadus/go-rrlyrics/internal/i18n"
	"github.com/hazadus/go-rrlyrics/internal/rrjson"
	"github.com/hazadus/go-rrlyrics/internal/track"
)

// loadDocument открывает сессию: импортирует целевой файл в пустое хранилище.
// Отсутствующий файл и файл без треков дают пустое хранилище.
func (app *Application) loadDocument() (*track.Manager, error) {
	manager := track.NewManager()

	if _, err := os.Stat(app.FilePath); errors.Is(err, os.ErrNotExist) {
		return manager, nil
	}

	doc, err := rrjson.DecodeFile(app.FilePath)
	if err != nil && !errors.Is(err, rrjson.ErrEmpty) {
		if rrjson.IsImportError(err) {
			return nil, fmt.Errorf("%s (%s): %w", i18n.ImportErrorMessage(app.Config.Locale, err), app.FilePath, err)
		}
		return nil, err
	}

	manager.ImportBatch(doc.Tracks)
	manager.SetNotes(doc.Notes)
	return manager, nil
}

// saveDocument экспортирует хранилище обратно в целевой файл
func (app *Application) saveDocument(manager *track.Manager) error {
	content, err := rrjson.EncodeDocument(manager.ListTracks(), manager.Notes())
	if err != nil {
		return fmt.Errorf("ошибка сериализации: %w", err)
	}

	if dir := filepath.Dir(app.FilePath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("ошибка создания каталога: %w", err)
		}
	}

	if err := os.WriteFile(app.FilePath, content, 0644); err != nil {
		return fmt.Errorf("ошибка записи файла: %w", err)
	}
	return nil
}

// mergeTrack добавляет трек в конец списка. Если трек с тем же именем файла уже есть,
// он заменяется на своем месте, иначе при записи в файл один из них потерялся бы.
// Возвращает true, если трек заменен.
func mergeTrack(manager *track.Manager, record data.TrackRecord) bool {
	existing, ok := manager.TrackByFilename(record.Filename)
	if !ok {
		manager.Add(record)
		return false
	}
	record.ID = existing.ID
	manager.Update(record)
	return true
}

// resolvePosition переводит позицию из командной строки (с единицы) в трек
func resolvePosition(manager *track.Manager, arg string) (data.TrackRecord, error) {
	position, err := strconv.Atoi(arg)
	if err != nil {
		return data.TrackRecord{}, fmt.Errorf("неверный номер '%s': номер должен быть числом", arg)
	}
	record, ok := manager.TrackAt(position - 1)
	if !ok {
		return data.TrackRecord{}, fmt.Errorf("трек с номером %d не найден (всего треков: %d)", position, manager.Len())
	}
	return record, nil
}
