// Package uploader публикует файл с текстами в объектное хранилище
package uploader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hazadus/go-rrlyrics/internal/rrjson"
	"github.com/hazadus/go-rrlyrics/internal/track"
)

// FileUploader загружает содержимое под указанным именем и возвращает его URL
type FileUploader interface {
	UploadFile(ctx context.Context, reader io.Reader, name string) (string, error)
}

// FileStorage загружает и удаляет опубликованные файлы
type FileStorage interface {
	FileUploader
	DeleteFile(ctx context.Context, name string) error
}

// Service управляет публикацией .rr.json
type Service struct {
	uploader FileUploader
	now      func() time.Time
}

// NewService создает новый сервис публикации
func NewService(uploader FileUploader) *Service {
	return &Service{
		uploader: uploader,
		now:      time.Now,
	}
}

// PublishResult содержит результат публикации
type PublishResult struct {
	URL      string
	Name     string
	Size     int64
	Tracks   int
	Duration time.Duration
}

// Publish сериализует треки и заметки менеджера и загружает файл <name>.rr.json
func (s *Service) Publish(ctx context.Context, manager *track.Manager, name string, progressCallback func(int64)) (*PublishResult, error) {
	tracks := manager.ListTracks()
	content, err := rrjson.EncodeDocument(tracks, manager.Notes())
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации: %w", err)
	}

	fileName := rrjson.OutputFileName(name)
	size := int64(len(content))

	// Создаем reader с отслеживанием прогресса
	var reader io.Reader = bytes.NewReader(content)
	if progressCallback != nil {
		reader = &ProgressReader{
			Reader:     reader,
			Size:       size,
			OnProgress: progressCallback,
		}
	}

	started := s.now()
	url, err := s.uploader.UploadFile(ctx, reader, fileName)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки в S3: %w", err)
	}

	return &PublishResult{
		URL:      url,
		Name:     fileName,
		Size:     size,
		Tracks:   len(tracks),
		Duration: s.now().Sub(started),
	}, nil
}

// ProgressReader структура для отслеживания прогресса чтения
type ProgressReader struct {
	io.Reader
	Size       int64
	OnProgress func(int64)
	bytesRead  int64
}

func (pr *ProgressReader) Read(p []byte) (n int, err error) {
	n, err = pr.Reader.Read(p)
	pr.bytesRead += int64(n)
	if pr.OnProgress != nil {
		pr.OnProgress(pr.bytesRead)
	}
	return n, err
}

// FormatFileSize форматирует размер файла в читаемом виде
func FormatFileSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// FormatDuration форматирует длительность загрузки
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%d ms", d.Milliseconds())
	}
	return d.Round(100 * time.Millisecond).String()
}
