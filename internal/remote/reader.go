// Package remote читает опубликованные документы .rr.json по HTTP
package remote

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

const (
	// MaxDocumentSize ограничивает размер загружаемого документа
	MaxDocumentSize = 10 << 20
	bufferSize      = 64 * 1024
	userAgent       = "go-rrlyrics/1.0"
)

// ErrTooLarge возвращается, если документ больше MaxDocumentSize
var ErrTooLarge = errors.New("документ слишком большой")

// IsURL сообщает, указывает ли источник на http(s) ресурс
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// FileName возвращает имя файла из пути URL, без параметров запроса
func FileName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return path.Base(u.Path)
}

// Reader представляет буферизованный поток тела HTTP-ответа
type Reader struct {
	reader *bufio.Reader
	resp   *http.Response
}

// NewReader выполняет GET-запрос и возвращает поток тела ответа
func NewReader(ctx context.Context, rawURL string) (*Reader, error) {
	return newReader(ctx, newClient(), rawURL)
}

func newClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 30 * time.Second,
			IdleConnTimeout:       90 * time.Second,
			MaxIdleConns:          10,
			MaxIdleConnsPerHost:   2,
		},
	}
}

func newReader(ctx context.Context, client *http.Client, rawURL string) (*Reader, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("ошибка HTTP: %s", resp.Status)
	}

	return &Reader{
		reader: bufio.NewReaderSize(resp.Body, bufferSize),
		resp:   resp,
	}, nil
}

// Read реализует интерфейс io.Reader
func (r *Reader) Read(p []byte) (n int, err error) {
	return r.reader.Read(p)
}

// Close закрывает соединение
func (r *Reader) Close() error {
	return r.resp.Body.Close()
}

// Fetch загружает документ целиком, не больше MaxDocumentSize байт
func Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	reader, err := NewReader(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	raw, err := io.ReadAll(io.LimitReader(reader, MaxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ответа: %w", err)
	}
	if len(raw) > MaxDocumentSize {
		return nil, fmt.Errorf("%w: больше %d байт", ErrTooLarge, MaxDocumentSize)
	}
	return raw, nil
}
