package remote

import (
	"context"

	"github.com/hazadus/go-rrlyrics/internal/rrjson"
)

// DecodeDocument загружает и декодирует опубликованный документ.
// Имя файла в пути URL проверяется так же, как имя локального файла.
func DecodeDocument(ctx context.Context, rawURL string) (rrjson.Document, error) {
	if err := rrjson.ValidateFileName(FileName(rawURL)); err != nil {
		return rrjson.Document{}, err
	}
	raw, err := Fetch(ctx, rawURL)
	if err != nil {
		return rrjson.Document{}, err
	}
	return rrjson.Decode(raw)
}
