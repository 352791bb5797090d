package i18n

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hazadus/go-rrlyrics/internal/rrjson"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		locale   string
		key      Key
		expected string
	}{
		{"en", PreviewCopied, "Copied!"},
		{"ja", PreviewCopied, "コピー完了"},
		{"ru", PreviewCopied, "Скопировано!"},
		// Нет перевода на японский: используется английский
		{"ja", PreviewHelp, "c: copy • w: save file • esc: back"},
		{"ja", ImportHelp, "enter: import • esc: back"},
		{"ru", ImportLoading, "⏳ Загрузка..."},
		{"ru", ListGoodbye, "До свидания!"},
		// Неизвестный язык
		{"de", ListEmpty, "No tracks added yet."},
		// Неизвестный ключ
		{"en", Key("no.such.key"), "no.such.key"},
	}

	for _, test := range tests {
		if result := T(test.locale, test.key); result != test.expected {
			t.Errorf("T(%s, %s) = %q; expected %q", test.locale, test.key, result, test.expected)
		}
	}
}

func TestEveryLocaleTranslatesImportErrors(t *testing.T) {
	keys := []Key{ImportInvalidFormat, ImportInvalidJSON, ImportEmpty, ImportParseFailed}
	for _, locale := range Locales() {
		for _, key := range keys {
			if _, ok := translations[locale][key]; !ok {
				t.Errorf("Нет перевода %s для языка %s", key, locale)
			}
		}
	}
}

func TestLocales(t *testing.T) {
	locales := Locales()
	expected := []string{"en", "ja", "ru"}
	if len(locales) != len(expected) {
		t.Fatalf("Ожидалось %v, получено %v", expected, locales)
	}
	for i := range expected {
		if locales[i] != expected[i] {
			t.Errorf("Ожидалось %v, получено %v", expected, locales)
		}
	}
	if !IsSupported(DefaultLocale) {
		t.Errorf("Язык по умолчанию %s не поддерживается", DefaultLocale)
	}
	if IsSupported("de") {
		t.Error("Язык de не должен поддерживаться")
	}
}

func TestImportErrorMessage(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{fmt.Errorf("%w: album.txt", rrjson.ErrInvalidFileName), "Please select a .rr.json file"},
		{rrjson.ErrParse, "Failed to parse JSON file."},
		{fmt.Errorf("%w, получено: массив", rrjson.ErrShape), "Invalid JSON format. Expected an object."},
		{rrjson.ErrEmpty, "No tracks found in the file."},
		{errors.New("disk failure"), "disk failure"},
	}

	for _, test := range tests {
		if result := ImportErrorMessage("en", test.err); result != test.expected {
			t.Errorf("ImportErrorMessage(%v) = %q; expected %q", test.err, result, test.expected)
		}
	}
}
