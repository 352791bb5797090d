package utils

import (
	"strings"
	"testing"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is a very long string", 10, "this is..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"abcde", 4, "a..."},
		{"песня про лето", 8, "песня..."},
		{"夜に駆ける", 4, "夜..."},
	}

	for _, test := range tests {
		result := TruncateString(test.input, test.maxLen)
		if result != test.expected {
			t.Errorf("TruncateString(%s, %d) = %s; expected %s", test.input, test.maxLen, result, test.expected)
		}
	}
}

func TestLyricsPreview(t *testing.T) {
	long := strings.Repeat("a", 60)
	multiline := "first line\nsecond   line\n\nthird"
	japanese := strings.Repeat("歌", 51)

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"short", "short"},
		{strings.Repeat("b", 50), strings.Repeat("b", 50)},
		{long, strings.Repeat("a", 50) + "..."},
		{multiline, "first line second line third"},
		{japanese, strings.Repeat("歌", 50) + "..."},
	}

	for _, test := range tests {
		result := LyricsPreview(test.input)
		if result != test.expected {
			t.Errorf("LyricsPreview(%q) = %q; expected %q", test.input, result, test.expected)
		}
	}
}

func TestCopyToClipboardReplaceable(t *testing.T) {
	original := CopyToClipboard
	defer func() { CopyToClipboard = original }()

	var copied string
	CopyToClipboard = func(text string) error {
		copied = text
		return nil
	}

	if err := CopyToClipboard("{}"); err != nil {
		t.Fatalf("Неожиданная ошибка: %v", err)
	}
	if copied != "{}" {
		t.Errorf("Ожидалось: {}, получено: %s", copied)
	}
}
