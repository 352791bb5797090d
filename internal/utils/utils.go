// Package utils содержит утилитарные функции, используемые в разных частях приложения
package utils

import (
	"strings"

	"github.com/atotto/clipboard"
)

// PreviewLength количество символов текста в кратком превью
const PreviewLength = 50

// CopyToClipboard копирует текст в системный буфер обмена. Переменная подменяется в тестах.
var CopyToClipboard = clipboard.WriteAll

// TruncateString обрезает строку до указанной длины в символах, добавляя "..." если строка длиннее
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// LyricsPreview возвращает первые 50 символов текста в одну строку.
// Если текст длиннее, добавляется "...".
func LyricsPreview(lyrics string) string {
	line := strings.Join(strings.Fields(lyrics), " ")
	runes := []rune(line)
	if len(runes) <= PreviewLength {
		return line
	}
	return string(runes[:PreviewLength]) + "..."
}
