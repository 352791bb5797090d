package importer

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-rrlyrics/internal/data"
	"github.com/hazadus/go-rrlyrics/internal/track"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Ошибка создания тестового файла: %v", err)
	}
	return path
}

func submit(m *Model, path string) (*Model, tea.Cmd) {
	m.path.SetValue(path)
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestImportAppends(t *testing.T) {
	manager := track.NewManager()
	manager.Add(data.NewTrackRecord("00 - Existing.m4a", "x", "", ""))

	path := writeFile(t, "album.rr.json", `{"_meta": {"notes": "Live"}, "01 - A.m4a": "a", "02 - B.m4a": {"lyrics": "b", "composer": "C"}}`)

	m, cmd := submit(NewModel(manager, "en"), path)
	if m.Error() != "" {
		t.Fatalf("Неожиданная ошибка импорта: %s", m.Error())
	}
	if cmd == nil {
		t.Fatal("Ожидалась команда после импорта")
	}
	msg, ok := cmd().(ImportedMsg)
	if !ok || msg.Count != 2 {
		t.Errorf("Неожиданное сообщение: %+v", msg)
	}

	tracks := manager.ListTracks()
	if len(tracks) != 3 {
		t.Fatalf("Ожидалось 3 трека, получено %d", len(tracks))
	}
	if tracks[1].Filename != "01 - A.m4a" || tracks[2].Composer != "C" {
		t.Errorf("Неожиданные треки: %+v", tracks)
	}
	if manager.Notes() != "Live" {
		t.Errorf("Ожидались заметки: Live, получено: %s", manager.Notes())
	}
}

func TestImportErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		expected string
	}{
		{"InvalidFileName", "album.txt", `{"a": "b"}`, "Please select a .rr.json file"},
		{"InvalidJSON", "album.rr.json", `{"a": `, "Failed to parse JSON file."},
		{"Array", "album.rr.json", `["a"]`, "Invalid JSON format. Expected an object."},
		{"Empty", "album.rr.json", `{}`, "No tracks found in the file."},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			manager := track.NewManager()
			manager.Add(data.NewTrackRecord("01 - A.m4a", "a", "", ""))

			m, cmd := submit(NewModel(manager, "en"), writeFile(t, test.file, test.content))
			if cmd != nil {
				t.Error("При ошибке импорта не должно быть команды")
			}
			if m.Error() != test.expected {
				t.Errorf("Ожидалась ошибка %q, получено %q", test.expected, m.Error())
			}
			if manager.Len() != 1 {
				t.Errorf("Хранилище не должно меняться, треков: %d", manager.Len())
			}
		})
	}
}

func TestImportErrorLocalized(t *testing.T) {
	m, _ := submit(NewModel(track.NewManager(), "ru"), writeFile(t, "album.rr.json", `{}`))
	if m.Error() != "В файле нет треков." {
		t.Errorf("Неожиданная ошибка: %s", m.Error())
	}
}

func TestGoBack(t *testing.T) {
	_, cmd := NewModel(track.NewManager(), "en").Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("Ожидалась команда возврата")
	}
	if _, ok := cmd().(GoBackMsg); !ok {
		t.Error("Ожидалось сообщение GoBackMsg")
	}
}

func TestImportURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"01 - A.m4a": "a"}`))
	}))
	defer server.Close()

	manager := track.NewManager()
	m, cmd := submit(NewModel(manager, "en"), server.URL+"/album.rr.json")
	if !m.Loading() || cmd == nil {
		t.Fatal("Ожидалась асинхронная загрузка")
	}
	if manager.Len() != 0 {
		t.Error("До окончания загрузки хранилище не должно меняться")
	}

	// Повторный Enter во время загрузки игнорируется
	if _, again := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); again != nil {
		t.Error("Повторный импорт во время загрузки не ожидался")
	}

	m, cmd = m.Update(cmd())
	if m.Loading() || m.Error() != "" {
		t.Fatalf("Неожиданное состояние: loading=%v, err=%s", m.Loading(), m.Error())
	}
	msg, ok := cmd().(ImportedMsg)
	if !ok || msg.Count != 1 || msg.Path != server.URL+"/album.rr.json" {
		t.Errorf("Неожиданное сообщение: %+v", msg)
	}
	if manager.Len() != 1 {
		t.Errorf("Ожидался 1 трек, получено %d", manager.Len())
	}
}

func TestImportURLError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	manager := track.NewManager()
	m, cmd := submit(NewModel(manager, "en"), server.URL+"/album.rr.json")
	m, cmd = m.Update(cmd())

	if cmd != nil {
		t.Error("Команда после ошибки не ожидалась")
	}
	if m.Error() != "Invalid JSON format. Expected an object." {
		t.Errorf("Неожиданная ошибка: %s", m.Error())
	}
	if manager.Len() != 0 {
		t.Error("Хранилище не должно меняться")
	}
}

func TestViewIsLocalized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"01 - A.m4a": "a"}`))
	}))
	defer server.Close()

	m := NewModel(track.NewManager(), "en")
	if view := m.View(); !strings.Contains(view, "enter: import") || strings.Contains(view, "импорт") {
		t.Errorf("Ожидалась подсказка на английском: %s", view)
	}

	m.path.SetValue(server.URL + "/album.rr.json")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if view := m.View(); !strings.Contains(view, "⏳ Loading...") {
		t.Errorf("Ожидался индикатор загрузки: %s", view)
	}

	m = NewModel(track.NewManager(), "ru")
	if view := m.View(); !strings.Contains(view, "Enter: импорт") {
		t.Errorf("Ожидалась подсказка на русском: %s", view)
	}
}
