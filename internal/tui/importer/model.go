// Package importer содержит модель экрана импорта файла .rr.json для TUI
package importer

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-rrlyrics/internal/i18n"
	"github.com/hazadus/go-rrlyrics/internal/remote"
	"github.com/hazadus/go-rrlyrics/internal/rrjson"
	"github.com/hazadus/go-rrlyrics/internal/track"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Margin(1, 0)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
)

// GoBackMsg отправляется при отмене импорта
type GoBackMsg struct{}

// ImportedMsg отправляется после успешного импорта
type ImportedMsg struct {
	Path  string
	Count int
}

// documentLoadedMsg приходит, когда загрузка документа по URL завершилась
type documentLoadedMsg struct {
	source string
	doc    rrjson.Document
	err    error
}

// Model представляет модель экрана импорта
type Model struct {
	trackManager *track.Manager
	locale       string
	path         textinput.Model
	err          string
	loading      bool
}

// NewModel создает новую модель импорта
func NewModel(manager *track.Manager, locale string) *Model {
	path := textinput.New()
	path.Placeholder = "album" + rrjson.FileSuffix
	path.Focus()

	return &Model{
		trackManager: manager,
		locale:       locale,
		path:         path,
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, func() tea.Msg { return GoBackMsg{} }
		case "enter":
			if m.loading {
				return m, nil
			}
			return m, m.importFile()
		}

	case documentLoadedMsg:
		m.loading = false
		return m, m.applyDocument(msg.source, msg.doc, msg.err)

	case tea.WindowSizeMsg:
		m.path.Width = msg.Width - 4
		return m, nil
	}

	var cmd tea.Cmd
	m.path, cmd = m.path.Update(msg)
	// Ошибка сбрасывается, как только пользователь меняет путь
	if _, ok := msg.(tea.KeyMsg); ok {
		m.err = ""
	}
	return m, cmd
}

// importFile читает файл и добавляет треки в конец списка.
// Документ по URL загружается асинхронно.
func (m *Model) importFile() tea.Cmd {
	source := strings.TrimSpace(m.path.Value())

	if remote.IsURL(source) {
		m.loading = true
		m.err = ""
		return func() tea.Msg {
			doc, err := remote.DecodeDocument(context.Background(), source)
			return documentLoadedMsg{source: source, doc: doc, err: err}
		}
	}

	path := expandHome(source)
	doc, err := rrjson.DecodeFile(path)
	return m.applyDocument(path, doc, err)
}

// applyDocument добавляет треки документа в хранилище.
// При любой ошибке хранилище не меняется, а ошибка показывается под полем ввода.
func (m *Model) applyDocument(path string, doc rrjson.Document, err error) tea.Cmd {
	if err != nil {
		m.err = i18n.ImportErrorMessage(m.locale, err)
		return nil
	}

	m.trackManager.ImportBatch(doc.Tracks)
	if doc.Notes != "" && m.trackManager.Notes() == "" {
		m.trackManager.SetNotes(doc.Notes)
	}
	m.err = ""

	count := len(doc.Tracks)
	return func() tea.Msg {
		return ImportedMsg{Path: path, Count: count}
	}
}

// Loading сообщает, идет ли загрузка документа по URL
func (m *Model) Loading() bool {
	return m.loading
}

// Error возвращает текст последней ошибки импорта
func (m *Model) Error() string {
	return m.err
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(i18n.T(m.locale, i18n.ImportPrompt)))
	b.WriteString("\n")
	b.WriteString(m.path.View())
	b.WriteString("\n")

	if m.loading {
		b.WriteString(helpStyle.Render(i18n.T(m.locale, i18n.ImportLoading)))
		b.WriteString("\n")
	}
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(i18n.T(m.locale, i18n.ImportHelp)))
	return b.String()
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
