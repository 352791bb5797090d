// Package export содержит модель экрана предпросмотра и экспорта .rr.json для TUI
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-rrlyrics/internal/i18n"
	"github.com/hazadus/go-rrlyrics/internal/rrjson"
	"github.com/hazadus/go-rrlyrics/internal/track"
	"github.com/hazadus/go-rrlyrics/internal/utils"
)

// CopiedTimeout время, в течение которого показывается отметка о копировании
const CopiedTimeout = 2 * time.Second

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0)
	previewStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	copiedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
)

// GoBackMsg отправляется при закрытии экрана
type GoBackMsg struct{}

// SavedMsg отправляется после записи файла
type SavedMsg struct {
	Path string
}

// copiedResetMsg снимает отметку о копировании. seq защищает от сброса
// более поздней отметки таймером от предыдущего копирования.
type copiedResetMsg struct {
	seq int
}

// Options задает, куда записывается файл
type Options struct {
	TargetPath string // Если задан, файл пишется сюда
	OutputDir  string
	OutputName string
}

// Model представляет модель экрана экспорта
type Model struct {
	trackManager *track.Manager
	locale       string
	options      Options
	content      string
	viewport     viewport.Model
	name         textinput.Model
	copied       bool
	copySeq      int
	err          string
}

// NewModel создает модель экрана экспорта с текущим содержимым хранилища
func NewModel(manager *track.Manager, locale string, options Options) *Model {
	name := textinput.New()
	name.Placeholder = rrjson.DefaultName
	name.SetValue(options.OutputName)

	m := &Model{
		trackManager: manager,
		locale:       locale,
		options:      options,
		viewport:     viewport.New(80, 20),
		name:         name,
	}
	m.Refresh()
	return m
}

// Refresh пересобирает предпросмотр из хранилища
func (m *Model) Refresh() {
	content, err := rrjson.EncodeDocument(m.trackManager.ListTracks(), m.trackManager.Notes())
	if err != nil {
		m.err = err.Error()
		m.content = ""
		m.viewport.SetContent("")
		return
	}
	m.err = ""
	m.content = string(content)
	m.viewport.SetContent(m.content)
}

// Content возвращает текст .rr.json
func (m *Model) Content() string {
	return m.content
}

// Copied сообщает, показывается ли отметка о копировании
func (m *Model) Copied() bool {
	return m.copied
}

// Destination возвращает путь, куда будет записан файл
func (m *Model) Destination() string {
	if m.options.TargetPath != "" {
		return m.options.TargetPath
	}
	return filepath.Join(m.options.OutputDir, rrjson.OutputFileName(m.name.Value()))
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case copiedResetMsg:
		if msg.seq == m.copySeq {
			m.copied = false
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width - 2
		m.viewport.Height = msg.Height - 12
		m.name.Width = msg.Width - 20
		return m, nil

	case tea.KeyMsg:
		// Пока поле имени в фокусе, клавиши уходят в него
		if m.name.Focused() {
			switch msg.String() {
			case "enter", "esc", "tab":
				m.name.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.name, cmd = m.name.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, func() tea.Msg { return GoBackMsg{} }
		case "c":
			return m, m.copy()
		case "w":
			return m, m.save()
		case "n", "tab":
			if m.options.TargetPath == "" {
				return m, m.name.Focus()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// copy копирует содержимое в буфер обмена и через CopiedTimeout снимает отметку
func (m *Model) copy() tea.Cmd {
	if m.content == "" {
		return nil
	}
	if err := utils.CopyToClipboard(m.content); err != nil {
		m.err = fmt.Sprintf("ошибка копирования в буфер обмена: %v", err)
		return nil
	}
	m.err = ""
	m.copied = true
	m.copySeq++
	seq := m.copySeq
	return tea.Tick(CopiedTimeout, func(time.Time) tea.Msg {
		return copiedResetMsg{seq: seq}
	})
}

// save записывает файл и сообщает путь
func (m *Model) save() tea.Cmd {
	if m.content == "" {
		return nil
	}
	path := m.Destination()
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			m.err = fmt.Sprintf("ошибка создания каталога: %v", err)
			return nil
		}
	}
	if err := os.WriteFile(path, []byte(m.content), 0644); err != nil {
		m.err = fmt.Sprintf("ошибка записи файла: %v", err)
		return nil
	}
	m.err = ""
	return func() tea.Msg {
		return SavedMsg{Path: path}
	}
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	header := titleStyle.Render(i18n.T(m.locale, i18n.PreviewTitle))
	if m.copied {
		header += "  " + copiedStyle.Render("✓ "+i18n.T(m.locale, i18n.PreviewCopied))
	}
	b.WriteString(header)
	b.WriteString("\n")

	b.WriteString(labelStyle.Render(i18n.T(m.locale, i18n.PreviewFilename) + ": "))
	if m.options.TargetPath != "" {
		b.WriteString(m.options.TargetPath)
	} else {
		b.WriteString(m.name.View())
		b.WriteString(labelStyle.Render(" → " + m.Destination()))
	}
	b.WriteString("\n")

	b.WriteString(previewStyle.Render(m.viewport.View()))
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(i18n.T(m.locale, i18n.PreviewHelp)))
	return b.String()
}
