// Package app содержит основную логику TUI приложения
package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-rrlyrics/internal/i18n"
	"github.com/hazadus/go-rrlyrics/internal/track"
	"github.com/hazadus/go-rrlyrics/internal/tui/editor"
	"github.com/hazadus/go-rrlyrics/internal/tui/export"
	"github.com/hazadus/go-rrlyrics/internal/tui/importer"
	"github.com/hazadus/go-rrlyrics/internal/tui/tracklist"
)

// ScreenType определяет тип текущего экрана
type ScreenType int

// Константы для типов экранов
const (
	// TracklistScreen - экран списка треков
	TracklistScreen ScreenType = iota
	// EditorScreen - форма добавления и редактирования
	EditorScreen
	// ImportScreen - экран импорта файла
	ImportScreen
	// ExportScreen - предпросмотр и экспорт
	ExportScreen
)

// Options настройки TUI
type Options struct {
	Locale           string
	DefaultExtension string
	OutputDir        string
	OutputName       string
	TargetPath       string // Файл, из которого импортированы треки при запуске
}

// MainModel представляет главную модель TUI
type MainModel struct {
	trackManager   *track.Manager
	options        Options
	currentScreen  ScreenType
	tracklistModel *tracklist.Model
	editorModel    *editor.Model
	importerModel  *importer.Model
	exportModel    *export.Model
	width, height  int
}

// NewMainModel создает новую главную модель
func NewMainModel(manager *track.Manager, options Options) *MainModel {
	return &MainModel{
		trackManager:   manager,
		options:        options,
		currentScreen:  TracklistScreen,
		tracklistModel: tracklist.NewModel(manager, options.Locale),
	}
}

// CurrentScreen возвращает текущий экран
func (m *MainModel) CurrentScreen() ScreenType {
	return m.currentScreen
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return m.tracklistModel.Init()
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Глобальные горячие клавиши
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.currentScreen != TracklistScreen {
			m.tracklistModel, _ = m.tracklistModel.Update(msg)
		}

	case tracklist.AddTrackMsg:
		m.trackManager.CancelEdit()
		m.editorModel = editor.NewModel(m.trackManager, m.options.Locale, m.options.DefaultExtension)
		return m.switchTo(EditorScreen, m.editorModel.Init())

	case tracklist.TrackEditMsg:
		editorModel, ok := editor.NewEditModel(m.trackManager, m.options.Locale, m.options.DefaultExtension, msg.ID)
		if !ok {
			return m, nil
		}
		m.editorModel = editorModel
		return m.switchTo(EditorScreen, m.editorModel.Init())

	case tracklist.ImportMsg:
		m.importerModel = importer.NewModel(m.trackManager, m.options.Locale)
		return m.switchTo(ImportScreen, m.importerModel.Init())

	case tracklist.ExportMsg:
		m.exportModel = export.NewModel(m.trackManager, m.options.Locale, export.Options{
			TargetPath: m.options.TargetPath,
			OutputDir:  m.options.OutputDir,
			OutputName: m.options.OutputName,
		})
		return m.switchTo(ExportScreen, m.exportModel.Init())

	case editor.TrackSavedMsg:
		m.editorModel = nil
		m.tracklistModel.SetStatus("")
		return m.backToList()

	case editor.GoBackMsg:
		m.editorModel = nil
		return m.backToList()

	case importer.ImportedMsg:
		m.importerModel = nil
		m.tracklistModel.SetStatus(fmt.Sprintf("✅ %s %d", i18n.T(m.options.Locale, i18n.ImportDone), msg.Count))
		return m.backToList()

	case importer.GoBackMsg:
		m.importerModel = nil
		return m.backToList()

	case export.SavedMsg:
		m.tracklistModel.SetStatus(fmt.Sprintf("💾 %s %s", i18n.T(m.options.Locale, i18n.PreviewSaved), msg.Path))
		m.exportModel = nil
		return m.backToList()

	case export.GoBackMsg:
		m.exportModel = nil
		return m.backToList()
	}

	// Передаем сообщение активной модели
	var cmd tea.Cmd
	switch m.currentScreen {
	case TracklistScreen:
		m.tracklistModel, cmd = m.tracklistModel.Update(msg)
	case EditorScreen:
		if m.editorModel != nil {
			m.editorModel, cmd = m.editorModel.Update(msg)
		}
	case ImportScreen:
		if m.importerModel != nil {
			m.importerModel, cmd = m.importerModel.Update(msg)
		}
	case ExportScreen:
		if m.exportModel != nil {
			m.exportModel, cmd = m.exportModel.Update(msg)
		}
	}
	return m, cmd
}

// switchTo переключает экран и передает новой модели известный размер окна
func (m *MainModel) switchTo(screen ScreenType, initCmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.currentScreen = screen
	if m.width > 0 {
		sizeMsg := tea.WindowSizeMsg{Width: m.width, Height: m.height}
		updated, sizeCmd := m.Update(sizeMsg)
		return updated, tea.Batch(initCmd, sizeCmd)
	}
	return m, initCmd
}

// backToList возвращает к списку треков с обновленными данными
func (m *MainModel) backToList() (tea.Model, tea.Cmd) {
	m.currentScreen = TracklistScreen
	m.tracklistModel.RefreshData()
	return m, nil
}

// View отображает интерфейс
func (m *MainModel) View() string {
	switch m.currentScreen {
	case TracklistScreen:
		return m.tracklistModel.View()

	case EditorScreen:
		if m.editorModel != nil {
			return m.editorModel.View()
		}
		return "Ошибка: модель редактора не инициализирована"

	case ImportScreen:
		if m.importerModel != nil {
			return m.importerModel.View()
		}
		return "Ошибка: модель импорта не инициализирована"

	case ExportScreen:
		if m.exportModel != nil {
			return m.exportModel.View()
		}
		return "Ошибка: модель экспорта не инициализирована"

	default:
		return "Неизвестный экран"
	}
}
