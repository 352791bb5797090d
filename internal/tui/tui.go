// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-rrlyrics/internal/track"
	"github.com/hazadus/go-rrlyrics/internal/tui/app"
)

// Options настройки TUI приложения
type Options = app.Options

// App представляет основное TUI приложение
type App struct {
	trackManager *track.Manager
	options      Options
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(manager *track.Manager, options Options) *App {
	return &App{
		trackManager: manager,
		options:      options,
	}
}

// Model возвращает главную модель, с которой запускается программа
func (tuiApp *App) Model() *app.MainModel {
	return app.NewMainModel(tuiApp.trackManager, tuiApp.options)
}

// Run запускает TUI приложение
func (tuiApp *App) Run() error {
	p := tea.NewProgram(tuiApp.Model(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
