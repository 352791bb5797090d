// Package tracklist содержит модель экрана списка треков для TUI
package tracklist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-rrlyrics/internal/data"
	"github.com/hazadus/go-rrlyrics/internal/i18n"
	"github.com/hazadus/go-rrlyrics/internal/track"
	"github.com/hazadus/go-rrlyrics/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	editingItemStyle  = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("214"))
	previewStyle      = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("241"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	statusStyle       = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("46"))
	emptyStyle        = lipgloss.NewStyle().Margin(1, 0, 1, 4).Foreground(lipgloss.Color("241"))
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// AddTrackMsg отправляется при запросе формы добавления трека
type AddTrackMsg struct{}

// TrackEditMsg отправляется при выборе трека для редактирования
type TrackEditMsg struct {
	ID string
}

// ImportMsg отправляется при запросе импорта файла
type ImportMsg struct{}

// ExportMsg отправляется при запросе экспорта
type ExportMsg struct{}

// trackItem реализует интерфейс list.Item для трека
type trackItem struct {
	track data.TrackRecord
}

func (i trackItem) FilterValue() string {
	return i.track.Filename
}

// trackItemDelegate реализует отображение элементов списка
type trackItemDelegate struct {
	manager *track.Manager
}

func (d trackItemDelegate) Height() int                             { return 2 }
func (d trackItemDelegate) Spacing() int                            { return 0 }
func (d trackItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d trackItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(trackItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%2d. %s", index+1, utils.TruncateString(i.track.Filename, 60))
	if i.track.HasCredits() {
		str += " ♪"
	}

	fn := itemStyle.Render
	switch {
	case i.track.ID == d.manager.EditingID():
		fn = func(s ...string) string {
			return editingItemStyle.Render("✎ " + strings.Join(s, " "))
		}
	case index == m.Index():
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprintln(w, fn(str))
	fmt.Fprint(w, previewStyle.Render("    "+utils.LyricsPreview(i.track.Lyrics)))
}

// Model представляет модель экрана списка треков
type Model struct {
	list         list.Model
	trackManager *track.Manager
	locale       string
	status       string
	quitting     bool
}

// NewModel создает новую модель списка треков
func NewModel(manager *track.Manager, locale string) *Model {
	l := list.New(nil, trackItemDelegate{manager: manager}, 80, 20)
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	m := &Model{
		list:         l,
		trackManager: manager,
		locale:       locale,
	}
	m.RefreshData()
	return m
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// RefreshData обновляет данные модели без пересоздания
func (m *Model) RefreshData() {
	tracks := m.trackManager.ListTracks()

	items := make([]list.Item, len(tracks))
	for i, t := range tracks {
		items[i] = trackItem{track: t}
	}

	m.list.SetItems(items)
	m.list.Title = fmt.Sprintf("%s (%d)", i18n.T(m.locale, i18n.ListTitle), len(tracks))
	if index := m.list.Index(); index >= len(items) && len(items) > 0 {
		m.list.Select(len(items) - 1)
	}
}

// SetStatus задает строку состояния под списком
func (m *Model) SetStatus(status string) {
	m.status = status
}

// Index возвращает позицию выбранного трека
func (m *Model) Index() int {
	return m.list.Index()
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4) // Оставляем место для заголовка и справки
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "a":
			return m, func() tea.Msg { return AddTrackMsg{} }

		case "i":
			return m, func() tea.Msg { return ImportMsg{} }

		case "x":
			return m, func() tea.Msg { return ExportMsg{} }

		case "enter", "e":
			if item, ok := m.list.SelectedItem().(trackItem); ok {
				return m, func() tea.Msg {
					return TrackEditMsg{ID: item.track.ID}
				}
			}
			return m, nil

		case "d", "delete":
			if item, ok := m.list.SelectedItem().(trackItem); ok {
				m.trackManager.Remove(item.track.ID)
				m.status = ""
				m.RefreshData()
			}
			return m, nil

		case "K", "shift+up":
			m.move(-1)
			return m, nil

		case "J", "shift+down":
			m.move(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// move перемещает выбранный трек на delta позиций и оставляет его выбранным
func (m *Model) move(delta int) {
	from := m.list.Index()
	to := from + delta
	if !m.trackManager.Reorder(from, to) {
		return
	}
	m.RefreshData()
	m.list.Select(to)
}

// View отображает модель
func (m *Model) View() string {
	if m.quitting {
		return quitTextStyle.Render(i18n.T(m.locale, i18n.ListGoodbye))
	}

	var b strings.Builder
	if m.trackManager.Len() == 0 {
		b.WriteString(emptyStyle.Render(i18n.T(m.locale, i18n.ListEmpty) + "\n" + i18n.T(m.locale, i18n.ListEmptyHint)))
	} else {
		b.WriteString(m.list.View())
	}
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(i18n.T(m.locale, i18n.ListHelp)))
	return b.String()
}
