// Package editor содержит модель формы добавления и редактирования трека для TUI
package editor

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-rrlyrics/internal/data"
	"github.com/hazadus/go-rrlyrics/internal/i18n"
	"github.com/hazadus/go-rrlyrics/internal/search"
	"github.com/hazadus/go-rrlyrics/internal/track"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(15)
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	filenameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	linkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Margin(1, 0)
)

// openBrowser открывает ссылку поиска. Переменная подменяется в тестах.
var openBrowser = search.OpenBrowser

// TrackSavedMsg отправляется когда трек успешно добавлен или обновлен
type TrackSavedMsg struct {
	ID string
}

// GoBackMsg отправляется при отмене редактирования
type GoBackMsg struct{}

// fieldType определяет поле формы
type fieldType int

const (
	numberField fieldType = iota
	titleField
	extensionField
	searchField
	lyricsField
	lyricistField
	composerField
	submitButton
	numFields
)

// filenameParts значения полей, из которых собирается имя файла
type filenameParts struct {
	number    string
	title     string
	extension int
}

// Model представляет модель формы трека
type Model struct {
	trackManager *track.Manager
	locale       string
	editingID    string

	// Имя файла редактируемого трека и его части на момент открытия формы.
	// Пока части не изменены, имя сохраняется как есть.
	originalFilename string
	originalParts    filenameParts

	number    textinput.Model
	title     textinput.Model
	query     textinput.Model
	lyricist  textinput.Model
	composer  textinput.Model
	lyrics    textarea.Model
	extension int

	focus fieldType
	err   string
}

// NewModel создает форму добавления трека
func NewModel(manager *track.Manager, locale, defaultExtension string) *Model {
	m := &Model{
		trackManager: manager,
		locale:       locale,
		number:       newInput("01", 2),
		title:        newInput("Unleash!!!!!", 0),
		query:        newInput("", 0),
		lyricist:     newInput("", 0),
		composer:     newInput("", 0),
		lyrics:       textarea.New(),
		extension:    max(slices.Index(data.Extensions, defaultExtension), 0),
	}
	m.lyrics.ShowLineNumbers = false
	m.lyrics.SetHeight(8)
	m.setFocus(numberField)
	return m
}

// NewEditModel создает форму редактирования трека и открывает сессию редактирования.
// ok равно false, если трек с таким ID не найден.
func NewEditModel(manager *track.Manager, locale, defaultExtension, id string) (*Model, bool) {
	record, ok := manager.BeginEdit(id)
	if !ok {
		return nil, false
	}

	m := NewModel(manager, locale, defaultExtension)
	m.editingID = id
	m.originalFilename = record.Filename
	if number, title, ext, parsed := data.ParseFilename(record.Filename); parsed {
		m.number.SetValue(number)
		m.title.SetValue(title)
		m.query.SetValue(title)
		m.extension = slices.Index(data.Extensions, ext)
	}
	m.originalParts = m.parts()
	m.lyrics.SetValue(record.Lyrics)
	m.lyricist.SetValue(record.Lyricist)
	m.composer.SetValue(record.Composer)
	return m, true
}

func newInput(placeholder string, limit int) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	if limit > 0 {
		input.CharLimit = limit
	}
	return input
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// EditingID возвращает ID редактируемого трека или пустую строку для формы добавления
func (m *Model) EditingID() string {
	return m.editingID
}

// Filename возвращает имя файла, собранное из полей формы.
// При редактировании исходное имя возвращается без изменений, пока не изменены
// номер, название или формат.
func (m *Model) Filename() string {
	if m.originalFilename != "" && m.parts() == m.originalParts {
		return m.originalFilename
	}
	return data.FormatFilename(
		m.number.Value(),
		strings.TrimSpace(m.title.Value()),
		data.Extensions[m.extension],
	)
}

func (m *Model) parts() filenameParts {
	return filenameParts{
		number:    m.number.Value(),
		title:     m.title.Value(),
		extension: m.extension,
	}
}

// CanSubmit сообщает, заполнены ли обязательные поля
func (m *Model) CanSubmit() bool {
	return m.Filename() != "" && strings.TrimSpace(m.lyrics.Value()) != ""
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			if m.editingID != "" {
				m.trackManager.CancelEdit()
			}
			return m, func() tea.Msg {
				return GoBackMsg{}
			}

		case "ctrl+s":
			return m, m.submit()

		case "ctrl+o":
			if links := search.Links(m.query.Value()); len(links) > 0 {
				if err := openBrowser(links[0].URL); err != nil {
					m.err = err.Error()
				}
			}
			return m, nil

		case "tab":
			return m, m.setFocus((m.focus + 1) % numFields)

		case "shift+tab":
			return m, m.setFocus((m.focus + numFields - 1) % numFields)

		case "enter":
			switch m.focus {
			case submitButton:
				return m, m.submit()
			case lyricsField:
				// Перевод строки внутри текста песни
			default:
				return m, m.setFocus(m.focus + 1)
			}

		case "left", "right":
			if m.focus == extensionField {
				step := 1
				if msg.String() == "left" {
					step = len(data.Extensions) - 1
				}
				m.extension = (m.extension + step) % len(data.Extensions)
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		for _, input := range []*textinput.Model{&m.number, &m.title, &m.query, &m.lyricist, &m.composer} {
			input.Width = msg.Width - 20
		}
		m.lyrics.SetWidth(msg.Width - 4)
		return m, nil
	}

	return m, m.updateFocused(msg)
}

// updateFocused передает сообщение полю в фокусе
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case numberField:
		m.number, cmd = m.number.Update(msg)
		if sanitized := data.SanitizeTrackNumber(m.number.Value()); sanitized != m.number.Value() {
			m.number.SetValue(sanitized)
		}
	case titleField:
		before := m.title.Value()
		m.title, cmd = m.title.Update(msg)
		if m.title.Value() != before {
			m.query.SetValue(m.title.Value())
		}
	case searchField:
		m.query, cmd = m.query.Update(msg)
	case lyricsField:
		m.lyrics, cmd = m.lyrics.Update(msg)
	case lyricistField:
		m.lyricist, cmd = m.lyricist.Update(msg)
	case composerField:
		m.composer, cmd = m.composer.Update(msg)
	}
	return cmd
}

// setFocus переводит фокус на поле и обновляет стили
func (m *Model) setFocus(field fieldType) tea.Cmd {
	m.focus = field

	inputs := map[fieldType]*textinput.Model{
		numberField:   &m.number,
		titleField:    &m.title,
		searchField:   &m.query,
		lyricistField: &m.lyricist,
		composerField: &m.composer,
	}

	var cmd tea.Cmd
	for f, input := range inputs {
		if f == field {
			cmd = input.Focus()
			input.PromptStyle = focusedStyle
			input.TextStyle = focusedStyle
		} else {
			input.Blur()
			input.PromptStyle = blurredStyle
			input.TextStyle = blurredStyle
		}
	}

	if field == lyricsField {
		cmd = m.lyrics.Focus()
	} else {
		m.lyrics.Blur()
	}
	return cmd
}

// submit добавляет новый трек или сохраняет редактируемый
func (m *Model) submit() tea.Cmd {
	if !m.CanSubmit() {
		m.err = i18n.T(m.locale, i18n.FormRequiredFields)
		return nil
	}

	filename := m.Filename()
	lyrics := strings.TrimSpace(m.lyrics.Value())
	lyricist := strings.TrimSpace(m.lyricist.Value())
	composer := strings.TrimSpace(m.composer.Value())

	id := m.editingID
	if id == "" {
		record := data.NewTrackRecord(filename, lyrics, lyricist, composer)
		m.trackManager.Add(record)
		id = record.ID
	} else if !m.trackManager.SubmitEdit(track.EditFields{
		Filename: filename,
		Lyrics:   lyrics,
		Lyricist: lyricist,
		Composer: composer,
	}) {
		m.err = i18n.T(m.locale, i18n.FormRequiredFields)
		return nil
	}

	m.err = ""
	return func() tea.Msg {
		return TrackSavedMsg{ID: id}
	}
}

// View отображает модель
func (m *Model) View() string {
	t := func(key i18n.Key) string { return i18n.T(m.locale, key) }

	var b strings.Builder

	if m.editingID != "" {
		b.WriteString(titleStyle.Render(t(i18n.FormTitleEdit)))
	} else {
		b.WriteString(titleStyle.Render(t(i18n.FormTitleAdd)))
	}
	b.WriteString("\n\n")

	row := func(label string, view string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(" ")
		b.WriteString(view)
		b.WriteString("\n")
	}

	row(t(i18n.FormTrackNumber), m.number.View())
	row(t(i18n.FormSongTitle), m.title.View())

	extStyle := blurredStyle
	if m.focus == extensionField {
		extStyle = focusedStyle
	}
	row(t(i18n.FormExtension), extStyle.Render("◀ "+data.Extensions[m.extension]+" ▶"))

	if filename := m.Filename(); filename != "" {
		b.WriteString(labelStyle.Render(t(i18n.FormFilename)))
		b.WriteString(" ")
		b.WriteString(filenameStyle.Render(filename))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	row(t(i18n.FormSearchLyrics), m.query.View())
	for _, link := range search.Links(m.query.Value()) {
		b.WriteString(linkStyle.Render("  " + link.Icon + " " + link.Name + ": " + link.URL))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render(t(i18n.FormLyrics)))
	b.WriteString("\n")
	b.WriteString(m.lyrics.View())
	b.WriteString("\n\n")

	row(t(i18n.FormLyricist), m.lyricist.View())
	row(t(i18n.FormComposer), m.composer.View())
	b.WriteString("\n")

	label := t(i18n.FormButtonAdd)
	if m.editingID != "" {
		label = t(i18n.FormButtonUpdate)
	}
	button := "[ " + label + " ]"
	if m.focus == submitButton {
		button = focusedStyle.Render(button)
	} else {
		button = blurredStyle.Render(button)
	}
	b.WriteString(button)
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(t(i18n.FormHelp)))

	return b.String()
}
