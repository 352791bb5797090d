// Package track содержит логику управления треками в рамках одной сессии
package track

import (
	"github.com/hazadus/go-rrlyrics/internal/data"
)

// EditFields поля трека, которые заменяются при сохранении редактирования
type EditFields struct {
	Filename string
	Lyrics   string
	Lyricist string
	Composer string
}

// Manager хранит упорядоченный список треков, открытую сессию редактирования
// и заметки к альбому. Все методы вызываются из одного потока.
type Manager struct {
	tracks    []data.TrackRecord
	editingID string
	notes     string
}

// NewManager создает пустое хранилище треков
func NewManager() *Manager {
	return &Manager{
		tracks: make([]data.TrackRecord, 0),
	}
}

// ListTracks возвращает копию списка треков в текущем порядке
func (m *Manager) ListTracks() []data.TrackRecord {
	tracks := make([]data.TrackRecord, len(m.tracks))
	copy(tracks, m.tracks)
	return tracks
}

// Len возвращает количество треков
func (m *Manager) Len() int {
	return len(m.tracks)
}

// Add добавляет трек в конец списка. Вызывающая сторона гарантирует новый ID.
func (m *Manager) Add(record data.TrackRecord) {
	m.tracks = append(m.tracks, record)
}

// ImportBatch добавляет треки в конец списка, сохраняя их порядок
func (m *Manager) ImportBatch(records []data.TrackRecord) {
	for _, record := range records {
		m.Add(record)
	}
}

// Update заменяет трек с тем же ID на его месте. Если такого трека нет, ничего не происходит.
func (m *Manager) Update(record data.TrackRecord) bool {
	i := m.indexOf(record.ID)
	if i < 0 {
		return false
	}
	m.tracks[i] = record
	return true
}

// Remove удаляет трек по ID. Если удаляется редактируемый трек, редактирование отменяется.
func (m *Manager) Remove(id string) bool {
	i := m.indexOf(id)
	if i < 0 {
		return false
	}
	m.tracks = append(m.tracks[:i], m.tracks[i+1:]...)
	if m.editingID == id {
		m.CancelEdit()
	}
	return true
}

// Reorder извлекает трек с позиции from и вставляет его на позицию to
// в укороченном списке. При неверных индексах список не меняется.
func (m *Manager) Reorder(from, to int) bool {
	if from < 0 || from >= len(m.tracks) || to < 0 || to >= len(m.tracks) {
		return false
	}
	if from == to {
		return true
	}
	moved := m.tracks[from]
	rest := append(m.tracks[:from:from], m.tracks[from+1:]...)
	tracks := make([]data.TrackRecord, 0, len(m.tracks))
	tracks = append(tracks, rest[:to]...)
	tracks = append(tracks, moved)
	tracks = append(tracks, rest[to:]...)
	m.tracks = tracks
	return true
}

// TrackByID возвращает трек по ID
func (m *Manager) TrackByID(id string) (data.TrackRecord, bool) {
	i := m.indexOf(id)
	if i < 0 {
		return data.TrackRecord{}, false
	}
	return m.tracks[i], true
}

// TrackByFilename возвращает первый трек с таким именем файла
func (m *Manager) TrackByFilename(filename string) (data.TrackRecord, bool) {
	for _, t := range m.tracks {
		if t.Filename == filename {
			return t, true
		}
	}
	return data.TrackRecord{}, false
}

// TrackAt возвращает трек по позиции в списке (с нуля)
func (m *Manager) TrackAt(index int) (data.TrackRecord, bool) {
	if index < 0 || index >= len(m.tracks) {
		return data.TrackRecord{}, false
	}
	return m.tracks[index], true
}

// IndexOf возвращает позицию трека или -1
func (m *Manager) IndexOf(id string) int {
	return m.indexOf(id)
}

// BeginEdit открывает сессию редактирования трека и возвращает его для заполнения формы
func (m *Manager) BeginEdit(id string) (data.TrackRecord, bool) {
	record, ok := m.TrackByID(id)
	if !ok {
		return data.TrackRecord{}, false
	}
	m.editingID = id
	return record, true
}

// CancelEdit закрывает сессию редактирования
func (m *Manager) CancelEdit() {
	m.editingID = ""
}

// EditingID возвращает ID редактируемого трека или пустую строку
func (m *Manager) EditingID() string {
	return m.editingID
}

// SubmitEdit заменяет поля редактируемого трека и закрывает сессию.
// Возвращает false, если редактирование не открыто или поля не заполнены.
func (m *Manager) SubmitEdit(fields EditFields) bool {
	if m.editingID == "" {
		return false
	}
	record := data.TrackRecord{
		ID:       m.editingID,
		Filename: fields.Filename,
		Lyrics:   fields.Lyrics,
		Lyricist: data.NormalizeOptional(fields.Lyricist),
		Composer: data.NormalizeOptional(fields.Composer),
	}
	if !record.IsValid() {
		return false
	}
	if !m.Update(record) {
		return false
	}
	m.CancelEdit()
	return true
}

// Notes возвращает заметки к альбому
func (m *Manager) Notes() string {
	return m.notes
}

// SetNotes задает заметки к альбому
func (m *Manager) SetNotes(notes string) {
	m.notes = notes
}

func (m *Manager) indexOf(id string) int {
	for i := range m.tracks {
		if m.tracks[i].ID == id {
			return i
		}
	}
	return -1
}
