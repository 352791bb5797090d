package tui

import (
	"testing"

	"github.com/hazadus/go-rrlyrics/internal/data"
	"github.com/hazadus/go-rrlyrics/internal/track"
	"github.com/hazadus/go-rrlyrics/internal/tui/app"
)

func TestNewApp(t *testing.T) {
	manager := track.NewManager()
	manager.Add(data.NewTrackRecord("01 - Test Track.m4a", "Test lyrics", "", ""))

	tuiApp := NewApp(manager, Options{Locale: "ru", DefaultExtension: ".m4a"})
	model := tuiApp.Model()

	if model == nil {
		t.Fatal("Expected main model")
	}
	if model.CurrentScreen() != app.TracklistScreen {
		t.Errorf("Expected initial screen to be TracklistScreen, got %v", model.CurrentScreen())
	}
	if model.View() == "" {
		t.Error("Expected non-empty view")
	}
}
