package data

import "testing"

func TestNewTrackRecord(t *testing.T) {
	first := NewTrackRecord("01 - Intro.m4a", "la la", "  ", " Composer ")
	second := NewTrackRecord("01 - Intro.m4a", "la la", "", "")

	if first.ID == "" {
		t.Fatal("Ожидался непустой ID")
	}
	if first.ID == second.ID {
		t.Errorf("Ожидались разные ID, получено: %s и %s", first.ID, second.ID)
	}
	if first.Lyricist != "" {
		t.Errorf("Ожидался пустой Lyricist, получено: %q", first.Lyricist)
	}
	if first.Composer != " Composer " {
		t.Errorf("Ожидался Composer без изменений, получено: %q", first.Composer)
	}
	if !first.HasCredits() {
		t.Error("Ожидалось, что у трека есть композитор")
	}
	if second.HasCredits() {
		t.Error("Ожидалось, что у трека нет авторов")
	}
}

func TestNormalizeOptional(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"   ", ""},
		{"\n\t ", ""},
		{"Writer", "Writer"},
		{" A ", " A "},
	}

	for _, test := range tests {
		if result := NormalizeOptional(test.input); result != test.expected {
			t.Errorf("NormalizeOptional(%q) = %q; expected %q", test.input, result, test.expected)
		}
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		record   TrackRecord
		expected bool
	}{
		{TrackRecord{Filename: "01 - A.m4a", Lyrics: "text"}, true},
		{TrackRecord{Filename: "", Lyrics: "text"}, false},
		{TrackRecord{Filename: "01 - A.m4a", Lyrics: "  \n "}, false},
		{TrackRecord{Filename: " ", Lyrics: "text"}, false},
	}

	for _, test := range tests {
		if result := test.record.IsValid(); result != test.expected {
			t.Errorf("IsValid(%+v) = %v; expected %v", test.record, result, test.expected)
		}
	}
}

func TestFormatFilename(t *testing.T) {
	tests := []struct {
		number   string
		title    string
		ext      string
		expected string
	}{
		{"1", "Unleash!!!!!", ".m4a", "01 - Unleash!!!!!.m4a"},
		{"12", "Song", ".mp3", "12 - Song.mp3"},
		{"a3b", "Song", ".flac", "03 - Song.flac"},
		{"123", "Song", ".wav", "12 - Song.wav"},
		{"", "Song", ".m4a", ""},
		{"1", "", ".m4a", ""},
		{"xx", "Song", ".m4a", ""},
	}

	for _, test := range tests {
		result := FormatFilename(test.number, test.title, test.ext)
		if result != test.expected {
			t.Errorf("FormatFilename(%q, %q, %q) = %q; expected %q", test.number, test.title, test.ext, result, test.expected)
		}
	}
}

func TestParseFilename(t *testing.T) {
	number, title, ext, ok := ParseFilename("07 - Night - Day.flac")
	if !ok {
		t.Fatal("Ожидался успешный разбор имени файла")
	}
	if number != "07" || title != "Night - Day" || ext != ".flac" {
		t.Errorf("Получено: %q, %q, %q", number, title, ext)
	}

	for _, name := range []string{"Song.m4a", "07 - Song.ogg", "x7 - Song.m4a", "07 - .m4a"} {
		if _, _, _, ok := ParseFilename(name); ok {
			t.Errorf("ParseFilename(%q): ожидалась ошибка разбора", name)
		}
	}
}
