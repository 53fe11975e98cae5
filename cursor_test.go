package termtext

import "testing"

func TestCursorMovement(t *testing.T) {
	p := NewPalette(LevelAnsi16)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"CursorUp", p.CursorUp(3), "\x1b[3A"},
		{"CursorUp negative", p.CursorUp(-2), "\x1b[2B"},
		{"CursorDown", p.CursorDown(1), "\x1b[1B"},
		{"CursorRight", p.CursorRight(4), "\x1b[4C"},
		{"CursorLeft", p.CursorLeft(4), "\x1b[4D"},
		{"CursorLeft negative", p.CursorLeft(-1), "\x1b[1C"},
		{"CursorLeft zero", p.CursorLeft(0), ""},
		{"ShowCursor", p.ShowCursor(), "\x1b[?25h"},
		{"HideCursor", p.HideCursor(), "\x1b[?25l"},
		{"ClearLine", p.ClearLine(), "\x1b[2K\r"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestCursorLevelNone(t *testing.T) {
	p := NewPalette(LevelNone)

	for _, s := range []string{p.CursorUp(1), p.CursorDown(1), p.CursorLeft(1), p.CursorRight(1), p.ShowCursor(), p.HideCursor(), p.ClearLine()} {
		if s != "" {
			t.Errorf("cursor sequence at none = %q, want empty", s)
		}
	}
}

func TestCursorSequencesHaveNoWidth(t *testing.T) {
	p := NewPalette(LevelAnsi16)
	r := newTestRuler()

	text := p.HideCursor() + p.ClearLine() + "ok" + p.CursorUp(2) + p.ShowCursor()
	if got := r.VisibleColumns(text); got != 2 {
		t.Errorf("VisibleColumns(%q) = %d, want 2", text, got)
	}
}
