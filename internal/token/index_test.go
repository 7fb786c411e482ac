package token_test

import (
	"testing"

	"github.com/kolkov/annot/internal/token"
)

func TestLineIndexOffset(t *testing.T) {
	src := "a = 1\nbb = 22\n\nccc = 333"
	ix := token.NewLineIndex(src)

	tests := []struct {
		name   string
		line   int // 0-based
		column int // 0-based
		want   int
	}{
		{"start of source", 0, 0, 0},
		{"within first line", 0, 4, 4},
		{"start of second line", 1, 0, 6},
		{"within second line", 1, 5, 11},
		{"empty line", 2, 0, 14},
		{"last line", 3, 6, 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ix.Offset(tt.line, tt.column)
			if got != tt.want {
				t.Errorf("Offset(%d, %d) = %d, want %d", tt.line, tt.column, got, tt.want)
			}
		})
	}
}

func TestLineIndexLines(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{"empty source", "", 1},
		{"single line", "a = 1", 1},
		{"trailing newline", "a = 1\n", 2},
		{"three lines", "a\nb\nc", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := token.NewLineIndex(tt.src).Lines(); got != tt.want {
				t.Errorf("Lines() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPositionString(t *testing.T) {
	p := token.Position{Line: 3, Column: 7}
	if got := p.String(); got != "3:7" {
		t.Errorf("String() = %q, want %q", got, "3:7")
	}
	if !p.IsValid() {
		t.Error("IsValid() = false, want true")
	}
	if token.NoPos.IsValid() {
		t.Error("NoPos.IsValid() = true, want false")
	}
	if !p.Before(token.Position{Line: 3, Column: 8}) {
		t.Error("Before() = false, want true")
	}
}
