package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write test file: %v", err)
	}
	return path
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "empty", content: "", want: 0},
		{name: "single terminated", content: "a\n", want: 1},
		{name: "single unterminated", content: "a", want: 1},
		{name: "three terminated", content: "a\nb\nc\n", want: 3},
		{name: "trailing partial", content: "a\nb\nc", want: 3},
		{name: "blank lines", content: "\n\n\n", want: 3},
		{name: "crlf", content: "a\r\nb\r\n", want: 2},
		{name: "bom only", content: "\xEF\xBB\xBF", want: 1},
		{name: "bom unterminated", content: "\xEF\xBB\xBFa", want: 1},
		{name: "bom terminated", content: "\xEF\xBB\xBFa\n", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := countLines(strings.NewReader(tt.content))
			if err != nil {
				t.Fatalf("countLines: %v", err)
			}
			if got != tt.want {
				t.Fatalf("countLines(%q) = %d, want %d", tt.content, got, tt.want)
			}

			doc, err := Open(writeDoc(t, tt.content))
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			if doc.TotalLines() != tt.want {
				t.Fatalf("TotalLines = %d, want %d", doc.TotalLines(), tt.want)
			}
		})
	}
}

func TestCountLinesAcrossChunks(t *testing.T) {
	line := strings.Repeat("x", 999) + "\n"
	n := documentChunkSize/len(line) + 50
	content := strings.Repeat(line, n) + "tail"

	got, err := countLines(strings.NewReader(content))
	if err != nil {
		t.Fatalf("countLines: %v", err)
	}
	if got != n+1 {
		t.Fatalf("countLines = %d, want %d", got, n+1)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		lines int
		want  int
	}{
		{0, 1},
		{10, 1},
		{34, 1},
		{35, 2},
		{40, 2},
		{70, 3},
	}
	for _, tt := range tests {
		doc := &Document{totalLines: tt.lines}
		if got := doc.TotalPages(); got != tt.want {
			t.Fatalf("TotalPages(%d lines) = %d, want %d", tt.lines, got, tt.want)
		}
	}
}

func TestWindowReturnsRequestedLines(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 40; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	doc, err := Open(writeDoc(t, b.String()))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	lines, err := doc.Window(35, LinesPerPage)
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	want := []string{"line 36", "line 37", "line 38", "line 39", "line 40"}
	if len(lines) != len(want) {
		t.Fatalf("Window returned %d lines, want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWindowStripsTerminators(t *testing.T) {
	doc, err := Open(writeDoc(t, "first\r\n\nthird"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	lines, err := doc.Window(0, 10)
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	want := []string{"first", "", "third"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Fatalf("Window = %q, want %q", lines, want)
	}
}

func TestWindowSkipsUTF8BOM(t *testing.T) {
	doc, err := Open(writeDoc(t, "\xEF\xBB\xBFhello\nworld\n"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if doc.TotalLines() != 2 {
		t.Fatalf("TotalLines = %d, want 2", doc.TotalLines())
	}
	lines, err := doc.Window(0, 1)
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	if len(lines) != 1 || lines[0] != "hello" {
		t.Fatalf("Window = %q, want [hello]", lines)
	}
	if !doc.UTF8BOM() {
		t.Fatalf("expected the byte order mark to be reported")
	}
}

func TestWindowBOMOnlyFileIsOneEmptyLine(t *testing.T) {
	doc, err := Open(writeDoc(t, "\xEF\xBB\xBF"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if doc.TotalLines() != 1 {
		t.Fatalf("TotalLines = %d, want 1", doc.TotalLines())
	}
	lines, err := doc.Window(0, LinesPerPage)
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	if len(lines) != 1 || lines[0] != "" {
		t.Fatalf("Window = %q, want one empty line", lines)
	}
}

func TestPlainFileHasNoBOM(t *testing.T) {
	doc, err := Open(writeDoc(t, "plain\n"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if doc.UTF8BOM() {
		t.Fatalf("plain file reported a byte order mark")
	}
}

func TestWindowCutsLongLines(t *testing.T) {
	long := strings.Repeat("y", maxLineBytes*3)
	doc, err := Open(writeDoc(t, long+"\nnext\n"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	lines, err := doc.Window(0, 2)
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("Window returned %d lines, want 2", len(lines))
	}
	if len(lines[0]) != maxLineBytes {
		t.Fatalf("long line kept %d bytes, want %d", len(lines[0]), maxLineBytes)
	}
	if lines[1] != "next" {
		t.Fatalf("line after long line = %q, want %q", lines[1], "next")
	}
}

func TestWindowPastEndIsEmpty(t *testing.T) {
	doc, err := Open(writeDoc(t, ""))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	lines, err := doc.Window(0, LinesPerPage)
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected no lines for empty document, got %q", lines)
	}
}

func TestWindowReportsVanishedFile(t *testing.T) {
	path := writeDoc(t, "a\nb\n")
	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := doc.Window(0, 2); !errors.Is(err, ErrSourceRead) {
		t.Fatalf("expected ErrSourceRead, got %v", err)
	}
}

func TestBinaryFlag(t *testing.T) {
	doc, err := Open(writeDoc(t, "a\x00b\n"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !doc.Binary() {
		t.Fatalf("expected NUL content to be flagged binary")
	}
}
