package textutil

import "testing"

func TestSanitizeTerminalTextLeavesSafeInput(t *testing.T) {
	input := "notes-2024.txt"
	if got := SanitizeTerminalText(input); got != input {
		t.Fatalf("expected %q to remain untouched, got %q", input, got)
	}
}

func TestSanitizeTerminalTextReplacesControlSequences(t *testing.T) {
	input := "bad\x1b[31m\npath\u0085"
	want := "bad?[31m path?"
	if got := SanitizeTerminalText(input); got != want {
		t.Fatalf("SanitizeTerminalText(%q) = %q, want %q", input, got, want)
	}
}
