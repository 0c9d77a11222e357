package editor

import "testing"

func TestPromptReturnsEnteredText(t *testing.T) {
	e, term := newTestEditor(t)
	term.feed("hello\r")

	got, err := e.Prompt("Save as: %s", nil)
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if got != "hello" {
		t.Fatalf("Prompt() = %q, want %q", got, "hello")
	}
}

func TestPromptEscapeCancels(t *testing.T) {
	e, term := newTestEditor(t)
	term.feed("abc\x1b")

	_, err := e.Prompt("Search: %s", nil)
	if err != ErrPromptCancelled {
		t.Fatalf("Prompt() error = %v, want ErrPromptCancelled", err)
	}
}

func TestPromptBackspaceEditsBuffer(t *testing.T) {
	e, term := newTestEditor(t)
	term.feed("abcd\x7f\x7f\r")

	got, err := e.Prompt("Save as: %s", nil)
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if got != "ab" {
		t.Fatalf("Prompt() = %q, want %q", got, "ab")
	}
}

func TestPromptEnterWithEmptyBufferKeepsPrompting(t *testing.T) {
	e, term := newTestEditor(t)
	term.feed("\r\rname\r")

	got, err := e.Prompt("Save as: %s", nil)
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if got != "name" {
		t.Fatalf("Prompt() = %q, want %q", got, "name")
	}
}
