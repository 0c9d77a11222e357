package editor

import "testing"

func TestQuitGateRequiresConfirmation(t *testing.T) {
	e, term := newTestEditor(t)
	e.insertRow(0, []byte("unsaved"))
	e.dirty = 1
	e.quitLeft = e.quitTimes

	presses := 0
	for {
		presses++
		term.feed(string(rune(ctrl('q'))))
		err := e.ProcessKeypress()
		if err != nil {
			if _, ok := err.(QuitRequest); !ok {
				t.Fatalf("Ctrl-Q returned unexpected error %v", err)
			}
			break
		}
		if presses > e.quitTimes+1 {
			t.Fatalf("quit gate never fired after %d presses", presses)
		}
	}
	if presses != e.quitTimes+1 {
		t.Fatalf("presses to quit = %d, want %d", presses, e.quitTimes+1)
	}
}

func TestQuitImmediateWhenClean(t *testing.T) {
	e, term := newTestEditor(t)
	term.feed(string(rune(ctrl('q'))))

	err := e.ProcessKeypress()
	if _, ok := err.(QuitRequest); !ok {
		t.Fatalf("Ctrl-Q on a clean buffer returned %v, want QuitRequest", err)
	}
}

func TestPageDownMovesCursorDown(t *testing.T) {
	e, term := newTestEditor(t)
	for i := 0; i < 100; i++ {
		e.insertRow(i, []byte("line"))
	}
	e.cy = 0

	term.feed("\x1b[6~")
	if err := e.ProcessKeypress(); err != nil {
		t.Fatalf("ProcessKeypress: %v", err)
	}
	if e.cy <= 0 {
		t.Fatalf("cy = %d after PageDown, want > 0 (corrected behavior moves down)", e.cy)
	}
}

func TestInsertionRejectsHighBytes(t *testing.T) {
	e, term := newTestEditor(t)
	e.insertRow(0, nil)
	term.feed(string([]byte{200}))
	if err := e.ProcessKeypress(); err != nil {
		t.Fatalf("ProcessKeypress: %v", err)
	}
	if len(e.rows[0].chars) != 0 {
		t.Fatalf("byte >= 128 should not be inserted, got %q", e.rows[0].chars)
	}
}
