package editor

import "testing"

func TestMoveCursorWrapsAtRowBoundaries(t *testing.T) {
	e, _ := newTestEditor(t)
	e.insertRow(0, []byte("ab"))
	e.insertRow(1, []byte("cd"))

	e.cy, e.cx = 0, 2
	e.moveCursor(keyArrowRight)
	if e.cy != 1 || e.cx != 0 {
		t.Fatalf("arrow-right past end of row = (%d,%d), want (1,0)", e.cy, e.cx)
	}

	e.moveCursor(keyArrowLeft)
	if e.cy != 0 || e.cx != 2 {
		t.Fatalf("arrow-left at column 0 = (%d,%d), want (0,2)", e.cy, e.cx)
	}
}

func TestMoveCursorClampsToShorterRow(t *testing.T) {
	e, _ := newTestEditor(t)
	e.insertRow(0, []byte("longer line"))
	e.insertRow(1, []byte("hi"))

	e.cy, e.cx = 0, 11
	e.moveCursor(keyArrowDown)
	if e.cy != 1 || e.cx != len("hi") {
		t.Fatalf("cursor after moving to shorter row = (%d,%d), want (1,%d)", e.cy, e.cx, len("hi"))
	}
}

func TestScrollTracksCursor(t *testing.T) {
	e, _ := newTestEditor(t)
	e.screenRows = 5
	e.screenCols = 10
	for i := 0; i < 20; i++ {
		e.insertRow(i, []byte("line"))
	}

	e.cy = 15
	e.scroll()
	if e.rowOffset > e.cy || e.cy >= e.rowOffset+e.screenRows {
		t.Fatalf("cursor row %d not within viewport [%d,%d)", e.cy, e.rowOffset, e.rowOffset+e.screenRows)
	}
}

func TestDirtyMonotonicUntilSave(t *testing.T) {
	e, _ := newTestEditor(t)
	e.insertRow(0, []byte(""))
	last := e.Dirty()
	for i := 0; i < 5; i++ {
		e.rowInsertChar(&e.rows[0], 0, byte('a'+i))
		if e.Dirty() <= last {
			t.Fatalf("dirty counter did not increase: %d -> %d", last, e.Dirty())
		}
		last = e.Dirty()
	}
}

func TestSetStatusMessageFormats(t *testing.T) {
	e, _ := newTestEditor(t)
	e.SetStatusMessage("%d bytes written to disk", 42)
	if e.statusMessage != "42 bytes written to disk" {
		t.Fatalf("statusMessage = %q", e.statusMessage)
	}
}
