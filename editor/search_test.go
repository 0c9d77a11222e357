package editor

import "testing"

func TestFindWrapAround(t *testing.T) {
	e, _ := newTestEditor(t)
	e.insertRow(0, []byte("alpha"))
	e.insertRow(1, []byte("beta"))
	e.insertRow(2, []byte("gamma alpha"))

	e.cy, e.cx = 2, 0
	e.search = searchSession{lastMatch: e.cy, direction: 1}

	e.findCallback([]byte("alpha"), keyArrowDown)

	if e.cy != 0 {
		t.Fatalf("cy = %d, want 0 (wrapped to first match)", e.cy)
	}
	if e.cx != 0 {
		t.Fatalf("cx = %d, want 0", e.cx)
	}
	if !e.search.overlayValid || e.rows[0].hl[0] != HLMatch {
		t.Fatalf("expected a match overlay on row 0")
	}
}

func TestFindCancelRestoresPosition(t *testing.T) {
	e, term := newTestEditor(t)
	e.insertRow(0, []byte("alpha"))
	e.insertRow(1, []byte("beta"))
	e.cx, e.cy = 2, 0

	term.feed("b\x1b")
	e.Find()

	if e.cx != 2 || e.cy != 0 {
		t.Fatalf("cursor after cancelled search = (%d,%d), want (2,0)", e.cx, e.cy)
	}
}
