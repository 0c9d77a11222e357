// Package editor implements the kilogo editing engine: an in-memory text
// buffer, an incremental syntax highlighter, a byte-stream render
// pipeline, and an input dispatcher, all driven by a single synchronous
// read-dispatch-render loop (spec §2, §5).
package editor

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

const (
	// Version is reported in the welcome splash.
	Version = "1.0.0"

	defaultQuitTimes = 3

	// statusMessageLifetime is how long a status message stays visible
	// (spec §3, §4.8).
	statusMessageLifetime = 5 * time.Second
)

// Editor is the full engine state (spec §3 "Editor State"). It is an
// explicitly owned aggregate rather than a package-level singleton (spec
// §9 Design Notes), so the renderer and syntax engine can be driven by
// tests without any OS state.
type Editor struct {
	cx, cy    int // logical cursor: byte index within chars, row index
	rx        int // derived render column, recomputed before each frame
	rowOffset int
	colOffset int
	screenRows, screenCols int

	rows []Row

	dirty             int
	filename          string
	statusMessage     string
	statusMessageTime time.Time

	syntax *Syntax

	tabStopCfg int
	quitTimes  int
	quitLeft   int
	palette    Palette

	term   Terminal
	logger zerolog.Logger

	search searchSession
}

// New constructs an Editor bound to the given Terminal. Call Init after
// construction, and before Open (Open does not call Init).
func New(term Terminal) *Editor {
	e := &Editor{term: term, logger: newDebugLogger()}
	return e
}

func (e *Editor) tabStop() int {
	if e.tabStopCfg > 0 {
		return e.tabStopCfg
	}
	return defaultTabStop
}

func (e *Editor) log() *zerolog.Logger { return &e.logger }

// Init resets all editor state, loads optional ambient configuration, and
// queries the terminal for its window size. screenRows is reduced by two
// to reserve the status bar and message bar (spec §3).
func (e *Editor) Init(filename string) error {
	e.cx, e.cy = 0, 0
	e.rx = 0
	e.rowOffset, e.colOffset = 0, 0
	e.rows = nil
	e.dirty = 0
	e.filename = filename
	e.statusMessage = ""
	e.statusMessageTime = time.Time{}
	e.syntax = nil

	tabStop, quitTimes, palette := loadConfig(filename, e.SetStatusMessage)
	e.tabStopCfg = tabStop
	e.quitTimes = quitTimes
	e.quitLeft = quitTimes
	e.palette = palette

	rows, cols, err := e.term.QueryWindowSize()
	if err != nil {
		return err
	}
	e.screenRows = rows - 2
	e.screenCols = cols
	return nil
}

// SetStatusMessage sets the transient message-bar content (spec §3).
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMessage = fmt.Sprintf(format, args...)
	e.statusMessageTime = time.Now()
}

// Dirty reports the monotonic edit counter (0 means saved).
func (e *Editor) Dirty() int { return e.dirty }

// NumRows reports the number of rows currently in the buffer.
func (e *Editor) NumRows() int { return len(e.rows) }

// CursorX reports the logical cursor column.
func (e *Editor) CursorX() int { return e.cx }

// CursorY reports the logical cursor row.
func (e *Editor) CursorY() int { return e.cy }

// RowChars returns a copy of row i's logical content, for tests and
// callers that need read-only access.
func (e *Editor) RowChars(i int) []byte {
	if i < 0 || i >= len(e.rows) {
		return nil
	}
	return append([]byte(nil), e.rows[i].chars...)
}

/*** cursor / viewport / scroll (spec §4.4) ***/

// scroll recomputes rx and adjusts the viewport so the cursor stays
// visible, in the exact order spec §4.4 specifies.
func (e *Editor) scroll() {
	e.rx = 0
	if e.cy < len(e.rows) {
		e.rx = cxToRx(e.rows[e.cy].chars, e.cx, e.tabStop())
	} else {
		e.rx = e.cx
	}

	if e.cy < e.rowOffset {
		e.rowOffset = e.cy
	}
	if e.cy >= e.rowOffset+e.screenRows {
		e.rowOffset = e.cy - e.screenRows + 1
	}
	if e.rx < e.colOffset {
		e.colOffset = e.rx
	}
	if e.rx >= e.colOffset+e.screenCols {
		e.colOffset = e.rx - e.screenCols + 1
	}
}

// moveCursor applies one arrow-key step, including left/right row-wrap
// and the post-move column clamp (spec §4.4).
func (e *Editor) moveCursor(k Key) {
	switch k {
	case keyArrowLeft:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = len(e.rows[e.cy].chars)
		}
	case keyArrowRight:
		if e.cy < len(e.rows) {
			row := &e.rows[e.cy]
			if e.cx < len(row.chars) {
				e.cx++
			} else if e.cx == len(row.chars) {
				e.cy++
				e.cx = 0
			}
		}
	case keyArrowUp:
		if e.cy != 0 {
			e.cy--
		}
	case keyArrowDown:
		if e.cy < len(e.rows) {
			e.cy++
		}
	}

	rowLen := 0
	if e.cy < len(e.rows) {
		rowLen = len(e.rows[e.cy].chars)
	}
	if e.cx > rowLen {
		e.cx = rowLen
	}
}
