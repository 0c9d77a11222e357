package editor

import "bytes"

// searchSession holds the state a search callback needs to persist across
// invocations. Modeled as an explicit struct owned by the Find call
// (spec §9 Design Notes: "model this as an explicit SearchSession struct"),
// rather than the original's function-local static state.
type searchSession struct {
	lastMatch int // row index of the last match, -1 = none
	direction int // +1 or -1

	overlayRow   int
	overlayHL    []Highlight
	overlayValid bool
}

// Find runs an incremental search over Prompt (spec §4.7). On cancel, the
// cursor and viewport are restored to their pre-search values.
func (e *Editor) Find() {
	savedCx, savedCy := e.cx, e.cy
	savedColOffset, savedRowOffset := e.colOffset, e.rowOffset

	e.search = searchSession{lastMatch: -1, direction: 1}

	_, err := e.Prompt("Search: %s (Use ESC/Arrows/Enter)", e.findCallback)
	if err != nil {
		// Escape always cancels and restores, regardless of whether a
		// match had been found along the way (SPEC_FULL.md
		// SUPPLEMENTED FEATURES, from original_source/kilo.cpp).
		e.cx, e.cy = savedCx, savedCy
		e.colOffset, e.rowOffset = savedColOffset, savedRowOffset
	}
}

// findCallback implements spec §4.7's per-invocation algorithm.
func (e *Editor) findCallback(query []byte, key Key) {
	if e.search.overlayValid {
		copy(e.rows[e.search.overlayRow].hl, e.search.overlayHL)
		e.search.overlayValid = false
	}

	switch key {
	case keyEnter, keyEscape:
		e.search.lastMatch = -1
		e.search.direction = 1
		return
	case keyArrowRight, keyArrowDown:
		e.search.direction = 1
	case keyArrowLeft, keyArrowUp:
		e.search.direction = -1
	default:
		e.search.lastMatch = -1
		e.search.direction = 1
	}

	if e.search.lastMatch == -1 {
		e.search.direction = 1
	}
	if len(e.rows) == 0 || len(query) == 0 {
		return
	}

	current := e.search.lastMatch
	for i := 0; i < len(e.rows); i++ {
		current += e.search.direction
		if current == -1 {
			current = len(e.rows) - 1
		} else if current == len(e.rows) {
			current = 0
		}

		row := &e.rows[current]
		match := bytes.Index(row.render, query)
		if match == -1 {
			continue
		}

		e.search.lastMatch = current
		e.cy = current
		e.cx = rxToCx(row.chars, match, e.tabStop())
		e.rowOffset = len(e.rows)

		e.search.overlayRow = current
		e.search.overlayHL = append([]Highlight(nil), row.hl...)
		e.search.overlayValid = true

		for k := match; k < match+len(query) && k < len(row.hl); k++ {
			row.hl[k] = HLMatch
		}
		return
	}
}
