package editor

// insertByte inserts b at the cursor (creating a row if the cursor is
// past the last row), then advances the cursor (spec §4.5 "Insertion").
func (e *Editor) insertByte(b byte) {
	if e.cy == len(e.rows) {
		e.insertRow(len(e.rows), nil)
	}
	e.rowInsertChar(&e.rows[e.cy], e.cx, b)
	e.cx++
}

// insertNewline splits the current row at the cursor (spec §4.5 "Enter").
func (e *Editor) insertNewline() {
	e.splitRow(e.cy, e.cx)
	e.cy++
	e.cx = 0
}

// deleteChar deletes the byte to the left of the cursor, joining rows at
// column 0 (spec §4.5 "Backspace/Delete"). A no-op at the very start of
// the buffer or when the cursor is past the last row.
func (e *Editor) deleteChar() {
	if e.cy == len(e.rows) {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	if e.cx > 0 {
		e.rowDeleteChar(&e.rows[e.cy], e.cx-1)
		e.cx--
		return
	}

	// At column 0 of a row after the first: per the Design Notes open
	// question (resolved in SPEC_FULL.md), set the cursor to the join
	// point before appending, which is also where the clamp invariant
	// requires it to land.
	e.cx = len(e.rows[e.cy-1].chars)
	e.joinRow(e.cy)
	e.cy--
}
