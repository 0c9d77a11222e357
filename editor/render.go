package editor

import (
	"fmt"
	"time"
)

// appendBuffer accumulates one frame's bytes before a single atomic write
// (spec §4.8, §5: "scoped acquisition with guaranteed release").
type appendBuffer struct {
	b []byte
}

func (a *appendBuffer) writeString(s string) { a.b = append(a.b, s...) }
func (a *appendBuffer) writeByte(c byte)      { a.b = append(a.b, c) }

// Refresh recomputes the viewport and writes one frame to the terminal
// (spec §4.8).
func (e *Editor) Refresh() error {
	e.scroll()
	return e.term.WriteFrame(e.renderFrame())
}

// renderFrame assembles one complete frame into a single buffer, per the
// exact sequence of spec §4.8.
func (e *Editor) renderFrame() []byte {
	var ab appendBuffer
	ab.writeString(seqCursorHide)
	ab.writeString(seqCursorHome)

	e.drawRows(&ab)
	e.drawStatusBar(&ab)
	e.drawMessageBar(&ab)

	ab.writeString(fmt.Sprintf(seqCursorPositionFmt, e.cy-e.rowOffset+1, e.rx-e.colOffset+1))
	ab.writeString(seqCursorShow)
	return ab.b
}

func (e *Editor) drawRows(ab *appendBuffer) {
	for y := 0; y < e.screenRows; y++ {
		fileRow := y + e.rowOffset
		switch {
		case fileRow >= len(e.rows):
			e.drawTildeOrWelcome(ab, y)
		default:
			e.drawContentRow(ab, &e.rows[fileRow])
		}
		ab.writeString(seqClearLine)
		ab.writeString("\r\n")
	}
}

func (e *Editor) drawTildeOrWelcome(ab *appendBuffer, y int) {
	if len(e.rows) == 0 && y == e.screenRows/3 {
		welcome := fmt.Sprintf("Kilo editor -- version %s", Version)
		if len(welcome) > e.screenCols {
			welcome = welcome[:e.screenCols]
		}
		padding := (e.screenCols - len(welcome)) / 2
		if padding > 0 {
			ab.writeByte('~')
			padding--
		}
		for ; padding > 0; padding-- {
			ab.writeByte(' ')
		}
		ab.writeString(welcome)
		return
	}
	ab.writeByte('~')
}

func (e *Editor) drawContentRow(ab *appendBuffer, row *Row) {
	lineLen := len(row.render) - e.colOffset
	if lineLen < 0 {
		lineLen = 0
	}
	if lineLen > e.screenCols {
		lineLen = e.screenCols
	}

	start := e.colOffset
	currentColor := -1

	for j := 0; j < lineLen; j++ {
		c := row.render[start+j]
		h := row.hl[start+j]

		if isControlByte(Key(c)) {
			sym := byte('?')
			if c <= 26 {
				sym = '@' + c
			}
			ab.writeString(seqInvert)
			ab.writeByte(sym)
			ab.writeString(seqReset)
			if currentColor != -1 {
				ab.writeString(sgr(currentColor))
			}
			continue
		}

		if h == HLNormal {
			if currentColor != -1 {
				ab.writeString(sgr(ansiColorDefault))
				currentColor = -1
			}
			ab.writeByte(c)
			continue
		}

		color := syntaxColor(h, e.palette)
		if color != currentColor {
			currentColor = color
			ab.writeString(sgr(color))
		}
		ab.writeByte(c)
	}

	ab.writeString(sgr(ansiColorDefault))
}

func (e *Editor) drawStatusBar(ab *appendBuffer) {
	ab.writeString(seqInvert)

	filename := "[No Name]"
	if e.filename != "" {
		filename = e.filename
	}
	dirtyFlag := ""
	if e.dirty != 0 {
		dirtyFlag = "(modified)"
	}
	status := fmt.Sprintf("%.20s - %d lines %s", filename, len(e.rows), dirtyFlag)
	if len(status) > e.screenCols {
		status = status[:e.screenCols]
	}

	filetype := "no ft"
	if e.syntax != nil {
		filetype = e.syntax.Filetype
	}
	rstatus := fmt.Sprintf("%s | %d/%d", filetype, e.cy+1, len(e.rows))

	ab.writeString(status)
	col := len(status)
	for col < e.screenCols {
		if e.screenCols-col == len(rstatus) {
			ab.writeString(rstatus)
			break
		}
		ab.writeByte(' ')
		col++
	}

	ab.writeString(seqReset)
	ab.writeString("\r\n")
}

func (e *Editor) drawMessageBar(ab *appendBuffer) {
	ab.writeString(seqClearLine)
	msg := e.statusMessage
	if len(msg) > e.screenCols {
		msg = msg[:e.screenCols]
	}
	if time.Since(e.statusMessageTime) < statusMessageLifetime {
		ab.writeString(msg)
	}
}
