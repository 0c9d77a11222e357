package editor

import (
	"bufio"
	"bytes"
	"os"
)

// Open loads filename into the buffer, per the byte-exact contract of
// spec §6: trailing '\r' and '\n' bytes are stripped from each line.
// dirty transiently rises during the row inserts below and is reset to 0
// as the very last step (spec §9 Design Notes: "keep the reset").
func (e *Editor) Open(filename string) error {
	e.filename = filename
	f, err := os.Open(filename)
	if err != nil {
		return &FileOpenError{Path: filename, Err: err}
	}
	defer f.Close()

	e.rows = nil
	e.cx, e.cy = 0, 0
	e.rowOffset, e.colOffset = 0, 0
	e.selectSyntax()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimRight(scanner.Bytes(), "\r\n")
		e.insertRow(len(e.rows), line)
	}
	if err := scanner.Err(); err != nil {
		return &FileOpenError{Path: filename, Err: err}
	}

	e.dirty = 0
	return nil
}

// Save writes the buffer to disk, prompting for a filename first if none
// is set (spec §4.5 Ctrl-s, §6). A write failure sets a status-bar
// message and leaves dirty untouched — it is not fatal (spec §7).
func (e *Editor) Save() {
	if e.filename == "" {
		name, err := e.Prompt("Save as: %s (ESC to cancel)", nil)
		if err != nil || name == "" {
			e.SetStatusMessage("Save aborted")
			return
		}
		e.filename = name
		e.selectSyntax()
	}

	buf := e.rowsToBytes()

	f, err := os.OpenFile(e.filename, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		e.SetStatusMessage("%v", &FileWriteError{Path: e.filename, Err: err})
		return
	}
	defer f.Close()

	if err := f.Truncate(int64(len(buf))); err != nil {
		e.SetStatusMessage("%v", &FileWriteError{Path: e.filename, Err: err})
		return
	}
	n, err := f.Write(buf)
	if err != nil {
		e.SetStatusMessage("%v", &FileWriteError{Path: e.filename, Err: err})
		return
	}
	if n != len(buf) {
		e.SetStatusMessage("Can't save! Partial write: %d/%d bytes", n, len(buf))
		return
	}

	e.SetStatusMessage("%d bytes written to disk", len(buf))
	e.dirty = 0
}
