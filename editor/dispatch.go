package editor

// QuitRequest is returned by ProcessKeypress when the user has confirmed
// (or had nothing to confirm) a quit: the caller should tear down the
// terminal and exit 0.
type QuitRequest struct{}

func (QuitRequest) Error() string { return "quit requested" }

// ProcessKeypress reads and dispatches exactly one key (spec §4.5). It
// returns QuitRequest when the editor should exit cleanly, and a
// ReadError (or other Terminal error) if the underlying read failed.
func (e *Editor) ProcessKeypress() error {
	k, err := readKey(e.term)
	if err != nil {
		return err
	}

	switch k {
	case keyHome:
		e.cx = 0

	case keyEnd:
		if e.cy < len(e.rows) {
			e.cx = len(e.rows[e.cy].chars)
		}

	case keyDelete:
		e.moveCursor(keyArrowRight)
		e.deleteChar()

	case keyBackspace, ctrl('h'):
		e.deleteChar()

	case keyPageUp:
		e.cy = e.rowOffset
		for i := 0; i < e.screenRows; i++ {
			e.moveCursor(keyArrowUp)
		}

	case keyPageDown:
		// Per SPEC_FULL.md's Open Question decision, PageDown emits Down
		// moves (the corrected behavior), not the original's Up moves.
		e.cy = min(e.rowOffset+e.screenRows-1, len(e.rows))
		for i := 0; i < e.screenRows; i++ {
			e.moveCursor(keyArrowDown)
		}

	case keyArrowLeft, keyArrowRight, keyArrowUp, keyArrowDown:
		e.moveCursor(k)

	case ctrl('a'):
		e.cx = 0
	case ctrl('e'):
		if e.cy < len(e.rows) {
			e.cx = len(e.rows[e.cy].chars)
		}
	case ctrl('p'):
		e.moveCursor(keyArrowUp)
	case ctrl('n'):
		e.moveCursor(keyArrowDown)
	case ctrl('b'):
		e.moveCursor(keyArrowLeft)
	case ctrl('f'):
		// Emacs-style arrow binding (spec §6): Ctrl('p')/('n')/('b')/('f')
		// map to Up/Down/Left/Right. Incremental search therefore cannot
		// live on Ctrl-F — see the keySearch binding below.
		e.moveCursor(keyArrowRight)

	case keySearch:
		e.Find()

	case keyEnter:
		e.insertNewline()

	case keyEscape, ctrl('l'):
		// Reserved, no-op.

	case ctrl('q'):
		if e.dirty != 0 && e.quitLeft > 0 {
			e.SetStatusMessage("WARNING: File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitLeft)
			e.quitLeft--
			return nil
		}
		return QuitRequest{}

	case ctrl('s'):
		e.Save()

	default:
		// spec §4.5: "any Char(c) with c < 128 and not \r". Any other
		// unrecognized control byte is a silent no-op, generalizing the
		// "Ctrl-l/Escape -> reserved" treatment to the rest of the
		// control range.
		if k < 128 && !isControlByte(k) {
			e.insertByte(byte(k))
		}
	}

	e.quitLeft = e.quitTimes
	return nil
}
