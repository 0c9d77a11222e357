package editor

// PromptCallback is invoked on (almost) every keystroke inside Prompt,
// after buf reflects the keystroke's effect (spec §4.6). key is the raw
// Key that drove this step.
type PromptCallback func(buf []byte, key Key)

// Prompt reads a line over the message bar (spec §4.6). It returns the
// entered text, or ("", ErrPromptCancelled) if the user pressed Escape.
// Prompt runs to completion before the outer loop handles more keys — it
// is not reentrant.
func (e *Editor) Prompt(format string, callback PromptCallback) (string, error) {
	buf := make([]byte, 0, 128)

	for {
		e.SetStatusMessage(format, string(buf))
		frame := e.renderFrame()
		if err := e.term.WriteFrame(frame); err != nil {
			return "", &TerminalError{Op: "write frame", Err: err}
		}

		k, err := readKey(e.term)
		if err != nil {
			e.SetStatusMessage("%v", err)
			continue
		}

		switch k {
		case keyBackspace, keyDelete, ctrl('h'):
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
			if callback != nil {
				callback(buf, k)
			}

		case keyEscape:
			e.SetStatusMessage("")
			if callback != nil {
				callback(buf, k)
			}
			return "", ErrPromptCancelled

		case keyEnter:
			if len(buf) > 0 {
				e.SetStatusMessage("")
				if callback != nil {
					callback(buf, k)
				}
				return string(buf), nil
			}

		default:
			if k < 128 && !isControlByte(k) {
				buf = append(buf, byte(k))
			}
			// Non-printable, non-handled keys (e.g. arrows during
			// search) are forwarded without touching buf, per spec §4.6.
			if callback != nil {
				callback(buf, k)
			}
		}
	}
}
