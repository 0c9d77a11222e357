package editor

// Key is the logical key produced by the decoder. Plain bytes below
// 256 stand for themselves (Char/Ctrl); named keys start at 1000 so they
// never collide with a byte value.
type Key int

const (
	keyArrowLeft Key = iota + 1000
	keyArrowRight
	keyArrowUp
	keyArrowDown
	keyDelete
	keyHome
	keyEnd
	keyPageUp
	keyPageDown
)

const (
	keyBackspace Key = 0x7F
	keyEnter     Key = '\r'
	keyEscape    Key = 0x1B

	// keySearch is the byte that triggers incremental search. Per spec
	// §9's Design Notes, the original mapping is Ctrl(31) == 0x1F — the
	// raw byte some terminals send for Ctrl-/ — rather than Ctrl('f'),
	// which spec §6 separately claims for the Ctrl-p/n/b/f arrow-key
	// aliases.
	keySearch Key = 0x1F
)

func ctrl(c byte) Key {
	return Key(c & 0x1f)
}

// readKey blocks until a key is available, decoding ANSI CSI/SS3 escape
// sequences per spec §4.1. Returns ReadError if the terminal reports an
// error other than a short read.
func readKey(t Terminal) (Key, error) {
	b, err := t.ReadByte()
	if err != nil {
		return 0, &ReadError{Err: err}
	}

	if b != 0x1B {
		return Key(b), nil
	}

	// Try to read up to three more bytes to classify the escape sequence.
	// A short/failed read at any point means "incomplete sequence" and we
	// fall back to a literal Escape, per spec §4.1.
	b1, err := t.ReadByte()
	if err != nil {
		return keyEscape, nil
	}
	b2, err := t.ReadByte()
	if err != nil {
		return keyEscape, nil
	}

	switch b1 {
	case '[':
		if b2 >= '0' && b2 <= '9' {
			b3, err := t.ReadByte()
			if err != nil {
				return keyEscape, nil
			}
			if b3 == '~' {
				switch b2 {
				case '1', '7':
					return keyHome, nil
				case '3':
					return keyDelete, nil
				case '4', '8':
					return keyEnd, nil
				case '5':
					return keyPageUp, nil
				case '6':
					return keyPageDown, nil
				}
			}
			return keyEscape, nil
		}
		switch b2 {
		case 'A':
			return keyArrowUp, nil
		case 'B':
			return keyArrowDown, nil
		case 'C':
			return keyArrowRight, nil
		case 'D':
			return keyArrowLeft, nil
		case 'H':
			return keyHome, nil
		case 'F':
			return keyEnd, nil
		}
	case 'O':
		switch b2 {
		case 'H':
			return keyHome, nil
		case 'F':
			return keyEnd, nil
		}
	}
	return keyEscape, nil
}

func isControlByte(k Key) bool {
	return k < 32 || k == 0x7F
}
