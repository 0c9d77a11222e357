package editor

import (
	"os"

	"golang.org/x/term"
)

// Terminal is the boundary the core engine consumes (spec §6). Everything
// the engine needs from the outside world funnels through this interface,
// so the engine can be driven by tests without a real tty.
type Terminal interface {
	// ReadByte blocks until one byte is available from the input stream.
	ReadByte() (byte, error)
	// WriteFrame writes a fully assembled render frame verbatim.
	WriteFrame(frame []byte) error
	// QueryWindowSize returns the current terminal size in (rows, cols).
	QueryWindowSize() (rows, cols int, err error)
	// EnableRawMode puts the terminal into raw mode and returns a restore
	// function that must be called exactly once on any exit path.
	EnableRawMode() (restore func(), err error)
}

// realTerminal drives an actual controlling tty via golang.org/x/term.
type realTerminal struct {
	in  *os.File
	out *os.File
}

// NewRealTerminal returns a Terminal backed by the process's stdin/stdout.
func NewRealTerminal() Terminal {
	return &realTerminal{in: os.Stdin, out: os.Stdout}
}

func (t *realTerminal) ReadByte() (byte, error) {
	var buf [1]byte
	for {
		n, err := t.in.Read(buf[:])
		if n == 1 {
			return buf[0], nil
		}
		if err != nil {
			return 0, err
		}
		// n == 0, err == nil: VMIN=0/VTIME grain timeout, try again.
	}
}

func (t *realTerminal) WriteFrame(frame []byte) error {
	_, err := t.out.Write(frame)
	return err
}

func (t *realTerminal) QueryWindowSize() (int, int, error) {
	cols, rows, err := term.GetSize(int(t.out.Fd()))
	if err == nil && rows > 0 && cols > 0 {
		return rows, cols, nil
	}
	return t.queryWindowSizeFallback()
}

// queryWindowSizeFallback positions the cursor at (999,999), which clamps
// to the bottom-right corner of the screen on any VT100-compatible
// terminal, then asks for the cursor position and parses the response to
// ESC[6n. Used when ioctl-based size discovery is unavailable (e.g. stdout
// redirected but stdin still a tty).
func (t *realTerminal) queryWindowSizeFallback() (int, int, error) {
	if _, err := t.out.Write([]byte(seqCursorToBottomRight + seqQueryCursorPos)); err != nil {
		return 0, 0, &TerminalError{Op: "query window size", Err: err}
	}

	var buf []byte
	for len(buf) < 32 {
		var b [1]byte
		n, err := t.in.Read(b[:])
		if n != 1 || err != nil {
			break
		}
		if b[0] == 'R' {
			buf = append(buf, b[0])
			break
		}
		buf = append(buf, b[0])
	}

	rows, cols, ok := parseCursorPositionResponse(buf)
	if !ok {
		return 0, 0, &TerminalError{Op: "query window size", Err: errFallbackParse}
	}
	return rows, cols, nil
}

func (t *realTerminal) EnableRawMode() (func(), error) {
	if !term.IsTerminal(int(t.in.Fd())) {
		return nil, &TerminalError{Op: "enable raw mode", Err: errNotATerminal}
	}
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return nil, &TerminalError{Op: "enable raw mode", Err: err}
	}
	fd := int(t.in.Fd())
	restored := false
	return func() {
		if restored {
			return
		}
		restored = true
		term.Restore(fd, state)
	}, nil
}

// parseCursorPositionResponse parses a "\x1b[<rows>;<cols>R" response.
func parseCursorPositionResponse(buf []byte) (rows, cols int, ok bool) {
	i := 0
	for i < len(buf) && buf[i] != '[' {
		i++
	}
	if i >= len(buf) {
		return 0, 0, false
	}
	i++
	start := i
	for i < len(buf) && buf[i] != ';' {
		i++
	}
	if i >= len(buf) {
		return 0, 0, false
	}
	r, ok1 := atoiSimple(buf[start:i])
	i++
	start = i
	for i < len(buf) && buf[i] != 'R' {
		i++
	}
	if i >= len(buf) {
		return 0, 0, false
	}
	c, ok2 := atoiSimple(buf[start:i])
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	return r, c, true
}

func atoiSimple(b []byte) (int, bool) {
	if len(b) == 0 {
		return 0, false
	}
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
