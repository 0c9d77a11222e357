package editor

import "io"

// fakeTerminal is an in-memory Terminal double: queued input bytes, a
// captured output buffer, and a fixed window size, so the engine can be
// driven without a real tty.
type fakeTerminal struct {
	input  []byte
	pos    int
	frames [][]byte
	rows   int
	cols   int
}

func newFakeTerminal(rows, cols int) *fakeTerminal {
	if rows == 0 {
		rows = 24
	}
	if cols == 0 {
		cols = 80
	}
	return &fakeTerminal{rows: rows, cols: cols}
}

func (f *fakeTerminal) feed(s string) { f.input = append(f.input, s...) }

func (f *fakeTerminal) ReadByte() (byte, error) {
	if f.pos >= len(f.input) {
		return 0, io.EOF
	}
	b := f.input[f.pos]
	f.pos++
	return b, nil
}

func (f *fakeTerminal) WriteFrame(frame []byte) error {
	f.frames = append(f.frames, append([]byte(nil), frame...))
	return nil
}

func (f *fakeTerminal) QueryWindowSize() (int, int, error) {
	return f.rows, f.cols, nil
}

func (f *fakeTerminal) EnableRawMode() (func(), error) {
	return func() {}, nil
}

// newTestEditor builds an Editor bound to a fakeTerminal, already Init'd.
func newTestEditor(t interface{ Helper() }) (*Editor, *fakeTerminal) {
	t.Helper()
	term := newFakeTerminal(24, 80)
	e := New(term)
	if err := e.Init(""); err != nil {
		panic(err)
	}
	return e, term
}
