package editor

import (
	"os"

	"github.com/rs/zerolog"
)

// newDebugLogger builds the editor's debug trace sink. The editor never
// writes diagnostics to stdout/stderr while the terminal is in raw mode —
// that would corrupt the display mid-frame — so the logger is file-backed
// and only active when KILOGO_DEBUG_LOG names a writable path, mirroring
// the classic kilo debug-to-file convention through a structured leveled
// logger instead of raw fprintf calls.
func newDebugLogger() zerolog.Logger {
	path := os.Getenv("KILOGO_DEBUG_LOG")
	if path == "" {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Logger()
}
