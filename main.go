// Command kilogo is a minimal modal-less terminal text editor patterned
// after kilo: raw-mode VT100 rendering, incremental syntax highlighting,
// and incremental search, driven by a single synchronous
// read-dispatch-render loop.
package main

import (
	"errors"
	"fmt"
	"os"

	"kilogo/editor"
)

func main() {
	term := editor.NewRealTerminal()

	restore, err := term.EnableRawMode()
	if err != nil {
		die(nil, err)
	}
	defer restore()

	e := editor.New(term)

	filename := ""
	if len(os.Args) >= 2 {
		filename = os.Args[1]
	}

	if err := e.Init(filename); err != nil {
		die(restore, err)
	}

	if filename != "" {
		if err := e.Open(filename); err != nil {
			die(restore, err)
		}
	}

	e.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-/ = find")

	for {
		if err := e.Refresh(); err != nil {
			die(restore, err)
		}

		err := e.ProcessKeypress()
		if err == nil {
			continue
		}
		var quit editor.QuitRequest
		if errors.As(err, &quit) {
			restore()
			fmt.Print("\x1b[2J\x1b[H")
			os.Exit(0)
		}
		die(restore, err)
	}
}

func die(restore func(), err error) {
	if restore != nil {
		restore()
	}
	fmt.Print("\x1b[2J\x1b[H")
	fmt.Fprintf(os.Stderr, "kilogo: %v\n", err)
	os.Exit(1)
}
