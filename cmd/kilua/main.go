// Command kilua is a scriptable VT100 terminal text editor.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kylelemons/kilua-go/config"
	"github.com/kylelemons/kilua-go/editor"
	"github.com/kylelemons/kilua-go/script/minilang"
	"github.com/kylelemons/kilua-go/termctl"
)

const configName = "kilua.lua"

var (
	configFlag  = flag.String("config", "", "load PATH as a script file instead of the discovered config")
	evalFlag    = flag.String("eval", "", "invoke NAME once after initialisation")
	versionFlag = flag.Bool("version", false, "print the version and exit")
)

// version is set at release time; this repo carries no release tooling,
// so it is a fixed dev placeholder (spec §6 CLI: "--version").
const version = "kilua-go dev"

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Println(version)
		return
	}

	if err := run(flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(files []string) error {
	if !termctl.IsTerminal(termctl.StdinFd) {
		return fmt.Errorf("kilua: stdin is not a terminal")
	}

	term := termctl.New(termctl.StdinFd)
	if err := term.Enable(); err != nil {
		return fmt.Errorf("kilua: %w", err)
	}
	defer term.Disable()
	// Exit behavior (spec §6): restore termios then clear the screen and
	// home the cursor, regardless of which path leaves run.
	defer fmt.Print("\x1b[2J\x1b[1;1H")

	cols, rows, err := termctl.GetSize(termctl.StdinFd)
	if err != nil {
		return fmt.Errorf("kilua: %w", err)
	}
	// Reserve the bottom two rows for the status lines (spec §4.3).
	rows -= 2

	rt := minilang.New()

	loaded := 0
	if *configFlag != "" {
		data, err := os.ReadFile(*configFlag)
		if err != nil {
			return fmt.Errorf("kilua: %w", err)
		}
		if err := rt.Eval(string(data)); err != nil {
			return fmt.Errorf("kilua: %w", err)
		}
		loaded = 1
	} else {
		n, cfgErr := config.Discover(rt, configName)
		loaded = n
		if cfgErr != nil {
			log.Printf("kilua: config: %v", cfgErr)
		}
	}
	if loaded == 0 {
		return fmt.Errorf("kilua: no script file loaded, no key bindings would be active")
	}

	var debug *log.Logger
	if path := os.Getenv("KILUA_DEBUG_LOG"); path != "" {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			debug = log.New(f, "", log.LstdFlags)
		}
	}

	opts := []editor.Option{
		editor.WithScreen(rows, cols),
		editor.WithIO(os.Stdin, os.Stdout),
		editor.WithScript(rt),
	}
	if debug != nil {
		opts = append(opts, editor.WithDebugLog(debug))
	}

	e := editor.New(opts...)
	for _, f := range files {
		if _, err := e.CreateBuffer(f); err != nil {
			return fmt.Errorf("kilua: open %s: %w", f, err)
		}
	}
	if len(files) > 0 {
		// CreateBuffer leaves the last-opened file current; start on the
		// first positional argument instead.
		e.SelectBuffer(1)
	}

	if *evalFlag != "" {
		if _, ok, err := rt.Invoke(*evalFlag); err != nil {
			log.Printf("kilua: -eval %s: %v", *evalFlag, err)
		} else if !ok {
			log.Printf("kilua: -eval: no such function %s", *evalFlag)
		}
	}

	return e.Run(context.Background())
}
