package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/funvibe/tyrender/internal/fixture"
	"github.com/funvibe/tyrender/internal/prettyprinter"
)

const (
	historyFile = ".tyrender_history"
	prompt      = "tyrender> "
)

const replHelp = `Commands:
  <entry>              render a fixture entry
  :list                list entry names
  :verbose on|off      toggle verbose output
  :explicit on|off     toggle the debug rendering
  :help                show this help
  :quit                exit
`

func runREPL(table *fixture.Table, opts *options) int {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	r := &repl{table: table, opts: *opts}
	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			// Ctrl+D, Ctrl+C or a closed terminal
			fmt.Println()
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if r.handle(line, os.Stdout) {
			break
		}
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return 0
}

// repl holds the settings a session can change interactively.
type repl struct {
	table *fixture.Table
	opts  options
}

// handle runs one command or renders one entry. It reports whether the
// session should end.
func (r *repl) handle(line string, w io.Writer) (exit bool) {
	if !strings.HasPrefix(line, ":") {
		e, ok := r.table.Entry(line)
		if !ok {
			fmt.Fprintf(w, "no entry named %q (try :list)\n", line)
			return false
		}
		text, err := prettyprinter.Render(r.table, r.opts.session, e.Value, r.opts.mode)
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			return false
		}
		fmt.Fprintln(w, text)
		return false
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":exit":
		return true
	case ":help":
		fmt.Fprint(w, replHelp)
	case ":list":
		for _, e := range r.table.Entries() {
			fmt.Fprintf(w, "%s (%s)\n", e.Name, e.Kind)
		}
	case ":verbose":
		if on, ok := parseToggle(fields, w); ok {
			r.opts.session.Verbose = on
		}
	case ":explicit":
		if on, ok := parseToggle(fields, w); ok {
			r.opts.mode = prettyprinter.Concise
			if on {
				r.opts.mode = prettyprinter.Explicit
			}
		}
	default:
		fmt.Fprintf(w, "unknown command %s. Type :help for help.\n", fields[0])
	}
	return false
}

func parseToggle(fields []string, w io.Writer) (on, ok bool) {
	if len(fields) != 2 || (fields[1] != "on" && fields[1] != "off") {
		fmt.Fprintf(w, "usage: %s on|off\n", fields[0])
		return false, false
	}
	return fields[1] == "on", true
}
