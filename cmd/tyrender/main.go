package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/tyrender/internal/config"
	"github.com/funvibe/tyrender/internal/fixture"
	"github.com/funvibe/tyrender/internal/prettyprinter"
)

const usage = `Usage: tyrender [flags] <fixture.yaml> [entry...]
       tyrender repl [flags] <fixture.yaml>

Renders the named entries of a fixture file, or all of them in file order.

Flags:
`

const (
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("tyrender: ")
	log.SetOutput(os.Stderr)

	os.Exit(run(os.Args[1:], os.Stdout, os.LookupEnv))
}

// options are the command line settings shared by both modes.
type options struct {
	session  config.Session
	mode     prettyprinter.Mode
	fixture  string
	entries  []string
	colorize bool
}

func run(args []string, stdout io.Writer, lookup func(string) (string, bool)) int {
	repl := len(args) > 0 && args[0] == "repl"
	if repl {
		args = args[1:]
	}

	opts, err := parseArgs(args, stdout, lookup)
	if err == flag.ErrHelp {
		return 0
	}
	if err != nil {
		log.Print(err)
		return 2
	}

	table, err := fixture.Load(opts.fixture)
	if err != nil {
		log.Print(err)
		return 1
	}

	if repl {
		return runREPL(table, opts)
	}
	return renderEntries(table, opts, stdout)
}

func parseArgs(args []string, stdout io.Writer, lookup func(string) (string, bool)) (*options, error) {
	fs := flag.NewFlagSet("tyrender", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	verbose := fs.Bool("verbose", false, "print fully explicit output (overrides config)")
	explicit := fs.Bool("explicit", false, "use the debug rendering")
	configPath := fs.String("config", "", "session config file (default: nearest tyrender.yaml)")
	color := fs.String("color", "", "highlight entry names: auto, always or never")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return nil, fmt.Errorf("missing fixture file")
	}

	sess, err := loadSession(*configPath)
	if err != nil {
		return nil, err
	}
	if err := sess.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	if *verbose {
		sess.Verbose = true
	}
	if *color != "" {
		sess.Color = *color
	}

	opts := &options{
		session: sess,
		mode:    prettyprinter.Concise,
		fixture: fs.Arg(0),
		entries: fs.Args()[1:],
	}
	if *explicit {
		opts.mode = prettyprinter.Explicit
	}
	if opts.colorize, err = useColor(sess.Color, stdout); err != nil {
		return nil, err
	}
	return opts, nil
}

// loadSession reads the given config, or the nearest one above the
// working directory, falling back to the defaults.
func loadSession(path string) (config.Session, error) {
	if path == "" {
		found, err := config.FindSession(".")
		if err != nil {
			return config.Session{}, err
		}
		if found == "" {
			return config.DefaultSession(), nil
		}
		path = found
	}
	sess, err := config.LoadSession(path)
	if err != nil {
		return config.Session{}, err
	}
	return *sess, nil
}

func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case config.ColorAlways:
		return true, nil
	case config.ColorNever:
		return false, nil
	case config.ColorAuto, "":
		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	}
	return false, fmt.Errorf("color must be one of auto, always, never (got %q)", mode)
}

// renderEntries prints "name: text" for each selected entry. Failures are
// logged and reflected in the exit code; the remaining entries are still
// printed.
func renderEntries(table *fixture.Table, opts *options, w io.Writer) int {
	entries := table.Entries()
	if len(opts.entries) > 0 {
		entries = entries[:0:0]
		for _, name := range opts.entries {
			e, ok := table.Entry(name)
			if !ok {
				log.Printf("%s: no entry named %q", opts.fixture, name)
				return 1
			}
			entries = append(entries, e)
		}
	}

	status := 0
	for _, e := range entries {
		text, err := prettyprinter.Render(table, opts.session, e.Value, opts.mode)
		if err != nil {
			log.Printf("%s: %v", e.Name, err)
			status = 1
			continue
		}
		fmt.Fprintln(w, formatLine(e.Name, text, opts.colorize))
	}
	return status
}

func formatLine(name, text string, colorize bool) string {
	if colorize {
		return ansiBold + name + ansiReset + ": " + text
	}
	return name + ": " + text
}
