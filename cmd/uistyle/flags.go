// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Global flags precede the subcommand: list, active, show, check, watch

package main

import (
	"flag"
	"fmt"
	"io"
)

type cliArgs struct {
	verbose  bool
	json     bool
	night    string
	registry string
	state    string
	strict   bool
	plain    bool
	version  bool

	command string
	rest    []string
}

const usage = `usage: uistyle [flags] <command> [args]

commands:
  list          list selectable styles with their swatch and status
  active        print the active style
  show <query>  explain one style (fuzzy title match)
  check         validate registry and catalogs; non-zero exit on problems
  watch         print the active style whenever it changes

flags:
`

func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet("uistyle", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&args.json, "json", false, "JSON output (list, active)")
	fs.StringVar(&args.night, "night", "", "Night mode: auto, dark or light")
	fs.StringVar(&args.registry, "registry", "", "Category registry YAML file")
	fs.StringVar(&args.state, "state", "", "Overlay state snapshot file")
	fs.BoolVar(&args.strict, "strict", false, "Require the exact required category set")
	fs.BoolVar(&args.plain, "plain", false, "Disable colored swatches")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return args, err
	}

	if rest := fs.Args(); len(rest) > 0 {
		args.command = rest[0]
		args.rest = rest[1:]
	}
	if args.command == "" && !args.version {
		fs.Usage()
		return args, fmt.Errorf("missing command")
	}
	return args, nil
}
