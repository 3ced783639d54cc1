package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds the parsed command line.
type cliFlags struct {
	config    string
	journal   string
	list      bool
	export    string
	out       string
	noColor   bool
	titleOnly bool
	verbose   bool
	version   bool
}

// parseFlags parses args (including the program name at args[0]) and
// returns the flags plus the remaining positional arguments, which form
// the entry text.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("daybook", flag.ContinueOnError)

	f := &cliFlags{}
	fs.StringVarP(&f.config, "config", "c", "", "path to config file")
	fs.StringVarP(&f.journal, "journal", "j", "", "journal name from the config")
	fs.BoolVar(&f.list, "list", false, "list configured journals and exit")
	fs.StringVar(&f.export, "export", "", "export the entry instead of printing it (markdown, html, pdf)")
	fs.StringVarP(&f.out, "out", "o", "", "output file for --export (default: <slug>.<ext>)")
	fs.BoolVar(&f.noColor, "no-color", false, "disable tag highlighting")
	fs.BoolVar(&f.titleOnly, "title-only", false, "print only the entry title")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
