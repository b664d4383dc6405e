package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/muesli/termenv"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var usage = heredoc.Doc(`
	Usage: hurlhtml [flags]

	Exports the stylesheet used by highlighted Hurl markup. Styles are the
	bundled default, themes found in the theme directories, or any chroma
	style (see -list-styles).

	Flags:
`)

func main() {
	log.SetFlags(0)
	log.SetPrefix("hurlhtml: ")

	var (
		opts        cliOptions
		themeDirs   string
		showVersion bool
	)

	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.StringVar(&opts.style, "style", "", "Style to export (default from settings)")
	flag.StringVar(&themeDirs, "theme-dir", "", "Theme directories (comma separated)")
	flag.BoolVar(&opts.minify, "minify", false, "Minify the generated stylesheet")
	flag.StringVar(&opts.output, "o", "", "Write output to file instead of stdout")
	flag.BoolVar(&opts.listStyles, "list-styles", false, "List available styles and exit")
	flag.BoolVar(&opts.static, "static", false, "Export the bundled stylesheet unchanged")
	flag.BoolVar(&opts.preview, "preview", false, "Print a highlighted sample to the terminal")
	flag.BoolVar(&opts.page, "page", false, "Render a standalone HTML sample page")
	flag.BoolVar(&opts.save, "save", false, "Persist -style, -theme-dir and -minify to settings")
	flag.BoolVar(&showVersion, "version", false, "Show hurlhtml version")
	flag.Parse()

	if showVersion {
		fmt.Printf("hurlhtml %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
		os.Exit(0)
	}
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	opts.themeDirs = splitList(themeDirs)
	opts.profile = termenv.EnvColorProfile()
	if err := run(opts, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}
