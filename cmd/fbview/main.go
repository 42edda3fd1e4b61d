package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	apppkg "github.com/kk-code-lab/fbview/internal/app"
	"github.com/kk-code-lab/fbview/internal/config"
	"github.com/kk-code-lab/fbview/internal/fs"
)

func printHelp(w io.Writer) {
	fmt.Fprint(w, `fbview - Page through a text file on the Linux framebuffer

USAGE:
    fbview <file>

KEYS:
    k / j     Scroll up / down one line
    u / d     Scroll up / down one page
    q         Quit

ENVIRONMENT:
    FBVIEW_CONFIG       Config file (default: $XDG_CONFIG_HOME/fbview/config.toml)
    FBVIEW_DEVICE       Framebuffer device (default: /dev/fb0)
    FBVIEW_DISPLAY      fb or tty (tty mirrors the page in the terminal)
    FBVIEW_ENCODING     raw or utf8 (utf8 folds text to code page 437 glyphs)
    FBVIEW_POLL_MS      Key poll interval in milliseconds (default: 10)
    FBVIEW_DEBUG=1      Append debug lines to FBVIEW_DEBUG_FILE (default: fbview.log)
`)
}

type pager interface {
	Run() error
	Close() error
}

// Overridable for tests.
var (
	loadConfig = config.Load
	openPager  = func(path string, cfg config.Config) (pager, error) {
		return apppkg.Open(path, cfg)
	}
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
		printHelp(stdout)
		return 0
	}

	path, err := apppkg.ParseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, apppkg.Usage)
		return 1
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}

	p, err := openPager(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrSourceNotFound) {
			fmt.Fprintf(stderr, "File not found: %s\n", path)
		} else {
			fmt.Fprintf(stderr, "Error initializing display: %v\n", err)
		}
		return 1
	}
	defer func() {
		_ = p.Close()
	}()

	runErr := p.Run()
	// The terminal must be out of raw mode before anything is printed.
	closeErr := p.Close()
	if runErr != nil {
		fmt.Fprintf(stderr, "Error: %v\n", runErr)
		return 1
	}
	if closeErr != nil {
		fmt.Fprintf(stderr, "Error: %v\n", closeErr)
		return 1
	}
	return 0
}
