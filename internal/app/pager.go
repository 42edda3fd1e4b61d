// Package app wires the document, the paginator, the renderers and the
// display together and runs the key loop.
package app

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/kk-code-lab/fbview/internal/config"
	"github.com/kk-code-lab/fbview/internal/display"
	"github.com/kk-code-lab/fbview/internal/fs"
	"github.com/kk-code-lab/fbview/internal/textutil"
	"github.com/kk-code-lab/fbview/internal/ui/input"
	pagerui "github.com/kk-code-lab/fbview/internal/ui/pager"
	renderui "github.com/kk-code-lab/fbview/internal/ui/render"
)

// Overridable for tests.
var (
	openFramebuffer = func(path string) (display.Display, error) {
		return display.OpenFramebuffer(path)
	}
	openMirror = func(width, height int, status string) (*display.Mirror, error) {
		return display.OpenMirror(width, height, status)
	}
	openTerminal = func() (input.KeySource, error) {
		return input.OpenTerminal(os.Stdin)
	}
)

// Pager holds everything one viewing session needs. All drawing happens on
// the goroutine that calls Run.
type Pager struct {
	source    renderui.TextSource
	title     string
	paginator *pagerui.Paginator
	page      *renderui.PageRenderer
	scrollbar *renderui.ScrollbarRenderer
	theme     renderui.ColorTheme

	display display.Display
	keys    input.KeySource

	pollInterval time.Duration
	sleep        func(time.Duration)
	closeOnce    sync.Once
	closeErr     error
}

// Open counts the lines of path, then acquires the display and the key
// source. The document is opened first so a bad path never touches the
// screen.
func Open(path string, cfg config.Config) (*Pager, error) {
	configureDebug(cfg.Debug, cfg.DebugFile)

	doc, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	debugf("opened %s: %d lines, %d pages, binary=%v", path, doc.TotalLines(), doc.TotalPages(), doc.Binary())

	title, cfg := viewSettings(doc, cfg)
	disp, keys, err := acquire(cfg, doc.Path())
	if err != nil {
		return nil, err
	}

	p, err := newPager(doc, title, disp, keys, cfg)
	if err != nil {
		_ = keys.Close()
		_ = disp.Close()
		return nil, err
	}
	return p, nil
}

// viewSettings names the document in the title box and picks the glyph
// encoding. A byte order mark means the file is UTF-8 whatever the config
// says.
func viewSettings(doc *fs.Document, cfg config.Config) (string, config.Config) {
	title := doc.Path()
	if doc.Binary() {
		title += " [binary]"
	}
	if doc.UTF8BOM() && cfg.Encoding != textutil.EncodingUTF8 {
		debugf("byte order mark found, using %s", textutil.EncodingUTF8)
		cfg.Encoding = textutil.EncodingUTF8
	}
	return title, cfg
}

func acquire(cfg config.Config, path string) (display.Display, input.KeySource, error) {
	if cfg.Display == config.DisplayTerminal {
		status := fmt.Sprintf("fbview: %s  [k/j line, u/d page, q quit]", path)
		mirror, err := openMirror(renderui.ReferenceWidth, renderui.ReferenceHeight, status)
		if err != nil {
			return nil, nil, err
		}
		debugf("display: terminal mirror")
		return mirror, mirror, nil
	}

	disp, err := openFramebuffer(cfg.Device)
	if err != nil {
		return nil, nil, err
	}
	keys, err := openTerminal()
	if err != nil {
		_ = disp.Close()
		return nil, nil, fmt.Errorf("open terminal input: %w", err)
	}
	debugf("display: framebuffer %s", cfg.Device)
	return disp, keys, nil
}

func newPager(source renderui.TextSource, title string, disp display.Display, keys input.KeySource, cfg config.Config) (*Pager, error) {
	surf := disp.Surface()
	if !renderui.Fits(surf.Width(), surf.Height()) {
		return nil, fmt.Errorf("%w: %dx%d is smaller than %dx%d", display.ErrSurfaceUnavailable,
			surf.Width(), surf.Height(), renderui.ReferenceWidth, renderui.ReferenceHeight)
	}

	poll := cfg.PollInterval
	if poll <= 0 {
		poll = 10 * time.Millisecond
	}

	return &Pager{
		source:       source,
		title:        title,
		paginator:    pagerui.NewPaginator(source.TotalLines()),
		page:         renderui.NewPageRenderer(surf, source, cfg.Theme, cfg.Encoding),
		scrollbar:    renderui.NewScrollbarRenderer(surf, cfg.Theme),
		theme:        cfg.Theme,
		display:      disp,
		keys:         keys,
		pollInterval: poll,
		sleep:        time.Sleep,
	}, nil
}

// Start returns the first line of the current page.
func (p *Pager) Start() int {
	return p.paginator.Start()
}

// Close restores the terminal and releases the display. It is safe to call
// more than once.
func (p *Pager) Close() error {
	p.closeOnce.Do(func() {
		keysErr := p.keys.Close()
		dispErr := p.display.Close()
		if keysErr != nil {
			p.closeErr = keysErr
		} else {
			p.closeErr = dispErr
		}
	})
	return p.closeErr
}
