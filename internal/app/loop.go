package app

import (
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/kk-code-lab/fbview/internal/ui/input"
	renderui "github.com/kk-code-lab/fbview/internal/ui/render"
)

// Run draws the first page and dispatches keys until the user quits, the
// input closes or the process is asked to stop. The caller still owns Close.
func (p *Pager) Run() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, quitSignals()...)
	defer signal.Stop(stop)

	if err := p.drawInitial(); err != nil {
		return err
	}
	return p.loop(stop)
}

func (p *Pager) drawInitial() error {
	renderui.DrawChrome(p.display.Surface(), p.title, p.theme)
	p.redraw()
	return p.display.Present()
}

func (p *Pager) loop(stop <-chan os.Signal) error {
	for {
		select {
		case sig := <-stop:
			debugf("received %v, quitting", sig)
			return nil
		default:
		}

		p.sleep(p.pollInterval)

		key, ok, err := p.keys.Poll()
		if err != nil {
			if errors.Is(err, io.EOF) {
				debugf("input closed, quitting")
				return nil
			}
			return err
		}
		if !ok {
			continue
		}

		quit, err := p.dispatch(key)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// dispatch applies one key and redraws. Every key redraws, including keys
// that map to no command.
func (p *Pager) dispatch(key byte) (bool, error) {
	cmd := input.CommandForKey(key)
	step := p.paginator.Apply(cmd)
	if step.Quit {
		debugf("quit at line %d", step.From)
		return true, nil
	}
	if step.Moved() {
		debugf("%s: %d -> %d", cmd, step.From, step.To)
	}

	if !p.redraw() {
		return false, nil
	}
	return false, p.display.Present()
}

// redraw renders the page and the scrollbar for the current start line. A
// source read failure skips the whole cycle and leaves the previous frame.
func (p *Pager) redraw() bool {
	start := p.paginator.Start()
	if err := p.page.Render(start); err != nil {
		debugf("render at line %d skipped: %v", start, err)
		return false
	}
	state := p.scrollbar.Render(start, p.paginator.TotalLines())
	debugf("page %d, thumb %d+%d", p.paginator.Page(), state.ThumbTop, state.ThumbHeight)
	return true
}
