// Package input turns polled key symbols into pager commands.
package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/fbview/internal/ui/pager"
)

const keyCtrlC = 0x03

// KeySource is a non-blocking source of single-byte key symbols.
type KeySource interface {
	// Poll returns the next pending symbol, or ok=false when none is waiting.
	Poll() (key byte, ok bool, err error)
	// Close restores whatever state the source changed when it was opened.
	Close() error
}

// CommandForKey maps a key symbol to a navigation command. Unknown keys map
// to CommandNone.
func CommandForKey(key byte) pager.Command {
	switch key {
	case 'k':
		return pager.CommandLineUp
	case 'j':
		return pager.CommandLineDown
	case 'u':
		return pager.CommandPageUp
	case 'd':
		return pager.CommandPageDown
	case 'q', keyCtrlC:
		return pager.CommandQuit
	default:
		return pager.CommandNone
	}
}

// KeyFromEvent reduces a tcell key event to the byte a raw terminal would
// have delivered. Keys with no single-byte form are dropped.
func KeyFromEvent(ev *tcell.EventKey) (byte, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if r < 0x80 {
			return byte(r), true
		}
		return 0, false
	case tcell.KeyCtrlC:
		return keyCtrlC, true
	case tcell.KeyEscape, tcell.KeyEnter, tcell.KeyTab:
		return byte(ev.Key()), true
	default:
		return 0, false
	}
}
