//go:build windows || plan9 || js || wasip1

package input

import (
	"errors"
	"os"
)

// TerminalSource is unavailable on this platform.
type TerminalSource struct{}

func OpenTerminal(input *os.File) (*TerminalSource, error) {
	return nil, errors.New("terminal key input is not supported on this platform")
}

func (s *TerminalSource) Poll() (byte, bool, error) { return 0, false, nil }

func (s *TerminalSource) Close() error { return nil }
