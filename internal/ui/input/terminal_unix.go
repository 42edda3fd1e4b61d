//go:build !windows && !plan9 && !js && !wasip1

package input

import (
	"errors"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// TerminalSource reads key bytes from a file descriptor, normally stdin.
// When the descriptor is a terminal it is switched to raw mode once, for
// the lifetime of the source.
type TerminalSource struct {
	input   *os.File
	restore *term.State
	buf     [1]byte
}

// OpenTerminal prepares input for polling. Non-terminal inputs such as pipes
// are read as they are.
func OpenTerminal(input *os.File) (*TerminalSource, error) {
	if input == nil {
		return nil, errors.New("no input available")
	}
	s := &TerminalSource{input: input}
	fd := int(input.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return nil, err
		}
		s.restore = state
	}
	return s, nil
}

// Poll checks the descriptor without waiting and reads at most one byte.
// It returns io.EOF once the input is closed.
func (s *TerminalSource) Poll() (byte, bool, error) {
	fd := int(s.input.Fd())
	var readfds unix.FdSet
	readfds.Set(fd)
	timeout := unix.Timeval{}
	n, err := unix.Select(fd+1, &readfds, nil, nil, &timeout)
	if err == unix.EINTR {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if n == 0 || !readfds.IsSet(fd) {
		return 0, false, nil
	}

	read, err := unix.Read(fd, s.buf[:])
	switch {
	case err == unix.EINTR || err == unix.EAGAIN:
		return 0, false, nil
	case err != nil:
		return 0, false, err
	case read == 0:
		return 0, false, io.EOF
	}
	return s.buf[0], true, nil
}

// Close restores the terminal mode saved by OpenTerminal. It is safe to call
// more than once.
func (s *TerminalSource) Close() error {
	if s == nil || s.restore == nil {
		return nil
	}
	err := term.Restore(int(s.input.Fd()), s.restore)
	s.restore = nil
	return err
}
