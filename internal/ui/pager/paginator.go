// Package pager holds the page-window state machine: which line the view
// starts at and how navigation commands move it.
package pager

import "github.com/kk-code-lab/fbview/internal/fs"

// Command is a navigation request derived from a key.
type Command int

const (
	CommandNone Command = iota
	CommandLineUp
	CommandLineDown
	CommandPageUp
	CommandPageDown
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandLineUp:
		return "line-up"
	case CommandLineDown:
		return "line-down"
	case CommandPageUp:
		return "page-up"
	case CommandPageDown:
		return "page-down"
	case CommandQuit:
		return "quit"
	default:
		return "none"
	}
}

// Step is the outcome of applying one command.
type Step struct {
	From int
	To   int
	Quit bool
}

// Moved reports whether the start line changed.
func (s Step) Moved() bool {
	return s.From != s.To
}

// Paginator tracks the first visible line of a document of fixed length.
//
// The start line stays within [0, totalLines-2] when totalLines >= 2 and is
// pinned to 0 otherwise. The upper bound leaves the last line reachable only
// as the second row of the final window.
type Paginator struct {
	totalLines int
	pageSize   int
	start      int
}

// NewPaginator starts at line 0 with the standard page size.
func NewPaginator(totalLines int) *Paginator {
	if totalLines < 0 {
		totalLines = 0
	}
	return &Paginator{totalLines: totalLines, pageSize: fs.LinesPerPage}
}

func (p *Paginator) Start() int      { return p.start }
func (p *Paginator) TotalLines() int { return p.totalLines }

// MaxStart is the largest start line the paginator allows.
func (p *Paginator) MaxStart() int {
	if p.totalLines < 2 {
		return 0
	}
	return p.totalLines - 2
}

// Page is the 1-based page number shown for the current start line.
func (p *Paginator) Page() int {
	return p.start/p.pageSize + 1
}

// Apply moves the start line for cmd. Every movement saturates at the
// bounds, so repeating a command at a bound changes nothing.
func (p *Paginator) Apply(cmd Command) Step {
	step := Step{From: p.start, To: p.start}
	switch cmd {
	case CommandQuit:
		step.Quit = true
		return step
	case CommandLineUp:
		p.start = p.clamp(p.start - 1)
	case CommandLineDown:
		p.start = p.clamp(p.start + 1)
	case CommandPageUp:
		p.start = p.clamp(p.start - p.pageSize)
	case CommandPageDown:
		p.start = p.clamp(p.start + p.pageSize)
	}
	step.To = p.start
	return step
}

func (p *Paginator) clamp(line int) int {
	if line > p.MaxStart() {
		line = p.MaxStart()
	}
	if line < 0 {
		line = 0
	}
	return line
}
