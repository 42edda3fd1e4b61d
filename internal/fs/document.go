package fs

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// LinesPerPage is the number of rows a page shows.
const LinesPerPage = 35

const (
	documentChunkSize = 128 * 1024
	// maxLineBytes bounds how much of a single line is kept for display.
	maxLineBytes = 1024
)

var (
	ErrSourceNotFound = errors.New("file not found")
	ErrSourceRead     = errors.New("file read failed")
)

// Document is a line-counted view of a text file. The line count and the
// line start offsets are computed once by Open; re-open to see later edits.
type Document struct {
	path       string
	totalLines int
	offsets    []int64
	binary     bool
	utf8BOM    bool
}

// Open scans path once to count its lines.
func Open(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceNotFound, path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	sample, err := ReadTextSample(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceNotFound, path, err)
	}

	offsets, err := scanLineOffsets(file, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceNotFound, path, err)
	}

	// The mark counts as content of the first line but is never shown.
	hasBOM := detectUnicodeEncoding(sample) == encodingUTF8BOM
	if hasBOM && len(offsets) > 0 {
		offsets[0] = int64(len(utf8BOM))
	}

	return &Document{
		path:       path,
		totalLines: len(offsets),
		offsets:    offsets,
		binary:     !IsTextFile(path, sample),
		utf8BOM:    hasBOM,
	}, nil
}

// countLines counts line terminators in r. A trailing line without a
// terminator counts as one more line; empty input has zero lines.
func countLines(r io.Reader) (int, error) {
	offsets, err := scanLineOffsets(r, 0)
	return len(offsets), err
}

// scanLineOffsets returns the start offset of every line in r. The first
// line starts at base; bytes before base are not read from r.
func scanLineOffsets(r io.Reader, base int64) ([]int64, error) {
	if seeker, ok := r.(io.Seeker); ok && base > 0 {
		if _, err := seeker.Seek(base, io.SeekStart); err != nil {
			return nil, err
		}
	} else if base > 0 {
		if _, err := io.CopyN(io.Discard, r, base); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	}

	var offsets []int64
	buf := make([]byte, documentChunkSize)
	pos := base
	lineStart := base
	pending := false
	for {
		n, err := r.Read(buf)
		data := buf[:n]
		for len(data) > 0 {
			idx := bytes.IndexByte(data, '\n')
			if idx < 0 {
				pending = true
				pos += int64(len(data))
				break
			}
			offsets = append(offsets, lineStart)
			pos += int64(idx + 1)
			lineStart = pos
			pending = false
			data = data[idx+1:]
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	if pending {
		offsets = append(offsets, lineStart)
	}
	return offsets, nil
}

func (d *Document) Path() string {
	return d.path
}

func (d *Document) TotalLines() int {
	if d == nil {
		return 0
	}
	return d.totalLines
}

// TotalPages is totalLines/LinesPerPage + 1. It is a display figure, not a
// ceiling: a document of exactly 35 lines reports two pages.
func (d *Document) TotalPages() int {
	return d.TotalLines()/LinesPerPage + 1
}

// Binary reports whether the first bytes of the file looked like binary
// content when it was opened.
func (d *Document) Binary() bool {
	return d.binary
}

// UTF8BOM reports whether the file starts with a UTF-8 byte order mark.
func (d *Document) UTF8BOM() bool {
	return d.utf8BOM
}

// Window re-opens the file and returns up to count lines starting at line
// start, with terminators stripped. Fewer lines are returned at the tail of
// the document. Lines longer than maxLineBytes are cut.
func (d *Document) Window(start, count int) ([]string, error) {
	if start < 0 {
		start = 0
	}
	if count <= 0 || start >= d.totalLines {
		return nil, nil
	}
	if start+count > d.totalLines {
		count = d.totalLines - start
	}

	file, err := os.Open(d.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceRead, err)
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err := file.Seek(d.offsets[start], io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceRead, err)
	}

	reader := bufio.NewReaderSize(file, 16*1024)
	lines := make([]string, 0, count)
	for len(lines) < count {
		line, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			if line != nil {
				lines = append(lines, string(line))
			} else if d.utf8BOM && start+len(lines) == 0 {
				// A file holding only the mark is one empty line.
				lines = append(lines, "")
			}
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSourceRead, err)
		}
		lines = append(lines, string(line))
	}
	return lines, nil
}

// readLine reads through the next '\n' and returns at most maxLineBytes of
// the line without its terminator. At end of input it returns the partial
// line (nil if there was none) together with io.EOF.
func readLine(r *bufio.Reader) ([]byte, error) {
	var line []byte
	read := false
	for {
		chunk, err := r.ReadSlice('\n')
		if len(chunk) > 0 {
			read = true
		}
		if room := maxLineBytes + 1 - len(line); room > 0 {
			if len(chunk) < room {
				room = len(chunk)
			}
			line = append(line, chunk[:room]...)
		}
		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if !read {
				return nil, io.EOF
			}
			return trimLine(line), io.EOF
		case err != nil:
			return nil, err
		}
		return trimLine(line), nil
	}
}

func trimLine(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
	}
	if len(line) > maxLineBytes {
		line = line[:maxLineBytes]
	}
	if line == nil {
		line = []byte{}
	}
	return line
}
