package main

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	apppkg "github.com/kk-code-lab/fbview/internal/app"
	"github.com/kk-code-lab/fbview/internal/config"
	"github.com/kk-code-lab/fbview/internal/display"
)

func TestRunUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no args", args: nil},
		{name: "extra args", args: []string{"a.txt", "b.txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != 1 {
				t.Fatalf("exit code = %d, want 1", code)
			}
			if strings.TrimSpace(stderr.String()) != apppkg.Usage {
				t.Fatalf("stderr = %q", stderr.String())
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--help"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stdout.String(), "fbview <file>") {
		t.Fatalf("help missing usage line: %q", stdout.String())
	}
}

func TestRunFileNotFound(t *testing.T) {
	prev := loadConfig
	t.Cleanup(func() { loadConfig = prev })
	loadConfig = func() (config.Config, error) { return config.Default(), nil }

	path := filepath.Join(t.TempDir(), "missing.txt")
	var stdout, stderr bytes.Buffer
	if code := run([]string{path}, &stdout, &stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "File not found") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestRunSurfaceUnavailable(t *testing.T) {
	prevLoad, prevOpen := loadConfig, openPager
	t.Cleanup(func() { loadConfig, openPager = prevLoad, prevOpen })
	loadConfig = func() (config.Config, error) { return config.Default(), nil }
	openPager = func(string, config.Config) (pager, error) {
		return nil, fmt.Errorf("%w: /dev/fb0: no such device", display.ErrSurfaceUnavailable)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"notes.txt"}, &stdout, &stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "Error initializing display") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestRunConfigError(t *testing.T) {
	prev := loadConfig
	t.Cleanup(func() { loadConfig = prev })
	loadConfig = func() (config.Config, error) { return config.Config{}, errors.New("bad toml") }

	var stdout, stderr bytes.Buffer
	if code := run([]string{"notes.txt"}, &stdout, &stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "bad toml") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

type fakePager struct {
	runErr error
	closed int
}

func (f *fakePager) Run() error { return f.runErr }

func (f *fakePager) Close() error {
	f.closed++
	return nil
}

// closeCheckWriter records whether the pager was closed by the time
// anything was written.
type closeCheckWriter struct {
	pager        *fakePager
	buf          bytes.Buffer
	openAtOutput bool
}

func (w *closeCheckWriter) Write(p []byte) (int, error) {
	if w.pager.closed == 0 {
		w.openAtOutput = true
	}
	return w.buf.Write(p)
}

func TestRunClosesPagerBeforeReportingError(t *testing.T) {
	prevLoad, prevOpen := loadConfig, openPager
	t.Cleanup(func() { loadConfig, openPager = prevLoad, prevOpen })

	fake := &fakePager{runErr: errors.New("read /dev/stdin: input/output error")}
	loadConfig = func() (config.Config, error) { return config.Default(), nil }
	openPager = func(string, config.Config) (pager, error) { return fake, nil }

	var stdout bytes.Buffer
	stderr := &closeCheckWriter{pager: fake}
	if code := run([]string{"notes.txt"}, &stdout, stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if stderr.openAtOutput {
		t.Fatalf("error printed while the terminal was still held")
	}
	if !strings.Contains(stderr.buf.String(), "input/output error") {
		t.Fatalf("stderr = %q", stderr.buf.String())
	}
}

func TestRunQuitsCleanly(t *testing.T) {
	prevLoad, prevOpen := loadConfig, openPager
	t.Cleanup(func() { loadConfig, openPager = prevLoad, prevOpen })

	fake := &fakePager{}
	loadConfig = func() (config.Config, error) { return config.Default(), nil }
	openPager = func(string, config.Config) (pager, error) { return fake, nil }

	var stdout, stderr bytes.Buffer
	if code := run([]string{"notes.txt"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr %q)", code, stderr.String())
	}
	if fake.closed == 0 {
		t.Fatalf("pager was not closed")
	}
}
