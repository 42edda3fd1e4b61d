// Package config resolves runtime settings from defaults, an optional TOML
// file and FBVIEW_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/kk-code-lab/fbview/internal/fbdev"
	"github.com/kk-code-lab/fbview/internal/surface"
	"github.com/kk-code-lab/fbview/internal/textutil"
	"github.com/kk-code-lab/fbview/internal/ui/render"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

const (
	DisplayFramebuffer = "fb"
	DisplayTerminal    = "tty"

	defaultPollInterval = 10 * time.Millisecond
	defaultDebugFile    = "fbview.log"
)

const (
	envConfig    = "FBVIEW_CONFIG"
	envDevice    = "FBVIEW_DEVICE"
	envDisplay   = "FBVIEW_DISPLAY"
	envEncoding  = "FBVIEW_ENCODING"
	envPollMS    = "FBVIEW_POLL_MS"
	envDebug     = "FBVIEW_DEBUG"
	envDebugFile = "FBVIEW_DEBUG_FILE"
)

// Config holds everything the application needs besides the file path.
type Config struct {
	Device       string
	Display      string
	Encoding     textutil.Encoding
	PollInterval time.Duration
	Theme        render.ColorTheme
	Debug        bool
	DebugFile    string
}

// ParseError reports a config file that exists but cannot be used.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type fileConfig struct {
	Device         string            `toml:"device"`
	Display        string            `toml:"display"`
	Encoding       string            `toml:"encoding"`
	PollIntervalMS int               `toml:"poll_interval_ms"`
	Colors         map[string]string `toml:"colors"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Device:       fbdev.DefaultDevice,
		Display:      DisplayFramebuffer,
		Encoding:     textutil.EncodingRaw,
		PollInterval: defaultPollInterval,
		Theme:        render.GetColorTheme(),
		DebugFile:    defaultDebugFile,
	}
}

// Load reads the process environment and the config file it points to.
func Load() (Config, error) {
	return load(os.LookupEnv, os.ReadFile, os.UserConfigDir)
}

func load(lookupEnv func(string) (string, bool), readFile func(string) ([]byte, error), configDir func() (string, error)) (Config, error) {
	cfg := Default()

	path, explicit := lookupEnv(envConfig)
	if !explicit || path == "" {
		explicit = false
		if dir, err := configDir(); err == nil && dir != "" {
			path = filepath.Join(dir, "fbview", "config.toml")
		}
	}
	if path != "" {
		data, err := readFile(path)
		switch {
		case err == nil:
			if err := cfg.applyFile(path, data); err != nil {
				return Config{}, err
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return Config{}, &ParseError{Path: path, Err: err}
		}
	}

	if err := cfg.applyEnv(lookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string, data []byte) error {
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return &ParseError{Path: path, Err: err}
	}

	if fc.Device != "" {
		c.Device = fc.Device
	}
	if fc.Display != "" {
		display, err := parseDisplay(fc.Display)
		if err != nil {
			return &ParseError{Path: path, Err: err}
		}
		c.Display = display
	}
	if fc.Encoding != "" {
		enc, err := textutil.ParseEncoding(fc.Encoding)
		if err != nil {
			return &ParseError{Path: path, Err: err}
		}
		c.Encoding = enc
	}
	if fc.PollIntervalMS != 0 {
		if fc.PollIntervalMS < 0 {
			return &ParseError{Path: path, Err: fmt.Errorf("poll_interval_ms must be positive, got %d", fc.PollIntervalMS)}
		}
		c.PollInterval = time.Duration(fc.PollIntervalMS) * time.Millisecond
	}
	if err := applyColors(&c.Theme, fc.Colors); err != nil {
		return &ParseError{Path: path, Err: err}
	}
	return nil
}

func (c *Config) applyEnv(lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(envDevice); ok && v != "" {
		c.Device = v
	}
	if v, ok := lookupEnv(envDisplay); ok && v != "" {
		display, err := parseDisplay(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envDisplay, err)
		}
		c.Display = display
	}
	if v, ok := lookupEnv(envEncoding); ok && v != "" {
		enc, err := textutil.ParseEncoding(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envEncoding, err)
		}
		c.Encoding = enc
	}
	if v, ok := lookupEnv(envPollMS); ok && v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			return fmt.Errorf("%s: invalid interval %q", envPollMS, v)
		}
		c.PollInterval = time.Duration(ms) * time.Millisecond
	}
	if v, ok := lookupEnv(envDebug); ok {
		c.Debug = v == "1"
	}
	if v, ok := lookupEnv(envDebugFile); ok && v != "" {
		c.DebugFile = v
	}
	return nil
}

func parseDisplay(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fb", "framebuffer":
		return DisplayFramebuffer, nil
	case "tty", "terminal":
		return DisplayTerminal, nil
	}
	return "", fmt.Errorf("unknown display %q (want fb or tty)", s)
}

func themeSlots(t *render.ColorTheme) map[string]*surface.Color {
	return map[string]*surface.Color{
		"background": &t.Background,
		"frame":      &t.Frame,
		"title_bg":   &t.TitleBg,
		"title_fg":   &t.TitleFg,
		"text_bg":    &t.TextBg,
		"text_fg":    &t.TextFg,
		"index_fg":   &t.IndexFg,
		"label_bg":   &t.LabelBg,
		"label_fg":   &t.LabelFg,
		"help_bg":    &t.HelpBg,
		"help_fg":    &t.HelpFg,
		"track":      &t.Track,
		"thumb":      &t.Thumb,
	}
}

func applyColors(theme *render.ColorTheme, colors map[string]string) error {
	if len(colors) == 0 {
		return nil
	}
	slots := themeSlots(theme)
	names := make([]string, 0, len(colors))
	for name := range colors {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		slot, ok := slots[name]
		if !ok {
			return fmt.Errorf("unknown color %q", name)
		}
		c, err := ParseColor(colors[name])
		if err != nil {
			return fmt.Errorf("color %s: %w", name, err)
		}
		*slot = c
	}
	return nil
}

// ParseColor reads a "#rrggbb" hex color as an opaque surface color.
func ParseColor(s string) (surface.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, err
	}
	r, g, b := c.RGB255()
	return surface.RGB(r, g, b), nil
}
