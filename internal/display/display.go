// Package display provides the pixel surfaces the pager draws on: a Linux
// framebuffer, or a terminal mirror for machines without one.
package display

import (
	"errors"
	"fmt"

	"github.com/kk-code-lab/fbview/internal/fbdev"
	"github.com/kk-code-lab/fbview/internal/surface"
)

// ErrSurfaceUnavailable reports that no pixel surface could be acquired.
var ErrSurfaceUnavailable = errors.New("pixel surface unavailable")

// Display owns a pixel surface until Close.
type Display interface {
	Surface() *surface.Surface
	// Present makes everything drawn since the last call visible.
	Present() error
	Close() error
}

// Framebuffer draws straight into mapped device memory.
type Framebuffer struct {
	dev *fbdev.Device
}

// OpenFramebuffer maps the framebuffer device at path.
func OpenFramebuffer(path string) (*Framebuffer, error) {
	dev, err := fbdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSurfaceUnavailable, err)
	}
	return &Framebuffer{dev: dev}, nil
}

func (f *Framebuffer) Surface() *surface.Surface {
	return f.dev.Surface()
}

// Present is a no-op: framebuffer writes are already on screen.
func (f *Framebuffer) Present() error {
	return nil
}

func (f *Framebuffer) Close() error {
	return f.dev.Close()
}
