//go:build !linux

package fbdev

import "github.com/kk-code-lab/fbview/internal/surface"

// Device is unavailable outside Linux.
type Device struct{}

func Open(path string) (*Device, error) {
	return nil, ErrUnsupported
}

func (d *Device) Surface() *surface.Surface { return nil }

func (d *Device) Close() error { return nil }
