//go:build linux

package fbdev

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/kk-code-lab/fbview/internal/surface"
	"golang.org/x/sys/unix"
)

const (
	ioctlGetVarScreenInfo = 0x4600
	ioctlGetFixScreenInfo = 0x4602
)

// Device is an open, memory-mapped framebuffer.
type Device struct {
	file    *os.File
	mem     []byte
	surface *surface.Surface
}

// Open maps the framebuffer at path for reading and writing.
func Open(path string) (*Device, error) {
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	fd := int(file.Fd())

	var fix fixScreenInfo
	if err := ioctl(fd, ioctlGetFixScreenInfo, unsafe.Pointer(&fix)); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%s: FBIOGET_FSCREENINFO: %w", path, err)
	}
	var info varScreenInfo
	if err := ioctl(fd, ioctlGetVarScreenInfo, unsafe.Pointer(&info)); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%s: FBIOGET_VSCREENINFO: %w", path, err)
	}

	geometry, err := geometryFor(info, fix)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	mem, err := unix.Mmap(fd, 0, int(fix.SmemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%s: mmap: %w", path, err)
	}

	visible := mem[geometry.Offset:]
	pix := unsafe.Slice((*uint32)(unsafe.Pointer(&visible[0])), len(visible)/4)
	surf, err := surface.Wrap(pix, geometry.Width, geometry.Height, geometry.StridePixels)
	if err != nil {
		_ = unix.Munmap(mem)
		_ = file.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &Device{
		file:    file,
		mem:     mem,
		surface: surf,
	}, nil
}

// Surface returns the mapped pixels. It must not be used after Close.
func (d *Device) Surface() *surface.Surface {
	return d.surface
}

// Close flushes and unmaps the framebuffer and closes the device.
func (d *Device) Close() error {
	if d == nil {
		return nil
	}
	var firstErr error
	if d.mem != nil {
		if err := unix.Msync(d.mem, unix.MS_SYNC|unix.MS_INVALIDATE); err != nil && firstErr == nil {
			firstErr = err
		}
		if err := unix.Munmap(d.mem); err != nil && firstErr == nil {
			firstErr = err
		}
		d.mem = nil
		d.surface = nil
	}
	if d.file != nil {
		if err := d.file.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		d.file = nil
	}
	return firstErr
}

func ioctl(fd int, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}
