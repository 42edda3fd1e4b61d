// Package fbdev acquires a Linux framebuffer device as a pixel surface.
package fbdev

import (
	"errors"
	"fmt"
)

// DefaultDevice is the first framebuffer on most systems.
const DefaultDevice = "/dev/fb0"

var (
	ErrUnsupported       = errors.New("framebuffer devices are not supported on this platform")
	ErrUnsupportedFormat = errors.New("unsupported framebuffer pixel format")
)

// Geometry describes the visible area of a mapped framebuffer.
type Geometry struct {
	Width        int
	Height       int
	StridePixels int
	// Offset is the byte offset of the visible origin inside the mapping.
	Offset int
}

// geometryFor derives the visible area from the screen info a device
// reports. Only 32 bits per pixel is accepted.
func geometryFor(v varScreenInfo, f fixScreenInfo) (Geometry, error) {
	if v.BitsPerPixel != 32 {
		return Geometry{}, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedFormat, v.BitsPerPixel)
	}
	if f.LineLength%4 != 0 {
		return Geometry{}, fmt.Errorf("%w: line length %d is not pixel aligned", ErrUnsupportedFormat, f.LineLength)
	}
	g := Geometry{
		Width:        int(v.Xres),
		Height:       int(v.Yres),
		StridePixels: int(f.LineLength / 4),
		Offset:       int(v.Yoffset)*int(f.LineLength) + int(v.Xoffset)*4,
	}
	if g.Width <= 0 || g.Height <= 0 || g.StridePixels < g.Width {
		return Geometry{}, fmt.Errorf("%w: %dx%d stride %d", ErrUnsupportedFormat, g.Width, g.Height, g.StridePixels)
	}
	need := g.Offset + ((g.Height-1)*g.StridePixels+g.Width)*4
	if uint64(need) > uint64(f.SmemLen) {
		return Geometry{}, fmt.Errorf("%w: visible area needs %d bytes, device maps %d", ErrUnsupportedFormat, need, f.SmemLen)
	}
	return g, nil
}

type bitfield struct {
	Offset   uint32
	Length   uint32
	MsbRight uint32
}

// varScreenInfo mirrors struct fb_var_screeninfo.
type varScreenInfo struct {
	Xres         uint32
	Yres         uint32
	XresVirtual  uint32
	YresVirtual  uint32
	Xoffset      uint32
	Yoffset      uint32
	BitsPerPixel uint32
	Grayscale    uint32
	Red          bitfield
	Green        bitfield
	Blue         bitfield
	Transp       bitfield
	Nonstd       uint32
	Activate     uint32
	Height       uint32
	Width        uint32
	AccelFlags   uint32
	Pixclock     uint32
	LeftMargin   uint32
	RightMargin  uint32
	UpperMargin  uint32
	LowerMargin  uint32
	HsyncLen     uint32
	VsyncLen     uint32
	Sync         uint32
	Vmode        uint32
	Rotate       uint32
	Colorspace   uint32
	Reserved     [4]uint32
}

// fixScreenInfo mirrors struct fb_fix_screeninfo.
type fixScreenInfo struct {
	ID           [16]byte
	SmemStart    uintptr
	SmemLen      uint32
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	Xpanstep     uint16
	Ypanstep     uint16
	Ywrapstep    uint16
	LineLength   uint32
	MmioStart    uintptr
	MmioLen      uint32
	Accel        uint32
	Capabilities uint16
	Reserved     [2]uint16
}
