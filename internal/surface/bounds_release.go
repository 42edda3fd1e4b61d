//go:build !fbdebug

package surface

const debugBounds = false
