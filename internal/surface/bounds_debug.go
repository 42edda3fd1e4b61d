//go:build fbdebug

package surface

// Built with -tags fbdebug: layout bugs that reach past the surface panic
// instead of being clipped.
const debugBounds = true
