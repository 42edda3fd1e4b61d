package app

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	debugEnabled bool
	debugFile    = "fbview.log"
	debugMu      sync.Mutex
)

func configureDebug(enabled bool, path string) {
	debugMu.Lock()
	defer debugMu.Unlock()
	debugEnabled = enabled
	if path != "" {
		debugFile = path
	}
}

// debugf appends one timestamped line to the debug log. The display owns
// the screen, so nothing is ever written to stdout or stderr.
func debugf(format string, args ...interface{}) {
	debugMu.Lock()
	defer debugMu.Unlock()
	if !debugEnabled {
		return
	}

	f, err := os.OpenFile(debugFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	timestamp := time.Now().Format(time.RFC3339Nano)
	_, _ = fmt.Fprintf(f, "%s "+format+"\n", append([]interface{}{timestamp}, args...)...)
	_ = f.Close()
}
