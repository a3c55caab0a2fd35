// Package debuglog appends timestamped diagnostics to a file when LESSR_DEBUG=1.
// The pager owns the terminal while it runs, so nothing is ever written to
// stdout or stderr from here.
package debuglog

import (
	"fmt"
	"os"
	"sync"
	"time"
)

const defaultPath = "lessr-debug.log"

var (
	mu      sync.Mutex
	enabled = os.Getenv("LESSR_DEBUG") == "1"
	path    = debugPath(os.Getenv("LESSR_DEBUG_FILE"))
	now     = time.Now
)

func debugPath(p string) string {
	if p == "" {
		return defaultPath
	}
	return p
}

// Configure overrides the environment-derived settings.
func Configure(on bool, file string) {
	mu.Lock()
	defer mu.Unlock()
	enabled = on
	path = debugPath(file)
}

// Enabled reports whether debug output is being recorded.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Printf appends one line prefixed with the component name.
func Printf(component, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	timestamp := now().Format(time.RFC3339Nano)
	_, _ = fmt.Fprintf(f, "%s [%s] "+format+"\n", append([]interface{}{timestamp, component}, args...)...)
	_ = f.Close()
}
