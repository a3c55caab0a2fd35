package pager

import (
	"fmt"
	"runtime"
)

// Backend names a Screen implementation.
type Backend string

const (
	BackendANSI  Backend = "ansi"
	BackendTcell Backend = "tcell"
)

// DefaultBackend picks the ANSI backend wherever select(2) is available.
func DefaultBackend() Backend {
	if runtime.GOOS == "windows" || runtime.GOOS == "plan9" {
		return BackendTcell
	}
	return BackendANSI
}

// ParseBackend accepts a backend name; the empty string means the default.
func ParseBackend(name string) (Backend, error) {
	switch Backend(name) {
	case "":
		return DefaultBackend(), nil
	case BackendANSI, BackendTcell:
		return Backend(name), nil
	default:
		return "", fmt.Errorf("unknown screen backend %q (want %q or %q)", name, BackendANSI, BackendTcell)
	}
}

// NewScreen constructs the Screen for b without touching the terminal.
func NewScreen(b Backend) (Screen, error) {
	switch b {
	case BackendANSI:
		return NewANSIScreen(), nil
	case BackendTcell:
		return NewTcellScreen()
	default:
		return nil, fmt.Errorf("unknown screen backend %q", b)
	}
}
