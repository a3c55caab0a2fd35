package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kk-code-lab/lessr/internal/ui/pager"
)

// Config is the parsed invocation.
type Config struct {
	File        string
	NumberLines bool
	// Pattern is accepted for compatibility with less and otherwise ignored.
	Pattern     string
	ShowHelp    bool
	ShowVersion bool

	Backend     pager.Backend
	PollTimeout time.Duration
	Debug       bool
	DebugFile   string
}

// UsageErrorKind classifies a rejected invocation.
type UsageErrorKind int

const (
	UnknownFlag UsageErrorKind = iota
	MissingValue
	ExtraArgument
	InvalidSetting
)

// UsageError carries the offending value; the message is built only when
// the error is reported.
type UsageError struct {
	Kind  UsageErrorKind
	Name  string
	Value string
}

func (e *UsageError) Error() string {
	switch e.Kind {
	case UnknownFlag:
		return fmt.Sprintf("unknown option %q", e.Value)
	case MissingValue:
		return fmt.Sprintf("option %s requires a value", e.Name)
	case ExtraArgument:
		return fmt.Sprintf("unexpected argument %q: only one file can be paged", e.Value)
	case InvalidSetting:
		return fmt.Sprintf("invalid %s %q", e.Name, e.Value)
	default:
		return fmt.Sprintf("invalid usage: %s", e.Value)
	}
}

// ParseArgs reads command-line arguments, excluding the program name.
func ParseArgs(args []string) (Config, error) {
	var cfg Config
	positional := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case positional || arg == "-" || !strings.HasPrefix(arg, "-"):
			if cfg.File != "" {
				return Config{}, &UsageError{Kind: ExtraArgument, Value: arg}
			}
			cfg.File = arg
		case arg == "--":
			positional = true
		case arg == "-h" || arg == "--help":
			cfg.ShowHelp = true
		case arg == "-V" || arg == "--version":
			cfg.ShowVersion = true
		case arg == "-N" || arg == "--LINE-NUMBERS":
			cfg.NumberLines = true
		case arg == "-p" || arg == "--pattern":
			if i+1 >= len(args) {
				return Config{}, &UsageError{Kind: MissingValue, Name: arg}
			}
			i++
			cfg.Pattern = args[i]
		case strings.HasPrefix(arg, "--pattern="):
			cfg.Pattern = strings.TrimPrefix(arg, "--pattern=")
		case strings.HasPrefix(arg, "-p"):
			cfg.Pattern = arg[2:]
		default:
			return Config{}, &UsageError{Kind: UnknownFlag, Value: arg}
		}
	}
	return cfg, nil
}

// ApplyEnv fills the settings that only come from the environment.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	name := getenv("LESSR_BACKEND")
	backend, err := pager.ParseBackend(name)
	if err != nil {
		return &UsageError{Kind: InvalidSetting, Name: "LESSR_BACKEND", Value: name}
	}
	c.Backend = backend

	c.PollTimeout = pager.DefaultPollTimeout
	if raw := getenv("LESSR_POLL_MS"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms <= 0 {
			return &UsageError{Kind: InvalidSetting, Name: "LESSR_POLL_MS", Value: raw}
		}
		c.PollTimeout = time.Duration(ms) * time.Millisecond
	}

	c.Debug = getenv("LESSR_DEBUG") == "1"
	c.DebugFile = getenv("LESSR_DEBUG_FILE")
	return nil
}
