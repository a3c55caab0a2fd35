package app

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/kk-code-lab/lessr/internal/ui/pager"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Config
	}{
		{"no args", nil, Config{}},
		{"file", []string{"notes.txt"}, Config{File: "notes.txt"}},
		{"stdin", []string{"-"}, Config{File: "-"}},
		{"numbers short", []string{"-N", "a"}, Config{File: "a", NumberLines: true}},
		{"numbers long after file", []string{"a", "--LINE-NUMBERS"}, Config{File: "a", NumberLines: true}},
		{"pattern separate", []string{"-p", "foo", "a"}, Config{File: "a", Pattern: "foo"}},
		{"pattern attached", []string{"-pfoo", "a"}, Config{File: "a", Pattern: "foo"}},
		{"pattern long", []string{"--pattern=bar", "a"}, Config{File: "a", Pattern: "bar"}},
		{"pattern long separate", []string{"--pattern", "bar", "a"}, Config{File: "a", Pattern: "bar"}},
		{"help", []string{"--help"}, Config{ShowHelp: true}},
		{"version", []string{"-V"}, Config{ShowVersion: true}},
		{"double dash", []string{"--", "-N"}, Config{File: "-N"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArgs(tt.args)
			if err != nil {
				t.Fatalf("ParseArgs: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParseArgs(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		kind  UsageErrorKind
		value string
		msg   string
	}{
		{"unknown flag", []string{"-x"}, UnknownFlag, "-x", `unknown option "-x"`},
		{"missing pattern", []string{"a", "-p"}, MissingValue, "", "option -p requires a value"},
		{"two files", []string{"a", "b"}, ExtraArgument, "b", `unexpected argument "b": only one file can be paged`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArgs(tt.args)
			var usage *UsageError
			if !errors.As(err, &usage) {
				t.Fatalf("expected UsageError, got %v", err)
			}
			if usage.Kind != tt.kind || usage.Value != tt.value {
				t.Fatalf("unexpected error fields %+v", usage)
			}
			if err.Error() != tt.msg {
				t.Fatalf("message %q, want %q", err.Error(), tt.msg)
			}
		})
	}
}

func envMap(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestApplyEnvDefaults(t *testing.T) {
	var cfg Config
	if err := cfg.ApplyEnv(envMap(nil)); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Backend != pager.DefaultBackend() {
		t.Fatalf("Backend=%q want default %q", cfg.Backend, pager.DefaultBackend())
	}
	if cfg.PollTimeout != 500*time.Millisecond {
		t.Fatalf("PollTimeout=%v want 500ms", cfg.PollTimeout)
	}
	if cfg.Debug {
		t.Fatalf("debug should be off by default")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	var cfg Config
	err := cfg.ApplyEnv(envMap(map[string]string{
		"LESSR_BACKEND":    "tcell",
		"LESSR_POLL_MS":    "50",
		"LESSR_DEBUG":      "1",
		"LESSR_DEBUG_FILE": "/tmp/x.log",
	}))
	if err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	want := Config{Backend: pager.BackendTcell, PollTimeout: 50 * time.Millisecond, Debug: true, DebugFile: "/tmp/x.log"}
	if !reflect.DeepEqual(cfg, want) {
		t.Fatalf("cfg=%+v want %+v", cfg, want)
	}
}

func TestApplyEnvRejectsInvalidValues(t *testing.T) {
	tests := []map[string]string{
		{"LESSR_BACKEND": "curses"},
		{"LESSR_POLL_MS": "soon"},
		{"LESSR_POLL_MS": "-5"},
	}
	for _, env := range tests {
		var cfg Config
		err := cfg.ApplyEnv(envMap(env))
		var usage *UsageError
		if !errors.As(err, &usage) || usage.Kind != InvalidSetting {
			t.Fatalf("env %v: expected InvalidSetting, got %v", env, err)
		}
	}
}
