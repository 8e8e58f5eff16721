// Package config loads the interpreter's tuning knobs from three layered
// sources, per SPEC_FULL.md §10.3: CLI flags (highest precedence, applied
// by the caller after Load returns), an optional .golox.yaml project file,
// and environment variables (lowest precedence, applied first so the YAML
// file and CLI flags can override them).
package config

import (
	"os"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

// Config holds the knobs a golox run can be tuned with. Load fills in the
// defaults (no depth cap, REPL echo on, warn-level logging) from the
// envDefault tags; a zero Config has REPL echo off and an empty log level.
type Config struct {
	// MaxCallDepth caps nested Lox function/method/constructor calls, per
	// interpreter.Interpreter.EnterCall, to guard against a runaway Lox
	// program exhausting the Go call stack; 0 means unlimited.
	MaxCallDepth int `yaml:"max_call_depth" env:"GOLOX_MAX_CALL_DEPTH"`

	// ReplEcho controls whether the REPL prints the value of a bare
	// expression statement, per spec.md §7.
	ReplEcho bool `yaml:"repl_echo" env:"GOLOX_REPL_ECHO" envDefault:"true"`

	// LogLevel is a logrus level name ("debug", "warn", "error", ...).
	LogLevel string `yaml:"log_level" env:"GOLOX_LOG_LEVEL" envDefault:"warn"`
}

// projectFile is the optional YAML config file looked up relative to the
// current working directory.
const projectFile = ".golox.yaml"

// Load builds a Config from environment variables, then overlays
// .golox.yaml if present in the current directory. CLI flags are applied
// by the caller on top of the result, since they come from mainer's
// struct-tag parsing rather than from this package.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(projectFile)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
