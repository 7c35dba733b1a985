// Package meta implements the engine that ties the pipeline together:
// parsing, compilation, literal analysis, prefilter selection and pooled
// Pike VM searches.
//
// Strategy selection is based on:
//   - Anchoring (a program that must start at '^' is only tried once)
//   - Prefilter availability (literal prefixes let the VM skip input)
//   - Literal completeness (a pure literal set answers IsMatch alone)
//
// The meta-engine provides the API the root package builds on, hiding
// state pooling and prefilter bookkeeping from callers.
package meta

import (
	"errors"
	"fmt"
	"io"
)

// ErrInvalidConfig is matched by every *ConfigError.
var ErrInvalidConfig = errors.New("invalid config")

// Mode selects the compile front end.
type Mode uint8

const (
	// ModeNormal interprets metacharacters.
	ModeNormal Mode = iota

	// ModeLiteral treats every pattern rune as a literal.
	ModeLiteral

	// ModeDotNL lets '.' match newline.
	ModeDotNL
)

// String returns a human-readable representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeLiteral:
		return "literal"
	case ModeDotNL:
		return "dotnl"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Config controls compilation and search behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.Multiline = true // '^' and '$' also match at line boundaries
//	engine, err := meta.CompileWithConfig("^item$", config)
type Config struct {
	// Mode selects the compile front end.
	// Default: ModeNormal
	Mode Mode

	// Multiline makes '^' and '$' also match after and before '\n'.
	// Default: false
	Multiline bool

	// Bytes treats every input byte as one rune. Input is never rejected
	// for its encoding in this mode.
	// Default: false
	Bytes bool

	// MaxCaptures bounds the number of groups recorded, group 0 included.
	// Groups beyond it still match but are not reported.
	// Default: 32
	MaxCaptures int

	// EnablePrefilter enables literal-based prefiltering.
	// Default: true
	EnablePrefilter bool

	// MaxPatternLen refuses longer patterns before anything is allocated.
	// Default: 1 << 16
	MaxPatternLen int

	// Verbose logs the parse tree, instruction budget, program listing and
	// chosen strategy when a pattern is compiled.
	// Default: false
	Verbose bool

	// LogWriter receives verbose output. Nil means standard error.
	LogWriter io.Writer

	// LogTimestamp is an optional strftime pattern prefixed to log lines.
	LogTimestamp string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Mode:            ModeNormal,
		MaxCaptures:     32,
		EnablePrefilter: true,
		MaxPatternLen:   1 << 16,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
//
// Valid ranges:
//   - Mode: ModeNormal, ModeLiteral or ModeDotNL
//   - MaxCaptures: 1 to 1,000
//   - MaxPatternLen: 1 to 16,777,216
func (c Config) Validate() error {
	if c.Mode > ModeDotNL {
		return &ConfigError{
			Field:   "Mode",
			Message: "unknown mode " + c.Mode.String(),
		}
	}
	if c.MaxCaptures < 1 || c.MaxCaptures > 1_000 {
		return &ConfigError{
			Field:   "MaxCaptures",
			Message: "must be between 1 and 1,000",
		}
	}
	if c.MaxPatternLen < 1 || c.MaxPatternLen > 1<<24 {
		return &ConfigError{
			Field:   "MaxPatternLen",
			Message: "must be between 1 and 16,777,216",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "regexp: invalid config: " + e.Field + ": " + e.Message
}

// Unwrap returns ErrInvalidConfig.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
