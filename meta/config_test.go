package meta

import (
	"errors"
	"strings"
	"testing"
)

// TestDefaultConfigValues verifies DefaultConfig returns expected field values.
func TestDefaultConfigValues(t *testing.T) {
	c := DefaultConfig()

	if c.Mode != ModeNormal {
		t.Errorf("Mode = %s, want normal", c.Mode)
	}
	if !c.EnablePrefilter {
		t.Error("EnablePrefilter should be true by default")
	}
	if c.MaxCaptures != 32 {
		t.Errorf("MaxCaptures = %d, want 32", c.MaxCaptures)
	}
	if c.MaxPatternLen != 1<<16 {
		t.Errorf("MaxPatternLen = %d, want %d", c.MaxPatternLen, 1<<16)
	}
	if c.Verbose || c.Multiline || c.Bytes {
		t.Error("Verbose, Multiline and Bytes should be off by default")
	}
	if err := c.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"unknown mode", func(c *Config) { c.Mode = 7 }, "Mode"},
		{"zero captures", func(c *Config) { c.MaxCaptures = 0 }, "MaxCaptures"},
		{"too many captures", func(c *Config) { c.MaxCaptures = 1001 }, "MaxCaptures"},
		{"zero pattern length", func(c *Config) { c.MaxPatternLen = 0 }, "MaxPatternLen"},
		{"huge pattern length", func(c *Config) { c.MaxPatternLen = 1<<24 + 1 }, "MaxPatternLen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(&c)
			err := c.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("errors.Is(%v, ErrInvalidConfig) = false", err)
			}
			var cerr *ConfigError
			if !errors.As(err, &cerr) || cerr.Field != tt.field {
				t.Errorf("error %v, want field %s", err, tt.field)
			}

			if _, err := CompileWithConfig("a", c); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("CompileWithConfig() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigBoundaries(t *testing.T) {
	c := DefaultConfig()
	c.MaxCaptures = 1
	c.MaxPatternLen = 1
	if err := c.Validate(); err != nil {
		t.Errorf("minimal config rejected: %v", err)
	}
	c.MaxCaptures = 1000
	c.MaxPatternLen = 1 << 24
	if err := c.Validate(); err != nil {
		t.Errorf("maximal config rejected: %v", err)
	}
}

func TestModeString(t *testing.T) {
	for mode, want := range map[Mode]string{
		ModeNormal:  "normal",
		ModeLiteral: "literal",
		ModeDotNL:   "dotnl",
		Mode(9):     "Mode(9)",
	} {
		if got := mode.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, want %q", uint8(mode), got, want)
		}
	}
}

func TestBadLogTimestamp(t *testing.T) {
	c := DefaultConfig()
	c.Verbose = true
	c.LogWriter = &strings.Builder{}
	c.LogTimestamp = "%"
	_, err := CompileWithConfig("a", c)
	var cerr *ConfigError
	if !errors.As(err, &cerr) || cerr.Field != "LogTimestamp" {
		t.Errorf("error = %v, want LogTimestamp config error", err)
	}
}
