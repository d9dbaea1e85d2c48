package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Duration is a time.Duration that decodes from TOML and JSON strings
// like "30m" or "72h".
type Duration time.Duration

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText formats the duration back to its string form.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// LoadOptions reads pipeline options from a TOML file, for example:
//
//	sweeps = 4
//	cache_ttl = "72h"
//
// Unknown keys are rejected so typos fail loudly. The result still
// needs ValidateAndSetDefaults, which Execute applies.
func LoadOptions(path string) (Options, error) {
	var opts Options
	meta, err := toml.DecodeFile(path, &opts)
	if err != nil {
		return Options{}, fmt.Errorf("load options from %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Options{}, fmt.Errorf("load options from %s: unknown key %q", path, undecoded[0])
	}
	return opts, nil
}

// NewLogger creates a logger with timestamp formatting, matching the
// format the rest of the project logs in.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
