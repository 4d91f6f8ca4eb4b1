package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptColumnID sets the header of the sample identifier column
// in incoming samplesheets.
func OptColumnID(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Column ID", s) {
			c.Columns.ID = s
		}
	}
}

// OptColumnForward sets the header of the forward reads column
// in incoming samplesheets.
func OptColumnForward(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Column Forward", s) {
			c.Columns.Forward = s
		}
	}
}

// OptColumnReverse sets the header of the reverse reads column
// in incoming samplesheets.
func OptColumnReverse(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Column Reverse", s) {
			c.Columns.Reverse = s
		}
	}
}

// OptSamplesheetPath sets the path of the samplesheet to process.
// Runtime-only field - not in ToOptions().
func OptSamplesheetPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Samplesheet Path", s) {
			c.Run.SamplesheetPath = s
		}
	}
}

// OptReadsDir overrides the directory that is scanned for read files.
// By default the directory of the samplesheet is scanned.
// Runtime-only field - not in ToOptions().
func OptReadsDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Reads Directory", s) {
			c.Run.ReadsDir = s
		}
	}
}

// OptSampleDBDir sets the sample database directory and switches
// smpsh into database mode.
// Runtime-only field - not in ToOptions().
func OptSampleDBDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Sample DB Directory", s) {
			c.Run.SampleDBDir = s
		}
	}
}

// OptRunName sets the sequencing run name recorded in the run_id
// column of the corrected samplesheet.
// Runtime-only field - not in ToOptions().
func OptRunName(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Run Name", s) {
			c.Run.Name = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
