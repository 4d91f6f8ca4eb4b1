// Package config provides configuration management for smpsh.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Columns: id, forward, reverse
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Run.SamplesheetPath, ReadsDir, SampleDBDir, Name (per-invocation)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use SMPSH_ prefix with underscores for nesting:
//
//	SMPSH_COLUMNS_ID=sample
//	SMPSH_COLUMNS_FORWARD=fw_reads
//	SMPSH_LOG_LEVEL=info
//	SMPSH_LOG_DESTINATION=stderr
package config

// Config represents the complete smpsh configuration.
type Config struct {
	// Columns contains the header names of the samplesheet columns
	// smpsh acts on.
	Columns ColumnsConfig `mapstructure:"columns" yaml:"columns"`

	// Run contains settings specific to one smpsh invocation.
	Run RunConfig `mapstructure:"run" yaml:"run"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// ColumnsConfig names the columns of incoming samplesheets.
// During reading these columns are renamed to the canonical
// headers 'ID', 'fw_reads' and 'rv_reads'.
type ColumnsConfig struct {
	// ID is the header of the sample identifier column.
	ID string `mapstructure:"id" yaml:"id"`

	// Forward is the header of the forward reads column.
	Forward string `mapstructure:"forward" yaml:"forward"`

	// Reverse is the header of the reverse reads column.
	Reverse string `mapstructure:"reverse" yaml:"reverse"`
}

// RunConfig contains settings specific to one smpsh invocation.
type RunConfig struct {
	// SamplesheetPath points to the samplesheet to process.
	// The CLI converts it to an absolute path during startup.
	SamplesheetPath string `mapstructure:"samplesheet_path" yaml:"samplesheet_path"`

	// ReadsDir overrides the directory scanned for read files.
	// Empty value means the directory of the samplesheet.
	ReadsDir string `mapstructure:"reads_dir" yaml:"reads_dir"`

	// SampleDBDir is the directory where the sample database lives.
	// When it is set, smpsh merges an already corrected samplesheet
	// into the database instead of correcting a new one.
	SampleDBDir string `mapstructure:"sample_db_dir" yaml:"sample_db_dir"`

	// Name is the sequencing run name recorded in the run_id column.
	// Empty value leaves run_id cells empty.
	Name string `mapstructure:"name" yaml:"name"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Columns: ColumnsConfig{
			ID:      "ID",
			Forward: "fw_reads",
			Reverse: "rv_reads",
		},
		Run: RunConfig{
			SamplesheetPath: "samplesheet.tsv",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
