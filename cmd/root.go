/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wgskit/smpsh/internal/iofs"
	"github.com/wgskit/smpsh/internal/iologger"
	"github.com/wgskit/smpsh/internal/iosheet"
	app "github.com/wgskit/smpsh/pkg"
	"github.com/wgskit/smpsh/pkg/config"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = getRootCmd()

// getRootCmd builds the root command. Extracted as a function to
// facilitate testing.
func getRootCmd() *cobra.Command {
	var (
		sheetPath string
		idCol     string
		fwCol     string
		rvCol     string
		readsDir  string
		dbDir     string
		runName   string
	)

	cmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "smpsh",
		Short:   "Smpsh corrects sequencing samplesheets and tracks processed samples",
		Long: `Smpsh prepares a sequencing run's samplesheet for downstream pipelines:
it locates the declared read files on disk, annotates every sample with
run metadata and a deterministic unique identifier, and keeps a long-term
database of all processed samples.

The tool works in two modes:
  - Correction: resolve read references to file paths, add the run_id,
    uqid and assembly columns, write samplesheet.tsv
  - Sample Database: merge an already corrected samplesheet into the
    sample database (enabled by --sample-db-dir)

Configuration precedence (highest to lowest):
  1. CLI flags (--samplesheet, --sample-column, etc.)
  2. Environment variables (SMPSH_*)
  3. Config file (~/.config/smpsh/config.yaml)
  4. Built-in defaults

Environment Variables:
  Persistent settings can be set via SMPSH_* environment variables.
  Nested fields use underscores (columns.id → SMPSH_COLUMNS_ID).

  Examples:
    SMPSH_COLUMNS_ID                Sample identifier column
    SMPSH_COLUMNS_FORWARD           Forward reads column
    SMPSH_COLUMNS_REVERSE           Reverse reads column
    SMPSH_LOG_LEVEL                 Log level (debug/info/warn/error)

  See 'go doc github.com/wgskit/smpsh/pkg/config' for the complete list.

Examples:
  # Correct a run's samplesheet
  smpsh -s /seq/data/run42/samplesheet.csv -n run42

  # Correct a samplesheet with custom column headers
  smpsh -s sheet.csv -i sample -f reads_1 -r reads_2

  # Merge the corrected samplesheet into the sample database
  smpsh -s /seq/data/run42/samplesheet.csv -d /seq/sampledb`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runRoot(
				cmd, sheetPath, idCol, fwCol, rvCol,
				readsDir, dbDir, runName,
			)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "smpsh version" prefix
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.Flags().StringVarP(
		&sheetPath, "samplesheet", "s", "samplesheet.tsv",
		"path of the samplesheet to process",
	)
	cmd.Flags().StringVarP(
		&idCol, "sample-column", "i", "ID",
		"header of the sample identifier column",
	)
	cmd.Flags().StringVarP(
		&fwCol, "forward-column", "f", "fw_reads",
		"header of the forward reads column",
	)
	cmd.Flags().StringVarP(
		&rvCol, "reverse-column", "r", "rv_reads",
		"header of the reverse reads column",
	)
	cmd.Flags().StringVar(
		&readsDir, "reads-dir", "",
		"directory scanned for read files (default: samplesheet directory)",
	)
	cmd.Flags().StringVarP(
		&dbDir, "sample-db-dir", "d", "",
		"sample database directory; switches to database mode",
	)
	cmd.Flags().StringVarP(
		&runName, "run-name", "n", "",
		"sequencing run name recorded in the run_id column",
	)

	// Override version flag to use -V (consistent with other gn projects)
	cmd.Flags().BoolP("version", "V", false, "version for smpsh")

	return cmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info(
		"Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir),
	)

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings, keeping the lines
	// written so far
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", config.ConfigFilePath(homeDir))

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log, true)
}

func runRoot(
	cmd *cobra.Command,
	sheetPath, idCol, fwCol, rvCol string,
	readsDir, dbDir, runName string,
) error {
	ctx := context.Background()

	// Build options from explicitly set flags
	var runOpts []config.Option

	if cmd.Flags().Changed("sample-column") {
		runOpts = append(runOpts, config.OptColumnID(idCol))
	}
	if cmd.Flags().Changed("forward-column") {
		runOpts = append(runOpts, config.OptColumnForward(fwCol))
	}
	if cmd.Flags().Changed("reverse-column") {
		runOpts = append(runOpts, config.OptColumnReverse(rvCol))
	}
	if cmd.Flags().Changed("samplesheet") {
		runOpts = append(runOpts, config.OptSamplesheetPath(sheetPath))
	}
	if cmd.Flags().Changed("reads-dir") {
		runOpts = append(runOpts, config.OptReadsDir(readsDir))
	}
	if cmd.Flags().Changed("sample-db-dir") {
		runOpts = append(runOpts, config.OptSampleDBDir(dbDir))
	}
	if cmd.Flags().Changed("run-name") {
		runOpts = append(runOpts, config.OptRunName(runName))
	}

	if len(runOpts) > 0 {
		cfg.Update(runOpts)
	}

	// Directory derivation (reads search root, assembly prefix) must
	// not depend on the caller's working directory.
	absPath, err := filepath.Abs(cfg.Run.SamplesheetPath)
	if err != nil {
		return err
	}
	cfg.Update([]config.Option{config.OptSamplesheetPath(absPath)})

	p := iosheet.New(cfg)

	if cfg.Run.SampleDBDir != "" {
		return p.UpdateDB(ctx)
	}
	return p.Correct(ctx)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("SMPSH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Column configuration
	v.BindEnv("columns.id", "SMPSH_COLUMNS_ID")
	v.BindEnv("columns.forward", "SMPSH_COLUMNS_FORWARD")
	v.BindEnv("columns.reverse", "SMPSH_COLUMNS_REVERSE")

	// Log configuration
	v.BindEnv("log.level", "SMPSH_LOG_LEVEL")
	v.BindEnv("log.format", "SMPSH_LOG_FORMAT")
	v.BindEnv("log.destination", "SMPSH_LOG_DESTINATION")

	v.AutomaticEnv()
}
