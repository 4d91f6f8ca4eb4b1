package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetRootCmd_Exists verifies getRootCmd returns
// a valid command.
func TestGetRootCmd_Exists(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd, "Root command should exist")
	assert.Equal(t, "smpsh", cmd.Use,
		"Command name should be smpsh")
}

// TestGetRootCmd_VersionFormat verifies version
// output format.
func TestGetRootCmd_VersionFormat(t *testing.T) {
	cmd := getRootCmd()

	// Set a test version
	cmd.Version = "version: v1.2.3\nbuild:   abc123"

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--version"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "v1.2.3",
		"Version output should contain version")
	assert.Contains(t, output, "abc123",
		"Version output should contain build")
}

// TestGetRootCmd_ShortVersionFlag verifies
// -V flag works.
func TestGetRootCmd_ShortVersionFlag(t *testing.T) {
	cmd := getRootCmd()
	cmd.Version = "version: v1.2.3\nbuild:   abc123"

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"-V"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "v1.2.3",
		"Version output should work with -V flag")
}

// TestGetRootCmd_HelpText verifies help text content.
func TestGetRootCmd_HelpText(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	assert.Contains(t, helpText, "smpsh",
		"Help should mention smpsh")
	assert.Contains(t, helpText, "samplesheet",
		"Help should mention samplesheets")
	assert.Contains(t, helpText, "--sample-db-dir",
		"Help should list the database mode flag")
	assert.Contains(t, helpText, "SMPSH_",
		"Help should mention environment variables")
}

// TestGetRootCmd_ShortDescription verifies
// short description.
func TestGetRootCmd_ShortDescription(t *testing.T) {
	cmd := getRootCmd()

	assert.NotEmpty(t, cmd.Short,
		"Short description should not be empty")
	assert.Contains(t, cmd.Short, "Smpsh",
		"Short description should mention Smpsh")
	assert.Contains(t, cmd.Short, "samplesheet",
		"Short description should mention samplesheets")
}

// TestGetRootCmd_LongDescription verifies
// long description.
func TestGetRootCmd_LongDescription(t *testing.T) {
	cmd := getRootCmd()

	assert.NotEmpty(t, cmd.Long,
		"Long description should not be empty")
	assert.Contains(t, cmd.Long, "Correction",
		"Long description should mention correction mode")
	assert.Contains(t, cmd.Long, "Sample Database",
		"Long description should mention database mode")
	assert.Contains(t, cmd.Long, "Configuration precedence",
		"Long description should explain configuration")
}

// TestGetRootCmd_Flags verifies the runtime flags are registered.
func TestGetRootCmd_Flags(t *testing.T) {
	cmd := getRootCmd()

	tests := []struct {
		name      string
		shorthand string
	}{
		{"samplesheet", "s"},
		{"sample-column", "i"},
		{"forward-column", "f"},
		{"reverse-column", "r"},
		{"reads-dir", ""},
		{"sample-db-dir", "d"},
		{"run-name", "n"},
		{"version", "V"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := cmd.Flags().Lookup(tt.name)
			require.NotNil(t, flag,
				"Flag %s should be registered", tt.name)
			assert.Equal(t, tt.shorthand, flag.Shorthand,
				"Flag %s should have shorthand %q",
				tt.name, tt.shorthand)
		})
	}
}

// TestGetRootCmd_FlagDefaults verifies flag defaults match the
// built-in configuration defaults.
func TestGetRootCmd_FlagDefaults(t *testing.T) {
	cmd := getRootCmd()

	assert.Equal(t, "samplesheet.tsv",
		cmd.Flags().Lookup("samplesheet").DefValue)
	assert.Equal(t, "ID",
		cmd.Flags().Lookup("sample-column").DefValue)
	assert.Equal(t, "fw_reads",
		cmd.Flags().Lookup("forward-column").DefValue)
	assert.Equal(t, "rv_reads",
		cmd.Flags().Lookup("reverse-column").DefValue)
	assert.Equal(t, "",
		cmd.Flags().Lookup("sample-db-dir").DefValue)
}

// TestGetRootCmd_HasPreRun verifies bootstrap
// function is set.
func TestGetRootCmd_HasPreRun(t *testing.T) {
	cmd := getRootCmd()

	assert.NotNil(t, cmd.PersistentPreRunE,
		"PersistentPreRunE should be set for bootstrap")
}

// TestGetRootCmd_HasRunE verifies root has a run function.
func TestGetRootCmd_HasRunE(t *testing.T) {
	cmd := getRootCmd()

	assert.NotNil(t, cmd.RunE,
		"RunE should be set to run the pipeline")
}

// TestGetRootCmd_ErrorSilencing verifies error and
// usage silencing.
func TestGetRootCmd_ErrorSilencing(t *testing.T) {
	cmd := getRootCmd()

	assert.True(t, cmd.SilenceErrors,
		"Errors should be silenced")
	assert.True(t, cmd.SilenceUsage,
		"Usage should be silenced on errors")
}

// TestGetRootCmd_VersionTemplate verifies custom version template.
func TestGetRootCmd_VersionTemplate(t *testing.T) {
	cmd := getRootCmd()
	cmd.Version = "test-version"

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--version"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	// Should not have "smpsh version" prefix due to
	// custom template
	assert.NotContains(t, output, "smpsh version:",
		"Should use custom version template")
}

// TestGetRootCmd_IndependentInstances verifies each
// call returns independent instance.
func TestGetRootCmd_IndependentInstances(t *testing.T) {
	cmd1 := getRootCmd()
	cmd2 := getRootCmd()

	// Should be different instances
	assert.NotSame(t, cmd1, cmd2,
		"Each getRootCmd call should return new instance")

	// Modifying one shouldn't affect the other
	cmd1.Version = "version1"
	cmd2.Version = "version2"

	assert.Equal(t, "version1", cmd1.Version)
	assert.Equal(t, "version2", cmd2.Version)
}

// TestGetRootCmd_RejectsArguments verifies positional arguments are
// rejected; all input comes through flags.
func TestGetRootCmd_RejectsArguments(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"stray-argument"})

	err := cmd.Execute()

	assert.Error(t, err,
		"Should error on positional arguments")
	assert.True(t,
		strings.Contains(err.Error(), "unknown") ||
			strings.Contains(err.Error(), "invalid"),
		"Error should indicate unknown input")
}
