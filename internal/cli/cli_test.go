package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse(nil, &out)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, "build.hcl", cfg.BuildFile)
	assert.Empty(t, cfg.Targets)
	assert.Empty(t, cfg.UserProperties)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.ListTargets)
	assert.False(t, cfg.SkipGraphCheck)
}

func TestParseTargetsAndFile(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := Parse([]string{"-file", "ci/build.hcl", "compile", "dist"}, &out)
	require.NoError(t, err)

	assert.Equal(t, "ci/build.hcl", cfg.BuildFile)
	assert.Equal(t, []string{"compile", "dist"}, cfg.Targets)
}

func TestParseShorthandFileWins(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := Parse([]string{"-file", "a.hcl", "-f", "b.hcl"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "b.hcl", cfg.BuildFile)
}

func TestParseUserProperties(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := Parse([]string{"-D", "stage=release", "-D", "dir=out=put"}, &out)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"stage": "release",
		"dir":   "out=put",
	}, cfg.UserProperties)
}

func TestParseInvalidUserProperty(t *testing.T) {
	var out bytes.Buffer
	_, _, err := Parse([]string{"-D", "noequals"}, &out)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParseFlags(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := Parse([]string{"-list", "-skip-graph-check", "-log-format", "json", "-log-level", "debug"}, &out)
	require.NoError(t, err)

	assert.True(t, cfg.ListTargets)
	assert.True(t, cfg.SkipGraphCheck)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseInvalidLogSettings(t *testing.T) {
	for _, args := range [][]string{
		{"-log-format", "xml"},
		{"-log-level", "loud"},
	} {
		var out bytes.Buffer
		_, _, err := Parse(args, &out)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr, "args %v", args)
		assert.Equal(t, 2, exitErr.Code)
	}
}

func TestParseHelpRequestsCleanExit(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParseUnknownFlag(t *testing.T) {
	var out bytes.Buffer
	_, _, err := Parse([]string{"-bogus"}, &out)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}
