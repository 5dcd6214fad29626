package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "svn", cfg.SvnPath)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
svn_path: /opt/svn/bin/svn
command_timeout: 45s
max_status_depth: 32
min_svn_version: ">= 1.9"
theme: gruvbox
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/svn/bin/svn", cfg.SvnPath)
	assert.Equal(t, "svnversion", cfg.SvnversionPath)
	assert.Equal(t, 45*time.Second, cfg.CommandTimeout)
	assert.Equal(t, 32, cfg.MaxStatusDepth)
	assert.Equal(t, ">= 1.9", cfg.MinSvnVersion)
	assert.Equal(t, "gruvbox", cfg.Theme)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"bad yaml", "svn_path: [", "parse config file"},
		{"negative timeout", "command_timeout: -1s", "command_timeout"},
		{"negative depth", "max_status_depth: -3", "max_status_depth"},
		{"bad constraint", "min_svn_version: \"~> banana\"", "min_svn_version"},
		{"unknown theme", "theme: solarized", "theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestVersionConstraint(t *testing.T) {
	cfg := DefaultConfig()
	c, err := cfg.VersionConstraint()
	require.NoError(t, err)
	assert.Equal(t, ">= 1.7", c.String())
}

func TestValidateDeep(t *testing.T) {
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })

	lookPath = func(file string) (string, error) {
		if file == "svn" {
			return "/usr/bin/svn", nil
		}
		return "", errors.New("not found")
	}

	cfg := DefaultConfig()
	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 1)
	assert.Equal(t, "svnversion_path", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "executable not found")

	lookPath = func(file string) (string, error) { return "/usr/bin/" + file, nil }
	assert.NoError(t, cfg.ValidateDeep(""))
}

func TestValidateDeep_ConfigIsDirectory(t *testing.T) {
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })
	lookPath = func(file string) (string, error) { return file, nil }

	cfg := DefaultConfig()
	err := cfg.ValidateDeep(t.TempDir())

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 1)
	assert.Equal(t, "config_file", fieldErrs[0].Field)
}
