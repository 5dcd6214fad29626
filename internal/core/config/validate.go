package config

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/hay-kot/criterio"
)

// ValidateDeep runs Validate and then checks that the config file and the
// configured executables are usable.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("svn_path", c.SvnPath, executableExists),
		criterio.Run("svnversion_path", c.SvnversionPath, executableExists),
	)
}

// lookPath is replaced in tests.
var lookPath = exec.LookPath

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func executableExists(path string) error {
	if path == "" {
		return nil
	}
	if _, err := lookPath(path); err != nil {
		return fmt.Errorf("executable not found: %s", path)
	}
	return nil
}
