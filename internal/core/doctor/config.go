package doctor

import (
	"context"
	"errors"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/svnkit/internal/core/config"
)

// ConfigCheck reports configuration problems found by deep validation.
type ConfigCheck struct {
	cfg        *config.Config
	configPath string
}

func NewConfigCheck(cfg *config.Config, configPath string) *ConfigCheck {
	return &ConfigCheck{cfg: cfg, configPath: configPath}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	err := c.cfg.ValidateDeep(c.configPath)
	if err == nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "config",
			Status: StatusPass,
			Detail: c.configPath,
		})
		return result
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		result.Items = append(result.Items, CheckItem{Label: "config", Status: StatusFail, Detail: err.Error()})
		return result
	}

	for _, fe := range fieldErrs {
		result.Items = append(result.Items, CheckItem{
			Label:  fe.Field,
			Status: StatusFail,
			Detail: fe.Err.Error(),
		})
	}
	return result
}
