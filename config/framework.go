package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ronin-framework/ronin/logger"
	"github.com/ronin-framework/ronin/util"
)

// FrameworkConfig is the typed view of the property set the framework
// itself consumes. Application-specific properties stay in Properties.
type FrameworkConfig struct {
	Application ApplicationConfig `mapstructure:"application"`
	Logging     logger.Config     `mapstructure:"logging"`
}

// ApplicationConfig holds application identity and mode.
type ApplicationConfig struct {
	Name string `mapstructure:"name"`
	Mode string `mapstructure:"mode" validate:"omitempty,oneof=dev test prod"`

	// Modules holds the convention-name namespace configuration.
	Modules ModulesConfig `mapstructure:"modules"`
}

// ModulesConfig selects the optional namespace prefix for convention
// name resolution.
type ModulesConfig struct {
	Package string `mapstructure:"package"`
}

// ApplyDefaults applies default values to unset fields.
func (c *FrameworkConfig) ApplyDefaults() {
	c.Application.Name = util.Coalesce(c.Application.Name, "ronin")
	c.Application.Mode = util.Coalesce(c.Application.Mode, ModeProd)
	c.Logging.AppName = util.Coalesce(c.Logging.AppName, c.Application.Name)
	c.Logging.ApplyDefaults()
}

// Validate checks the configuration via struct tags plus logging rules.
func (c *FrameworkConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("framework config invalid: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("framework config logging: %w", err)
	}
	return nil
}

// FrameworkOf derives the validated typed framework configuration from
// the raw property set.
func FrameworkOf(props *Properties) (*FrameworkConfig, error) {
	var cfg FrameworkConfig
	if err := props.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal framework config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
