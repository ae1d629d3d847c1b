package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Recognized property keys.
const (
	// KeyApplicationName names the embedding application.
	KeyApplicationName = "application.name"
	// KeyApplicationModulesPackage selects the optional namespace prefix
	// used for all convention-name resolution.
	KeyApplicationModulesPackage = "application.modules.package"
	// KeyApplicationMode selects the runtime mode (dev, test, prod).
	KeyApplicationMode = "application.mode"
)

// Runtime modes.
const (
	ModeDev  = "dev"
	ModeTest = "test"
	ModeProd = "prod"
)

// Properties is the externally supplied key-value property set consumed
// by the base configuration module. It is read-only after boot starts.
type Properties struct {
	v *viper.Viper
}

// LoaderConfig holds optional file overrides for property loading.
type LoaderConfig struct {
	ConfigFile string // explicit application.yml path
	EnvFile    string // explicit .env path
}

// LoaderOption is a functional option for LoadProperties.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// NewProperties creates an empty property set. Useful for tests and for
// embedding applications that assemble properties programmatically.
func NewProperties() *Properties {
	v := viper.New()
	bindEnv(v)
	return &Properties{v: v}
}

// LoadProperties loads the property set for an application. It searches
// for application.yml and .env in standard locations unless explicit
// paths are given. A missing file is not an error; the environment alone
// is a valid property source.
func LoadProperties(opts ...LoaderOption) (*Properties, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	v := viper.New()

	configFile := lc.ConfigFile
	if configFile == "" {
		configFile = findFile("application.yml", "./conf", ".", "./config")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", configFile, err)
		}
	}

	envFile := lc.EnvFile
	if envFile == "" {
		envFile = findFile(".env", ".", "./conf")
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	bindEnv(v)

	return &Properties{v: v}, nil
}

// Get returns the string value for key, or "" when unset.
func (p *Properties) Get(key string) string {
	return p.v.GetString(key)
}

// GetOrDefault returns the value for key, or def when unset.
func (p *Properties) GetOrDefault(key, def string) string {
	if p.v.IsSet(key) {
		return p.v.GetString(key)
	}
	return def
}

// GetBool returns the boolean value for key.
func (p *Properties) GetBool(key string) bool {
	return p.v.GetBool(key)
}

// GetInt returns the integer value for key.
func (p *Properties) GetInt(key string) int {
	return p.v.GetInt(key)
}

// IsSet reports whether key has a value from any source.
func (p *Properties) IsSet(key string) bool {
	return p.v.IsSet(key)
}

// Set overrides a property. Intended for embedding applications that
// configure the framework programmatically before boot.
func (p *Properties) Set(key string, value interface{}) {
	p.v.Set(key, value)
}

// ModulesPackage returns the optional namespace prefix for convention
// name resolution, or "" when none is configured.
func (p *Properties) ModulesPackage() string {
	return p.v.GetString(KeyApplicationModulesPackage)
}

// Mode returns the runtime mode, defaulting to prod.
func (p *Properties) Mode() string {
	return p.GetOrDefault(KeyApplicationMode, ModeProd)
}

// Unmarshal decodes the property set into a struct via mapstructure tags.
func (p *Properties) Unmarshal(target interface{}) error {
	return p.v.Unmarshal(target)
}

// bindEnv enables environment variable overrides, mapping dotted keys to
// UPPER_SNAKE names (application.mode -> APPLICATION_MODE).
func bindEnv(v *viper.Viper) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

func findFile(name string, dirs ...string) string {
	for _, dir := range dirs {
		path := dir + "/" + name
		if dir == "." {
			path = name
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
