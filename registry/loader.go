package registry

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/restkit/httpclient"
	"github.com/kbukum/restkit/logger"
)

// FileConfig is the on-disk shape of a registry configuration:
//
//	clients:
//	  billing:
//	    base_url: https://billing.internal
//	    timeout: 10s
//	    bearer_token: ${BILLING_TOKEN}
//	  search:
//	    base_url: https://search.internal
type FileConfig struct {
	Clients map[string]httpclient.Config `yaml:"clients" mapstructure:"clients"`
}

// LoaderConfig controls file loading.
type LoaderConfig struct {
	// ConfigFile is the YAML file holding the named client configs.
	ConfigFile string
	// EnvFile is an optional .env file loaded before config parsing so
	// ${VAR} references in the config can resolve.
	EnvFile string
	// Logger is used for the registry and its clients. Nil means the
	// global logger.
	Logger *logger.Logger
}

// LoadFile reads a YAML config (and optional .env file) and returns a
// registry with every named client registered. ${VAR} references in
// base_url and bearer_token are expanded from the environment, so secrets
// stay out of the config file.
func LoadFile(opts LoaderConfig) (*Registry, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			return nil, fmt.Errorf("registry: load env file: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(opts.ConfigFile)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("registry: read config: %w", err)
	}

	var fileCfg FileConfig
	if err := v.Unmarshal(&fileCfg); err != nil {
		return nil, fmt.Errorf("registry: parse config: %w", err)
	}
	if len(fileCfg.Clients) == 0 {
		return nil, fmt.Errorf("registry: config %s defines no clients", opts.ConfigFile)
	}

	reg := New(opts.Logger)
	for name, cfg := range fileCfg.Clients {
		cfg.BaseURL = os.ExpandEnv(cfg.BaseURL)
		cfg.BearerToken = os.ExpandEnv(cfg.BearerToken)

		cfg.ApplyDefaults()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("registry: client %q: %w", name, err)
		}
		if err := reg.Register(name, cfg); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
