package httpclient

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/restkit/logger"
)

const defaultTimeout = 30 * time.Second

// Config configures the HTTP client.
type Config struct {
	// Name identifies the client in logs and metrics.
	Name string `yaml:"name" mapstructure:"name"`

	// BaseURL is the base URL prepended to all request paths.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"omitempty,url"`

	// Timeout is the default request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// BearerToken is attached as "Authorization: Bearer <token>" to all
	// requests when non-empty. Individual requests can override it.
	BearerToken string `yaml:"bearer_token" mapstructure:"bearer_token"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// TLS configures TLS settings for the HTTP transport.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// Logger receives request-level events. Nil means the global logger.
	Logger *logger.Logger `yaml:"-" mapstructure:"-"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("httpclient: timeout must be positive")
	}
	if err := getValidator().Struct(c); err != nil {
		return fmt.Errorf("httpclient: invalid config: %w", err)
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}
