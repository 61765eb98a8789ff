package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config contains logging configuration.
type Config struct {
	Level     string `yaml:"level" mapstructure:"level"`
	Format    string `yaml:"format" mapstructure:"format"`
	Output    string `yaml:"output" mapstructure:"output"`
	NoColor   bool   `yaml:"no_color" mapstructure:"no_color"`
	Timestamp bool   `yaml:"timestamp" mapstructure:"timestamp"`
}

// ApplyDefaults applies default values to logging configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
}

// Logger wraps zerolog.Logger with component context.
type Logger struct {
	logger    zerolog.Logger
	component string
}

// New creates a new logger instance from the given configuration.
func New(cfg *Config, component string) *Logger {
	cfg.ApplyDefaults()

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	output := outputWriter(cfg.Output)

	var zl zerolog.Logger
	if strings.ToLower(cfg.Format) == "console" {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: output, NoColor: cfg.NoColor})
	} else {
		zl = zerolog.New(output)
	}
	zl = zl.Level(level)

	if cfg.Timestamp {
		zl = zl.With().Timestamp().Logger()
	}
	if component != "" {
		zl = zl.With().Str(FieldComponent, component).Logger()
	}

	return &Logger{logger: zl, component: component}
}

// NewDefault creates a logger with default configuration.
func NewDefault(component string) *Logger {
	return New(&Config{Timestamp: true}, component)
}

// Nop returns a logger that discards everything. Useful as a safe
// fallback when a caller passes a nil logger.
func Nop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

func outputWriter(name string) io.Writer {
	switch strings.ToLower(name) {
	case "stdout":
		return os.Stdout
	default:
		return os.Stderr
	}
}

// WithComponent returns a logger tagged with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{
		logger:    l.logger.With().Str(FieldComponent, name).Logger(),
		component: name,
	}
}

// WithFields returns a logger with additional fields.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	zc := l.logger.With()
	for k, v := range fields {
		zc = zc.Interface(k, v)
	}
	return &Logger{logger: zc.Logger(), component: l.component}
}

// WithError returns a logger with an error field.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		logger:    l.logger.With().Err(err).Logger(),
		component: l.component,
	}
}

// GetLogger returns the underlying zerolog.Logger.
func (l *Logger) GetLogger() zerolog.Logger {
	return l.logger
}

// Trace logs a trace message.
func (l *Logger) Trace(msg string, fields ...map[string]interface{}) {
	event := l.logger.Trace()
	addFields(event, fields...)
	event.Msg(msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	event := l.logger.Debug()
	addFields(event, fields...)
	event.Msg(msg)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	event := l.logger.Info()
	addFields(event, fields...)
	event.Msg(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	event := l.logger.Warn()
	addFields(event, fields...)
	event.Msg(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...map[string]interface{}) {
	event := l.logger.Error()
	addFields(event, fields...)
	event.Msg(msg)
}

func addFields(event *zerolog.Event, fields ...map[string]interface{}) {
	for _, m := range fields {
		for k, v := range m {
			event.Interface(k, v)
		}
	}
}

// --- Global logger ---

var globalLogger *Logger

// SetGlobalLogger sets the global logger instance.
func SetGlobalLogger(l *Logger) { globalLogger = l }

// GetGlobalLogger returns the global logger, creating a default one if needed.
func GetGlobalLogger() *Logger {
	if globalLogger == nil {
		globalLogger = NewDefault("restkit")
	}
	return globalLogger
}
