package backend

import (
	"github.com/go-playground/validator/v10"

	"github.com/kbukum/logkit/errors"
)

// Config describes a sink configuration. Output may be "stdout", "stderr"
// or a file path; file outputs rotate according to the rotation block.
type Config struct {
	Level     string `mapstructure:"level" validate:"omitempty,oneof=trace debug info verbose warn error fatal"`
	Format    string `mapstructure:"format" validate:"omitempty,oneof=json console pretty"`
	Output    string `mapstructure:"output"`
	NoColor   bool   `mapstructure:"no_color"`
	Timestamp bool   `mapstructure:"timestamp"`
	Caller    bool   `mapstructure:"caller"`

	MaxSize    int  `mapstructure:"max_size" validate:"gte=0"`       // megabytes
	MaxBackups int  `mapstructure:"max_backups" validate:"gte=0"`    // number of backups
	MaxAge     int  `mapstructure:"max_age" validate:"gte=0"`        // days
	Compress   bool `mapstructure:"compress"`
	LocalTime  bool `mapstructure:"local_time"`

	// Loggers maps dotted logger names to level names, applied as explicit
	// thresholds after the sink is installed. Excluded from Unmarshal: the
	// dotted names would be mistaken for nesting; configure collects them
	// from the flattened key list instead.
	Loggers map[string]string `mapstructure:"-"`
}

var validate = validator.New()

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stdout"
	}
	if c.MaxSize == 0 {
		c.MaxSize = 100
	}
	if c.MaxBackups == 0 {
		c.MaxBackups = 3
	}
	if c.MaxAge == 0 {
		c.MaxAge = 28
	}
	c.Timestamp = true
	c.Caller = true
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.ConfigParse("config").WithCause(err)
	}
	for name, level := range c.Loggers {
		if _, err := ParseLevel(level); err != nil {
			return errors.ConfigParse("config").
				WithDetail("logger", name).
				WithCause(err)
		}
	}
	return nil
}
