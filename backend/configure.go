package backend

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/magiconair/properties"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/kbukum/logkit/errors"
)

// sink is the process-wide output logger. Until something configures it the
// backend is silent, which is also the post-Reset state.
var (
	sinkMu     sync.RWMutex
	sink       = zerolog.Nop()
	sinkCaller = true
)

func currentSink() (zerolog.Logger, bool) {
	sinkMu.RLock()
	defer sinkMu.RUnlock()
	return sink, sinkCaller
}

// ApplyDefault installs the built-in minimal configuration: a console sink
// on stdout and the root logger at info.
func ApplyDefault() {
	cfg := Config{}
	cfg.ApplyDefaults()
	apply(&cfg)
}

// Reset discards the sink and clears every explicit logger level,
// hierarchy-wide. Loggers themselves survive; only their state is reset.
func Reset() {
	sinkMu.Lock()
	sink = zerolog.Nop()
	sinkCaller = true
	sinkMu.Unlock()
	resetLevels()
}

// ConfigureFromFile configures the backend from a file. YAML, JSON and TOML
// files are recognized by extension; any other extension is parsed as
// Java-style properties. A parse or read failure leaves the backend in
// whatever state it already had.
func ConfigureFromFile(path string) error {
	if configType(path) == "properties" {
		p, err := properties.LoadFile(path, properties.UTF8)
		if err != nil {
			return errors.ConfigParse(path).WithCause(err)
		}
		return applyProperties(p)
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.ConfigParse(path).WithCause(err)
	}
	return applyViper(v, path)
}

// ConfigureFromProperties configures the backend from an in-memory
// properties blob, equivalent to a properties file with the same content.
func ConfigureFromProperties(text string) error {
	p, err := properties.LoadString(text)
	if err != nil {
		return errors.ConfigParse("properties").WithCause(err)
	}
	return applyProperties(p)
}

func configType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json", ".toml":
		return "" // viper infers from the extension
	default:
		return "properties"
	}
}

// applyProperties builds a Config from a flat properties table. The table
// keeps dotted logger names intact, so no key-nesting handling is needed.
func applyProperties(p *properties.Properties) error {
	cfg := Config{
		Level:      p.GetString("level", ""),
		Format:     p.GetString("format", ""),
		Output:     p.GetString("output", ""),
		NoColor:    p.GetBool("no_color", false),
		MaxSize:    p.GetInt("max_size", 0),
		MaxBackups: p.GetInt("max_backups", 0),
		MaxAge:     p.GetInt("max_age", 0),
		Compress:   p.GetBool("compress", false),
		LocalTime:  p.GetBool("local_time", false),
	}
	for _, key := range p.Keys() {
		if name, ok := strings.CutPrefix(key, "loggers."); ok {
			if cfg.Loggers == nil {
				cfg.Loggers = make(map[string]string)
			}
			cfg.Loggers[name] = p.GetString(key, "")
		}
	}
	cfg.ApplyDefaults()
	// ApplyDefaults turns these on; honor an explicit false in the source.
	cfg.Timestamp = p.GetBool("timestamp", true)
	cfg.Caller = p.GetBool("caller", true)
	if err := cfg.Validate(); err != nil {
		return err
	}
	apply(&cfg)
	return nil
}

func applyViper(v *viper.Viper, source string) error {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return errors.ConfigParse(source).WithCause(err)
	}

	// Viper treats dots as nesting, so a nested loggers block cannot be
	// unmarshaled as a flat map; collect logger levels from the flattened
	// key list. Note viper lowercases keys, so logger names are matched
	// case-insensitively here.
	for _, key := range v.AllKeys() {
		if name, ok := strings.CutPrefix(key, "loggers."); ok {
			if cfg.Loggers == nil {
				cfg.Loggers = make(map[string]string)
			}
			cfg.Loggers[name] = v.GetString(key)
		}
	}

	cfg.ApplyDefaults()
	// ApplyDefaults turns these on; honor an explicit false in the source.
	if v.IsSet("timestamp") {
		cfg.Timestamp = v.GetBool("timestamp")
	}
	if v.IsSet("caller") {
		cfg.Caller = v.GetBool("caller")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	apply(&cfg)
	return nil
}

func apply(cfg *Config) {
	sinkMu.Lock()
	sink = newSink(cfg)
	sinkCaller = cfg.Caller
	sinkMu.Unlock()

	if lvl, err := ParseLevel(cfg.Level); err == nil {
		Root().SetLevel(lvl)
	}
	for name, levelName := range cfg.Loggers {
		lvl, err := ParseLevel(levelName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[log] warning: skipping logger %q: %v\n", name, err)
			continue
		}
		GetLogger(name).SetLevel(lvl)
	}
}
