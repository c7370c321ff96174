package log

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/joho/godotenv"

	"github.com/kbukum/logkit/backend"
	"github.com/kbukum/logkit/errors"
)

// EnvConfig names the environment variable holding a configuration-file
// path. It is consulted only by the lazy default configuration, on the very
// first emission.
const EnvConfig = "LOGKIT_CONFIG"

// Configuration state. configMu serializes every configuration path;
// configured short-circuits emissions once the first configuration has
// completed. The flag is stored only after the configuration ran, so a
// goroutine that observes it true also observes the configured backend.
var (
	configMu   sync.Mutex
	configured atomic.Bool

	// defaultConfigRuns counts executions of the lazy default path; read
	// by tests, guarded by configMu.
	defaultConfigRuns int
)

// ensureConfigured lazily applies the default configuration exactly once
// across the process. Explicit Configure* calls preempt it.
func ensureConfigured() {
	if configured.Load() {
		return
	}
	configMu.Lock()
	defer configMu.Unlock()
	if configured.Load() {
		return
	}
	defaultConfigRuns++
	applyDefaultLocked()
	configured.Store(true)
}

// applyDefaultLocked performs the default configuration: a .env file may
// provide LOGKIT_CONFIG; if the variable names a readable file it is
// applied, otherwise the built-in console configuration is installed.
// A broken config file leaves the backend degraded, it does not fall back.
func applyDefaultLocked() {
	_ = godotenv.Load()

	if path := os.Getenv(EnvConfig); path != "" {
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(os.Stderr, "[log] warning: %v\n", errors.IO(path).WithCause(err))
		} else {
			if err := backend.ConfigureFromFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "[log] warning: failed to configure from %s: %v\n", path, err)
			}
			return
		}
	}
	backend.ApplyDefault()
}

// Configure resets the backend and applies the default configuration
// (LOGKIT_CONFIG or the built-in console setup). All explicit logger levels
// set before the call are wiped by the reset.
func Configure() {
	configMu.Lock()
	defer configMu.Unlock()
	configured.Store(true)
	backend.Reset()
	applyDefaultLocked()
}

// ConfigureFromFile resets the backend and applies the named configuration
// file. Parse and read failures are reported on stderr and otherwise
// swallowed: logging degrades, it never fails the caller.
func ConfigureFromFile(path string) {
	configMu.Lock()
	defer configMu.Unlock()
	configured.Store(true)
	backend.Reset()
	if err := backend.ConfigureFromFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "[log] warning: failed to configure from %s: %v\n", path, err)
	}
}

// ConfigureFromProps resets the backend and applies configuration from an
// in-memory properties blob, equivalent to ConfigureFromFile on a
// properties file with the same content. Failures degrade, they do not
// propagate.
func ConfigureFromProps(text string) {
	configMu.Lock()
	defer configMu.Unlock()
	configured.Store(true)
	backend.Reset()
	if err := backend.ConfigureFromProperties(text); err != nil {
		fmt.Fprintf(os.Stderr, "[log] warning: failed to configure from properties: %v\n", err)
	}
}
