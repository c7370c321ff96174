package log

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/kbukum/logkit/backend"
)

// resetLogging restores the unconfigured state between tests.
func resetLogging() {
	os.Unsetenv(EnvConfig)
	configured.Store(false)
	defaultConfigRuns = 0
	backend.Reset()
	contextStack = nil
}

func TestLazyDefaultConfigurationExactlyOnce(t *testing.T) {
	resetLogging()

	const goroutines = 32
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			// Below the default info threshold: triggers configuration
			// without producing output.
			GetLogger("lazy.test").Debug("first emission")
		}()
	}
	close(start)
	wg.Wait()

	if defaultConfigRuns != 1 {
		t.Errorf("expected default configuration to run exactly once, ran %d times", defaultConfigRuns)
	}
	if got := backend.Root().Level(); got != InfoLevel {
		t.Errorf("expected root at info after default config, got %s", LevelName(got))
	}
}

func TestExplicitConfigurePreemptsDefault(t *testing.T) {
	resetLogging()

	ConfigureFromProps("level=error\nformat=json")
	GetLogger("svc").Error("emitted")

	if defaultConfigRuns != 0 {
		t.Errorf("expected lazy default path to be skipped, ran %d times", defaultConfigRuns)
	}
	if got := backend.Root().Level(); got != ErrorLevel {
		t.Errorf("expected root at error, got %s", LevelName(got))
	}
}

func TestReconfigureResetsExplicitLevels(t *testing.T) {
	resetLogging()

	lg := GetLogger("svc.worker")
	lg.SetLevel(TraceLevel)
	if got := lg.Level(); got != TraceLevel {
		t.Fatalf("expected trace before reconfigure, got %s", LevelName(got))
	}

	ConfigureFromProps("level=info\nformat=json")

	if got := lg.Level(); got != LevelUnset {
		t.Errorf("expected LevelUnset after reconfigure, got %s", LevelName(got))
	}
}

func TestConfigureFromPropsAppliesLoggerLevels(t *testing.T) {
	resetLogging()

	ConfigureFromProps("level=warn\nformat=json\nloggers.svc.worker=debug")

	if got := GetLogger("svc.worker").Level(); got != DebugLevel {
		t.Errorf("expected svc.worker at debug, got %s", LevelName(got))
	}
	if got := GetLogger("svc").EffectiveLevel(); got != WarnLevel {
		t.Errorf("expected svc to inherit warn, got %s", LevelName(got))
	}
}

func TestConfigureFromPropsMalformedDegrades(t *testing.T) {
	resetLogging()

	// Must not panic or error; the backend is left degraded.
	ConfigureFromProps("level=shout")
	GetLogger("svc").Error("still must not crash")
}

func TestConfigureFromFileMissingDegrades(t *testing.T) {
	resetLogging()

	ConfigureFromFile("/nonexistent/log.yaml")
	GetLogger("svc").Error("still must not crash")
}

func TestLazyDefaultWithUnreadableEnvPath(t *testing.T) {
	resetLogging()

	os.Setenv(EnvConfig, filepath.Join(t.TempDir(), "absent.yaml"))
	defer os.Unsetenv(EnvConfig)

	GetLogger("svc").Debug("trigger lazy config")

	// The unreadable path is reported and the built-in default still applies.
	if got := backend.Root().Level(); got != InfoLevel {
		t.Errorf("expected built-in default at info, got %s", LevelName(got))
	}
}

func TestEnablementMonotonicity(t *testing.T) {
	resetLogging()
	ConfigureFromProps("level=info\nformat=json")

	lg := GetLogger("svc")
	lg.SetLevel(InfoLevel)

	if lg.IsEnabledFor(DebugLevel) {
		t.Error("debug must not be enabled at info threshold")
	}
	if !lg.IsEnabledFor(ErrorLevel) {
		t.Error("error must be enabled at info threshold")
	}
	if !lg.IsEnabledFor(InfoLevel) {
		t.Error("info must be enabled at its own threshold")
	}
}

func TestGetLoggerEmptyNameUsesContextStack(t *testing.T) {
	resetLogging()

	if err := PushContext("svc"); err != nil {
		t.Fatal(err)
	}
	defer PopContext()

	lg := GetLogger("")
	if lg.Name() != "svc" {
		t.Errorf("expected empty name to resolve to 'svc', got %q", lg.Name())
	}
}

func TestDefaultLoggerSnapshotsName(t *testing.T) {
	resetLogging()

	if err := PushContext("svc"); err != nil {
		t.Fatal(err)
	}
	lg := DefaultLogger()
	PopContext()

	// The handle keeps the name it was resolved with.
	if lg.Name() != "svc" {
		t.Errorf("expected handle to stay bound to 'svc', got %q", lg.Name())
	}
}

func TestChild(t *testing.T) {
	resetLogging()

	tests := []struct {
		parent string
		suffix string
		want   string
	}{
		{"main.task", "subtask", "main.task.subtask"},
		{"main.task", ".subtask", "main.task.subtask"},
		{"main.task", " .subtask.algo", "main.task.subtask.algo"},
		{"main.task", "", "main.task"},
		{"main.task", " .", "main.task"},
		{"", "subtask", "subtask"},
	}
	for _, tc := range tests {
		var parent Logger
		if tc.parent == "" {
			parent = Logger{} // root handle
		} else {
			parent = GetLogger(tc.parent)
		}
		if got := parent.Child(tc.suffix).Name(); got != tc.want {
			t.Errorf("Child(%q, %q) = %q, expected %q", tc.parent, tc.suffix, got, tc.want)
		}
	}
}

func TestHandlesForSameNameInterchangeable(t *testing.T) {
	resetLogging()

	a := GetLogger("svc.worker")
	b := GetLogger("svc.worker")
	a.SetLevel(WarnLevel)
	if got := b.Level(); got != WarnLevel {
		t.Errorf("expected level set through one handle to be visible through another, got %s", LevelName(got))
	}
}

func TestZeroValueHandle(t *testing.T) {
	resetLogging()
	ConfigureFromProps("level=info\nformat=json")

	var lg Logger
	if lg.Name() != "" {
		t.Errorf("expected zero-value handle to name the root, got %q", lg.Name())
	}
	// Must not panic.
	lg.Debug("zero value emission")
	if got := lg.EffectiveLevel(); got != InfoLevel {
		t.Errorf("expected root effective level info, got %s", LevelName(got))
	}
}

func TestMDCOverwriteSemantics(t *testing.T) {
	resetLogging()

	defer MDCRemove("k")
	if old := MDC("k", "v1"); old != "" {
		t.Errorf("expected empty previous value, got %q", old)
	}
	if old := MDC("k", "v2"); old != "v1" {
		t.Errorf("expected previous value 'v1', got %q", old)
	}
	if got := MDCGet("k"); got != "v2" {
		t.Errorf("expected 'v2', got %q", got)
	}
}

func TestMDCReplayOnFirstEmission(t *testing.T) {
	resetLogging()
	ConfigureFromProps("level=info\nformat=json")

	MDCRegisterInit(func() { MDC("replayed", "yes") })
	defer MDCRemove("replayed")

	got := make(chan string, 1)
	go func() {
		// Below threshold: passes the gate without producing output.
		GetLogger("svc").Debug("first emission on this goroutine")
		got <- MDCGet("replayed")
	}()
	if v := <-got; v != "yes" {
		t.Errorf("expected initializer replay before first emission, got %q", v)
	}
}

func TestLevelNamesViaFacade(t *testing.T) {
	lvl, err := ParseLevel("verbose")
	if err != nil {
		t.Fatal(err)
	}
	if lvl != VerboseLevel {
		t.Errorf("expected VerboseLevel, got %d", lvl)
	}
	if LevelName(FatalLevel) != "fatal" {
		t.Errorf("unexpected name %q", LevelName(FatalLevel))
	}
}

func TestEmissionMethodsDoNotPanic(t *testing.T) {
	resetLogging()
	ConfigureFromProps("level=fatal\nformat=json")

	lg := GetLogger("quiet")
	lg.Trace("t")
	lg.Tracef("%d", 1)
	lg.Debug("d")
	lg.Debugf("%d", 2)
	lg.Info("i")
	lg.Infof("%d", 3)
	lg.Verbose("v")
	lg.Verbosef("%d", 4)
	lg.Warn("w")
	lg.Warnf("%d", 5)
	lg.Error("e")
	lg.Errorf("%d", 6)
	lg.Log(InfoLevel, "plain")
	lg.Logf(InfoLevel, "%s", "formatted")
}
