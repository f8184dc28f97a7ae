package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// resetState clears package state so each test initializes from scratch.
func resetState() {
	CloseAll()
	loggers = make(map[Category]*Logger)
	logsDir = ""
	workspace = ""
	config = loggingConfig{}
	logLevel = LevelDebug
}

func writeLoggingConfig(t *testing.T, workspace, content string) {
	t.Helper()
	configDir := filepath.Join(workspace, ".zeroenh")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

// TestAllCategoriesLog tests that all categories create log files when debug_mode is true
func TestAllCategoriesLog(t *testing.T) {
	tempDir := t.TempDir()
	writeLoggingConfig(t, tempDir, `{
		"logging": {
			"level": "debug",
			"debug_mode": true,
			"categories": {
				"boot": true,
				"engine": true,
				"registry": true,
				"cli": true
			}
		}
	}`)

	resetState()
	if err := Initialize(tempDir); err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}

	if !IsDebugMode() {
		t.Error("Expected debug mode to be enabled")
	}

	categories := []Category{
		CategoryBoot,
		CategoryEngine,
		CategoryRegistry,
		CategoryCLI,
	}

	for _, cat := range categories {
		if !IsCategoryEnabled(cat) {
			t.Errorf("Category %s should be enabled", cat)
		}

		logger := Get(cat)
		logger.Info("Test info message for %s", cat)
		logger.Debug("Test debug message for %s", cat)
		logger.Warn("Test warn message for %s", cat)
		logger.Error("Test error message for %s", cat)
	}

	// Also test convenience functions
	Boot("Convenience boot log")
	BootDebug("Convenience boot debug log")
	Engine("Convenience engine log")
	EngineDebug("Convenience engine debug log")
	Registry("Convenience registry log")
	RegistryDebug("Convenience registry debug log")
	CLI("Convenience cli log")
	CLIDebug("Convenience cli debug log")

	CloseAll()

	logsPath := filepath.Join(tempDir, ".zeroenh", "logs")
	entries, err := os.ReadDir(logsPath)
	if err != nil {
		t.Fatalf("Failed to read logs dir: %v", err)
	}

	for _, cat := range categories {
		found := false
		for _, entry := range entries {
			if strings.Contains(entry.Name(), string(cat)+".log") {
				found = true
				content, err := os.ReadFile(filepath.Join(logsPath, entry.Name()))
				if err != nil {
					t.Errorf("Failed to read log file for %s: %v", cat, err)
					continue
				}
				if len(content) == 0 {
					t.Errorf("Log file for %s is empty", cat)
				}
				break
			}
		}
		if !found {
			t.Errorf("No log file found for category: %s", cat)
		}
	}
}

// TestDebugModeDisabled tests that no logs are created when debug_mode is false
func TestDebugModeDisabled(t *testing.T) {
	tempDir := t.TempDir()
	writeLoggingConfig(t, tempDir, `{
		"logging": {
			"level": "debug",
			"debug_mode": false,
			"categories": {
				"boot": true,
				"engine": true
			}
		}
	}`)

	resetState()
	if err := Initialize(tempDir); err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}

	if IsDebugMode() {
		t.Error("Expected debug mode to be DISABLED")
	}

	for _, cat := range []Category{CategoryBoot, CategoryEngine, CategoryRegistry, CategoryCLI} {
		if IsCategoryEnabled(cat) {
			t.Errorf("Category %s should be DISABLED when debug_mode=false", cat)
		}
	}

	// All of these should be no-ops
	Boot("This should NOT be logged")
	Engine("This should NOT be logged")

	logger := Get(CategoryBoot)
	logger.Info("This should NOT be logged")
	logger.Error("This should NOT be logged")

	CloseAll()

	logsPath := filepath.Join(tempDir, ".zeroenh", "logs")
	if _, err := os.Stat(logsPath); err == nil {
		entries, _ := os.ReadDir(logsPath)
		if len(entries) > 0 {
			t.Errorf("Expected NO log files in production mode, but found %d files", len(entries))
		}
	}
}

// TestNoConfigMeansNoLogging tests the default when config.json is absent
func TestNoConfigMeansNoLogging(t *testing.T) {
	tempDir := t.TempDir()

	resetState()
	if err := Initialize(tempDir); err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}

	if IsDebugMode() {
		t.Error("Expected debug mode off without a config file")
	}

	Boot("This should NOT be logged")
	CloseAll()

	if _, err := os.Stat(filepath.Join(tempDir, ".zeroenh", "logs")); !os.IsNotExist(err) {
		t.Error("Logs directory should not exist without a config file")
	}
}

// TestCategoryToggle tests individual category enable/disable
func TestCategoryToggle(t *testing.T) {
	tempDir := t.TempDir()
	writeLoggingConfig(t, tempDir, `{
		"logging": {
			"level": "debug",
			"debug_mode": true,
			"categories": {
				"boot": true,
				"engine": true,
				"registry": false
			}
		}
	}`)

	resetState()
	if err := Initialize(tempDir); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	if !IsCategoryEnabled(CategoryBoot) {
		t.Error("boot should be enabled")
	}
	if !IsCategoryEnabled(CategoryEngine) {
		t.Error("engine should be enabled")
	}
	if IsCategoryEnabled(CategoryRegistry) {
		t.Error("registry should be DISABLED")
	}

	// Category not in config defaults to enabled when debug_mode=true
	if !IsCategoryEnabled(CategoryCLI) {
		t.Error("cli (not in config) should default to enabled")
	}

	Boot("This SHOULD be logged")
	Engine("This SHOULD be logged")
	Registry("This should NOT be logged")
	CLI("This SHOULD be logged (default enabled)")

	CloseAll()

	entries, _ := os.ReadDir(filepath.Join(tempDir, ".zeroenh", "logs"))
	hasRegistryLog := false
	hasEngineLog := false
	for _, e := range entries {
		if strings.Contains(e.Name(), "registry") {
			hasRegistryLog = true
		}
		if strings.Contains(e.Name(), "engine") {
			hasEngineLog = true
		}
	}
	if hasRegistryLog {
		t.Error("Should NOT have registry log file (disabled)")
	}
	if !hasEngineLog {
		t.Error("Expected engine log file")
	}
}

// TestLevelFiltering tests that messages below the configured level are dropped
func TestLevelFiltering(t *testing.T) {
	tempDir := t.TempDir()
	writeLoggingConfig(t, tempDir, `{"logging": {"level": "error", "debug_mode": true}}`)

	resetState()
	if err := Initialize(tempDir); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	logger := Get(CategoryEngine)
	logger.Debug("suppressed")
	logger.Info("suppressed")
	logger.Warn("suppressed")
	logger.Error("kept")

	CloseAll()

	logsPath := filepath.Join(tempDir, ".zeroenh", "logs")
	entries, err := os.ReadDir(logsPath)
	if err != nil {
		t.Fatalf("Failed to read logs dir: %v", err)
	}

	for _, e := range entries {
		if !strings.Contains(e.Name(), "engine") {
			continue
		}
		content, err := os.ReadFile(filepath.Join(logsPath, e.Name()))
		if err != nil {
			t.Fatalf("Failed to read engine log: %v", err)
		}
		text := string(content)
		if !strings.Contains(text, "[ERROR] kept") {
			t.Error("Expected the error line to be written")
		}
		if strings.Contains(text, "suppressed") {
			t.Error("Messages below the level should be suppressed")
		}
	}
}

// TestRunLogger tests run-scoped correlation IDs
func TestRunLogger(t *testing.T) {
	tempDir := t.TempDir()
	writeLoggingConfig(t, tempDir, `{"logging": {"level": "debug", "debug_mode": true}}`)

	resetState()
	if err := Initialize(tempDir); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	rl := WithRun(CategoryCLI, "run1").WithField("profile", "default")
	rl.Info("enhancing prompt")
	rl.Debug("selection trace")

	CloseAll()

	logsPath := filepath.Join(tempDir, ".zeroenh", "logs")
	entries, _ := os.ReadDir(logsPath)
	found := false
	for _, e := range entries {
		if !strings.Contains(e.Name(), "cli") {
			continue
		}
		content, _ := os.ReadFile(filepath.Join(logsPath, e.Name()))
		if strings.Contains(string(content), "[run:run1] enhancing prompt") {
			found = true
		}
	}
	if !found {
		t.Error("Expected run-scoped log line with correlation ID")
	}
}

// TestTimerLogging tests the timing helper
func TestTimerLogging(t *testing.T) {
	tempDir := t.TempDir()
	writeLoggingConfig(t, tempDir, `{"logging": {"level": "debug", "debug_mode": true}}`)

	resetState()
	if err := Initialize(tempDir); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	timer := StartTimer(CategoryEngine, "TestOperation")
	time.Sleep(time.Millisecond)
	elapsed := timer.Stop()

	if elapsed <= 0 {
		t.Error("Timer should have recorded non-zero duration")
	}

	thresholdTimer := StartTimer(CategoryEngine, "SlowOperation")
	time.Sleep(2 * time.Millisecond)
	if got := thresholdTimer.StopWithThreshold(time.Millisecond); got < time.Millisecond {
		t.Errorf("Expected elapsed above threshold, got %v", got)
	}

	CloseAll()
}
