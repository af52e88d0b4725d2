package debuglog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelOff, "OFF"},
		{LogLevel(42), "UNKNOWN"},
	}

	for _, test := range tests {
		if got := test.level.String(); got != test.expected {
			t.Errorf("LogLevel.String() = %q, want %q", got, test.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"DEBUG", LevelDebug},
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"info", LevelInfo},
		{"WARN", LevelWarn},
		{"warn", LevelWarn},
		{"WARNING", LevelWarn},
		{"ERROR", LevelError},
		{"error", LevelError},
		{"OFF", LevelOff},
		{"off", LevelOff},
		{" info ", LevelInfo},
		{"INVALID", LevelInfo}, // Default to INFO
		{"", LevelInfo},        // Default to INFO
	}

	for _, test := range tests {
		if got := ParseLogLevel(test.input); got != test.expected {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", test.input, got, test.expected)
		}
	}
}

func TestSetupWithLevel(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "test.log")

	err := Setup(LevelInfo, logPath)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	if GetLevel() != LevelInfo {
		t.Errorf("GetLevel() = %v, want %v", GetLevel(), LevelInfo)
	}

	Debugf("debug message") // Should not appear
	Infof("info message")   // Should appear
	Warnf("warn message")   // Should appear
	Errorf("error message") // Should appear

	if err := Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}

	logContent := string(content)
	if strings.Contains(logContent, "debug message") {
		t.Error("DEBUG message should not appear with INFO level")
	}
	if !strings.Contains(logContent, "info message") {
		t.Error("INFO message should appear with INFO level")
	}
	if !strings.Contains(logContent, "warn message") {
		t.Error("WARN message should appear with INFO level")
	}
	if !strings.Contains(logContent, "error message") {
		t.Error("ERROR message should appear with INFO level")
	}
	if !strings.Contains(logContent, "[INFO]") {
		t.Error("Log lines should carry the level tag")
	}
}

func TestSetupWithLevelOff(t *testing.T) {
	err := Setup(LevelOff)
	if err != nil {
		t.Fatalf("Setup with LevelOff failed: %v", err)
	}

	if GetLevel() != LevelOff {
		t.Errorf("GetLevel() = %v, want %v", GetLevel(), LevelOff)
	}

	// All logging should be disabled; no sink is opened
	Debugf("debug message")
	Infof("info message")
	Warnf("warn message")
	Errorf("error message")
}

func TestDebugSampling(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("rate zero drops every debug record", func(t *testing.T) {
		logPath := filepath.Join(tempDir, "sampled_zero.log")
		if err := Setup(LevelDebug, logPath); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
		SetDebugSampling(0)
		defer SetDebugSampling(1.0)

		for i := 0; i < 50; i++ {
			Debugf("sampled out %d", i)
		}
		Infof("marker") // Sampling never touches other levels

		if err := Close(); err != nil {
			t.Errorf("Close() failed: %v", err)
		}

		content, err := os.ReadFile(logPath)
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(string(content), "sampled out") {
			t.Error("rate 0 should drop all debug records")
		}
		if !strings.Contains(string(content), "marker") {
			t.Error("info records must not be sampled")
		}
	})

	t.Run("rate one keeps every debug record", func(t *testing.T) {
		logPath := filepath.Join(tempDir, "sampled_one.log")
		if err := Setup(LevelDebug, logPath); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
		SetDebugSampling(1.0)

		for i := 0; i < 10; i++ {
			Debugf("kept %d", i)
		}

		if err := Close(); err != nil {
			t.Errorf("Close() failed: %v", err)
		}

		content, err := os.ReadFile(logPath)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 10; i++ {
			if !strings.Contains(string(content), fmt.Sprintf("kept %d", i)) {
				t.Errorf("rate 1 should keep debug record %d", i)
			}
		}
	})

	t.Run("rate is clamped", func(t *testing.T) {
		SetDebugSampling(-5)
		if debugSampleRate != 0 {
			t.Errorf("debugSampleRate = %v, want 0", debugSampleRate)
		}
		SetDebugSampling(7)
		if debugSampleRate != 1 {
			t.Errorf("debugSampleRate = %v, want 1", debugSampleRate)
		}
		SetDebugSampling(1.0)
	})
}

func TestSetRotation(t *testing.T) {
	defer SetRotation(0, 0, 0)

	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "rotated.log")

	SetRotation(25, 9, 7)
	if err := Setup(LevelInfo, logPath); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	defer Close()

	if logSink.MaxSize != 25 {
		t.Errorf("sink MaxSize = %d, want 25", logSink.MaxSize)
	}
	if logSink.MaxBackups != 9 {
		t.Errorf("sink MaxBackups = %d, want 9", logSink.MaxBackups)
	}
	if logSink.MaxAge != 7 {
		t.Errorf("sink MaxAge = %d, want 7", logSink.MaxAge)
	}

	t.Run("non-positive values fall back to defaults", func(t *testing.T) {
		SetRotation(-1, 0, -3)
		if maxSizeMB != defaultMaxSizeMB {
			t.Errorf("maxSizeMB = %d, want default %d", maxSizeMB, defaultMaxSizeMB)
		}
		if maxBackups != defaultMaxBackups {
			t.Errorf("maxBackups = %d, want default %d", maxBackups, defaultMaxBackups)
		}
		if maxAgeDays != defaultMaxAgeDays {
			t.Errorf("maxAgeDays = %d, want default %d", maxAgeDays, defaultMaxAgeDays)
		}
	})
}

func TestSetupCreatesParentDirectory(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "dir", "test.log")

	if err := Setup(LevelInfo, logPath); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	Infof("hello")
	if err := Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("expected the log file to exist under the created directory: %v", err)
	}
}

func TestSetupRejectsBadPath(t *testing.T) {
	if err := Setup(LevelInfo, "bad\x00path.log"); err == nil {
		Close()
		t.Fatal("expected Setup to reject a path with a null byte")
	}
}

func TestFieldLogger(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "field_test.log")

	err := Setup(LevelDebug, logPath)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	defer Close()

	logger := WithFields(map[string]interface{}{
		"component": "test",
		"action":    "testing",
		"count":     42,
	})

	logger.Infof("test message with fields")

	if err := Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}

	logContent := string(content)
	if !strings.Contains(logContent, "test message with fields") {
		t.Error("Log message should contain the main message")
	}
	if !strings.Contains(logContent, "component=test") {
		t.Error("Log message should contain structured field component=test")
	}
	if !strings.Contains(logContent, "action=testing") {
		t.Error("Log message should contain structured field action=testing")
	}
	if !strings.Contains(logContent, "count=42") {
		t.Error("Log message should contain structured field count=42")
	}
}

func TestSetLevel(t *testing.T) {
	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("SetLevel(LevelDebug) failed, got %v", GetLevel())
	}

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("SetLevel(LevelError) failed, got %v", GetLevel())
	}

	SetLevel(LevelOff)
}

func TestCloseWithoutSetup(t *testing.T) {
	if err := Close(); err != nil {
		t.Errorf("Close() without Setup should be a no-op, got %v", err)
	}
}
