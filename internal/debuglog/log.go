package debuglog

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/SaxyPandaBear/PodcastsTUI/internal/validation"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelOff // Disables all logging
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel parses a string into a LogLevel
func ParseLogLevel(s string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "OFF":
		return LevelOff
	default:
		return LevelInfo // Default to INFO
	}
}

// Default rotation limits for the log file. The TUI owns the terminal,
// so all logging goes to a rotating file instead of stdout.
const (
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
	defaultMaxAgeDays = 28
)

var (
	currentLevel    = LevelOff
	debugSampleRate = 1.0
	maxSizeMB       = defaultMaxSizeMB
	maxBackups      = defaultMaxBackups
	maxAgeDays      = defaultMaxAgeDays
	logger          *log.Logger
	logSink         *lumberjack.Logger
)

// SetRotation overrides the rotation limits applied at the next Setup.
// Non-positive values fall back to the defaults.
func SetRotation(sizeMB, backups, ageDays int) {
	if sizeMB <= 0 {
		sizeMB = defaultMaxSizeMB
	}
	if backups <= 0 {
		backups = defaultMaxBackups
	}
	if ageDays <= 0 {
		ageDays = defaultMaxAgeDays
	}
	maxSizeMB, maxBackups, maxAgeDays = sizeMB, backups, ageDays
}

// Setup configures the logging system with the specified level and optional file path.
// If filePath is empty, defaults to ~/.podcasts-tui/podcasts-tui.log.
func Setup(level LogLevel, filePath ...string) error {
	currentLevel = level

	// Close existing sink if open
	if logSink != nil {
		logSink.Close()
		logSink = nil
	}

	if level == LevelOff {
		logger = nil
		return nil
	}

	var userPath string
	if len(filePath) > 0 {
		userPath = filePath[0]
	}
	resolved, err := validation.NewPathHandler().LogPath(userPath)
	if err != nil {
		return fmt.Errorf("resolving log path: %w", err)
	}
	logPath, err := validation.NewFilePathValidator().EnsureParentDir(resolved)
	if err != nil {
		return fmt.Errorf("preparing log directory: %w", err)
	}

	logSink = &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}
	logger = log.New(logSink, "podcasts-tui ", log.LstdFlags|log.Lmicroseconds)
	return nil
}

// SetLevel changes the current logging level
func SetLevel(level LogLevel) {
	currentLevel = level
}

// GetLevel returns the current logging level
func GetLevel() LogLevel {
	return currentLevel
}

// SetDebugSampling sets the fraction of debug-level records that are
// written, clamped to [0, 1]. Records outside the sample are dropped
// before formatting. Levels above debug are never sampled.
func SetDebugSampling(rate float64) {
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	debugSampleRate = rate
}

// Close closes the log sink if open
func Close() error {
	if logSink != nil {
		err := logSink.Close()
		logSink = nil
		logger = nil
		return err
	}
	return nil
}

// logf writes a log message at the specified level
func logf(level LogLevel, format string, args ...any) {
	if level < currentLevel || logger == nil {
		return
	}
	if level == LevelDebug && rand.Float64() >= debugSampleRate {
		return
	}

	message := fmt.Sprintf(format, args...)
	logger.Printf("[%s] %s", level.String(), message)
}

func Debugf(format string, args ...any) {
	logf(LevelDebug, format, args...)
}

func Infof(format string, args ...any) {
	logf(LevelInfo, format, args...)
}

func Warnf(format string, args ...any) {
	logf(LevelWarn, format, args...)
}

func Errorf(format string, args ...any) {
	logf(LevelError, format, args...)
}

// FieldLogger carries structured fields (basic key-value support)
type FieldLogger struct {
	fields map[string]interface{}
}

// WithFields returns a new logger with the specified fields
func WithFields(fields map[string]interface{}) *FieldLogger {
	return &FieldLogger{fields: fields}
}

// formatFields converts fields to a string representation
func (fl *FieldLogger) formatFields() string {
	if len(fl.fields) == 0 {
		return ""
	}

	var parts []string
	for key, value := range fl.fields {
		parts = append(parts, fmt.Sprintf("%s=%v", key, value))
	}
	return " [" + strings.Join(parts, " ") + "]"
}

func (fl *FieldLogger) Debugf(format string, args ...any) {
	logf(LevelDebug, "%s", fmt.Sprintf(format, args...)+fl.formatFields())
}

func (fl *FieldLogger) Infof(format string, args ...any) {
	logf(LevelInfo, "%s", fmt.Sprintf(format, args...)+fl.formatFields())
}

func (fl *FieldLogger) Warnf(format string, args ...any) {
	logf(LevelWarn, "%s", fmt.Sprintf(format, args...)+fl.formatFields())
}

func (fl *FieldLogger) Errorf(format string, args ...any) {
	logf(LevelError, "%s", fmt.Sprintf(format, args...)+fl.formatFields())
}
