package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logFile *os.File
	mu      sync.Mutex
	enabled = true
	base    = newBase()
)

const (
	maxLogSize = 5 * 1024 * 1024 // 5MB
)

func newBase() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// Path returns ~/.config/cdnav/cdnav.log
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "cdnav", "cdnav.log"), nil
}

// Init opens the default log file. The terminal is never written to.
func Init() error {
	logPath, err := Path()
	if err != nil {
		return err
	}
	return InitFile(logPath)
}

// InitFile opens (or rotates and recreates) the log file at logPath.
func InitFile(logPath string) error {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}

	// Check if log file needs rotation
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		oldPath := logPath + ".old"
		os.Remove(oldPath)
		os.Rename(logPath, oldPath)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = file
	base.SetOutput(file)
	return nil
}

// SetLevel sets the minimum level by name (debug, info, warn, error).
func SetLevel(name string) error {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	base.SetLevel(level)
	return nil
}

// Close closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		base.SetOutput(io.Discard)
		logFile.Close()
		logFile = nil
	}
}

// Disable disables logging (useful for tests)
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// Enable enables logging
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

func Error(format string, args ...any) {
	log(logrus.ErrorLevel, format, args...)
}

func Warn(format string, args ...any) {
	log(logrus.WarnLevel, format, args...)
}

func Info(format string, args ...any) {
	log(logrus.InfoLevel, format, args...)
}

func Debug(format string, args ...any) {
	log(logrus.DebugLevel, format, args...)
}

func log(level logrus.Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || logFile == nil {
		return
	}
	base.Logf(level, format, args...)
}
