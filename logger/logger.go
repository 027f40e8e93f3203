package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/op/go-logging"
)

const (
	LOG_ROTATION_INTERVAL = 24 * time.Hour
	LOG_MAX_AGE           = 7 * 24 * time.Hour
	LOG_FORMAT            = "%{time:2006-01-02 15:04:05.000} [%{level:.4s}] %{shortfile} %{message}"
	LOG_COLOR_FORMAT      = "%{color}%{time:2006-01-02 15:04:05.000} [%{level:.4s}]%{color:reset} %{shortfile} %{message}"
	MODULE                = "llist"
)

var log = logging.MustGetLogger(MODULE)

// Get returns the shared tool logger.
func Get() *logging.Logger {
	return log
}

type Config struct {
	Level    string
	Verbose  bool
	// FilePath enables a daily rotated log file next to console output.
	FilePath string
	Console  io.Writer
}

// Init installs the console backend and, when configured, the rotating file backend.
func Init(config Config) error {
	levelString := config.Level
	if levelString == "" {
		levelString = "INFO"
	}
	level, err := logging.LogLevel(levelString)
	if err != nil {
		return fmt.Errorf("invalid log level '%v': %w", levelString, err)
	}
	if config.Verbose {
		level = logging.DEBUG
	}

	console := config.Console
	if console == nil {
		console = os.Stdout
	}
	stdout := logging.AddModuleLevel(
		logging.NewBackendFormatter(
			logging.NewLogBackend(console, "", 0),
			logging.MustStringFormatter(LOG_COLOR_FORMAT),
		),
	)
	stdout.SetLevel(level, "")

	if config.FilePath == "" {
		logging.SetBackend(stdout)
		return nil
	}

	dir := filepath.Dir(config.FilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory at '%v': %w", dir, err)
	}

	ioWriter, err := rotatelogs.New(
		config.FilePath+".%Y-%m-%d",
		rotatelogs.WithLinkName(config.FilePath),
		rotatelogs.WithMaxAge(LOG_MAX_AGE),
		rotatelogs.WithRotationTime(LOG_ROTATION_INTERVAL),
	)
	if err != nil {
		return fmt.Errorf("failed to open log file at '%v': %w", config.FilePath, err)
	}

	file := logging.AddModuleLevel(
		logging.NewBackendFormatter(
			logging.NewLogBackend(ioWriter, "", 0),
			logging.MustStringFormatter(LOG_FORMAT),
		),
	)
	file.SetLevel(level, "")
	logging.SetBackend(stdout, file)
	return nil
}
