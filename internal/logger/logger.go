// Package logger provides leveled logging for the cycling API backed by
// op/go-logging with a stderr backend.
package logger

import (
	"os"

	"github.com/op/go-logging"
)

var log *logging.Logger

func init() {
	Init(logging.INFO)
}

// Init configures the package logger with the given level. Called once at
// startup; the init default keeps tests working without explicit setup.
func Init(level logging.Level) {
	newLogger := logging.MustGetLogger("cycling-api")
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006/01/02 15:04:05} %{level} - %{message}`,
	)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "cycling-api")
	newLogger.SetBackend(leveled)
	log = newLogger
}

// LevelFromEnvironment maps the deployment environment name to a log level.
func LevelFromEnvironment(environment string) logging.Level {
	if environment == "production" {
		return logging.INFO
	}
	return logging.DEBUG
}

func Debug(args ...any) {
	log.Debug(args...)
}

func Debugf(format string, args ...any) {
	log.Debugf(format, args...)
}

func Info(args ...any) {
	log.Info(args...)
}

func Infof(format string, args ...any) {
	log.Infof(format, args...)
}

func Warning(args ...any) {
	log.Warning(args...)
}

func Warningf(format string, args ...any) {
	log.Warningf(format, args...)
}

func Error(args ...any) {
	log.Error(args...)
}

func Errorf(format string, args ...any) {
	log.Errorf(format, args...)
}
