package utils

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Ready to use before InitLogger runs, so packages and tests can log freely.
var (
	InfoLogger  = logrus.New()
	ErrorLogger = logrus.New()
)

// InitLogger sends info to stdout and errors to stderr. level is a logrus
// level name for InfoLogger; format is "text" or "json".
func InitLogger(level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}

	var formatter logrus.Formatter
	switch format {
	case "", "text":
		formatter = &logrus.TextFormatter{FullTimestamp: true}
	case "json":
		formatter = &logrus.JSONFormatter{}
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", format)
	}

	info := logrus.New()
	info.SetOutput(os.Stdout)
	info.SetFormatter(formatter)
	info.SetLevel(lvl)

	errs := logrus.New()
	errs.SetOutput(os.Stderr)
	errs.SetFormatter(formatter)
	errs.SetLevel(logrus.ErrorLevel)

	InfoLogger, ErrorLogger = info, errs
	return nil
}
