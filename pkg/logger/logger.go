package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger.
var Log *logrus.Logger

// Init builds the global logger from LOG_LEVEL and LOG_FORMAT.
// Call it once at startup (main, TestMain).
func Init() {
	Log = logrus.New()

	// 1. Level, "info" unless overridden.
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	Configure(logLevel, os.Getenv("LOG_FORMAT"))

	// 2. Everything goes to stdout.
	Log.SetOutput(os.Stdout)
}

// Configure re-applies level and format on the global logger.
// Unknown levels fall back to info, anything but "json" means text.
func Configure(levelName, format string) {
	if Log == nil {
		Log = logrus.New()
	}

	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}
}

// Component returns an entry tagged with the subsystem name.
func Component(name string) *logrus.Entry {
	if Log == nil {
		Init()
	}
	return Log.WithField("component", name)
}
