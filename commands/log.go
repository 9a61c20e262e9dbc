package commands

import (
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var logger = logrus.NewEntry(logrus.StandardLogger())

// initLogging configures the standard logrus logger from the options and the
// LOG_LEVEL/LOG_FORMAT environment variables and tags every entry with a run ID.
func initLogging(options *Options) {
	log := logrus.StandardLogger()

	switch strings.ToUpper(os.Getenv("LOG_LEVEL")) {
	case "DEBUG":
		log.SetLevel(logrus.DebugLevel)
	case "WARN":
		log.SetLevel(logrus.WarnLevel)
	case "ERROR":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}

	if options.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	if options.JSON || strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	logger = log.WithFields(logrus.Fields{
		"app": APP,
		"run": uuid.NewString(),
	})
}

func debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}
