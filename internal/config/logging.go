package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging points the standard logrus logger at stderr with the configured level.
func SetupLogging(cfg *Config) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logrus.SetLevel(cfg.LogLevel)
}
