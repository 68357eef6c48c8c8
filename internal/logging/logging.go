package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup builds the process logger at the named level ("debug", "info",
// ...). Unknown or empty levels fall back to info.
func Setup(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	return logger
}
