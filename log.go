package pricebook

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log receives decoding diagnostics. Commands replace it with their configured logger.
var Log logrus.FieldLogger = defaultLogger()

func defaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	return l
}
