package testutils

import (
	"io/ioutil"

	"github.com/sirupsen/logrus"
)

// Logger returns a logger that discards output, for wiring into components
// under test.
func Logger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(ioutil.Discard)
	return logger
}
