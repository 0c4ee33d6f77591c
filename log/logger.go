package log

import (
	"os"
	"path/filepath"

	"github.com/dive-sc/sinan-godata-app/conf"
	"github.com/sirupsen/logrus"
)

var (
	Import logrus.FieldLogger
	Client logrus.FieldLogger
	Upload logrus.FieldLogger
)

func init() {
	Import = Logger(logrus.New(), conf.GetEnv("SINAN_IMPORT_LOG"),
		"import", conf.GetEnv("ENVIRONMENT"))
	Client = Logger(logrus.New(), conf.GetEnv("SINAN_CLIENT_LOG"),
		"client", conf.GetEnv("ENVIRONMENT"))
	Upload = Logger(logrus.New(), conf.GetEnv("SINAN_UPLOAD_LOG"),
		"upload", conf.GetEnv("ENVIRONMENT"))
}

// Logger directs a logrus logger at outputFile (stderr when the file cannot
// be opened) and tags every entry with the component and environment.
func Logger(logger *logrus.Logger, outputFile string,
	component, environment string) logrus.FieldLogger {

	if outputFile != "" {
		if file, err := os.OpenFile(filepath.Clean(outputFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640); err == nil {
			logger.SetOutput(file)
		} else {
			logger.Infof("Failed to open output file %s. Will use stderr. %s",
				outputFile, err.Error())
		}
	}

	return logger.WithFields(logrus.Fields{
		"component":   component,
		"environment": environment})
}
