// Package log builds the logrus entry which is passed through the whole
// call chain. Diagnostics for violating lines are not logged here; they
// are written to standard output by the run controller.
package log

import (
	"github.com/sirupsen/logrus"
)

func New(version string) *logrus.Entry {
	return logrus.NewEntry(logrus.New()).WithFields(logrus.Fields{
		"program":       "wsfix",
		"wsfix_version": version,
	})
}

func SetLevel(level string, logE *logrus.Entry) {
	if level == "" {
		return
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logE.WithField("log_level", level).WithError(err).Error("the log level is invalid")
		return
	}
	logE.Logger.SetLevel(lvl)
}
