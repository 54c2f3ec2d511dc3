// Copyright (c) 2016-2019, Andreas T Jonsson
// All rights reserved.

package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup sends diagnostics to stderr. Verbose wins over silent.
func Setup(verbose, silent bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetLevel(Level(verbose, silent))
}

func Level(verbose, silent bool) logrus.Level {
	switch {
	case verbose:
		return logrus.DebugLevel
	case silent:
		return logrus.WarnLevel
	}
	return logrus.InfoLevel
}

func Logln(a ...interface{}) {
	logrus.Infoln(a...)
}

func Logvln(a ...interface{}) {
	logrus.Debugln(a...)
}
