package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/wsfix/wsfix/pkg/cli"
	"github.com/wsfix/wsfix/pkg/controller/run"
	"github.com/wsfix/wsfix/pkg/log"
)

var (
	version = ""
	commit  = "" //nolint:gochecknoglobals
	date    = "" //nolint:gochecknoglobals
)

func main() {
	logE := log.New(version)
	if err := core(logE); err != nil {
		switch {
		case errors.Is(err, run.ErrFilesFailed):
			os.Exit(3)
		case errors.Is(err, run.ErrUnfixableFound):
			os.Exit(2)
		case errors.Is(err, run.ErrViolationsFixed):
			os.Exit(1)
		}
		logerr.WithError(logE, err).Fatal("wsfix failed")
	}
}

func core(logE *logrus.Entry) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	runner := &cli.Runner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		LDFlags: &cli.LDFlags{
			Version: version,
			Commit:  commit,
			Date:    date,
		},
		LogE: logE,
	}
	return runner.Run(ctx, os.Args...) //nolint:wrapcheck
}
