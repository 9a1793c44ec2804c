package cli

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"github.com/wsfix/wsfix/pkg/cli/run"
)

type Runner struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	LDFlags *LDFlags
	LogE    *logrus.Entry
}

type LDFlags struct {
	Version string
	Commit  string
	Date    string
}

func (r *Runner) Run(ctx context.Context, args ...string) error {
	cmd := &cli.Command{
		Name:    "wsfix",
		Usage:   "Fix whitespace style violations in text files",
		Version: r.LDFlags.Version + " (" + r.LDFlags.Commit + ")",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level",
				Sources: cli.EnvVars("WSFIX_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name: "config",
				Aliases: []string{
					"c",
				},
				Usage:   "configuration file path",
				Sources: cli.EnvVars("WSFIX_CONFIG"),
			},
		},
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			run.New(r.LogE, r.Stdout),
			r.newVersionCommand(),
		},
	}
	return cmd.Run(ctx, args) //nolint:wrapcheck
}
