package run

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
	"github.com/wsfix/wsfix/pkg/config"
	"github.com/wsfix/wsfix/pkg/controller/run"
	"github.com/wsfix/wsfix/pkg/log"
)

func New(logE *logrus.Entry, stdout io.Writer) *cli.Command {
	r := &runner{
		logE:   logE,
		stdout: stdout,
	}
	return r.Command()
}

type runner struct {
	logE   *logrus.Entry
	stdout io.Writer
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Check and fix whitespace style violations",
		Description: `Check files for whitespace style violations and fix what can be fixed safely.

$ wsfix run foo.txt bar.txt

If no argument is passed, wsfix searches target files by files[].pattern in the configuration file.

Each file can override the configuration with a vim style modeline.

e.g.

// vim: et ts=2
`,
		Action: r.action,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Report violations without rewriting files. The exit code tells whether violations were found",
			},
			&cli.BoolFlag{
				Name:    "expand-tabs",
				Aliases: []string{"e"},
				Usage:   "Replace tabs with spaces",
				Sources: cli.EnvVars("WSFIX_EXPAND_TABS"),
			},
			&cli.IntFlag{
				Name:    "tab-size",
				Aliases: []string{"t"},
				Usage:   "Number of columns a tab occupies",
				Sources: cli.EnvVars("WSFIX_TAB_SIZE"),
			},
			&cli.IntFlag{
				Name:    "line-length",
				Aliases: []string{"l"},
				Usage:   "Maximum visible line length",
				Sources: cli.EnvVars("WSFIX_LINE_LENGTH"),
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Usage:   "Number of files processed in parallel",
				Sources: cli.EnvVars("WSFIX_JOBS"),
			},
		},
	}
}

func (r *runner) action(ctx context.Context, c *cli.Command) error {
	log.SetLevel(c.String("log-level"), r.logE)
	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get the current directory: %w", err)
	}
	fs := afero.NewOsFs()
	param := &run.ParamRun{
		FilePaths:      c.Args().Slice(),
		ConfigFilePath: c.String("config"),
		PWD:            pwd,
		Check:          c.Bool("check"),
		Jobs:           int(c.Int("jobs")),
		Stdout:         r.stdout,
	}
	if c.IsSet("expand-tabs") {
		expandTabs := c.Bool("expand-tabs")
		param.ExpandTabs = &expandTabs
	}
	if c.IsSet("tab-size") {
		param.TabSize = int(c.Int("tab-size"))
	}
	if c.IsSet("line-length") {
		param.LineLength = int(c.Int("line-length"))
	}
	ctrl := run.New(fs, config.NewFinder(fs), config.NewReader(fs), param)
	return ctrl.Run(ctx, r.logE) //nolint:wrapcheck
}
