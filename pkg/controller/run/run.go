package run

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/wsfix/wsfix/pkg/config"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrViolationsFixed means fixable violations were found. Unless
	// --check is given the files have been fixed.
	ErrViolationsFixed = errors.New("fixable violations were found")
	// ErrUnfixableFound means violations remain which can't be fixed
	// automatically.
	ErrUnfixableFound = errors.New("unfixable violations remain")
	// ErrFilesFailed means one or more files could not be processed.
	ErrFilesFailed = errors.New("one or more files could not be processed")
)

func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	if err := c.readConfig(); err != nil {
		return err
	}
	files, err := c.searchFiles(logE)
	if err != nil {
		return fmt.Errorf("search target files: %w", err)
	}
	base := c.baseConfig()

	var fixed, unfixable, failed atomic.Bool
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.jobs())
	for _, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err //nolint:wrapcheck
			}
			logE := logE.WithField("file", file)
			result, err := c.processFile(logE, file, base)
			if err != nil {
				// A failure aborts only this file. The other files are
				// processed independently.
				logerr.WithError(logE, err).Error("process a file")
				failed.Store(true)
				return nil
			}
			if result.Fixable > 0 {
				fixed.Store(true)
			}
			if result.Unfixable > 0 {
				unfixable.Store(true)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("process files: %w", err)
	}
	switch {
	case failed.Load():
		return ErrFilesFailed
	case unfixable.Load():
		return ErrUnfixableFound
	case fixed.Load():
		return ErrViolationsFixed
	}
	return nil
}

func (c *Controller) readConfig() error {
	p, err := c.cfgFinder.Find(c.param.ConfigFilePath)
	if err != nil {
		return fmt.Errorf("find a configuration file: %w", err)
	}
	c.param.ConfigFilePath = p
	cfg := &config.Config{}
	if err := c.cfgReader.Read(cfg, c.param.ConfigFilePath); err != nil {
		return fmt.Errorf("read a configuration file: %w", err)
	}
	c.cfg = cfg
	return nil
}

// baseConfig merges the defaults, the configuration file, and the
// command line overrides into the base Config. Modelines override this
// per file.
func (c *Controller) baseConfig() Config {
	cfg := DefaultConfig()
	if c.cfg.ExpandTabs {
		cfg.ExpandTabs = true
	}
	if c.cfg.TabSize > 0 {
		cfg.TabSize = c.cfg.TabSize
	}
	if c.cfg.LineLength > 0 {
		cfg.LineLength = c.cfg.LineLength
	}
	if c.param.ExpandTabs != nil {
		cfg.ExpandTabs = *c.param.ExpandTabs
	}
	if c.param.TabSize > 0 {
		cfg.TabSize = c.param.TabSize
	}
	if c.param.LineLength > 0 {
		cfg.LineLength = c.param.LineLength
	}
	return cfg
}

func (c *Controller) jobs() int {
	if c.param.Jobs > 0 {
		return c.param.Jobs
	}
	return runtime.NumCPU()
}

// processFile runs the per file pipeline: modeline scan, configuration
// resolution, classification scan, and the conditional rewrite. It
// returns the file's aggregate so the caller can decide the exit code.
func (c *Controller) processFile(logE *logrus.Entry, path string, base Config) (CheckResult, error) {
	f, err := c.fs.Open(path)
	if err != nil {
		return CheckResult{}, fmt.Errorf("open a file: %w", err)
	}
	defer f.Close()

	modeline, err := findModeline(f)
	if err != nil {
		return CheckResult{}, err
	}
	cfg := base
	if modeline != "" {
		cfg = resolveModeline(base, modeline)
		logE.WithField("modeline", modeline).Debug("apply a modeline")
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return CheckResult{}, fmt.Errorf("rewind a file: %w", err)
	}
	result, err := checkFile(cfg, f)
	if err != nil {
		return CheckResult{}, err
	}
	if result.OK() {
		// The file is compliant. Its bytes, permissions, and path are
		// not touched and no temporary file is created.
		return result, nil
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return CheckResult{}, fmt.Errorf("rewind a file: %w", err)
	}
	// Diagnostics are buffered so lines of different files never
	// interleave when files are processed in parallel.
	buf := &bytes.Buffer{}
	logger := NewLogger(buf)
	if result.Fixable == 0 || c.param.Check {
		// Nothing may be rewritten; the fix pass runs against a discard
		// sink purely to produce diagnostics.
		err = fixFile(cfg, path, f, io.Discard, logger)
	} else {
		err = c.rewriteFile(cfg, path, f, logger)
	}
	c.flushDiagnostics(buf)
	return result, err
}

// rewriteFile writes the fixed content to a unique temporary file next
// to the original, copies the original's permission bits onto it, and
// renames it over the original atomically.
func (c *Controller) rewriteFile(cfg Config, path string, input io.Reader, logger *Logger) error {
	info, err := c.fs.Stat(path)
	if err != nil {
		return fmt.Errorf("read the file permissions: %w", err)
	}
	tmp, err := afero.TempFile(c.fs, filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create a temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	if err := fixFile(cfg, path, input, tmp, logger); err != nil {
		tmp.Close()
		c.fs.Remove(tmpPath) //nolint:errcheck,gosec
		return err
	}
	if err := tmp.Close(); err != nil {
		c.fs.Remove(tmpPath) //nolint:errcheck,gosec
		return fmt.Errorf("close the temporary file: %w", err)
	}
	if err := c.fs.Chmod(tmpPath, info.Mode().Perm()); err != nil {
		c.fs.Remove(tmpPath) //nolint:errcheck,gosec
		return fmt.Errorf("copy the file permissions: %w", err)
	}
	if err := c.fs.Rename(tmpPath, path); err != nil {
		c.fs.Remove(tmpPath) //nolint:errcheck,gosec
		return fmt.Errorf("replace the file: %w", err)
	}
	return nil
}

func (c *Controller) flushDiagnostics(buf *bytes.Buffer) {
	if buf.Len() == 0 || c.param.Stdout == nil {
		return
	}
	c.stdoutMu.Lock()
	defer c.stdoutMu.Unlock()
	buf.WriteTo(c.param.Stdout) //nolint:errcheck,gosec
}
