package run

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func (c *Controller) searchFiles(logE *logrus.Entry) ([]string, error) {
	if len(c.param.FilePaths) != 0 {
		return c.param.FilePaths, nil
	}
	if len(c.cfg.Files) > 0 {
		return c.searchFilesByConfig(logE)
	}
	return nil, errors.New("no files are given via arguments or files[].pattern in the configuration file")
}

func (c *Controller) searchFilesByConfig(logE *logrus.Entry) ([]string, error) {
	patterns := make([]*regexp.Regexp, 0, len(c.cfg.Files))
	for _, file := range c.cfg.Files {
		if file.Pattern == "" {
			// ignore
			continue
		}
		p, err := regexp.Compile(file.Pattern)
		if err != nil {
			return nil, fmt.Errorf("parse files[].pattern as a regular expression: %w", err)
		}
		patterns = append(patterns, p)
	}

	files := []string{}
	if err := fs.WalkDir(afero.NewIOFS(c.fs), c.param.PWD, func(p string, dirEntry fs.DirEntry, e error) error {
		if e != nil {
			return nil //nolint:nilerr
		}
		if dirEntry.IsDir() {
			// ignore directory
			return nil
		}
		filePath, err := filepath.Rel(c.param.PWD, p)
		if err != nil {
			logE.WithFields(logrus.Fields{
				"pwd":  c.param.PWD,
				"path": p,
			}).WithError(err).Debug("get a relative path")
			return nil
		}
		for _, pattern := range patterns {
			if pattern.MatchString(filePath) {
				files = append(files, filePath)
				break
			}
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("search target files: %w", err)
	}

	return files, nil
}
