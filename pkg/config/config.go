// Package config reads the optional wsfix configuration file. The file
// supplies default whitespace style settings and patterns of target
// files. Command line flags override the file, and in-file modelines
// override both.
package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ExpandTabs bool    `yaml:"expand_tabs"`
	TabSize    int     `yaml:"tab_size"`
	LineLength int     `yaml:"line_length"`
	Files      []*File `yaml:"files"`
}

type File struct {
	Pattern string `yaml:"pattern"`
}

func (f *File) Init() error {
	if f.Pattern == "" {
		return errors.New("pattern is required")
	}
	if _, err := regexp.Compile(f.Pattern); err != nil {
		return fmt.Errorf("parse pattern as a regular expression: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.TabSize < 0 {
		return errors.New("tab_size must be a positive integer")
	}
	if c.LineLength < 0 {
		return errors.New("line_length must be a positive integer")
	}
	return nil
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, path := range []string{".wsfix.yaml", ".github/wsfix.yaml", ".wsfix.yml", ".github/wsfix.yml"} {
		f, err := afero.Exists(fs, path)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", path, err)
		}
		if f {
			return path, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	p, err := getConfigPath(f.fs)
	if err != nil {
		return "", err
	}
	return p, nil
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return nil
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	for _, file := range cfg.Files {
		if err := file.Init(); err != nil {
			return fmt.Errorf("initialize file: %w", err)
		}
	}
	return nil
}
