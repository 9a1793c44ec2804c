// Package run implements the core logic of wsfix. The controller
// resolves the effective configuration per file (configuration file,
// command line overrides, in-file modelines), classifies every line
// into fixable and unfixable violations, and rewrites files whose
// violations can be fixed safely. Fixed files are written to a unique
// temporary file in the same directory, given the permission bits of
// the original, and renamed over it atomically. A file whose scan finds
// nothing is never touched. Files are independent units of work, so the
// controller processes them with a bounded worker pool; within one file
// the modeline scan, the classification scan, and the rewrite pass run
// strictly one after another.
package run

import (
	"io"
	"sync"

	"github.com/spf13/afero"
	"github.com/wsfix/wsfix/pkg/config"
)

type Controller struct {
	fs        afero.Fs
	cfg       *config.Config
	param     *ParamRun
	cfgFinder ConfigFinder
	cfgReader ConfigReader
	stdoutMu  sync.Mutex
}

type ConfigFinder interface {
	Find(configFilePath string) (string, error)
}

type ConfigReader interface {
	Read(cfg *config.Config, configFilePath string) error
}

type ParamRun struct {
	FilePaths      []string
	ConfigFilePath string
	PWD            string
	Check          bool
	Jobs           int
	ExpandTabs     *bool
	TabSize        int
	LineLength     int
	Stdout         io.Writer
}

func New(fs afero.Fs, cfgFinder ConfigFinder, cfgReader ConfigReader, param *ParamRun) *Controller {
	return &Controller{
		fs:        fs,
		param:     param,
		cfgFinder: cfgFinder,
		cfgReader: cfgReader,
		cfg:       &config.Config{},
	}
}
