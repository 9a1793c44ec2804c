package run

import (
	"bytes"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/wsfix/wsfix/pkg/config"
)

func TestController_searchFiles(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		files   []string
		param   *ParamRun
		cfg     *config.Config
		exp     []string
		wantErr bool
	}{
		{
			name:  "arguments win",
			files: []string{"repo/a.txt", "repo/b.txt"},
			param: &ParamRun{
				FilePaths: []string{"a.txt"},
				PWD:       "repo",
			},
			cfg: &config.Config{
				Files: []*config.File{
					{Pattern: `\.txt$`},
				},
			},
			exp: []string{"a.txt"},
		},
		{
			name:  "patterns from the configuration file",
			files: []string{"repo/a.txt", "repo/sub/b.txt", "repo/c.md"},
			param: &ParamRun{
				PWD: "repo",
			},
			cfg: &config.Config{
				Files: []*config.File{
					{Pattern: `\.txt$`},
				},
			},
			exp: []string{"a.txt", "sub/b.txt"},
		},
		{
			name:  "empty pattern is ignored",
			files: []string{"repo/a.txt"},
			param: &ParamRun{
				PWD: "repo",
			},
			cfg: &config.Config{
				Files: []*config.File{
					{Pattern: ""},
					{Pattern: `\.txt$`},
				},
			},
			exp: []string{"a.txt"},
		},
		{
			name:    "no arguments and no patterns is an error",
			files:   []string{"repo/a.txt"},
			param:   &ParamRun{PWD: "repo"},
			cfg:     &config.Config{},
			wantErr: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			for _, path := range d.files {
				if err := afero.WriteFile(fs, path, []byte("foo\n"), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			ctrl := &Controller{
				fs:    fs,
				cfg:   d.cfg,
				param: d.param,
			}
			got, err := ctrl.searchFiles(testLogE())
			if d.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			sort.Strings(got)
			if diff := cmp.Diff(d.exp, got); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestController_searchFilesByConfig_invalidPattern(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	ctrl := &Controller{
		fs: fs,
		cfg: &config.Config{
			Files: []*config.File{
				{Pattern: "("},
			},
		},
		param: &ParamRun{PWD: "repo", Stdout: &bytes.Buffer{}},
	}
	if _, err := ctrl.searchFilesByConfig(testLogE()); err == nil {
		t.Fatal("expected an error")
	}
}
