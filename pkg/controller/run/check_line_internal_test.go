package run

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_checkLine(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name string
		cfg  Config
		line string
		exp  CheckResult
	}{
		{
			name: "compliant line",
			cfg:  DefaultConfig(),
			line: "foo\n",
			exp:  CheckResult{},
		},
		{
			name: "empty line",
			cfg:  DefaultConfig(),
			line: "\n",
			exp:  CheckResult{},
		},
		{
			name: "empty file fragment",
			cfg:  DefaultConfig(),
			line: "",
			exp:  CheckResult{},
		},
		{
			name: "tab with expand_tabs is fixable",
			cfg:  Config{ExpandTabs: true, TabSize: 4, LineLength: 80},
			line: "a\tb\n",
			exp:  CheckResult{Fixable: 1},
		},
		{
			name: "leading tabs without expand_tabs are fine",
			cfg:  DefaultConfig(),
			line: "\t\tfoo\n",
			exp:  CheckResult{},
		},
		{
			name: "tab after other characters is unfixable",
			cfg:  DefaultConfig(),
			line: "\t\ta\tb\n",
			exp:  CheckResult{Unfixable: 1},
		},
		{
			name: "windows ending is fixable and counted once",
			cfg:  DefaultConfig(),
			line: "foo\r\n",
			exp:  CheckResult{Fixable: 1},
		},
		{
			name: "mac ending is fixable",
			cfg:  DefaultConfig(),
			line: "foo\r",
			exp:  CheckResult{Fixable: 1},
		},
		{
			name: "trailing whitespace is fixable",
			cfg:  DefaultConfig(),
			line: "foo   \n",
			exp:  CheckResult{Fixable: 1},
		},
		{
			name: "terminator only windows line has no trailing whitespace",
			cfg:  DefaultConfig(),
			line: "\r\n",
			exp:  CheckResult{Fixable: 1},
		},
		{
			name: "trailing whitespace on unterminated final line is not flagged",
			cfg:  DefaultConfig(),
			line: "foo ",
			exp:  CheckResult{},
		},
		{
			name: "long line is unfixable",
			cfg:  DefaultConfig(),
			line: strings.Repeat("a", 81) + "\n",
			exp:  CheckResult{Unfixable: 1},
		},
		{
			name: "line at the limit is fine",
			cfg:  DefaultConfig(),
			line: strings.Repeat("a", 80) + "\n",
			exp:  CheckResult{},
		},
		{
			name: "tab counts as tab_size columns",
			cfg:  DefaultConfig(),
			line: "\t" + strings.Repeat("a", 77) + "\n",
			exp:  CheckResult{Unfixable: 1},
		},
		{
			name: "windows ending with trailing whitespace fires both",
			cfg:  DefaultConfig(),
			line: "foo \r\n",
			exp:  CheckResult{Fixable: 2},
		},
		{
			name: "several rules at once",
			cfg:  Config{ExpandTabs: true, TabSize: 4, LineLength: 80},
			line: "a\tb \r",
			exp:  CheckResult{Fixable: 3},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			result := checkLine(d.cfg, d.line)
			if diff := cmp.Diff(d.exp, result); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestCheckResult_Add(t *testing.T) {
	t.Parallel()
	a := CheckResult{Fixable: 2, Unfixable: 1}
	b := CheckResult{Fixable: 1, Unfixable: 3}
	exp := CheckResult{Fixable: 3, Unfixable: 4}
	if diff := cmp.Diff(exp, a.Add(b)); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff(a.Add(b), b.Add(a)); diff != "" {
		t.Fatalf("Add isn't commutative: %s", diff)
	}
	if diff := cmp.Diff(a, a.Add(CheckResult{})); diff != "" {
		t.Fatalf("the zero value isn't the identity: %s", diff)
	}
}

func TestCheckResult_OK(t *testing.T) {
	t.Parallel()
	if !(CheckResult{}).OK() {
		t.Error("the zero value must be OK")
	}
	if (CheckResult{Fixable: 1}).OK() {
		t.Error("a fixable violation must not be OK")
	}
	if (CheckResult{Unfixable: 1}).OK() {
		t.Error("an unfixable violation must not be OK")
	}
}
