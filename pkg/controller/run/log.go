package run

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type colorFunc func(a ...interface{}) string

// Logger writes one diagnostic per violating line.
type Logger struct {
	stdout io.Writer
	green  colorFunc
	red    colorFunc
}

func NewLogger(stdout io.Writer) *Logger {
	return &Logger{
		green:  color.New(color.FgGreen).SprintFunc(),
		red:    color.New(color.FgRed).SprintFunc(),
		stdout: stdout,
	}
}

// Diagnostic reports the violations of one line as
// "<path>:<line number>: <comma joined tags>". Tags of applied fixes
// are green, tags of violations which are only reported are red.
func (l *Logger) Diagnostic(file string, number int, tags []string) {
	colored := make([]string, len(tags))
	for i, tag := range tags {
		if unfixableTag(tag) {
			colored[i] = l.red(tag)
			continue
		}
		colored[i] = l.green(tag)
	}
	fmt.Fprintf(l.stdout, "%s:%d: %s\n", file, number, strings.Join(colored, ", "))
}
