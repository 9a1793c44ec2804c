package run

import (
	"bufio"
	"fmt"
	"io"
)

const maxLineSize = 1024 * 1024

// checkFile classifies every line of input and returns the aggregate.
// An all zero aggregate means the file is already compliant.
func checkFile(cfg Config, input io.Reader) (CheckResult, error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(nil, maxLineSize)
	scanner.Split(scanLines)
	result := CheckResult{}
	for scanner.Scan() {
		result = result.Add(checkLine(cfg, scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return CheckResult{}, fmt.Errorf("scan a file: %w", err)
	}
	return result, nil
}

// fixFile rewrites every line of input to output, fixing what can be
// fixed, and reports one diagnostic per violating line. This single
// pass is both the fix pass and the report pass; when nothing may be
// rewritten the caller directs output to io.Discard.
func fixFile(cfg Config, filename string, input io.Reader, output io.Writer, logger *Logger) error {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(nil, maxLineSize)
	scanner.Split(scanLines)
	writer := bufio.NewWriter(output)
	for number := 1; scanner.Scan(); number++ {
		line, tags := fixLine(cfg, scanner.Text())
		if len(tags) > 0 {
			logger.Diagnostic(filename, number, tags)
		}
		if _, err := writer.WriteString(line); err != nil {
			return fmt.Errorf("write a line: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan a file: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush the output: %w", err)
	}
	return nil
}
