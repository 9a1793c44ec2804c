package run

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var modelinePattern = regexp.MustCompile(` (vim|vi|ex): (.+)`)

// findModeline scans every line of input for a vim style modeline and
// returns the options of the last one in file order, or an empty string
// if there is none. Malformed directives simply don't match.
func findModeline(input io.Reader) (string, error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(nil, maxLineSize)
	scanner.Split(scanLines)
	modeline := ""
	for scanner.Scan() {
		body, _ := splitTerminator(scanner.Text())
		if matches := modelinePattern.FindStringSubmatch(body); matches != nil {
			modeline = matches[2]
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("scan a file for a modeline: %w", err)
	}
	return modeline, nil
}

// resolveModeline applies modeline options to a base configuration and
// returns a new configuration. The base is never modified. Options are
// applied left to right, so a later option wins on conflict. Unknown
// options are ignored.
func resolveModeline(base Config, modeline string) Config {
	cfg := base
	for _, opt := range strings.Split(modeline, " ") {
		switch {
		case opt == "et":
			cfg.ExpandTabs = true
		case opt == "noet":
			cfg.ExpandTabs = false
		case strings.HasPrefix(opt, "ts="):
			// A malformed or non positive value keeps the previous tab size.
			if n, err := strconv.Atoi(strings.TrimPrefix(opt, "ts=")); err == nil && n > 0 {
				cfg.TabSize = n
			}
		}
	}
	return cfg
}
