package run

import "strings"

// terminator is the line ending of one line, classified exactly once.
// A line never matches more than one form, so a windows ending is never
// also counted as a mac ending.
type terminator int

const (
	termNone terminator = iota
	termLF
	termCR
	termCRLF
)

func (t terminator) String() string {
	switch t {
	case termLF:
		return "\n"
	case termCR:
		return "\r"
	case termCRLF:
		return "\r\n"
	}
	return ""
}

// splitTerminator splits a line into its body and its terminator.
func splitTerminator(line string) (string, terminator) {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return line[:len(line)-2], termCRLF
	case strings.HasSuffix(line, "\n"):
		return line[:len(line)-1], termLF
	case strings.HasSuffix(line, "\r"):
		return line[:len(line)-1], termCR
	}
	return line, termNone
}

// scanLines is a bufio.SplitFunc which keeps line terminators. A line
// is a maximal run of characters up to and including "\n", "\r", or
// "\r\n", or the unterminated fragment at the end of the input.
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	for i, b := range data {
		switch b {
		case '\n':
			return i + 1, data[:i+1], nil
		case '\r':
			if i+1 < len(data) {
				if data[i+1] == '\n' {
					return i + 2, data[:i+2], nil
				}
				return i + 1, data[:i+1], nil
			}
			if atEOF {
				return i + 1, data[:i+1], nil
			}
			// One more byte is needed to tell "\r" from "\r\n".
			return 0, nil, nil
		}
	}
	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}
	return 0, nil, nil
}
