package strip

import "bytes"

// Compact drops every line that is empty or holds only spaces and tabs.
// A final unterminated fragment is kept as is.
func Compact(text []byte) []byte {
	out := make([]byte, 0, len(text))
	for len(text) > 0 {
		i := bytes.IndexByte(text, '\n')
		if i < 0 {
			out = append(out, text...)
			break
		}
		line := text[:i+1]
		text = text[i+1:]
		if isBlank(line[:i]) {
			continue
		}
		out = append(out, line...)
	}
	return out
}

// isBlank: spaces and tabs, optionally followed by one '\r'.
func isBlank(line []byte) bool {
	line = bytes.TrimSuffix(line, []byte{'\r'})
	for _, b := range line {
		if b != ' ' && b != '\t' {
			return false
		}
	}
	return true
}
