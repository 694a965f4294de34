package strip

import "regexp"

// headerRe matches a leading block comment and the whitespace after it.
// Group 1 is the whitespace in front of the comment, which is kept.
var headerRe = regexp.MustCompile(`^(\s*)/\*(?s:.*?)\*/\s*`)

// Header removes the first leading block comment, typically a license banner.
// Text that does not start with a block comment is returned unchanged.
func Header(src []byte) []byte {
	loc := headerRe.FindSubmatchIndex(src)
	if loc == nil {
		return src
	}
	lead := src[:loc[3]]
	if len(lead) == 0 {
		return src[loc[1]:]
	}
	out := make([]byte, 0, len(lead)+len(src)-loc[1])
	out = append(out, lead...)
	return append(out, src[loc[1]:]...)
}
