package source

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode converts content stored in charset to UTF-8. An empty charset means
// UTF-8; such content is returned untouched unless it starts with a UTF-16
// byte order mark. The flag reports whether a conversion took place.
func Decode(content []byte, charset string) ([]byte, bool, error) {
	name := strings.ToLower(strings.TrimSpace(charset))
	isUTF8 := name == "" || name == "utf-8" || name == "utf8"
	if isUTF8 && !hasUTF16BOM(content) {
		return content, false, nil
	}

	var enc encoding.Encoding = unicode.UTF8
	if !isUTF8 {
		e, err := htmlindex.Get(name)
		if err != nil {
			return nil, false, fmt.Errorf("unknown charset %q: %w", charset, err)
		}
		enc = e
	}

	// A byte order mark overrides the declared charset.
	out, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), content)
	if err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", name, err)
	}
	return out, true, nil
}

func hasUTF16BOM(content []byte) bool {
	return bytes.HasPrefix(content, []byte{0xFE, 0xFF}) || bytes.HasPrefix(content, []byte{0xFF, 0xFE})
}
