package format

import "jstrip/internal/token"

// Writer accumulates rendered output.
type Writer struct {
	buf     []byte
	started bool // был ли уже выведен непустой текст
}

// NewWriter creates a writer with capacity for sizeHint bytes.
func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, sizeHint)}
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// WriteString appends s verbatim.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.buf = append(w.buf, s...)
	w.started = true
}

// WriteToken writes the token's leading trivia and text. Whitespace trivia
// seen before anything else has been written is skipped.
func (w *Writer) WriteToken(tok *token.Token) {
	for _, tv := range tok.Leading {
		if !w.started && (tv.IsSpace() || tv.IsNewline()) {
			continue
		}
		w.WriteString(tv.Text)
	}
	w.WriteString(tok.Text)
}
