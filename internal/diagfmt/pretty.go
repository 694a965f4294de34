package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"jstrip/internal/diag"
	"jstrip/internal/source"
)

type palette struct {
	err, warn, info, code, path, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan),
		code:   color.New(color.Bold),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgCyan, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.path, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	if bag == nil {
		return nil
	}
	pal := newPalette(opts.Color)
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}

	var sb strings.Builder
	for i := range items {
		d := &items[i]
		start, end := fs.Resolve(d.Primary)
		fmt.Fprintf(&sb, "%s: %s %s: %s\n",
			pal.path.Sprintf("%s:%d:%d", displayPath(fs, d.Primary.File, opts.PathMode), start.Line, start.Col),
			pal.severity(d.Severity).Sprint(d.Severity.String()),
			pal.code.Sprint(d.Code.ID()),
			d.Message,
		)
		writeSnippet(&sb, fs, d.Primary, start, end, pal)

		if opts.ShowNotes {
			for _, n := range d.Notes {
				ns, _ := fs.Resolve(n.Span)
				fmt.Fprintf(&sb, "  %s %s:%d:%d: %s\n",
					pal.note.Sprint("note:"),
					displayPath(fs, n.Span.File, opts.PathMode), ns.Line, ns.Col, n.Msg)
			}
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// writeSnippet prints the primary line with a caret under the span.
// Multi-line spans are underlined to the end of the first line.
func writeSnippet(sb *strings.Builder, fs *source.FileSet, sp source.Span, start, end source.LineCol, pal palette) {
	f := fs.Get(sp.File)
	if f == nil || start.Line == 0 {
		return
	}
	line := strings.TrimRight(f.GetLine(start.Line), "\r")
	gutter := fmt.Sprintf("%d", start.Line)
	pad := strings.Repeat(" ", len(gutter))

	fmt.Fprintf(sb, " %s %s %s\n", pal.gutter.Sprint(gutter), pal.gutter.Sprint("|"), line)

	col := min(int(start.Col)-1, len(line))
	stop := len(line)
	if end.Line == start.Line {
		stop = min(int(end.Col)-1, len(line))
	}
	width := max(1, runewidth.StringWidth(line[col:max(col, stop)]))

	fmt.Fprintf(sb, " %s %s %s%s\n", pad, pal.gutter.Sprint("|"),
		indentLike(line[:col]),
		pal.caret.Sprint("^"+strings.Repeat("~", width-1)))
}

// indentLike returns blanks covering prefix; tabs are kept so the caret lines up.
func indentLike(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}
