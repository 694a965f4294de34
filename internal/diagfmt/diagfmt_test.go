package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"jstrip/internal/diag"
	"jstrip/internal/lexer"
	"jstrip/internal/parser"
	"jstrip/internal/source"
)

func sampleBag() (*source.FileSet, *diag.Bag) {
	fs := source.NewFileSetWithBase("/home/user/project")
	id := fs.AddVirtual("/home/user/project/src/A.java", []byte("class A {\n  int x = \"oops;\n}\n"))
	bag := diag.NewBag(10)
	d := diag.New(diag.SevError, diag.LexUnterminatedString, source.Span{File: id, Start: 20, End: 26}, "unterminated string")
	bag.Add(d.WithNote(source.Span{File: id, Start: 8, End: 9}, "inside this class"))
	bag.Add(diag.New(diag.SevWarning, diag.SynUnexpectedToken, source.Span{File: id, Start: 0, End: 5}, "second"))
	return fs, bag
}

func TestPretty(t *testing.T) {
	fs, bag := sampleBag()
	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeRelative, ShowNotes: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	wantLines := []string{
		"src/A.java:2:11: ERROR LEX1002: unterminated string",
		" 2 |   int x = \"oops;",
		"   |           ^~~~~~",
		"  note: src/A.java:1:9: inside this class",
		"src/A.java:1:1: WARNING SYN2001: second",
		" 1 | class A {",
		"   | ^~~~~",
	}
	got := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(got) != len(wantLines) {
		t.Fatalf("lines = %d, want %d:\n%s", len(got), len(wantLines), out)
	}
	for i := range wantLines {
		if got[i] != wantLines[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], wantLines[i])
		}
	}
}

func TestPrettyPathModesAndMax(t *testing.T) {
	fs, bag := sampleBag()
	tests := []struct {
		mode PathMode
		want string
	}{
		{PathModeAbsolute, "/home/user/project/src/A.java:2:11:"},
		{PathModeRelative, "src/A.java:2:11:"},
		{PathModeBasename, "A.java:2:11:"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode, Max: 1}); err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(buf.String(), tt.want) {
			t.Errorf("mode %d: got %q", tt.mode, buf.String())
		}
		if strings.Contains(buf.String(), "second") {
			t.Errorf("mode %d: Max=1 must drop the second diagnostic", tt.mode)
		}
		if strings.Contains(buf.String(), "note:") {
			t.Errorf("mode %d: notes are off by default", tt.mode)
		}
	}
}

func TestPrettyColor(t *testing.T) {
	fs, bag := sampleBag()
	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{Color: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected ANSI escapes:\n%q", buf.String())
	}
}

func TestJSON(t *testing.T) {
	fs, bag := sampleBag()
	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: true, PathMode: PathModeBasename}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Fatalf("count = %d", out.Count)
	}
	d := out.Diagnostics[0]
	if d.Code != "LEX1002" || d.Severity != "ERROR" || d.Location.File != "A.java" {
		t.Errorf("diagnostic = %+v", d)
	}
	if d.Location.StartLine != 2 || d.Location.StartCol != 11 {
		t.Errorf("location = %+v", d.Location)
	}
	if len(d.Notes) != 1 {
		t.Errorf("notes = %+v", d.Notes)
	}
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("T.java", []byte("// c\nint x;")))
	toks := lexer.New(file, lexer.Options{}).All()

	var pretty bytes.Buffer
	if err := FormatTokensPretty(&pretty, toks, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(pretty.String(), "\n"), "\n")
	if len(lines) != len(toks) {
		t.Fatalf("lines = %d, tokens = %d:\n%s", len(lines), len(toks), pretty.String())
	}
	if !strings.Contains(lines[0], `"int"`) || !strings.Contains(lines[0], "at 2:1-2:4") || !strings.Contains(lines[0], "leading:") {
		t.Errorf("first line = %q", lines[0])
	}

	var js bytes.Buffer
	if err := FormatTokensJSON(&js, toks); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(js.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != len(toks) || out[0].Text != "int" || len(out[0].Leading) == 0 {
		t.Errorf("json tokens = %+v", out)
	}
}

func TestOutline(t *testing.T) {
	src := `package demo;
import java.util.List;
import static java.lang.Math.*;
@Deprecated
public class Foo {
    @Inject List<String> names;
    public Foo() {}
    void run() {}
    enum Mode { A, B }
}
`
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("Foo.java", []byte(src)))
	res, err := parser.Parse(file, parser.Options{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Outline(&buf, res.Unit); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"package demo\n",
		"import java.util.List\n",
		"import static java.lang.Math.*\n",
		"class Foo @1\n",
		"  field names @1\n",
		"  method run\n",
		"  enum Mode\n",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("outline missing %q:\n%s", want, buf.String())
		}
	}
}
