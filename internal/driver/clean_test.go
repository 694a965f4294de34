package driver_test

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"testing"

	"jstrip/internal/ast"
	"jstrip/internal/driver"
	"jstrip/internal/observ"
	"jstrip/internal/parser"
	"jstrip/internal/source"
	"jstrip/internal/strip"
	"jstrip/internal/trace"
)

func TestCleanEndToEnd(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		want  string
		stats driver.Stats
	}{
		{
			name:  "header import annotation comment",
			src:   "/* Copyright X */\nimport a.b.C;\n\n@Deprecated\nclass Foo {\n  // note\n  void bar() {}\n}\n",
			want:  "class Foo {\n  void bar() {}\n}\n",
			stats: driver.Stats{Imports: 1, Annotations: 1, Comments: 1},
		},
		{
			name:  "nested type",
			src:   "class Outer { @A class Inner { @B void m(){} } }",
			want:  "class Outer { class Inner { void m(){} } }",
			stats: driver.Stats{Annotations: 2},
		},
		{
			name:  "package survives",
			src:   "package a.b;\n\nimport java.util.List;\n\npublic class C {}\n",
			want:  "package a.b;\npublic class C {}\n",
			stats: driver.Stats{Imports: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := driver.Clean(context.Background(), "Test.java", []byte(tt.src), driver.Options{})
			if res.Outcome != driver.OutcomeSuccess {
				t.Fatalf("outcome = %v (%v), want success", res.Outcome, res.Reason)
			}
			if got := string(res.Output); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
			if res.Stats != tt.stats {
				t.Errorf("stats = %+v, want %+v", res.Stats, tt.stats)
			}
			if res.Reason != nil {
				t.Errorf("reason = %v, want nil", res.Reason)
			}
		})
	}
}

func TestCleanParseFailureReturnsHeaderStripped(t *testing.T) {
	srcs := []string{
		"/* License */\nclass A {\n  void m() {\n}\n",
		"/* License */\n@Deprecated class B { int x = \"open; }\n",
		"class C { void m() { } } }",
	}
	for _, src := range srcs {
		res := driver.Clean(context.Background(), "Bad.java", []byte(src), driver.Options{})
		if res.Outcome != driver.OutcomeParseFailure {
			t.Fatalf("%q: outcome = %v, want parse-failure", src, res.Outcome)
		}
		if !errors.Is(res.Reason, parser.ErrParse) {
			t.Errorf("%q: reason = %v, want ErrParse", src, res.Reason)
		}
		want := strip.Header([]byte(src))
		if !bytes.Equal(res.Output, want) {
			t.Errorf("%q: output = %q, want %q", src, res.Output, want)
		}
		if !res.Bag.HasErrors() {
			t.Errorf("%q: expected diagnostics in bag", src)
		}
	}
}

func TestCleanRenderFailureFallsBack(t *testing.T) {
	errBoom := errors.New("boom")
	src := "/* h */\n// keep me\n@A class X {}\n"
	res := driver.Clean(context.Background(), "X.java", []byte(src), driver.Options{
		Render: func(*ast.Unit) ([]byte, error) { return nil, errBoom },
	})
	if res.Outcome != driver.OutcomeFallback {
		t.Fatalf("outcome = %v, want fallback", res.Outcome)
	}
	if !errors.Is(res.Reason, errBoom) {
		t.Errorf("reason = %v, want boom", res.Reason)
	}
	if got := string(res.Output); got != "// keep me\n@A class X {}\n" {
		t.Errorf("output = %q", got)
	}
	if res.Stats != (driver.Stats{}) {
		t.Errorf("fallback must not report stats, got %+v", res.Stats)
	}
}

func TestCleanNilTreeIsParseFailure(t *testing.T) {
	res := driver.Clean(context.Background(), "N.java", []byte("class N {}"), driver.Options{
		Parse: func(*source.File, parser.Options) (parser.Result, error) { return parser.Result{}, nil },
	})
	if res.Outcome != driver.OutcomeParseFailure || !errors.Is(res.Reason, parser.ErrParse) {
		t.Fatalf("outcome = %v, reason = %v", res.Outcome, res.Reason)
	}
	if string(res.Output) != "class N {}" {
		t.Errorf("output = %q", res.Output)
	}
}

func TestCleanTimerStages(t *testing.T) {
	timer := observ.NewTimer()
	driver.Clean(context.Background(), "T.java", []byte("class T {}"), driver.Options{Timer: timer})

	var names []string
	for _, s := range timer.Report().Stages {
		names = append(names, s.Name)
	}
	want := []string{"header", "parse", "imports", "annotations", "comments", "render", "compact"}
	if !slices.Equal(names, want) {
		t.Errorf("stages = %v, want %v", names, want)
	}

	timer = observ.NewTimer()
	driver.Clean(context.Background(), "T.java", []byte("class T {"), driver.Options{Timer: timer})
	if n := len(timer.Report().Stages); n != 2 {
		t.Errorf("parse failure should stop after 2 stages, got %d", n)
	}
}

func TestCleanTracesFallback(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelError)
	ctx := trace.WithTracer(context.Background(), ring)

	driver.Clean(ctx, "Ok.java", []byte("class Ok {}"), driver.Options{})
	driver.Clean(ctx, "Bad.java", []byte("class Bad {"), driver.Options{})

	events := ring.Snapshot()
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1 error event", len(events))
	}
	if events[0].Kind != trace.KindError || events[0].Name != "parse-failure" {
		t.Errorf("event = %+v", events[0])
	}
}

func TestResultText(t *testing.T) {
	r := driver.Result{Output: []byte("class A {}")}
	if got := string(r.Text()); got != "class A {}\n" {
		t.Errorf("Text() = %q", got)
	}
	if string(r.Output) != "class A {}" {
		t.Error("Text must not modify Output")
	}
}
