package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":       LevelOff,
		"off":    LevelOff,
		"ERROR":  LevelError,
		"phase":  LevelPhase,
		"Detail": LevelDetail,
		"debug":  LevelDebug,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		ev    Event
		want  bool
	}{
		{LevelOff, Event{Kind: KindError, Scope: ScopeFile}, false},
		{LevelError, Event{Kind: KindError, Scope: ScopeFile}, true},
		{LevelError, Event{Kind: KindSpanBegin, Scope: ScopeRun}, false},
		{LevelPhase, Event{Kind: KindSpanBegin, Scope: ScopeFile}, true},
		{LevelPhase, Event{Kind: KindSpanBegin, Scope: ScopeStage}, false},
		{LevelDetail, Event{Kind: KindSpanEnd, Scope: ScopeStage}, true},
		{LevelDetail, Event{Kind: KindPoint, Scope: ScopeNode}, false},
		{LevelDebug, Event{Kind: KindPoint, Scope: ScopeNode}, true},
		{LevelPhase, Event{Kind: KindHeartbeat, Scope: ScopeRun}, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(&tt.ev); got != tt.want {
			t.Errorf("%v.ShouldEmit(%v/%v) = %v, want %v", tt.level, tt.ev.Kind, tt.ev.Scope, got, tt.want)
		}
	}
}

func TestRingWrapsInOrder(t *testing.T) {
	r := NewRingTracer(3, LevelDebug)
	for i := 1; i <= 5; i++ {
		r.Emit(&Event{Kind: KindPoint, Scope: ScopeNode, Seq: uint64(i)})
	}
	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("len = %d, want 3", len(snap))
	}
	for i, want := range []uint64{3, 4, 5} {
		if snap[i].Seq != want {
			t.Errorf("snap[%d].Seq = %d, want %d", i, snap[i].Seq, want)
		}
	}
}

func TestStreamFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)

	file := Begin(tr, ScopeFile, "file:A.java", 0)
	stage := Begin(tr, ScopeStage, "parse", file.ID())
	if stage.ID() != 0 {
		t.Errorf("stage span should be disabled at phase level, got id %d", stage.ID())
	}
	stage.End("")
	file.End("success")

	out := buf.String()
	if !strings.Contains(out, "→ file:A.java") || !strings.Contains(out, "← file:A.java (success)") {
		t.Errorf("missing file span in output:\n%s", out)
	}
	if strings.Contains(out, "parse") {
		t.Errorf("stage span leaked into phase output:\n%s", out)
	}
}

func TestNDJSONEvent(t *testing.T) {
	ev := &Event{
		Time:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Seq:    7,
		Kind:   KindError,
		Scope:  ScopeFile,
		Name:   "fallback",
		Detail: "render",
		Extra:  map[string]string{"file": "A.java"},
	}
	line := FormatEvent(ev, FormatNDJSON)
	if !bytes.HasSuffix(line, []byte("\n")) {
		t.Fatalf("ndjson line must end with newline: %q", line)
	}
	var got map[string]any
	if err := json.Unmarshal(line, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["kind"] != "error" || got["scope"] != "file" || got["name"] != "fallback" {
		t.Errorf("unexpected fields: %v", got)
	}
}

func TestTextExtraSorted(t *testing.T) {
	ev := &Event{Kind: KindPoint, Scope: ScopeNode, Name: "n", Extra: map[string]string{"b": "2", "a": "1"}}
	if got := string(FormatEvent(ev, FormatText)); !strings.HasSuffix(got, "• n {a=1, b=2}\n") {
		t.Errorf("text = %q", got)
	}
}

func TestStartSpanPropagatesParent(t *testing.T) {
	ring := NewRingTracer(16, LevelDebug)
	ctx := WithTracer(context.Background(), ring)

	outer, ctx := StartSpan(ctx, ScopeFile, "file")
	inner, _ := StartSpan(ctx, ScopeStage, "parse")
	inner.End("")
	outer.End("")

	snap := ring.Snapshot()
	if len(snap) != 4 {
		t.Fatalf("events = %d, want 4", len(snap))
	}
	if snap[1].ParentID != outer.ID() {
		t.Errorf("inner parent = %d, want %d", snap[1].ParentID, outer.ID())
	}
	if snap[3].Extra["dur"] == "" {
		t.Error("span end should carry a duration")
	}
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Enabled() {
		t.Error("off tracer must be disabled")
	}
	if _, ok := Ring(tr); ok {
		t.Error("nop tracer has no ring")
	}
}

func TestNewBothExposesRing(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelError, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	Error(tr, 0, "fallback", "A.java")
	r, ok := Ring(tr)
	if !ok {
		t.Fatal("expected ring behind both-mode tracer")
	}
	if n := len(r.Snapshot()); n != 1 {
		t.Errorf("ring events = %d, want 1", n)
	}
	if !strings.Contains(buf.String(), "! fallback (A.java)") {
		t.Errorf("stream output = %q", buf.String())
	}
}

func TestHeartbeatStopIdempotent(t *testing.T) {
	if StartHeartbeat(Nop, time.Millisecond) != nil {
		t.Error("heartbeat on nop tracer should be nil")
	}
	h := StartHeartbeat(NewRingTracer(8, LevelError), time.Millisecond)
	h.Stop()
	h.Stop()
	var nilHB *Heartbeat
	nilHB.Stop()
}
