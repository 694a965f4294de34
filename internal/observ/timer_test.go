package observ

import (
	"strings"
	"sync"
	"testing"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	i := tm.Begin("parse")
	tm.End(i, "ok")
	j := tm.Begin("render")
	tm.End(j, "")
	tm.End(42, "ignored")

	r := tm.Report()
	if len(r.Stages) != 2 {
		t.Fatalf("stages = %d, want 2", len(r.Stages))
	}
	if r.Stages[0].Name != "parse" || r.Stages[0].Note != "ok" {
		t.Errorf("first stage = %+v", r.Stages[0])
	}
	sum := tm.Summary()
	if !strings.HasPrefix(sum, "timings:\n") || !strings.Contains(sum, "// ok") || !strings.Contains(sum, "total") {
		t.Errorf("summary:\n%s", sum)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.End(tm.Begin("x"), "")
	if r := tm.Report(); len(r.Stages) != 0 {
		t.Errorf("nil timer report = %+v", r)
	}
}

func TestAggregateMergesByName(t *testing.T) {
	agg := NewAggregate()
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			agg.Add(Report{TotalMS: 3, Stages: []StageReport{
				{Name: "parse", DurationMS: 1, Count: 1},
				{Name: "render", DurationMS: 2, Count: 1},
			}})
		}()
	}
	wg.Wait()

	r := agg.Report()
	if len(r.Stages) != 2 {
		t.Fatalf("stages = %d, want 2", len(r.Stages))
	}
	if r.Stages[0].Count != 10 || r.Stages[0].DurationMS != 10 {
		t.Errorf("parse = %+v", r.Stages[0])
	}
	if r.TotalMS != 30 {
		t.Errorf("total = %v, want 30", r.TotalMS)
	}
	if !strings.Contains(r.Summary(), "x10") {
		t.Errorf("summary should show counts:\n%s", r.Summary())
	}
}
