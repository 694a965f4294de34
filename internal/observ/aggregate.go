package observ

import "sync"

// Aggregate sums per-file reports by stage name, keeping first-seen order.
// Safe for concurrent use.
type Aggregate struct {
	mu    sync.Mutex
	index map[string]int
	total Report
}

// NewAggregate creates an empty Aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{index: make(map[string]int)}
}

// Add folds r into the aggregate.
func (a *Aggregate) Add(r Report) {
	if a == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, s := range r.Stages {
		i, ok := a.index[s.Name]
		if !ok {
			i = len(a.total.Stages)
			a.index[s.Name] = i
			a.total.Stages = append(a.total.Stages, StageReport{Name: s.Name})
		}
		dst := &a.total.Stages[i]
		dst.DurationMS += s.DurationMS
		dst.Count += max(s.Count, 1)
	}
	a.total.TotalMS += r.TotalMS
}

// Report returns a copy of the accumulated totals.
func (a *Aggregate) Report() Report {
	if a == nil {
		return Report{}
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	out := Report{TotalMS: a.total.TotalMS, Stages: make([]StageReport, len(a.total.Stages))}
	copy(out.Stages, a.total.Stages)
	return out
}
