// Package trace provides structured tracing for cleaning runs.
//
// Трейсинг показывает, сколько длится каждый этап для каждого файла и почему
// файл ушёл в fallback.
//
// # Usage
//
//	jstrip clean --trace=- --trace-level=detail jsoup
//
// # Architecture
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr)
//   - RingTracer: circular buffer, dumped after a run that had fallbacks
//   - MultiTracer: combines multiple tracers
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: only error events (fallbacks, unreadable files)
//   - LevelPhase: run and per-file spans
//   - LevelDetail: pipeline stages inside a file
//   - LevelDebug: everything, including individual diagnostics
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span, ctx := trace.StartSpan(ctx, trace.ScopeStage, "parse")
//	defer span.End("")
package trace
