package fuzztests

import (
	"bytes"
	"context"
	"testing"
	"time"

	"jstrip/internal/driver"
	"jstrip/internal/strip"
)

// cleanTimeout is the maximum time allowed for cleaning a single input.
// If cleaning takes longer, it indicates a potential infinite loop.
const cleanTimeout = 5 * time.Second

// FuzzCleanNoHang checks that Clean terminates on any input and that
// degraded results are exactly the header-stripped text.
func FuzzCleanNoHang(f *testing.F) {
	addCorpusSeeds(f)

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		ctx, cancel := context.WithTimeout(context.Background(), cleanTimeout)
		defer cancel()

		done := make(chan driver.Result, 1)
		go func() {
			done <- driver.Clean(ctx, "Fuzz.java", input, driver.Options{MaxDiagnostics: 128})
		}()

		var res driver.Result
		select {
		case res = <-done:
		case <-ctx.Done():
			t.Fatalf("clean hang detected: took longer than %v\ninput (%d bytes): %q",
				cleanTimeout, len(input), truncateForLog(input, 200))
		}

		switch res.Outcome {
		case driver.OutcomeSuccess:
			if res.Reason != nil {
				t.Fatalf("success with reason %v", res.Reason)
			}
		case driver.OutcomeParseFailure, driver.OutcomeFallback:
			if want := strip.Header(input); !bytes.Equal(res.Output, want) {
				t.Fatalf("%s output is not the header-stripped input:\n got %q\nwant %q",
					res.Outcome, truncateForLog(res.Output, 200), truncateForLog(want, 200))
			}
		default:
			t.Fatalf("unknown outcome %d", res.Outcome)
		}
	})
}
