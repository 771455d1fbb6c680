// internal/progress/progress.go
package progress

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Bar renders a pairwise-comparison progress bar on out (normally stderr).
// A disabled Bar is inert: every method is a no-op, so callers can wire it
// unconditionally as the executor's progress sink.
type Bar struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

// New creates a bar over total units of work.
func New(total int64, out io.Writer, enabled bool) *Bar {
	if !enabled || total <= 0 {
		return &Bar{}
	}
	p := mpb.New(mpb.WithWidth(40), mpb.WithOutput(out))
	bar := p.AddBar(total,
		mpb.PrependDecorators(
			decor.Name("pairs: "),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WCSyncSpace),
			decor.Name(" ETA: "),
			decor.AverageETA(decor.ET_STYLE_GO),
		),
	)
	return &Bar{p: p, bar: bar}
}

// Observe matches the executor's OnProgress signature. Display may lag the
// true count; the increment itself is never lost.
func (b *Bar) Observe(done, total int64) {
	if b.bar != nil {
		b.bar.Increment()
	}
}

// Wait blocks until the bar has rendered its final state.
func (b *Bar) Wait() {
	if b.p != nil {
		b.p.Wait()
	}
}
