package cliapp

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"rnaiforge-core/rnai"
)

// progressGroup renders one mpb bar per named phase (index build,
// pipeline scan), grounded on the indexing progress bar pattern used for
// lib-index-build in the retrieved corpus. The core packages themselves
// never import mpb; they only call the ProgressFunc callback.
type progressGroup struct {
	enabled bool
	out     io.Writer
	p       *mpb.Progress
	bars    map[string]*mpb.Bar
}

func newProgress(quiet bool, out io.Writer) (*progressGroup, func()) {
	if quiet {
		return &progressGroup{enabled: false}, func() {}
	}
	p := mpb.New(mpb.WithWidth(40), mpb.WithOutput(out))
	pg := &progressGroup{enabled: true, out: out, p: p, bars: make(map[string]*mpb.Bar)}
	return pg, func() { pg.p.Wait() }
}

// bar returns an rnai.ProgressFunc that drives a named mpb bar, creating
// it lazily on first use.
func (pg *progressGroup) bar(phase string) rnai.ProgressFunc {
	if !pg.enabled {
		return nil
	}
	return func(fraction float64, label string) {
		b, ok := pg.bars[phase]
		if !ok {
			b = pg.p.AddBar(100,
				mpb.PrependDecorators(decor.Name(phase+": "+label)),
				mpb.AppendDecorators(decor.Percentage()),
			)
			pg.bars[phase] = b
		}
		b.SetCurrent(int64(fraction * 100))
	}
}
