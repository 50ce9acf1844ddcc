package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/dustin/go-humanize"

	"github.com/hailam/randfile/internal/ports"
)

// Spinner shows an animated spinner whose suffix tracks progress. It stays
// idle unless out is a terminal.
type Spinner struct {
	s *spinner.Spinner
}

var _ ports.ProgressReporter = &Spinner{}

func NewSpinner(out *os.File) *Spinner {
	// WriterFile drives the terminal check; WithWriter alone leaves it on stdout.
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond,
		spinner.WithWriter(out), spinner.WithWriterFile(out))
	s.Prefix = "generating "
	return &Spinner{s: s}
}

func (p *Spinner) Report(written, total int64) {
	if total <= 0 {
		return
	}
	p.s.Lock()
	p.s.Suffix = suffix(written, total)
	p.s.Unlock()
	if !p.s.Active() {
		p.s.Start()
	}
}

func (p *Spinner) Done() {
	p.s.Stop()
}

func suffix(written, total int64) string {
	return fmt.Sprintf(" %.1f%% (%s / %s)",
		float64(written)*100/float64(total),
		humanize.IBytes(uint64(written)),
		humanize.IBytes(uint64(total)))
}
