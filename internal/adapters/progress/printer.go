package progress

import (
	"fmt"
	"io"

	"github.com/hailam/randfile/internal/ports"
)

// Printer writes one "progress: <pct>%" line per report.
type Printer struct {
	out io.Writer
}

var _ ports.ProgressReporter = &Printer{}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) Report(written, total int64) {
	if total <= 0 {
		return
	}
	fmt.Fprintf(p.out, "progress: %.1f%%\n", float64(written)*100/float64(total))
}

func (p *Printer) Done() {}

// Nop discards all progress.
type Nop struct{}

var _ ports.ProgressReporter = Nop{}

func (Nop) Report(int64, int64) {}

func (Nop) Done() {}
