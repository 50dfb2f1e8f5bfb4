package report

import (
	"fmt"
	"io"

	"github.com/YuminosukeSato/gofca/fca"
	"github.com/YuminosukeSato/gofca/lattice"
)

// Printer writes titled report sections to an io.Writer.
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Section writes a styled title followed by body. After the first write
// error every call is a no-op; the error is returned by Err.
func (p *Printer) Section(title, body string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s\n%s\n\n", Styles.Title.Render(title), body)
}

// Line writes one plain line.
func (p *Printer) Line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

// Err returns the first write error.
func (p *Printer) Err() error { return p.err }

// Analysis writes the context, closure samples, the concepts, statistics and
// the verification result. samples and l may be nil.
func (p *Printer) Analysis(a *fca.Analysis, samples []fca.ClosureSample, l *lattice.Lattice) {
	c := a.Context
	p.Section(fmt.Sprintf("Formal context (%d objects × %d attributes)", c.NumObjects(), c.NumAttributes()),
		ContextTable(c))
	if len(samples) > 0 {
		p.Section("Closure operator", SamplesTable(c, samples))
	}
	p.Section(fmt.Sprintf("Formal concepts (%d)", len(a.Concepts)), ConceptTable(c, a.Concepts))
	if l != nil {
		p.Section(fmt.Sprintf("Concept lattice (%d covering pairs)", len(l.Edges())), LatticeTable(c, l))
	}
	p.Section("Statistics", StatisticsTable(a.Statistics))
	p.Section("Verification", VerificationTable(a.Report))
	p.Verdict(a.Report)
}

// Verdict writes a one-line success or failure message for r.
func (p *Printer) Verdict(r fca.Report) {
	if r.Equal {
		p.Line("%s", Styles.Success.Render(MarkYes+" "+r.Left+" and "+r.Right+" agree"))
		return
	}
	p.Line("%s", Styles.Error.Render(fmt.Sprintf("%s %s found %d concepts, %s found %d",
		MarkNo, r.Left, r.LeftCount, r.Right, r.RightCount)))
}
