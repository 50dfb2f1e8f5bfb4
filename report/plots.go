package report

import (
	"image/color"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/YuminosukeSato/gofca/fca"
	"github.com/YuminosukeSato/gofca/lattice"
	"github.com/YuminosukeSato/gofca/pkg/errors"
)

// Default plot size.
const (
	PlotWidth  = 6 * vg.Inch
	PlotHeight = 4 * vg.Inch
)

var (
	edgeColor = color.RGBA{R: 0x2C, G: 0x4A, B: 0x54, A: 0xFF}
	nodeColor = color.RGBA{R: 0x20, G: 0xB9, B: 0xB4, A: 0xFF}
)

// incidenceGrid adapts a context to plotter.GridXYZ. Columns are attributes;
// rows are objects with the first object drawn on top.
type incidenceGrid struct {
	c *fca.FormalContext
}

func (g incidenceGrid) Dims() (c, r int) { return g.c.NumAttributes(), g.c.NumObjects() }
func (g incidenceGrid) X(c int) float64 { return float64(c) }
func (g incidenceGrid) Y(r int) float64 { return float64(r) }
func (g incidenceGrid) Z(c, r int) float64 {
	if g.c.Incident(g.c.NumObjects()-1-r, c) {
		return 1
	}
	return 0
}

// IncidenceHeatmap draws the incidence relation, one cell per (object,
// attribute) pair.
func IncidenceHeatmap(c *fca.FormalContext) (*plot.Plot, error) {
	if c.NumObjects() == 0 || c.NumAttributes() == 0 {
		return nil, errors.NewValueError("report.IncidenceHeatmap", "context has no cells to draw")
	}

	p := plot.New()
	p.Title.Text = "Incidence relation"
	h := plotter.NewHeatMap(incidenceGrid{c: c}, palette.Heat(2, 1))
	h.Min, h.Max = 0, 1
	p.Add(h)

	p.NominalX(c.Attributes()...)
	objects := c.Objects()
	slices.Reverse(objects)
	p.NominalY(objects...)
	return p, nil
}

// SizeDistribution draws side-by-side bars counting concepts per extent size
// and per intent size.
func SizeDistribution(s fca.Statistics) (*plot.Plot, error) {
	n := max(s.Objects, s.Attributes) + 1
	extents := make(plotter.Values, n)
	intents := make(plotter.Values, n)
	for size, count := range s.ExtentSizes {
		extents[size] = float64(count)
	}
	for size, count := range s.IntentSizes {
		intents[size] = float64(count)
	}

	w := vg.Points(10)
	eBars, err := plotter.NewBarChart(extents, w)
	if err != nil {
		return nil, errors.Wrap(err, "extent bars")
	}
	eBars.Offset = -w / 2
	eBars.Color = plotutil.Color(0)
	eBars.LineStyle.Width = 0

	iBars, err := plotter.NewBarChart(intents, w)
	if err != nil {
		return nil, errors.Wrap(err, "intent bars")
	}
	iBars.Offset = w / 2
	iBars.Color = plotutil.Color(1)
	iBars.LineStyle.Width = 0

	p := plot.New()
	p.Title.Text = "Concept size distribution"
	p.X.Label.Text = "size"
	p.Y.Label.Text = "concepts"
	p.Add(eBars, iBars)
	p.Legend.Add("extent |A|", eBars)
	p.Legend.Add("intent |B|", iBars)
	p.Legend.Top = true

	names := make([]string, n)
	for i := range names {
		names[i] = strconv.Itoa(i)
	}
	p.NominalX(names...)
	return p, nil
}

// LatticeDiagram draws the Hasse diagram of l with concepts placed on rows by
// extent size and annotated with their reduced labels.
func LatticeDiagram(c *fca.FormalContext, l *lattice.Lattice) (*plot.Plot, error) {
	levels := l.Levels()
	pos := make(plotter.XYs, l.Len())
	width := 0
	for y, members := range levels {
		width = max(width, len(members))
		for k, i := range members {
			pos[i].X = float64(k) - float64(len(members)-1)/2
			pos[i].Y = float64(y)
		}
	}

	p := plot.New()
	p.Title.Text = "Concept lattice"
	p.HideAxes()

	for _, e := range l.Edges() {
		line, err := plotter.NewLine(plotter.XYs{pos[e.Lower], pos[e.Upper]})
		if err != nil {
			return nil, errors.Wrap(err, "lattice edge")
		}
		line.Color = edgeColor
		p.Add(line)
	}

	nodes, err := plotter.NewScatter(pos)
	if err != nil {
		return nil, errors.Wrap(err, "lattice nodes")
	}
	nodes.GlyphStyle.Shape = draw.CircleGlyph{}
	nodes.GlyphStyle.Radius = vg.Points(4)
	nodes.GlyphStyle.Color = nodeColor
	p.Add(nodes)

	text := make([]string, l.Len())
	for i := range text {
		text[i] = nodeLabel(c.ReducedLabel(l.Concept(i)))
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pos, Labels: text})
	if err != nil {
		return nil, errors.Wrap(err, "lattice labels")
	}
	labels.Offset = vg.Point{X: vg.Points(6), Y: vg.Points(-3)}
	p.Add(labels)

	half := float64(width) / 2
	p.X.Min, p.X.Max = -half-0.5, half+0.5
	p.Y.Min, p.Y.Max = -0.5, float64(len(levels))-0.5
	return p, nil
}

func nodeLabel(l fca.LabeledConcept) string {
	parts := make([]string, 0, 2)
	if len(l.Intent) > 0 {
		parts = append(parts, strings.Join(l.Intent, ", "))
	}
	if len(l.Extent) > 0 {
		parts = append(parts, strings.Join(l.Extent, ", "))
	}
	return strings.Join(parts, " / ")
}

// Save writes p to path. The image format follows the file extension
// (.png, .svg, .pdf, ...).
func Save(p *plot.Plot, path string) error {
	return errors.SafeExecute("report.Save", func() error {
		if err := p.Save(PlotWidth, PlotHeight, path); err != nil {
			return errors.Wrapf(err, "save plot %s", path)
		}
		return nil
	})
}

// SavePlots renders the heatmap (unless the context has no cells), the size
// distribution and, when l is not nil, the lattice diagram into dir as PNG
// files and returns their paths.
func SavePlots(dir string, a *fca.Analysis, l *lattice.Lattice) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create plot directory %s", dir)
	}

	type job struct {
		name   string
		render func() (*plot.Plot, error)
	}
	var jobs []job
	if a.Context.NumObjects() > 0 && a.Context.NumAttributes() > 0 {
		jobs = append(jobs, job{"incidence.png", func() (*plot.Plot, error) { return IncidenceHeatmap(a.Context) }})
	}
	jobs = append(jobs, job{"sizes.png", func() (*plot.Plot, error) { return SizeDistribution(a.Statistics) }})
	if l != nil {
		jobs = append(jobs, job{"lattice.png", func() (*plot.Plot, error) { return LatticeDiagram(a.Context, l) }})
	}

	var written []string
	for _, j := range jobs {
		p, err := j.render()
		if err != nil {
			return written, err
		}
		path := filepath.Join(dir, j.name)
		if err := Save(p, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
