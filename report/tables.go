package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/YuminosukeSato/gofca/fca"
	"github.com/YuminosukeSato/gofca/lattice"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(Styles.Border).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return Styles.Header
			}
			return Styles.Cell
		})
}

func braces(labels []string) string {
	return "{" + strings.Join(labels, ", ") + "}"
}

func yesNo(b bool) string {
	if b {
		return MarkYes
	}
	return MarkNo
}

// ContextTable renders the incidence relation as a cross table.
func ContextTable(c *fca.FormalContext) string {
	t := newTable(append([]string{""}, c.Attributes()...)...)
	for g, object := range c.Objects() {
		row := make([]string, 0, c.NumAttributes()+1)
		row = append(row, object)
		for m := 0; m < c.NumAttributes(); m++ {
			if c.Incident(g, m) {
				row = append(row, MarkIncident)
			} else {
				row = append(row, "")
			}
		}
		t.Row(row...)
	}
	return t.Render()
}

// ConceptTable lists concepts with their labels and sizes.
func ConceptTable(c *fca.FormalContext, concepts []fca.Concept) string {
	t := newTable("#", "Extent", "Intent", "|A|", "|B|")
	for i, concept := range concepts {
		l := c.Label(concept)
		t.Row(
			strconv.Itoa(i+1),
			braces(l.Extent),
			braces(l.Intent),
			strconv.Itoa(concept.Extent().Len()),
			strconv.Itoa(concept.Intent().Len()),
		)
	}
	return t.Render()
}

// SamplesTable shows Up, Closure and closedness of sample object sets.
func SamplesTable(c *fca.FormalContext, samples []fca.ClosureSample) string {
	t := newTable("A", "Up(A)", "Closure(A)", "Closed")
	for _, s := range samples {
		t.Row(
			braces(c.ObjectLabels(s.Set)),
			braces(c.AttributeLabels(s.Up)),
			braces(c.ObjectLabels(s.Closure)),
			yesNo(s.Closed),
		)
	}
	return t.Render()
}

// StatisticsTable renders summary statistics as key/value rows.
func StatisticsTable(s fca.Statistics) string {
	t := newTable("Statistic", "Value")
	t.Row("Objects", strconv.Itoa(s.Objects))
	t.Row("Attributes", strconv.Itoa(s.Attributes))
	t.Row("Density", fmt.Sprintf("%.2f", s.Density))
	t.Row("Concepts", strconv.Itoa(s.Concepts))
	t.Row("Mean |A|", fmt.Sprintf("%.2f", s.MeanExtent))
	t.Row("Mean |B|", fmt.Sprintf("%.2f", s.MeanIntent))
	t.Row("Max |A|", strconv.Itoa(s.MaxExtent))
	t.Row("Max |B|", strconv.Itoa(s.MaxIntent))
	return t.Render()
}

// VerificationTable compares the concept counts of two enumerators.
func VerificationTable(r fca.Report) string {
	t := newTable("Algorithm", "Concepts")
	t.Row(r.Left, strconv.Itoa(r.LeftCount))
	t.Row(r.Right, strconv.Itoa(r.RightCount))
	t.Row("Consistent", yesNo(r.Equal))
	return t.Render()
}

// LatticeTable lists concepts level by level with their upper covers.
func LatticeTable(c *fca.FormalContext, l *lattice.Lattice) string {
	t := newTable("Level", "#", "Extent", "Intent", "Upper covers")
	for level, members := range l.Levels() {
		for _, i := range members {
			lc := c.Label(l.Concept(i))
			covers := make([]string, 0)
			for _, j := range l.UpperCovers(i) {
				covers = append(covers, strconv.Itoa(j+1))
			}
			t.Row(
				strconv.Itoa(level),
				strconv.Itoa(i+1),
				braces(lc.Extent),
				braces(lc.Intent),
				strings.Join(covers, " "),
			)
		}
	}
	return t.Render()
}
