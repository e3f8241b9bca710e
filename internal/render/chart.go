package render

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"bls-chart/internal/model"
)

// currentValueLabelShift places the current-value label at 80% of the
// right-side padding, clear of the last data point.
const currentValueLabelShift = 0.8

// Rendered is the output artifact: a finished PNG chart. LogoErr is set
// when a logo was requested but could not be composited; the chart itself
// is still complete.
type Rendered struct {
	PNG     []byte
	LogoErr error
}

// WriteFile writes the chart PNG to path.
func (r *Rendered) WriteFile(path string) error {
	return os.WriteFile(path, r.PNG, 0o644)
}

// Renderer turns a normalized table into an annotated line chart.
type Renderer struct {
	opts Options
}

// New creates a renderer for one style configuration. Unset presentation
// fields fall back to DefaultOptions.
func New(opts Options) *Renderer {
	return &Renderer{opts: opts.withFallbacks()}
}

// Render draws the table: recession bands below, one line per column, the
// current-value callout, titles, grid, and source citation. The table's
// date index must be non-empty and sorted ascending (the normalizer
// guarantees both).
func (r *Renderer) Render(table *model.Table) (*Rendered, error) {
	if table == nil || table.Len() == 0 {
		return nil, &EmptyDataError{}
	}
	o := r.opts

	xMin, xMax, pad := xRange(table, *o.XPadding)
	yMax := yAxisMax(table.MaxValue())

	lineColor := parseColor(o.LineColor)
	gridColor := parseColor(o.GridColor)
	recColor := parseColor(o.RecessionColor).WithAlpha(128)
	textColor := parseColor(o.TextColor)

	var seriesList []chart.Series

	if *o.AddRecessionShading {
		for _, iv := range visibleRecessions(o.Recessions, xMin, xMax) {
			// Full-height filled band between the clipped interval bounds.
			seriesList = append(seriesList, chart.TimeSeries{
				XValues: []time.Time{iv.Start, iv.End},
				YValues: []float64{yMax, yMax},
				Style: chart.Style{
					StrokeWidth: 1,
					StrokeColor: recColor,
					FillColor:   recColor,
				},
			})
		}
	}

	var legendEntries []legendEntry
	for _, col := range table.Columns {
		xs, ys := table.Points(col)
		if len(xs) == 0 {
			continue
		}
		if len(xs) == 1 {
			// go-chart needs at least two x values per series.
			xs = append(xs, xs[0].Add(time.Second))
			ys = append(ys, ys[0])
		}
		name := o.displayName(col)
		seriesList = append(seriesList, chart.TimeSeries{
			Name:    name,
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: lineColor, StrokeWidth: 2.5},
		})
		legendEntries = append(legendEntries, legendEntry{label: name, color: lineColor})

		if !*o.ShowCurrentValue {
			continue
		}
		v, ok := table.Latest(col)
		if !ok {
			continue
		}
		// Dashed reference line at the latest value, across the visible range.
		seriesList = append(seriesList, chart.TimeSeries{
			XValues: []time.Time{xMin, xMax},
			YValues: []float64{v, v},
			Style: chart.Style{
				StrokeColor:     lineColor.WithAlpha(128),
				StrokeWidth:     1,
				StrokeDashArray: []float64{5, 5},
			},
		})
		labelX := table.End().Add(time.Duration(float64(pad) * currentValueLabelShift))
		seriesList = append(seriesList, chart.AnnotationSeries{
			Annotations: []chart.Value2{{
				XValue: timeToFloat(labelX),
				YValue: v,
				Label:  formatPercent(v),
			}},
			Style: chart.Style{StrokeColor: lineColor, FontColor: lineColor},
		})
	}

	elements := []chart.Renderable{legendElement(legendEntries)}
	if o.Subtitle != "" {
		elements = append(elements, subtitleElement(o.Subtitle, o.SubtitleFont))
	}
	if o.SourceNote != "" {
		elements = append(elements, sourceNoteElement(o.SourceNote, parseColor(o.SubtitleFont.Color)))
	}

	ch := chart.Chart{
		Title:      o.Title,
		TitleStyle: chart.Style{FontSize: o.TitleFont.Size, FontColor: titleColor(o)},
		Width:      o.Width,
		Height:     o.Height,
		Background: chart.Style{Padding: chart.Box{Top: 30, Left: 16, Right: 16, Bottom: 20}},
		XAxis: chart.XAxis{
			Style:          chart.Style{FontColor: textColor, StrokeColor: gridColor},
			Range:          &chart.ContinuousRange{Min: timeToFloat(xMin), Max: timeToFloat(xMax)},
			Ticks:          yearTicks(xMin, xMax),
			GridMajorStyle: chart.Style{StrokeColor: gridColor, StrokeWidth: 0.7},
		},
		YAxis: chart.YAxis{
			Name:           o.YAxisLabel,
			NameStyle:      chart.Style{FontColor: textColor, FontSize: 12},
			Style:          chart.Style{FontColor: textColor, StrokeColor: gridColor},
			Range:          &chart.ContinuousRange{Min: 0, Max: yMax},
			GridMajorStyle: chart.Style{StrokeColor: gridColor, StrokeWidth: 0.7},
		},
		Series:   seriesList,
		Elements: elements,
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}

	out := &Rendered{PNG: buf.Bytes()}
	if o.LogoPath != "" {
		merged, err := overlayLogo(out.PNG, o.LogoPath)
		if err != nil {
			log.Printf("[Render] could not load logo image: %v", err)
			out.LogoErr = err
		} else {
			out.PNG = merged
		}
	}
	return out, nil
}

// titleColor resolves the title font color, falling back to the text color.
func titleColor(o Options) drawing.Color {
	if o.TitleFont.Color != "" {
		return parseColor(o.TitleFont.Color)
	}
	return parseColor(o.TextColor)
}

type legendEntry struct {
	label string
	color drawing.Color
}

// legendElement draws a swatch-and-label list at the top-left of the plot
// area, one row per data series. Reference lines, bands and annotations are
// excluded.
func legendElement(entries []legendEntry) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		if len(entries) == 0 {
			return
		}
		st := chart.Style{FontSize: 10}.InheritFrom(defaults)
		r.SetFont(st.GetFont())
		r.SetFontSize(st.GetFontSize())

		x := cb.Left + 12
		y := cb.Top + 16
		for _, e := range entries {
			r.SetStrokeColor(e.color)
			r.SetStrokeWidth(3)
			r.MoveTo(x, y-4)
			r.LineTo(x+20, y-4)
			r.Stroke()

			r.SetFontColor(st.GetFontColor())
			r.Text(e.label, x+26, y)

			tb := r.MeasureText(e.label)
			y += tb.Height() + 8
		}
	}
}

// subtitleElement centers the subtitle near the top of the plot area, just
// below the chart title.
func subtitleElement(text string, font FontStyle) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		st := chart.Style{FontSize: font.Size, FontColor: parseColor(font.Color)}.InheritFrom(defaults)
		r.SetFont(st.GetFont())
		r.SetFontSize(st.GetFontSize())
		r.SetFontColor(st.GetFontColor())
		tb := r.MeasureText(text)
		x := cb.Left + (cb.Width()-tb.Width())/2
		y := cb.Top + tb.Height() + 4
		r.Text(text, x, y)
	}
}

// sourceNoteElement draws the source citation in the bottom-left corner of
// the plot area. Newlines split the note into stacked lines.
func sourceNoteElement(note string, color drawing.Color) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		st := chart.Style{FontSize: 10, FontColor: color}.InheritFrom(defaults)
		r.SetFont(st.GetFont())
		r.SetFontSize(st.GetFontSize())
		r.SetFontColor(st.GetFontColor())

		lines := strings.Split(note, "\n")
		lineHeight := r.MeasureText(lines[0]).Height() + 2
		y := cb.Bottom - 8 - lineHeight*(len(lines)-1)
		for _, line := range lines {
			r.Text(line, cb.Left+8, y)
			y += lineHeight
		}
	}
}
