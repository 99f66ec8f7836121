package chartservice

import (
	"bytes"
	"io"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/chartsmith-labs/chartsmith/app/modules/theme"
)

const (
	chartWidth  = 1400
	chartHeight = 900
)

func paletteNames() []string { return theme.Names() }

func axisStyle() chart.Style {
	return chart.Style{
		StrokeColor: theme.Dark.Drawing(),
		StrokeWidth: 2,
		FontColor:   theme.Dark.Drawing(),
		FontSize:    12,
	}
}

func gridStyle() chart.Style {
	return chart.Style{
		StrokeColor: drawing.Color{R: 128, G: 128, B: 128, A: 64},
		StrokeWidth: 1,
	}
}

func titleStyle() chart.Style {
	return chart.Style{
		FontSize:  22,
		FontColor: theme.Dark.Drawing(),
	}
}

// baseChart is the shared scaffold for the series charts: white canvas,
// dark axes, subtle grid.
func baseChart(title string) chart.Chart {
	return chart.Chart{
		Title:      title,
		TitleStyle: titleStyle(),
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{
			FillColor: theme.White.Drawing(),
			Padding:   chart.Box{Top: 60, Left: 40, Right: 40, Bottom: 40},
		},
		Canvas: chart.Style{FillColor: theme.White.Drawing()},
		XAxis: chart.XAxis{
			Style:          axisStyle(),
			GridMajorStyle: gridStyle(),
		},
		YAxis: chart.YAxis{
			Style:          axisStyle(),
			GridMajorStyle: gridStyle(),
		},
	}
}

// renderable is satisfied by chart.Chart, chart.BarChart and
// chart.DonutChart.
type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

func renderPNG(graph renderable) ([]byte, error) {
	buf := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// xValues maps a column onto the X axis. Numeric columns are used
// directly; categorical columns become their row index with a formatter
// that renders the original labels on the ticks.
func xValues(d *Dataset, field string) ([]float64, chart.ValueFormatter) {
	if vals, err := d.Floats(field); err == nil {
		return vals, nil
	}
	labels := d.Strings(field)
	xs := make([]float64, len(labels))
	for i := range xs {
		xs[i] = float64(i)
	}
	formatter := func(v any) string {
		f, ok := v.(float64)
		if !ok {
			return ""
		}
		i := int(math.Round(f))
		if i < 0 || i >= len(labels) || math.Abs(f-float64(i)) > 0.05 {
			return ""
		}
		return labels[i]
	}
	return xs, formatter
}

// canvas wraps the go-chart raster renderer for the diagrams that are
// not series charts (radar, treemap, word cloud, network, mind map,
// fishbone, flow). Same rendering backend, direct primitives.
type canvas struct {
	r      chart.Renderer
	width  int
	height int
	font   *truetype.Font
}

func newCanvas(width, height int) (*canvas, error) {
	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}
	r.SetFont(font)
	c := &canvas{r: r, width: width, height: height, font: font}
	c.fillRect(0, 0, width, height, theme.White.Drawing(), drawing.ColorTransparent, 0)
	return c, nil
}

func (c *canvas) bytes() ([]byte, error) {
	buf := bytes.NewBuffer([]byte{})
	if err := c.r.Save(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *canvas) fillRect(x, y, w, h int, fill, stroke drawing.Color, strokeWidth float64) {
	c.r.SetFillColor(fill)
	c.r.SetStrokeColor(stroke)
	c.r.SetStrokeWidth(strokeWidth)
	c.r.MoveTo(x, y)
	c.r.LineTo(x+w, y)
	c.r.LineTo(x+w, y+h)
	c.r.LineTo(x, y+h)
	c.r.Close()
	if strokeWidth > 0 {
		c.r.FillStroke()
	} else {
		c.r.Fill()
	}
}

func (c *canvas) line(x0, y0, x1, y1 int, col drawing.Color, width float64) {
	c.r.SetStrokeColor(col)
	c.r.SetStrokeWidth(width)
	c.r.MoveTo(x0, y0)
	c.r.LineTo(x1, y1)
	c.r.Stroke()
}

func (c *canvas) polygon(pts [][2]int, fill, stroke drawing.Color, strokeWidth float64) {
	if len(pts) < 3 {
		return
	}
	c.r.SetFillColor(fill)
	c.r.SetStrokeColor(stroke)
	c.r.SetStrokeWidth(strokeWidth)
	c.r.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		c.r.LineTo(p[0], p[1])
	}
	c.r.Close()
	c.r.FillStroke()
}

func (c *canvas) circle(x, y int, radius float64, fill, stroke drawing.Color, strokeWidth float64) {
	c.r.SetFillColor(fill)
	c.r.SetStrokeColor(stroke)
	c.r.SetStrokeWidth(strokeWidth)
	c.r.Circle(radius, x, y)
	c.r.FillStroke()
}

func (c *canvas) ring(x, y int, radius float64, stroke drawing.Color, strokeWidth float64) {
	c.circle(x, y, radius, drawing.ColorTransparent, stroke, strokeWidth)
}

// text draws with the given point as the left end of the baseline.
func (c *canvas) text(s string, x, y int, col drawing.Color, size float64) {
	c.r.SetFontColor(col)
	c.r.SetFontSize(size)
	c.r.Text(s, x, y)
}

// textCentered centers the string on the given point.
func (c *canvas) textCentered(s string, x, y int, col drawing.Color, size float64) {
	c.r.SetFontColor(col)
	c.r.SetFontSize(size)
	box := c.r.MeasureText(s)
	c.r.Text(s, x-box.Width()/2, y+box.Height()/2)
}

func (c *canvas) measure(s string, size float64) chart.Box {
	c.r.SetFontSize(size)
	return c.r.MeasureText(s)
}

func (c *canvas) title(s string) {
	c.textCentered(s, c.width/2, 50, theme.Dark.Drawing(), 26)
}

// arrow draws a line capped with a filled head at the (x1,y1) end.
func (c *canvas) arrow(x0, y0, x1, y1 int, col drawing.Color, width float64) {
	c.line(x0, y0, x1, y1, col, width)
	angle := math.Atan2(float64(y1-y0), float64(x1-x0))
	head := 6.0 + 2.0*width
	left := angle + math.Pi*5/6
	right := angle - math.Pi*5/6
	c.polygon([][2]int{
		{x1, y1},
		{x1 + int(head*math.Cos(left)), y1 + int(head*math.Sin(left))},
		{x1 + int(head*math.Cos(right)), y1 + int(head*math.Sin(right))},
	}, col, col, 1)
}
