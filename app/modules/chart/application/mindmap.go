package chartservice

import (
	"context"
	"fmt"
	"math"

	"github.com/chartsmith-labs/chartsmith/app/modules/theme"
)

func (s *Service) mindMap(ctx context.Context, args map[string]any) Envelope {
	topic := str(args, "topic")
	branches := strSlice(args, "branches")
	if topic == "" {
		return Fail(fmt.Errorf("topic must be a non-empty string"))
	}
	if len(branches) == 0 {
		return Fail(fmt.Errorf("branches must be a list of strings"))
	}
	title := strOr(args, "title", "Mind Map")

	pal := theme.Lookup(theme.DefaultPalette)

	c, err := newCanvas(chartWidth, chartHeight)
	if err != nil {
		return Fail(err)
	}
	c.title(title)

	cx, cy := chartWidth/2, chartHeight/2+30
	const (
		centerRadius = 110.0
		branchRadius = 80.0
		branchDist   = 320.0
	)
	dark := theme.Dark.Drawing()
	white := theme.White.Drawing()

	for i, branch := range branches {
		a := 2 * math.Pi * float64(i) / float64(len(branches))
		bx := cx + int(branchDist*math.Cos(a))
		by := cy + int(branchDist*math.Sin(a))

		fromX := cx + int(centerRadius*math.Cos(a))
		fromY := cy + int(centerRadius*math.Sin(a))
		toX := bx - int(branchRadius*math.Cos(a))
		toY := by - int(branchRadius*math.Sin(a))
		c.line(fromX, fromY, toX, toY, theme.Dark.WithAlpha(180), 3)

		color := pal.Gradient[i%len(pal.Gradient)]
		c.circle(bx, by, branchRadius, color.Drawing(), dark, 2)
		c.textCentered(branch, bx, by, white, 13)
	}

	c.circle(cx, cy, centerRadius, pal.Primary.Drawing(), pal.Accent.Drawing(), 4)
	c.textCentered(topic, cx, cy, white, 20)

	png, err := c.bytes()
	return s.finish("mindmap", "Mind map generated: "+title, png, err)
}
