package chartservice

import (
	"context"
	"fmt"
	"math"

	"github.com/chartsmith-labs/chartsmith/app/modules/theme"
)

func (s *Service) networkGraph(ctx context.Context, args map[string]any) Envelope {
	nodes := mapSlice(args, "nodes")
	edges := mapSlice(args, "edges")
	if len(nodes) == 0 {
		return Fail(fmt.Errorf("nodes must be a list of {id, label} entries"))
	}
	title := strOr(args, "title", "Network Graph")

	pal := theme.Lookup(theme.DefaultPalette)

	c, err := newCanvas(chartWidth, chartHeight)
	if err != nil {
		return Fail(err)
	}
	c.title(title)

	// Circular layout; anything fancier is the backend's business.
	cx, cy := chartWidth/2, chartHeight/2+30
	layoutRadius := 330.0
	positions := make(map[string][2]int, len(nodes))
	for i, node := range nodes {
		id := str(node, "id")
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(len(nodes))
		positions[id] = [2]int{
			cx + int(layoutRadius*math.Cos(a)),
			cy + int(layoutRadius*math.Sin(a)),
		}
	}

	edgeColor := theme.Gray.WithAlpha(150)
	for _, edge := range edges {
		from, okFrom := positions[str(edge, "source")]
		to, okTo := positions[str(edge, "target")]
		if !okFrom || !okTo {
			continue
		}
		c.line(from[0], from[1], to[0], to[1], edgeColor, 3)
	}

	const nodeRadius = 56.0
	dark := theme.Dark.Drawing()
	white := theme.White.Drawing()
	for i, node := range nodes {
		id := str(node, "id")
		label := strOr(node, "label", id)
		pos := positions[id]
		color := pal.Gradient[i%len(pal.Gradient)]
		c.circle(pos[0], pos[1], nodeRadius, color.Drawing(), dark, 2)
		c.textCentered(label, pos[0], pos[1], white, 12)
	}

	png, err := c.bytes()
	return s.finish("network", "Network graph generated: "+title, png, err)
}
