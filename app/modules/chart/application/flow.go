package chartservice

import (
	"context"
	"fmt"

	"github.com/chartsmith-labs/chartsmith/app/modules/theme"
)

func (s *Service) flowDiagram(ctx context.Context, args map[string]any) Envelope {
	steps := mapSlice(args, "steps")
	if len(steps) == 0 {
		return Fail(fmt.Errorf("steps must be a list of {id, text, next} entries"))
	}
	title := strOr(args, "title", "Flow Diagram")

	pal := theme.Lookup(theme.DefaultPalette)

	c, err := newCanvas(chartWidth, chartHeight)
	if err != nil {
		return Fail(err)
	}
	c.title(title)

	const boxWidth = 560
	top, bottom := 140, 60
	slot := (chartHeight - top - bottom) / len(steps)
	boxHeight := slot - 40
	if boxHeight > 90 {
		boxHeight = 90
	}
	if boxHeight < 24 {
		boxHeight = 24
	}

	dark := theme.Dark.Drawing()
	white := theme.White.Drawing()
	x := (chartWidth - boxWidth) / 2

	for i, step := range steps {
		text := strOr(step, "text", fmt.Sprintf("Step %d", i+1))
		y := top + i*slot
		color := pal.Gradient[i%len(pal.Gradient)]
		c.fillRect(x, y, boxWidth, boxHeight, color.Drawing(), dark, 2)
		c.textCentered(text, chartWidth/2, y+boxHeight/2, white, 15)

		if i < len(steps)-1 {
			c.arrow(chartWidth/2, y+boxHeight, chartWidth/2, y+slot-6, dark, 3)
		}
	}

	png, err := c.bytes()
	return s.finish("flow", "Flow diagram generated: "+title, png, err)
}
