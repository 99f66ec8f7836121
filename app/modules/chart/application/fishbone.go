package chartservice

import (
	"context"
	"fmt"

	"github.com/chartsmith-labs/chartsmith/app/modules/theme"
)

func (s *Service) fishboneDiagram(ctx context.Context, args map[string]any) Envelope {
	problem := str(args, "problem")
	causes := strSlice(args, "causes")
	if problem == "" {
		return Fail(fmt.Errorf("problem must be a non-empty string"))
	}
	if len(causes) == 0 {
		return Fail(fmt.Errorf("causes must be a list of strings"))
	}
	title := strOr(args, "title", "Fishbone Diagram")

	// Upper bones use the primary gradient, lower bones the sunset one.
	upper := theme.Lookup("ocean").Gradient
	lower := theme.Lookup("sunset").Gradient

	c, err := newCanvas(chartWidth, chartHeight)
	if err != nil {
		return Fail(err)
	}
	c.title(title)

	spineY := chartHeight/2 + 30
	spineStart := 120
	spineEnd := chartWidth - 360
	dark := theme.Dark.Drawing()
	white := theme.White.Drawing()
	primary := theme.Lookup("ocean").Primary

	c.line(spineStart, spineY, spineEnd, spineY, primary.Drawing(), 5)
	c.polygon([][2]int{
		{spineEnd, spineY - 28},
		{spineEnd + 70, spineY},
		{spineEnd, spineY + 28},
	}, primary.Drawing(), primary.Drawing(), 2)

	// Problem box at the head.
	probBox := c.measure(problem, 18)
	bw, bh := probBox.Width()+36, probBox.Height()+24
	bx := spineEnd + 84
	c.fillRect(bx, spineY-bh/2, bw, bh, theme.Lookup("ocean").Secondary.Drawing(), dark, 2)
	c.textCentered(problem, bx+bw/2, spineY, white, 18)

	// Up to six bones, alternating above and below the spine.
	if len(causes) > 6 {
		causes = causes[:6]
	}
	spineLen := spineEnd - spineStart
	for i, cause := range causes {
		above := i%2 == 0
		rank := i / 2
		attachX := spineStart + spineLen*(rank+1)/4
		tipX := attachX - 150
		tipY := spineY - 140 - rank*80
		gradient := upper
		if !above {
			tipY = spineY + 140 + rank*80
			gradient = lower
		}
		c.line(tipX, tipY, attachX, spineY, dark, 3)

		color := gradient[rank%len(gradient)]
		box := c.measure(cause, 13)
		cw, ch := box.Width()+28, box.Height()+18
		c.fillRect(tipX-cw+14, tipY-ch/2, cw, ch, color.Drawing(), dark, 1)
		c.textCentered(cause, tipX-cw/2+14, tipY, white, 13)
	}

	png, err := c.bytes()
	return s.finish("fishbone", "Fishbone diagram generated: "+title, png, err)
}
