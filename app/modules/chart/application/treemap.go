package chartservice

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/chartsmith-labs/chartsmith/app/modules/theme"
)

type tile struct {
	label string
	value float64
}

func (s *Service) treemapChart(ctx context.Context, args map[string]any) Envelope {
	data := dataset(args)
	if data == nil {
		return Fail(fmt.Errorf("data must be a list of records"))
	}
	pathField := str(args, "path_field")
	valueField := str(args, "value_field")
	title := strOr(args, "title", "Treemap")

	pal := theme.Resolve("treemap", str(args, "palette"), str(args, "data_context"))

	values, err := data.Floats(valueField)
	if err != nil {
		return Fail(err)
	}
	labels := data.Strings(pathField)

	tiles := make([]tile, 0, len(labels))
	for i := range labels {
		if values[i] > 0 {
			tiles = append(tiles, tile{label: labels[i], value: values[i]})
		}
	}
	if len(tiles) == 0 {
		return Fail(fmt.Errorf("field '%s' has no positive values to plot", valueField))
	}
	sort.Slice(tiles, func(i, j int) bool { return tiles[i].value > tiles[j].value })

	c, err := newCanvas(chartWidth, chartHeight)
	if err != nil {
		return Fail(err)
	}
	c.title(title)

	dark := theme.Dark.Drawing()
	white := theme.White.Drawing()
	i := 0
	place := func(t tile, x, y, w, h float64) {
		color := pal.Gradient[i%len(pal.Gradient)]
		i++
		c.fillRect(int(x), int(y), int(w), int(h), color.Drawing(), white, 3)
		if w > 90 && h > 50 {
			cx, cy := int(x+w/2), int(y+h/2)
			c.textCentered(t.label, cx, cy-10, dark, 14)
			c.textCentered(strconv.FormatFloat(t.value, 'f', -1, 64), cx, cy+14, dark, 12)
		}
	}
	sliceAndDice(tiles, 50, 100, chartWidth-100, chartHeight-160, true, place)

	png, err := c.bytes()
	return s.finish("treemap", "Treemap generated: "+title, png, err)
}

// sliceAndDice lays tiles out by splitting the remaining rectangle along
// alternating orientations, each tile taking its proportional share.
func sliceAndDice(tiles []tile, x, y, w, h float64, horizontal bool, place func(t tile, x, y, w, h float64)) {
	if len(tiles) == 0 || w <= 0 || h <= 0 {
		return
	}
	total := 0.0
	for _, t := range tiles {
		total += t.value
	}
	if total <= 0 {
		return
	}
	head := tiles[0]
	frac := head.value / total
	if horizontal {
		hw := w * frac
		place(head, x, y, hw, h)
		sliceAndDice(tiles[1:], x+hw, y, w-hw, h, false, place)
	} else {
		hh := h * frac
		place(head, x, y, w, hh)
		sliceAndDice(tiles[1:], x, y+hh, w, h-hh, true, place)
	}
}
