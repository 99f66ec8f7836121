package chartservice

import (
	"context"
	"fmt"
	"sort"

	"github.com/chartsmith-labs/chartsmith/app/modules/theme"
)

const (
	maxWords    = 120
	minFontSize = 16.0
	maxFontSize = 120.0
)

func (s *Service) wordCloudChart(ctx context.Context, args map[string]any) Envelope {
	words, _ := args["words"].([]WordCount)
	if len(words) == 0 {
		return Fail(fmt.Errorf("words must be a list of {word, freq} entries"))
	}
	title := strOr(args, "title", "Word Cloud")

	sorted := append([]WordCount(nil), words...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Freq > sorted[j].Freq })
	if len(sorted) > maxWords {
		sorted = sorted[:maxWords]
	}
	minFreq := sorted[len(sorted)-1].Freq
	maxFreq := sorted[0].Freq

	fontSize := func(freq float64) float64 {
		if maxFreq == minFreq {
			return (minFontSize + maxFontSize) / 2
		}
		return minFontSize + (maxFontSize-minFontSize)*(freq-minFreq)/(maxFreq-minFreq)
	}

	c, err := newCanvas(chartWidth, chartHeight)
	if err != nil {
		return Fail(err)
	}
	c.title(title)

	pal := theme.Lookup(theme.DefaultPalette)
	colors := []theme.Color{pal.Primary, pal.Secondary, pal.Accent, theme.Dark, theme.Gray}

	// Row packing: biggest words first, wrapping when a row fills up.
	const margin = 60
	x, y := margin, 170
	rowHeight := 0
	for i, w := range sorted {
		size := fontSize(w.Freq)
		box := c.measure(w.Word, size)
		if x+box.Width() > chartWidth-margin {
			x = margin
			y += rowHeight + 18
			rowHeight = 0
		}
		if y > chartHeight-margin {
			break
		}
		c.text(w.Word, x, y+box.Height(), colors[i%len(colors)].Drawing(), size)
		x += box.Width() + 28
		if box.Height() > rowHeight {
			rowHeight = box.Height()
		}
	}

	png, err := c.bytes()
	return s.finish("wordcloud", "Word cloud generated: "+title, png, err)
}
