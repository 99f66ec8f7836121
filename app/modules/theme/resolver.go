package theme

// Resolution is evaluated as an ordered rule list so the precedence is
// inspectable: an explicit palette name always wins, then semantic
// keyword rules, then the chart-type default table, then "ocean".

type rule struct {
	match   func(chartType, dataContext string) bool
	palette string
}

// semanticRules bias the palette on the meaning of the data rather than
// the chart shape. Note the comparison rule matches the chart type only;
// there is deliberately no "comparison" entry in the default table.
var semanticRules = []rule{
	{func(ct, dc string) bool { return ct == "temperature" || dc == "temperature" }, "sunset"},
	{func(ct, dc string) bool { return ct == "sales" || dc == "sales" }, "ocean"},
	{func(ct, dc string) bool { return ct == "progress" || dc == "progress" }, "forest"},
	{func(ct, dc string) bool { return ct == "comparison" || ct == "dual_axes" }, "violet"},
}

// Resolve picks a palette for a chart. All arguments are optional (empty
// string means unset). Resolution is pure and total: the same inputs
// always produce the same palette and there is no error path.
func Resolve(chartType, paletteName, dataContext string) Palette {
	if paletteName != "" {
		return Lookup(paletteName)
	}
	for _, r := range semanticRules {
		if r.match(chartType, dataContext) {
			return Lookup(r.palette)
		}
	}
	return Lookup(DefaultPaletteFor(chartType))
}

// PaletteColors returns exactly count colors from the named palette's
// gradient, cycling in gradient order when count exceeds its length.
func PaletteColors(paletteName string, count int) []Color {
	gradient := Lookup(paletteName).Gradient
	if count <= 0 {
		return nil
	}
	colors := make([]Color, count)
	for i := range colors {
		colors[i] = gradient[i%len(gradient)]
	}
	return colors
}
