package plot

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/plotforge/plotforge/pkg/errors"
)

// qualitative is the fixed palette used for categorical series. Colors are
// assigned to categories in first-seen order and wrap around when the
// category count exceeds the palette size.
var qualitative = []drawing.Color{
	{R: 228, G: 26, B: 28, A: 255},   // red
	{R: 55, G: 126, B: 184, A: 255},  // blue
	{R: 77, G: 175, B: 74, A: 255},   // green
	{R: 152, G: 78, B: 163, A: 255},  // purple
	{R: 255, G: 127, B: 0, A: 255},   // orange
	{R: 180, G: 160, B: 40, A: 255},  // olive
	{R: 166, G: 86, B: 40, A: 255},   // brown
	{R: 247, G: 129, B: 191, A: 255}, // pink
	{R: 120, G: 120, B: 120, A: 255}, // gray
}

// CategoryColor returns the palette color for the i-th distinct category.
func CategoryColor(i int) drawing.Color {
	return qualitative[i%len(qualitative)]
}

// DistinctCategories de-duplicates a category sequence preserving first-seen
// order, so color-to-category assignment is stable across calls.
func DistinctCategories(categories []string) []string {
	seen := make(map[string]bool, len(categories))
	var out []string
	for _, c := range categories {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// namedColors maps color tokens to concrete colors.
var namedColors = map[string]drawing.Color{
	"blue":    {R: 31, G: 119, B: 180, A: 255},
	"red":     {R: 214, G: 39, B: 40, A: 255},
	"green":   {R: 44, G: 160, B: 44, A: 255},
	"orange":  {R: 255, G: 127, B: 14, A: 255},
	"purple":  {R: 148, G: 103, B: 189, A: 255},
	"brown":   {R: 140, G: 86, B: 75, A: 255},
	"pink":    {R: 227, G: 119, B: 194, A: 255},
	"gray":    {R: 127, G: 127, B: 127, A: 255},
	"grey":    {R: 127, G: 127, B: 127, A: 255},
	"olive":   {R: 188, G: 189, B: 34, A: 255},
	"cyan":    {R: 23, G: 190, B: 207, A: 255},
	"magenta": {R: 227, G: 0, B: 227, A: 255},
	"yellow":  {R: 230, G: 200, B: 0, A: 255},
	"black":   {R: 0, G: 0, B: 0, A: 255},
	"white":   {R: 255, G: 255, B: 255, A: 255},
}

// ColorByName resolves a color token: either a known color name or a hex
// string like "#1f77b4".
func ColorByName(name string) (drawing.Color, error) {
	token := strings.ToLower(strings.TrimSpace(name))
	if c, ok := namedColors[token]; ok {
		return c, nil
	}
	if hex, found := strings.CutPrefix(token, "#"); found && (len(hex) == 6 || len(hex) == 3) {
		return drawing.ColorFromHex(hex), nil
	}
	return drawing.Color{}, errors.New(errors.ErrCodeInvalidInput, "unknown color %q", name)
}
