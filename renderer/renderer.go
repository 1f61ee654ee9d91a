// Package renderer builds the markdown views of the tracker: transaction
// lists, holdings, portfolio summaries, market tables and coin details.
// The cmd package renders these to the terminal; keeping them as plain
// markdown strings keeps every view trivially testable.
package renderer

import (
	"fmt"
	"math"
	"strings"
)

// formatPrice formats a USD price with enough digits for small-cap coins,
// which routinely trade below a cent.
func formatPrice(v float64) string {
	switch {
	case v == 0:
		return "$0.00"
	case math.Abs(v) < 0.01:
		return fmt.Sprintf("$%.6f", v)
	case math.Abs(v) < 1:
		return fmt.Sprintf("$%.4f", v)
	default:
		return fmt.Sprintf("$%.2f", v)
	}
}

// formatCompact formats a large USD amount in compact notation ($1.23B).
func formatCompact(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e12:
		return fmt.Sprintf("$%.2fT", v/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("$%.2fB", v/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("$%.2fM", v/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("$%.2fK", v/1e3)
	default:
		return fmt.Sprintf("$%.2f", v)
	}
}

// formatChange formats a percentage change with its sign, with "-" for
// a missing (zero) value.
func formatChange(v float64) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%+.2f%%", v)
}

var sparkGlyphs = []rune("▁▂▃▄▅▆▇█")

// sparkline condenses a price series into a fixed-width row of block
// glyphs, the terminal cousin of the tracked mini chart.
func sparkline(prices []float64, width int) string {
	if len(prices) == 0 || width <= 0 {
		return ""
	}
	// downsample by picking one point per output column.
	points := make([]float64, 0, width)
	for i := 0; i < width; i++ {
		points = append(points, prices[i*len(prices)/width])
	}

	min, max := points[0], points[0]
	for _, p := range points {
		min = math.Min(min, p)
		max = math.Max(max, p)
	}

	var b strings.Builder
	for _, p := range points {
		i := 0
		if max > min {
			i = int((p - min) / (max - min) * float64(len(sparkGlyphs)-1))
		}
		b.WriteRune(sparkGlyphs[i])
	}
	return b.String()
}
