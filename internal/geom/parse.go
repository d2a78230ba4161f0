package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseXY reads plain coordinate pairs into a polyline, one pair per line,
// separated by whitespace or a comma ("312.5 4100.0" or "312.5,4100.0").
// Blank lines and lines starting with '#' are skipped. A line that does
// not parse as two numbers is an error, not a skip.
func ParseXY(s string) (Line, error) {
	var out Line
	for ln, raw := range strings.Split(s, "\n") {
		t := strings.TrimSpace(raw)
		if t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		t = strings.ReplaceAll(t, ",", " ")
		parts := strings.Fields(t)
		if len(parts) != 2 {
			return nil, fmt.Errorf("parse line %d: %q is not an x y pair: %w", ln+1, raw, ErrInvalidInput)
		}
		x, err1 := strconv.ParseFloat(parts[0], 64)
		y, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("parse line %d: %q is not an x y pair: %w", ln+1, raw, ErrInvalidInput)
		}
		out = append(out, [2]float64{x, y})
	}
	if len(out) < 2 {
		return nil, fmt.Errorf("parse: %d coordinate pairs, need at least 2: %w", len(out), ErrInvalidInput)
	}
	return out, nil
}
