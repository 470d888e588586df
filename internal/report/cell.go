package report

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// RenderCell returns the display text of a cell. A missing key renders
// empty, null renders as "null", objects and arrays the way JSON.stringify
// prints them and scalars the way JavaScript converts them to strings.
func RenderCell(v Value, ok bool) string {
	if !ok {
		return ""
	}
	raw := v.Raw()
	switch v.Kind() {
	case KindNull:
		return "null"
	case KindObject, KindArray:
		s, err := stringify(v)
		if err != nil {
			return string(raw)
		}
		return s
	case KindString:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return string(raw)
		}
		return s
	case KindNumber:
		return formatNumber(string(raw))
	}
	return string(raw)
}

// Cells renders rows into a grid of display strings in column order.
func Cells(rows []Row, cols []Column) [][]string {
	grid := make([][]string, 0, len(rows))
	for _, row := range rows {
		line := make([]string, len(cols))
		for i, c := range cols {
			line[i] = RenderCell(row.Cell(c.Key))
		}
		grid = append(grid, line)
	}
	return grid
}

// formatNumber follows JavaScript's Number to string conversion: plain
// decimal notation for magnitudes in [1e-6, 1e21), exponent form otherwise.
func formatNumber(lit string) string {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return lit
	}
	if f == 0 {
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	exp = strings.TrimLeft(exp[1:], "0")
	if exp == "" {
		exp = "0"
	}
	return mant + "e" + sign + exp
}
