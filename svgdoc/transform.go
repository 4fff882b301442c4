package svgdoc

import (
	"strconv"
	"strings"
)

// Matrix is an SVG matrix(a b c d e f) transform: (x,y) maps to
// (a*x+c*y+e, b*x+d*y+f).
type Matrix struct {
	A, B, C, D, E, F float64
}

// ParseTransform parses a "matrix(a b c d e f)" transform string. It is the
// only transform method the documents this package handles ever carry.
func ParseTransform(s string) (Matrix, error) {
	s = strings.TrimSpace(s)
	open := strings.Index(s, "(")
	if !strings.HasPrefix(s, "matrix") || open < 0 || !strings.HasSuffix(s, ")") {
		return Matrix{}, &MalformedAttributeError{Name: "transform", Value: s}
	}
	args := strings.Fields(s[open+1 : len(s)-1])
	if len(args) != 6 {
		return Matrix{}, &MalformedAttributeError{Name: "transform", Value: s}
	}
	var v [6]float64
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return Matrix{}, &MalformedAttributeError{Name: "transform", Value: s}
		}
		v[i] = f
	}
	return Matrix{A: v[0], B: v[1], C: v[2], D: v[3], E: v[4], F: v[5]}, nil
}

// Apply maps a point through the transform.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Inverse maps a transformed point back to its pre-transform coordinates.
// It is not a general matrix inverse: it only covers the two cases the
// source documents' transforms ever fall into (a full 6-parameter matrix
// with no zero entries, or an axis-aligned scale+translate with b=c=0).
// Any other configuration is reported via ok=false rather than guessed at.
func (m Matrix) Inverse(x, y float64) (nx, ny float64, ok bool) {
	if m.A != 0 && m.B != 0 && m.C != 0 && m.D != 0 && m.E != 0 && m.F != 0 {
		x1 := (y - m.F - m.D/m.C*(x-m.E)) / (m.B - (m.D*m.A)/m.C)
		y1 := (x - m.E - m.A*x1) / m.C
		return x1, y1, true
	}
	if m.B == 0 && m.C == 0 {
		return (x - m.E) / m.A, (y - m.F) / m.D, true
	}
	return 0, 0, false
}
