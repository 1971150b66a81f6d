package css

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/domsnap/dom/style"
)

// ErrNot2D is returned for transform functions which do not denote a 2D
// affine transformation (3D functions, perspective, percentages).
var ErrNot2D = errors.New("not a 2D transform")

// Matrix is a 2D affine transformation in CSS notation
//
//     | A C E |
//     | B D F |
//     | 0 0 1 |
//
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// IsIdentity checks for the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// Multiply returns m × n, i.e. n is applied first.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Translate post-multiplies a translation by (tx, ty).
func (m Matrix) Translate(tx, ty float64) Matrix {
	return m.Multiply(Matrix{A: 1, D: 1, E: tx, F: ty})
}

// Apply transforms a point.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// String serializes a matrix as a CSS matrix() function.
func (m Matrix) String() string {
	return fmt.Sprintf("matrix(%s, %s, %s, %s, %s, %s)",
		FormatNumber(m.A), FormatNumber(m.B), FormatNumber(m.C),
		FormatNumber(m.D), FormatNumber(m.E), FormatNumber(m.F))
}

// ParseTransform parses the value of a CSS transform property into a 2D
// matrix. An empty value and "none" yield the identity.
func ParseTransform(p style.Property) (Matrix, error) {
	s := strings.TrimSpace(p.String())
	m := Identity()
	if s == "" || strings.EqualFold(s, "none") {
		return m, nil
	}
	for s != "" {
		open := strings.IndexByte(s, '(')
		end := strings.IndexByte(s, ')')
		if open <= 0 || end < open {
			return Identity(), fmt.Errorf("malformed transform %q", p)
		}
		name := strings.ToLower(strings.TrimSpace(s[:open]))
		args := splitArgs(s[open+1 : end])
		f, err := transformFunction(name, args)
		if err != nil {
			return Identity(), err
		}
		m = m.Multiply(f)
		s = strings.TrimSpace(s[end+1:])
	}
	return m, nil
}

func splitArgs(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func transformFunction(name string, args []string) (Matrix, error) {
	arity := func(min, max int) error {
		if len(args) < min || len(args) > max {
			return fmt.Errorf("transform function %s takes %d..%d arguments, has %d",
				name, min, max, len(args))
		}
		return nil
	}
	switch name {
	case "matrix":
		if err := arity(6, 6); err != nil {
			return Identity(), err
		}
		var v [6]float64
		for i, a := range args {
			x, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return Identity(), fmt.Errorf("matrix argument %q: %w", a, err)
			}
			v[i] = x
		}
		return Matrix{v[0], v[1], v[2], v[3], v[4], v[5]}, nil
	case "translate", "translatex", "translatey":
		if err := arity(1, 2); err != nil {
			return Identity(), err
		}
		xy, err := lengths(args)
		if err != nil {
			return Identity(), err
		}
		switch {
		case name == "translatex":
			return Matrix{A: 1, D: 1, E: xy[0]}, nil
		case name == "translatey":
			return Matrix{A: 1, D: 1, F: xy[0]}, nil
		case len(xy) == 2:
			return Matrix{A: 1, D: 1, E: xy[0], F: xy[1]}, nil
		}
		return Matrix{A: 1, D: 1, E: xy[0]}, nil
	case "scale", "scalex", "scaley":
		if err := arity(1, 2); err != nil {
			return Identity(), err
		}
		s, err := numbers(args)
		if err != nil {
			return Identity(), err
		}
		switch {
		case name == "scalex":
			return Matrix{A: s[0], D: 1}, nil
		case name == "scaley":
			return Matrix{A: 1, D: s[0]}, nil
		case len(s) == 2:
			return Matrix{A: s[0], D: s[1]}, nil
		}
		return Matrix{A: s[0], D: s[0]}, nil
	case "rotate":
		if err := arity(1, 1); err != nil {
			return Identity(), err
		}
		a, err := angle(args[0])
		if err != nil {
			return Identity(), err
		}
		sin, cos := math.Sincos(a)
		return Matrix{A: cos, B: sin, C: -sin, D: cos}, nil
	case "skew", "skewx", "skewy":
		if err := arity(1, 2); err != nil {
			return Identity(), err
		}
		ax, err := angle(args[0])
		if err != nil {
			return Identity(), err
		}
		ay := 0.0
		if len(args) == 2 {
			if ay, err = angle(args[1]); err != nil {
				return Identity(), err
			}
		}
		switch name {
		case "skewx":
			return Matrix{A: 1, C: math.Tan(ax), D: 1}, nil
		case "skewy":
			return Matrix{A: 1, B: math.Tan(ax), D: 1}, nil
		}
		return Matrix{A: 1, B: math.Tan(ay), C: math.Tan(ax), D: 1}, nil
	}
	return Identity(), fmt.Errorf("transform function %s: %w", name, ErrNot2D)
}

func lengths(args []string) ([]float64, error) {
	r := make([]float64, len(args))
	for i, a := range args {
		a = strings.ToLower(a)
		if strings.HasSuffix(a, "%") {
			return nil, fmt.Errorf("percentage translation %s: %w", a, ErrNot2D)
		}
		x, err := strconv.ParseFloat(strings.TrimSuffix(a, "px"), 64)
		if err != nil {
			return nil, fmt.Errorf("length %q: %w", a, err)
		}
		r[i] = x
	}
	return r, nil
}

func numbers(args []string) ([]float64, error) {
	r := make([]float64, len(args))
	for i, a := range args {
		x, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("number %q: %w", a, err)
		}
		r[i] = x
	}
	return r, nil
}

func angle(a string) (float64, error) {
	a = strings.ToLower(a)
	units := []struct {
		suffix string
		factor float64
	}{
		{"grad", math.Pi / 200},
		{"turn", 2 * math.Pi},
		{"deg", math.Pi / 180},
		{"rad", 1},
	}
	for _, u := range units {
		if strings.HasSuffix(a, u.suffix) {
			x, err := strconv.ParseFloat(strings.TrimSuffix(a, u.suffix), 64)
			if err != nil {
				return 0, fmt.Errorf("angle %q: %w", a, err)
			}
			return x * u.factor, nil
		}
	}
	x, err := strconv.ParseFloat(a, 64)
	if err != nil || x != 0 {
		return 0, fmt.Errorf("angle %q needs a unit", a)
	}
	return 0, nil
}
