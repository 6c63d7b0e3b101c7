package core

import "fmt"

// Polynomial is a dense coefficient-vector polynomial over a Field,
// coefficients[i] being the coefficient of x^i.
type Polynomial struct {
	coefficients []*FieldElement
	field        *Field
}

// NewPolynomial builds a Polynomial from a coefficient slice, trimming
// trailing zero coefficients (but always keeping at least one term).
func NewPolynomial(coefficients []*FieldElement, field *Field) *Polynomial {
	trimmed := trimTrailingZeros(coefficients, field)
	return &Polynomial{coefficients: trimmed, field: field}
}

func trimTrailingZeros(coefficients []*FieldElement, field *Field) []*FieldElement {
	last := len(coefficients) - 1
	for last > 0 && coefficients[last].IsZero() {
		last--
	}
	out := make([]*FieldElement, last+1)
	copy(out, coefficients[:last+1])
	if len(out) == 0 {
		out = []*FieldElement{field.Zero()}
	}
	return out
}

// Degree returns the formal degree of the polynomial.
func (p *Polynomial) Degree() int {
	if len(p.coefficients) == 1 && p.coefficients[0].IsZero() {
		return -1
	}
	return len(p.coefficients) - 1
}

// Coefficients returns a copy of the coefficient vector.
func (p *Polynomial) Coefficients() []*FieldElement {
	out := make([]*FieldElement, len(p.coefficients))
	copy(out, p.coefficients)
	return out
}

// Eval evaluates the polynomial at x using Horner's method.
func (p *Polynomial) Eval(x *FieldElement) *FieldElement {
	result := p.field.Zero()
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p.coefficients[i])
	}
	return result
}

// Add returns p + q.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	n := len(p.coefficients)
	if len(q.coefficients) > n {
		n = len(q.coefficients)
	}
	sum := make([]*FieldElement, n)
	for i := 0; i < n; i++ {
		var a, b *FieldElement
		if i < len(p.coefficients) {
			a = p.coefficients[i]
		} else {
			a = p.field.Zero()
		}
		if i < len(q.coefficients) {
			b = q.coefficients[i]
		} else {
			b = p.field.Zero()
		}
		sum[i] = a.Add(b)
	}
	return NewPolynomial(sum, p.field)
}

// MulScalar returns c*p, scaling every coefficient by c.
func (p *Polynomial) MulScalar(c *FieldElement) *Polynomial {
	scaled := make([]*FieldElement, len(p.coefficients))
	for i, coeff := range p.coefficients {
		scaled[i] = coeff.Mul(c)
	}
	return NewPolynomial(scaled, p.field)
}

// Point is an (x, y) pair used for Lagrange interpolation.
type Point struct {
	X *FieldElement
	Y *FieldElement
}

// LagrangeInterpolation returns the unique lowest-degree polynomial
// passing through every given point, via the classic Lagrange basis
// construction. Fails if any two points share the same x-coordinate.
func LagrangeInterpolation(points []Point, field *Field) (*Polynomial, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("cannot interpolate zero points")
	}
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if points[i].X.Equal(points[j].X) {
				return nil, &DuplicateInterpolationPointError{X: points[i].X}
			}
		}
	}

	result := NewPolynomial([]*FieldElement{field.Zero()}, field)
	for i, pi := range points {
		// Build the i-th Lagrange basis polynomial:
		// L_i(x) = prod_{j != i} (x - x_j) / (x_i - x_j)
		basis := NewPolynomial([]*FieldElement{field.One()}, field)
		denom := field.One()
		for j, pj := range points {
			if i == j {
				continue
			}
			// multiply basis by (x - x_j)
			term := NewPolynomial([]*FieldElement{pj.X.Neg(), field.One()}, field)
			basis = polyMul(basis, term, field)
			denom = denom.Mul(pi.X.Sub(pj.X))
		}
		invDenom, err := denom.Inv()
		if err != nil {
			return nil, fmt.Errorf("interpolation failed: %w", err)
		}
		scaled := basis.MulScalar(pi.Y.Mul(invDenom))
		result = result.Add(scaled)
	}
	return result, nil
}

// polyMul is an unexported helper restricted to the small, low-degree
// products interpolation needs; general polynomial multiplication is not
// part of this package's public surface.
func polyMul(a, b *Polynomial, field *Field) *Polynomial {
	out := make([]*FieldElement, len(a.coefficients)+len(b.coefficients)-1)
	for i := range out {
		out[i] = field.Zero()
	}
	for i, ac := range a.coefficients {
		for j, bc := range b.coefficients {
			out[i+j] = out[i+j].Add(ac.Mul(bc))
		}
	}
	return NewPolynomial(out, field)
}
