package protocols

import "github.com/tinystark/stark17/internal/stark17/core"

// Constraints evaluates the algebraic intermediate representation (AIR)
// of the single fixed claim this module proves: a trace T of length 4
// with T[0] = 3 and T[i+1] = T[i]^2, expressed as two low-degree
// constraints evaluated pointwise against the trace polynomial's
// low-degree extension (no symbolic polynomial division is performed).
type Constraints struct {
	domains *Domains
}

// NewConstraints binds constraint evaluation to the fixed domain set.
func NewConstraints(domains *Domains) *Constraints {
	return &Constraints{domains: domains}
}

// BoundaryConstraintAt evaluates C1(x) = (P_T(x) - 3) / (x - D_T[0]),
// enforcing that the trace starts at a0 = 3. Used by the prover, which
// holds the trace polynomial itself.
func (c *Constraints) BoundaryConstraintAt(x *core.FieldElement, traceLDE *core.Polynomial) (*core.FieldElement, error) {
	return c.BoundaryConstraintFromValue(x, traceLDE.Eval(x))
}

// BoundaryConstraintFromValue evaluates C1(x) given only the opened
// value P_T(x), as the verifier must: it never reconstructs the trace
// polynomial itself.
func (c *Constraints) BoundaryConstraintFromValue(x *core.FieldElement, traceValueAtX *core.FieldElement) (*core.FieldElement, error) {
	f := c.domains.Field
	numerator := traceValueAtX.Sub(f.NewElementFromInt64(3))
	denominator := x.Sub(c.domains.Trace.Elements[0])
	return numerator.Div(denominator)
}

// TransitionConstraintAt evaluates
// C2(x) = (P_T(g*x) - P_T(x)^2) / ((x - D_T[0])(x - D_T[1])(x - D_T[2])),
// enforcing the squaring recurrence a_{i+1} = a_i^2 across the first
// three trace steps. Used by the prover.
func (c *Constraints) TransitionConstraintAt(x *core.FieldElement, traceLDE *core.Polynomial) (*core.FieldElement, error) {
	g := c.domains.Trace.Generator
	gx := g.Mul(x)
	return c.TransitionConstraintFromValues(x, traceLDE.Eval(x), traceLDE.Eval(gx))
}

// TransitionConstraintFromValues evaluates C2(x) given only the opened
// values P_T(x) and P_T(g*x), as the verifier must.
func (c *Constraints) TransitionConstraintFromValues(x *core.FieldElement, traceValueAtX, traceValueAtGX *core.FieldElement) (*core.FieldElement, error) {
	numerator := traceValueAtGX.Sub(traceValueAtX.Square())

	denominator := x.Sub(c.domains.Trace.Elements[0])
	denominator = denominator.Mul(x.Sub(c.domains.Trace.Elements[1]))
	denominator = denominator.Mul(x.Sub(c.domains.Trace.Elements[2]))

	return numerator.Div(denominator)
}

// CompositionAt evaluates the composition polynomial
// CP(x) = C1(x) + alpha*C2(x) at a single point, the random linear
// combination the verifier checks in place of two separate constraints.
// Used by the prover.
func (c *Constraints) CompositionAt(x *core.FieldElement, traceLDE *core.Polynomial, alpha *core.FieldElement) (*core.FieldElement, error) {
	c1, err := c.BoundaryConstraintAt(x, traceLDE)
	if err != nil {
		return nil, err
	}
	c2, err := c.TransitionConstraintAt(x, traceLDE)
	if err != nil {
		return nil, err
	}
	return c1.Add(alpha.Mul(c2)), nil
}

// CompositionFromValues evaluates CP(x) given only the opened trace
// values at x and g*x, as the verifier must.
func (c *Constraints) CompositionFromValues(x *core.FieldElement, traceValueAtX, traceValueAtGX, alpha *core.FieldElement) (*core.FieldElement, error) {
	c1, err := c.BoundaryConstraintFromValue(x, traceValueAtX)
	if err != nil {
		return nil, err
	}
	c2, err := c.TransitionConstraintFromValues(x, traceValueAtX, traceValueAtGX)
	if err != nil {
		return nil, err
	}
	return c1.Add(alpha.Mul(c2)), nil
}
