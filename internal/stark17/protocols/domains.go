// Package protocols implements the STARK transcript: domains, the
// Fiat-Shamir channel, constraint evaluation, FRI, and the prover and
// verifier that tie them together.
package protocols

import "github.com/tinystark/stark17/internal/stark17/core"

// Domain is an ordered list of field elements forming a multiplicative
// coset, together with the generator that produced it. Every domain in
// this engine is small and fixed, so it is stored as a plain slice
// rather than generated lazily.
type Domain struct {
	Elements  []*core.FieldElement
	Generator *core.FieldElement
	Offset    *core.FieldElement
}

// IndexOf returns the position of x within d, or -1 if absent.
func (d *Domain) IndexOf(x *core.FieldElement) int {
	for i, e := range d.Elements {
		if e.Equal(x) {
			return i
		}
	}
	return -1
}

// Paired returns the index of -x within d given the index of x, using
// the fact that every domain here has even size and x's antipode sits
// exactly halfway around it.
func (d *Domain) Paired(index int) int {
	return (index + len(d.Elements)/2) % len(d.Elements)
}

// Domains bundles the four fixed domains the protocol evaluates over:
// the trace domain, its low-degree-extension, and the two FRI folding
// domains, all derived from the field F17.
type Domains struct {
	Field *core.Field

	// Trace is the size-4 subgroup <13> the execution trace is defined
	// over: D_T = [1, 13, 16, 4].
	Trace *Domain

	// LDE is the size-8 coset h*<omega> the trace and composition
	// polynomials are extended onto for Merkle commitment:
	// D_LDE = [3, 10, 5, 11, 14, 7, 12, 6], omega = 9, h = 3.
	LDE *Domain

	// FRILayer1 is the size-4 domain the first FRI fold lands in,
	// obtained by squaring D_LDE: D_FRI1 = [9, 15, 8, 2].
	FRILayer1 *Domain

	// FRILayer2 is the size-2 terminal domain the second FRI fold lands
	// in: D_FRI2 = [13, 4].
	FRILayer2 *Domain
}

func elem(f *core.Field, v int64) *core.FieldElement {
	return f.NewElementFromInt64(v)
}

func elems(f *core.Field, vs ...int64) []*core.FieldElement {
	out := make([]*core.FieldElement, len(vs))
	for i, v := range vs {
		out[i] = elem(f, v)
	}
	return out
}

// NewDomains constructs the fixed set of domains this module's STARK is
// hardcoded against.
func NewDomains() *Domains {
	f := core.NewStark17Field()

	trace := &Domain{
		Elements:  elems(f, 1, 13, 16, 4),
		Generator: elem(f, 13),
		Offset:    f.One(),
	}

	lde := &Domain{
		Elements:  elems(f, 3, 10, 5, 11, 14, 7, 12, 6),
		Generator: elem(f, 9),
		Offset:    elem(f, 3),
	}

	fri1 := &Domain{
		Elements:  elems(f, 9, 15, 8, 2),
		Generator: elem(f, 13),
		Offset:    elem(f, 9),
	}

	fri2 := &Domain{
		Elements:  elems(f, 13, 4),
		Generator: elem(f, 16),
		Offset:    elem(f, 13),
	}

	return &Domains{
		Field:     f,
		Trace:     trace,
		LDE:       lde,
		FRILayer1: fri1,
		FRILayer2: fri2,
	}
}
