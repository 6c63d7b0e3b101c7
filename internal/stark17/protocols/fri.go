package protocols

import "github.com/tinystark/stark17/internal/stark17/core"

// FRILayer is one step of the folded low-degree test: the evaluation
// vector over its domain, plus the Merkle tree committing to it. The
// terminal layer carries no tree, since its single folded value is sent
// to the verifier directly instead of being queried.
type FRILayer struct {
	Domain *Domain
	Values []*core.FieldElement
	Tree   *core.MerkleTree // nil for the terminal layer
}

// FRI runs the two hardcoded folding rounds this module's protocol is
// built from: composition LDE (layer 0, implicit in the caller) folds
// once into FRILayer1 (size 4, committed) and again into FRILayer2
// (size 2, terminal, uncommitted).
type FRI struct {
	domains *Domains
}

// NewFRI binds folding to the fixed domain set.
func NewFRI(domains *Domains) *FRI {
	return &FRI{domains: domains}
}

// fold applies one step of the FRI folding formula
// P_{k+1}(x^2) = (P_k(x)+P_k(-x))/2 + beta*(P_k(x)-P_k(-x))/(2x)
// to an evaluation vector over srcDomain, producing the evaluation
// vector over the half-sized destination domain.
func fold(field *core.Field, srcDomain *Domain, values []*core.FieldElement, beta *core.FieldElement) ([]*core.FieldElement, error) {
	half := len(values) / 2
	two := field.NewElementFromInt64(2)
	out := make([]*core.FieldElement, half)
	for i := 0; i < half; i++ {
		x := srcDomain.Elements[i]
		fx := values[i]
		fNegX := values[srcDomain.Paired(i)]

		sumTerm, err := fx.Add(fNegX).Div(two)
		if err != nil {
			return nil, err
		}

		diff := fx.Sub(fNegX)
		twoX := two.Mul(x)
		diffTerm, err := diff.Div(twoX)
		if err != nil {
			return nil, err
		}

		out[i] = sumTerm.Add(beta.Mul(diffTerm))
	}
	return out, nil
}

// FoldToLayer1 folds the composition LDE's evaluation vector (over
// f.domains.LDE) into FRILayer1's evaluation vector (over
// f.domains.FRILayer1), then commits it with a Merkle tree.
func (fri *FRI) FoldToLayer1(compositionValues []*core.FieldElement, beta *core.FieldElement) (*FRILayer, error) {
	values, err := fold(fri.domains.Field, fri.domains.LDE, compositionValues, beta)
	if err != nil {
		return nil, err
	}
	leaves := make([][]byte, len(values))
	for i, v := range values {
		leaves[i] = v.Bytes()
	}
	tree, err := core.NewMerkleTree(leaves)
	if err != nil {
		return nil, err
	}
	return &FRILayer{Domain: fri.domains.FRILayer1, Values: values, Tree: tree}, nil
}

// FoldToLayer2 folds FRILayer1's evaluation vector into the terminal
// layer's two values. Since the terminal layer is never queried by
// index, it carries no Merkle tree: its single distinct scalar (both
// entries of a degree-0 polynomial's evaluation are equal) is sent to
// the channel directly.
func (fri *FRI) FoldToLayer2(layer1Values []*core.FieldElement, beta *core.FieldElement) (*FRILayer, error) {
	values, err := fold(fri.domains.Field, fri.domains.FRILayer1, layer1Values, beta)
	if err != nil {
		return nil, err
	}
	return &FRILayer{Domain: fri.domains.FRILayer2, Values: values, Tree: nil}, nil
}

// Terminal returns the single scalar the terminal layer reduces to. A
// well-formed terminal layer is a degree-0 polynomial, so both of its
// evaluations must agree; Prover.GenerateProof fails if they do not.
func (layer *FRILayer) Terminal() *core.FieldElement {
	return layer.Values[0]
}

// VerifyFold checks that a single opened pair (value at x, value at -x)
// from srcDomain folds, under beta, to the claimed value at the
// corresponding index of the destination layer.
func VerifyFold(field *core.Field, srcDomain *Domain, x *core.FieldElement, valueAtX, valueAtNegX *core.FieldElement, beta *core.FieldElement, claimedFolded *core.FieldElement) (bool, error) {
	two := field.NewElementFromInt64(2)
	sumTerm, err := valueAtX.Add(valueAtNegX).Div(two)
	if err != nil {
		return false, err
	}
	diff := valueAtX.Sub(valueAtNegX)
	twoX := two.Mul(x)
	diffTerm, err := diff.Div(twoX)
	if err != nil {
		return false, err
	}
	folded := sumTerm.Add(beta.Mul(diffTerm))
	return folded.Equal(claimedFolded), nil
}
