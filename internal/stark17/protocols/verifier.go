package protocols

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tinystark/stark17/internal/stark17/core"
)

// Verifier replays the prover's transcript against a received
// StarkProof and checks every Merkle opening, the constraint equation,
// and the FRI folding consistency, without ever seeing the trace.
type Verifier struct {
	domains     *Domains
	constraints *Constraints
}

// NewVerifier wires a Verifier to the fixed domain and constraint set.
func NewVerifier() *Verifier {
	domains := NewDomains()
	return &Verifier{
		domains:     domains,
		constraints: NewConstraints(domains),
	}
}

// Verify checks proof against the fixed claim, replaying the same
// channel commit/draw sequence the prover used to rederive alpha,
// beta0, beta1, and the query index, then checking every Merkle
// opening and algebraic relation the proof makes available.
func (v *Verifier) Verify(proof *StarkProof) error {
	field := v.domains.Field
	channel := NewChannel(field)

	channel.Commit(proof.TraceLDERoot[:])
	alpha := channel.RandomElement()

	channel.Commit(proof.CompositionLDERoot[:])
	beta0 := channel.RandomElement()

	channel.Commit(proof.FRILayer1Root[:])
	beta1 := channel.RandomElement()

	channel.CommitFieldElement(proof.FRITerminal)
	idx := int(channel.RandomInteger(uint64(len(v.domains.LDE.Elements))))

	opening := proof.QueryOpening
	if err := v.verifyMerkleOpenings(proof, &opening); err != nil {
		return err
	}

	if opening.Index != idx {
		return fmt.Errorf("query index mismatch: proof carries %d, transcript demands %d", opening.Index, idx)
	}

	if err := v.verifyConstraintEquation(&opening, alpha); err != nil {
		return err
	}

	if err := v.verifyFRIFolds(proof, &opening, beta0, beta1); err != nil {
		return err
	}

	log.Debug().Int("index", idx).Msg("verifier: proof accepted")
	return nil
}

func (v *Verifier) verifyMerkleOpenings(proof *StarkProof, opening *QueryOpening) error {
	idx := opening.Index
	idxPaired := v.domains.LDE.Paired(idx)
	idxGX := (idx + 2) % len(v.domains.LDE.Elements)

	checks := []struct {
		layer string
		root  [core.DigestSize]byte
		leaf  *core.FieldElement
		proof []core.ProofNode
		index int
	}{
		{"trace", proof.TraceLDERoot, opening.TraceValue, opening.TraceProof, idx},
		{"trace", proof.TraceLDERoot, opening.TracePairedValue, opening.TracePairedProof, idxPaired},
		{"trace", proof.TraceLDERoot, opening.TraceValueAtGX, opening.TraceGXProof, idxGX},
		{"composition", proof.CompositionLDERoot, opening.CompositionValue, opening.CompositionProof, idx},
		{"composition", proof.CompositionLDERoot, opening.CompositionPairedValue, opening.CompositionPairedProof, idxPaired},
		{"fri_layer1", proof.FRILayer1Root, opening.FRILayer1Value, opening.FRILayer1Proof, opening.Index1},
		{"fri_layer1", proof.FRILayer1Root, opening.FRILayer1PairedValue, opening.FRILayer1PairedProof, v.domains.FRILayer1.Paired(opening.Index1)},
	}

	for _, chk := range checks {
		if !core.VerifyProof(chk.root, chk.leaf.Bytes(), chk.proof, chk.index) {
			return &MerkleVerificationFailedError{Layer: chk.layer, Index: chk.index}
		}
	}
	return nil
}

func (v *Verifier) verifyConstraintEquation(opening *QueryOpening, alpha *core.FieldElement) error {
	x := v.domains.LDE.Elements[opening.Index]
	expected, err := v.constraints.CompositionFromValues(x, opening.TraceValue, opening.TraceValueAtGX, alpha)
	if err != nil {
		return fmt.Errorf("evaluating composition equation: %w", err)
	}
	if !expected.Equal(opening.CompositionValue) {
		return &ConstraintEquationMismatchError{Index: opening.Index}
	}
	return nil
}

func (v *Verifier) verifyFRIFolds(proof *StarkProof, opening *QueryOpening, beta0, beta1 *core.FieldElement) error {
	field := v.domains.Field

	xLDE := v.domains.LDE.Elements[opening.Index]
	foldedToLayer1, err := VerifyFold(field, v.domains.LDE, xLDE, opening.CompositionValue, opening.CompositionPairedValue, beta0, opening.FRILayer1Value)
	if err != nil {
		return fmt.Errorf("checking fold to fri layer 1: %w", err)
	}
	if !foldedToLayer1 {
		return &FriFoldMismatchError{Layer: "fri_layer1"}
	}

	xLayer1 := v.domains.FRILayer1.Elements[opening.Index1]
	two := field.NewElementFromInt64(2)
	sumTerm, err := opening.FRILayer1Value.Add(opening.FRILayer1PairedValue).Div(two)
	if err != nil {
		return fmt.Errorf("checking fold to terminal layer: %w", err)
	}
	diff := opening.FRILayer1Value.Sub(opening.FRILayer1PairedValue)
	twoX := two.Mul(xLayer1)
	diffTerm, err := diff.Div(twoX)
	if err != nil {
		return fmt.Errorf("checking fold to terminal layer: %w", err)
	}
	foldedTerminal := sumTerm.Add(beta1.Mul(diffTerm))

	if !foldedTerminal.Equal(proof.FRITerminal) {
		return &TerminalMismatchError{}
	}
	return nil
}
