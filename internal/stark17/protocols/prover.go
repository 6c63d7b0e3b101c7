package protocols

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tinystark/stark17/internal/stark17/core"
	"github.com/tinystark/stark17/internal/stark17/vm"
)

// Prover generates StarkProof values for the fixed claim's trace.
type Prover struct {
	domains     *Domains
	constraints *Constraints
	fri         *FRI
}

// NewProver wires a Prover to the fixed domain and constraint set.
func NewProver() *Prover {
	domains := NewDomains()
	return &Prover{
		domains:     domains,
		constraints: NewConstraints(domains),
		fri:         NewFRI(domains),
	}
}

// traceValues runs the module's fixed program (PUSH 3; DUP; MUL, three
// times) through the VM and lifts its recorded trace into F17.
func traceValues(field *core.Field) ([]*core.FieldElement, error) {
	trace, err := vm.GenerateTrace()
	if err != nil {
		return nil, fmt.Errorf("executing fixed program: %w", err)
	}
	out := make([]*core.FieldElement, len(trace))
	for i, v := range trace {
		out[i] = field.NewElementFromInt64(v)
	}
	return out, nil
}

func elementsToLeaves(values []*core.FieldElement) [][]byte {
	leaves := make([][]byte, len(values))
	for i, v := range values {
		leaves[i] = v.Bytes()
	}
	return leaves
}

// GenerateProof runs the five committed steps of the protocol in order,
// each step's boundary being a channel.Commit call, and returns the
// resulting StarkProof.
func (p *Prover) GenerateProof() (*StarkProof, error) {
	field := p.domains.Field
	channel := NewChannel(field)

	// Step 1: run the fixed program to obtain the trace, interpolate
	// the trace polynomial, extend it onto the LDE domain, and commit
	// to it.
	trace, err := traceValues(field)
	if err != nil {
		return nil, err
	}
	points := make([]core.Point, len(trace))
	for i, v := range trace {
		points[i] = core.Point{X: p.domains.Trace.Elements[i], Y: v}
	}
	traceLDEPoly, err := core.LagrangeInterpolation(points, field)
	if err != nil {
		return nil, fmt.Errorf("interpolating trace polynomial: %w", err)
	}

	traceLDEValues := make([]*core.FieldElement, len(p.domains.LDE.Elements))
	for i, x := range p.domains.LDE.Elements {
		traceLDEValues[i] = traceLDEPoly.Eval(x)
	}
	traceTree, err := core.NewMerkleTree(elementsToLeaves(traceLDEValues))
	if err != nil {
		return nil, fmt.Errorf("committing trace LDE: %w", err)
	}
	traceRoot := traceTree.Root()
	channel.Commit(traceRoot[:])
	log.Debug().Msg("prover: step 1 trace LDE committed")

	// Step 2: draw alpha, build the composition LDE, and commit to it.
	alpha := channel.RandomElement()
	compositionValues := make([]*core.FieldElement, len(p.domains.LDE.Elements))
	for i, x := range p.domains.LDE.Elements {
		cpx, err := p.constraints.CompositionAt(x, traceLDEPoly, alpha)
		if err != nil {
			return nil, fmt.Errorf("evaluating composition polynomial: %w", err)
		}
		compositionValues[i] = cpx
	}
	compositionTree, err := core.NewMerkleTree(elementsToLeaves(compositionValues))
	if err != nil {
		return nil, fmt.Errorf("committing composition LDE: %w", err)
	}
	compositionRoot := compositionTree.Root()
	channel.Commit(compositionRoot[:])
	log.Debug().Msg("prover: step 2 composition LDE committed")

	// Step 3: draw beta0, fold to FRI layer 1, and commit to it.
	beta0 := channel.RandomElement()
	layer1, err := p.fri.FoldToLayer1(compositionValues, beta0)
	if err != nil {
		return nil, fmt.Errorf("folding to FRI layer 1: %w", err)
	}
	layer1Root := layer1.Tree.Root()
	channel.Commit(layer1Root[:])
	log.Debug().Msg("prover: step 3 FRI layer 1 committed")

	// Step 4: draw beta1, fold to the FRI terminal layer, and commit
	// its scalar value.
	beta1 := channel.RandomElement()
	layer2, err := p.fri.FoldToLayer2(layer1.Values, beta1)
	if err != nil {
		return nil, fmt.Errorf("folding to FRI terminal layer: %w", err)
	}
	if !layer2.Values[0].Equal(layer2.Values[1]) {
		return nil, fmt.Errorf("terminal layer is not constant: %s != %s", layer2.Values[0], layer2.Values[1])
	}
	terminal := layer2.Terminal()
	channel.CommitFieldElement(terminal)
	log.Debug().Str("terminal", terminal.String()).Msg("prover: step 4 FRI terminal committed")

	// Step 5: draw the query index and assemble the opening.
	idx := int(channel.RandomInteger(uint64(len(p.domains.LDE.Elements))))
	idxPaired := p.domains.LDE.Paired(idx)
	// g = omega^2 on the LDE domain's index space, so multiplying by g
	// advances the index by 2 positions (mod the domain size).
	idxGX := (idx + 2) % len(p.domains.LDE.Elements)
	idx1 := idx % len(p.domains.FRILayer1.Elements)
	idx1Paired := p.domains.FRILayer1.Paired(idx1)
	log.Debug().Int("index", idx).Msg("prover: step 5 query index drawn")

	opening, err := p.assembleOpening(idx, idxPaired, idxGX, idx1, idx1Paired, traceLDEValues, traceTree, compositionValues, compositionTree, layer1)
	if err != nil {
		return nil, fmt.Errorf("assembling query opening: %w", err)
	}

	return &StarkProof{
		TraceLDERoot:       traceTree.Root(),
		CompositionLDERoot: compositionTree.Root(),
		FRILayer1Root:      layer1.Tree.Root(),
		FRITerminal:        terminal,
		QueryOpening:       *opening,
	}, nil
}

func (p *Prover) assembleOpening(idx, idxPaired, idxGX, idx1, idx1Paired int, traceLDEValues []*core.FieldElement, traceTree *core.MerkleTree, compositionValues []*core.FieldElement, compositionTree *core.MerkleTree, layer1 *FRILayer) (*QueryOpening, error) {
	traceProof, err := traceTree.Proof(idx)
	if err != nil {
		return nil, err
	}
	tracePairedProof, err := traceTree.Proof(idxPaired)
	if err != nil {
		return nil, err
	}
	traceGXProof, err := traceTree.Proof(idxGX)
	if err != nil {
		return nil, err
	}
	compositionProof, err := compositionTree.Proof(idx)
	if err != nil {
		return nil, err
	}
	compositionPairedProof, err := compositionTree.Proof(idxPaired)
	if err != nil {
		return nil, err
	}
	layer1Proof, err := layer1.Tree.Proof(idx1)
	if err != nil {
		return nil, err
	}
	layer1PairedProof, err := layer1.Tree.Proof(idx1Paired)
	if err != nil {
		return nil, err
	}

	return &QueryOpening{
		Index:  idx,
		Index1: idx1,

		TraceValue:       traceLDEValues[idx],
		TraceProof:       traceProof,
		TracePairedValue: traceLDEValues[idxPaired],
		TracePairedProof: tracePairedProof,
		TraceValueAtGX:   traceLDEValues[idxGX],
		TraceGXProof:     traceGXProof,

		CompositionValue:       compositionValues[idx],
		CompositionProof:       compositionProof,
		CompositionPairedValue: compositionValues[idxPaired],
		CompositionPairedProof: compositionPairedProof,

		FRILayer1Value:       layer1.Values[idx1],
		FRILayer1Proof:       layer1Proof,
		FRILayer1PairedValue: layer1.Values[idx1Paired],
		FRILayer1PairedProof: layer1PairedProof,
	}, nil
}
