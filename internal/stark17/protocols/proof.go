package protocols

import "github.com/tinystark/stark17/internal/stark17/core"

// QueryOpening is everything the verifier needs to re-check one random
// query index: the trace and composition values at that index and its
// antipode on the LDE domain, and the FRI layer-1 values and antipode
// at the folded-down index, each paired with its Merkle authentication
// path.
type QueryOpening struct {
	Index  int // index into the size-8 LDE domain
	Index1 int // index into the size-4 FRI layer-1 domain (Index mod 4)

	TraceValue       *core.FieldElement
	TraceProof       []core.ProofNode
	TracePairedValue *core.FieldElement
	TracePairedProof []core.ProofNode

	// TraceValueAtGX is P_T(g*x), the trace value one step ahead of the
	// query point on the trace-domain generator's orbit, needed to
	// check the transition constraint without symbolic division.
	TraceValueAtGX *core.FieldElement
	TraceGXProof   []core.ProofNode

	CompositionValue       *core.FieldElement
	CompositionProof       []core.ProofNode
	CompositionPairedValue *core.FieldElement
	CompositionPairedProof []core.ProofNode

	FRILayer1Value       *core.FieldElement
	FRILayer1Proof       []core.ProofNode
	FRILayer1PairedValue *core.FieldElement
	FRILayer1PairedProof []core.ProofNode
}

// StarkProof is the fixed wire shape this module's prover produces and
// its verifier consumes: three Merkle roots, the FRI terminal scalar,
// and a single query opening (the claim's tiny domain sizes make one
// query sufficient for the pedagogical soundness level this module
// targets).
type StarkProof struct {
	TraceLDERoot       [core.DigestSize]byte
	CompositionLDERoot [core.DigestSize]byte
	FRILayer1Root      [core.DigestSize]byte
	FRITerminal        *core.FieldElement
	QueryOpening       QueryOpening
}
