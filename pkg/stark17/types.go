package stark17

import (
	"github.com/tinystark/stark17/internal/stark17/core"
	"github.com/tinystark/stark17/internal/stark17/protocols"
)

// FieldElement is an element of F17, the field the whole protocol is
// defined over.
type FieldElement = core.FieldElement

// QueryOpening is the authentication-path bundle backing the single
// query index a StarkProof opens.
type QueryOpening = protocols.QueryOpening

// StarkProof is the self-contained, non-interactive proof this
// package's GenerateProof produces and Verify checks: it attests to
// knowledge of a0, a1, a2, a3 in F17 with a0 = 3 and a_{i+1} = a_i^2,
// without revealing the trace.
type StarkProof = protocols.StarkProof
