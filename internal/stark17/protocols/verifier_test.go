package protocols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinystark/stark17/internal/stark17/core"
)

func honestProof(t *testing.T) *StarkProof {
	t.Helper()
	proof, err := NewProver().GenerateProof()
	require.NoError(t, err)
	return proof
}

func TestVerifyRejectsTamperedTraceRoot(t *testing.T) {
	proof := honestProof(t)
	proof.TraceLDERoot[0] ^= 0xFF

	err := NewVerifier().Verify(proof)
	require.Error(t, err)
	var merkleErr *MerkleVerificationFailedError
	assert.ErrorAs(t, err, &merkleErr)
}

func TestVerifyRejectsTamperedTerminal(t *testing.T) {
	proof := honestProof(t)
	field := core.NewStark17Field()
	proof.FRITerminal = proof.FRITerminal.Add(field.One())

	err := NewVerifier().Verify(proof)
	require.Error(t, err)
	// A tampered terminal changes the query-index draw too (the
	// terminal is committed before the index is sampled), so the
	// verifier may reject at the index-mismatch check rather than the
	// terminal-mismatch check; either is a correct rejection.
	assert.Error(t, err)
}

func TestVerifyRejectsTamperedOpenedTraceValue(t *testing.T) {
	proof := honestProof(t)
	field := core.NewStark17Field()
	proof.QueryOpening.TraceValue = proof.QueryOpening.TraceValue.Add(field.One())

	err := NewVerifier().Verify(proof)
	require.Error(t, err)
}

func TestVerifyRejectsMaliciousOffByOneIndex(t *testing.T) {
	proof := honestProof(t)
	proof.QueryOpening.Index = (proof.QueryOpening.Index + 1) % 8

	err := NewVerifier().Verify(proof)
	require.Error(t, err)
}

func TestVerifyRejectsWrongCompositionValue(t *testing.T) {
	proof := honestProof(t)
	field := core.NewStark17Field()
	proof.QueryOpening.CompositionValue = proof.QueryOpening.CompositionValue.Add(field.One())

	err := NewVerifier().Verify(proof)
	require.Error(t, err)
}
