package protocols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinystark/stark17/internal/stark17/vm"
)

func TestGenerateProofProducesAcceptingProof(t *testing.T) {
	proof, err := NewProver().GenerateProof()
	require.NoError(t, err)
	require.NotNil(t, proof)

	err = NewVerifier().Verify(proof)
	assert.NoError(t, err, "an honestly generated proof must verify")
}

// TestTraceValuesRunsTheVM confirms the prover sources its trace from
// actually executing the fixed program, not from a hardcoded literal
// parallel to it: running the VM twice and asking the prover for trace
// values must agree row for row.
func TestTraceValuesRunsTheVM(t *testing.T) {
	domains := NewDomains()

	vmTrace, err := vm.GenerateTrace()
	require.NoError(t, err)

	values, err := traceValues(domains.Field)
	require.NoError(t, err)

	require.Len(t, values, len(vmTrace))
	for i, want := range vmTrace {
		assert.True(t, values[i].Equal(domains.Field.NewElementFromInt64(want)), "row %d: got %s want %d", i, values[i], want)
	}
}

func TestGenerateProofIsDeterministic(t *testing.T) {
	first, err := NewProver().GenerateProof()
	require.NoError(t, err)
	second, err := NewProver().GenerateProof()
	require.NoError(t, err)

	assert.Equal(t, first.TraceLDERoot, second.TraceLDERoot)
	assert.Equal(t, first.CompositionLDERoot, second.CompositionLDERoot)
	assert.Equal(t, first.FRILayer1Root, second.FRILayer1Root)
	assert.True(t, first.FRITerminal.Equal(second.FRITerminal))
	assert.Equal(t, first.QueryOpening.Index, second.QueryOpening.Index)
}

// TestCommitOrderingResolvesQueryAfterTerminal documents and checks the
// fixed ordering of the transcript's five commit steps: the FRI
// terminal scalar is committed to the channel, and only afterward is
// the query index drawn, so a malicious prover cannot pick a favorable
// terminal after learning which index will be queried.
func TestCommitOrderingResolvesQueryAfterTerminal(t *testing.T) {
	proof, err := NewProver().GenerateProof()
	require.NoError(t, err)

	field := NewDomains().Field
	channel := NewChannel(field)
	channel.Commit(proof.TraceLDERoot[:])
	_ = channel.RandomElement()
	channel.Commit(proof.CompositionLDERoot[:])
	_ = channel.RandomElement()
	channel.Commit(proof.FRILayer1Root[:])
	_ = channel.RandomElement()

	counterBeforeTerminalCommit := channel.counter
	channel.CommitFieldElement(proof.FRITerminal)
	assert.Zero(t, channel.counter, "committing the terminal must reset the counter")
	assert.NotZero(t, counterBeforeTerminalCommit, "a challenge must have been drawn before the terminal commit")

	idx := channel.RandomInteger(uint64(8))
	assert.Equal(t, uint64(proof.QueryOpening.Index), idx)
}
