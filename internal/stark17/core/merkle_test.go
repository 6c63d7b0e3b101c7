package core

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leavesOf(values ...byte) [][]byte {
	out := make([][]byte, len(values))
	for i, v := range values {
		out[i] = []byte{v}
	}
	return out
}

func TestNewMerkleTreeRejectsEmpty(t *testing.T) {
	_, err := NewMerkleTree(nil)
	assert.Error(t, err)
}

func TestMerkleTreeProofVerifies(t *testing.T) {
	leaves := leavesOf(3, 9, 13, 16, 9, 15, 8, 2)
	tree, err := NewMerkleTree(leaves)
	require.NoError(t, err)

	for i, leaf := range leaves {
		proof, err := tree.Proof(i)
		require.NoError(t, err)
		assert.True(t, VerifyProof(tree.Root(), leaf, proof, i), "proof for index %d should verify", i)
	}
}

func TestMerkleTreeProofRejectsTamperedLeaf(t *testing.T) {
	leaves := leavesOf(3, 9, 13, 16)
	tree, err := NewMerkleTree(leaves)
	require.NoError(t, err)

	proof, err := tree.Proof(0)
	require.NoError(t, err)

	assert.False(t, VerifyProof(tree.Root(), []byte{99}, proof, 0))
}

func TestMerkleTreeProofOutOfRange(t *testing.T) {
	leaves := leavesOf(3, 9)
	tree, err := NewMerkleTree(leaves)
	require.NoError(t, err)

	_, err = tree.Proof(5)
	assert.Error(t, err)
	_, err = tree.Proof(-1)
	assert.Error(t, err)
}

// TestMerkleRoundTripProperty checks that every leaf, at every index, in
// a size-8 tree (the LDE domain's size) verifies against the root.
func TestMerkleRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("every leaf verifies against the tree root", gopter.ForAll(
		func(values []byte) bool {
			if len(values) == 0 {
				return true
			}
			leaves := make([][]byte, len(values))
			for i, v := range values {
				leaves[i] = []byte{v}
			}
			tree, err := NewMerkleTree(leaves)
			if err != nil {
				return false
			}
			for i, leaf := range leaves {
				proof, err := tree.Proof(i)
				if err != nil {
					return false
				}
				if !VerifyProof(tree.Root(), leaf, proof, i) {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(8, gen.UInt8Range(0, 16)),
	))

	properties.TestingRun(t)
}
