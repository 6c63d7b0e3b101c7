package protocols

import (
	"encoding/binary"

	"github.com/rs/zerolog/log"

	"github.com/tinystark/stark17/internal/stark17/core"
)

// channelSalt seeds the transcript: a new channel's digest is the hash
// of this single byte, so an empty transcript never starts from an
// all-zero digest.
const channelSalt = byte(42)

// Channel is the Fiat-Shamir transcript the prover and verifier both
// replay deterministically: a running 32-byte digest plus a draw
// counter. Commit folds new data into the digest and resets the
// counter; every random draw hashes digest || counter (little-endian)
// and advances the counter, so two channels fed identical commits
// always produce identical challenges.
type Channel struct {
	digest  [core.DigestSize]byte
	counter uint64
	field   *core.Field
}

// NewChannel returns a freshly salted Channel over the given field.
func NewChannel(field *core.Field) *Channel {
	return &Channel{
		digest:  core.HashConcat([]byte{channelSalt}),
		counter: 0,
		field:   field,
	}
}

// Commit folds data into the transcript digest and resets the draw
// counter to zero, per the prover/verifier step boundaries of §4.8/4.9.
func (c *Channel) Commit(data []byte) {
	c.digest = core.HashConcat(c.digest[:], data)
	c.counter = 0
	log.Debug().Hex("digest", c.digest[:]).Msg("channel: commit")
}

// CommitFieldElement commits a single field element's canonical byte
// encoding.
func (c *Channel) CommitFieldElement(fe *core.FieldElement) {
	c.Commit(fe.Bytes())
}

func (c *Channel) draw() *core.FieldElement {
	var counterBytes [8]byte
	binary.LittleEndian.PutUint64(counterBytes[:], c.counter)
	digest := core.HashConcat(c.digest[:], counterBytes[:])
	c.counter++
	value := digest[0] % core.Stark17Modulus
	return c.field.NewElementFromUint64(uint64(value))
}

// RandomElement draws a uniformly pseudo-random nonzero element of the
// field, rejecting and redrawing on a zero outcome, so the alpha and
// beta challenges never cancel a term they multiply.
func (c *Channel) RandomElement() *core.FieldElement {
	for {
		candidate := c.draw()
		if !candidate.IsZero() {
			log.Debug().Str("value", candidate.String()).Msg("channel: random element")
			return candidate
		}
	}
}

// RandomInteger draws a pseudo-random integer in [0, bound) with no
// rejection sampling, used to pick the query index where any value
// (including zero) is a valid outcome.
func (c *Channel) RandomInteger(bound uint64) uint64 {
	var counterBytes [8]byte
	binary.LittleEndian.PutUint64(counterBytes[:], c.counter)
	digest := core.HashConcat(c.digest[:], counterBytes[:])
	c.counter++
	value := uint64(digest[0]) % bound
	log.Debug().Uint64("value", value).Uint64("bound", bound).Msg("channel: random integer")
	return value
}
