package stark17

import (
	"github.com/rs/zerolog/log"

	"github.com/tinystark/stark17/internal/stark17/protocols"
)

// GenerateProof constructs a StarkProof attesting to knowledge of the
// fixed trace a0=3, a1=9, a2=13, a3=16 over F17, satisfying a0=3 and
// a_{i+1}=a_i^2, without revealing it.
func GenerateProof() (*StarkProof, error) {
	log.Info().Msg("stark17: generating proof")
	proof, err := protocols.NewProver().GenerateProof()
	if err != nil {
		return nil, wrapProveErr(err)
	}
	log.Info().Msg("stark17: proof generated")
	return proof, nil
}

// Verify checks proof against the fixed claim. A nil return means the
// proof is accepted; any non-nil return is a *Error whose Code
// identifies which check failed.
func Verify(proof *StarkProof) error {
	log.Info().Msg("stark17: verifying proof")
	if err := protocols.NewVerifier().Verify(proof); err != nil {
		log.Warn().Err(err).Msg("stark17: proof rejected")
		return wrapVerifyErr(err)
	}
	log.Info().Msg("stark17: proof accepted")
	return nil
}
