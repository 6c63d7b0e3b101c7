// Command stark17-demo generates a proof for the fixed claim this
// module proves and immediately verifies it, logging each step.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tinystark/stark17/pkg/stark17"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	proof, err := stark17.GenerateProof()
	if err != nil {
		log.Fatal().Err(err).Msg("proof generation failed")
	}

	if err := stark17.Verify(proof); err != nil {
		log.Fatal().Err(err).Msg("proof rejected")
	}

	log.Info().
		Hex("trace_lde_root", proof.TraceLDERoot[:]).
		Hex("composition_lde_root", proof.CompositionLDERoot[:]).
		Hex("fri_layer1_root", proof.FRILayer1Root[:]).
		Str("fri_terminal", proof.FRITerminal.String()).
		Msg("proof accepted")
}
