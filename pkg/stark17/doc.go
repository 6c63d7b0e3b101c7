// Package stark17 implements a transparent, non-interactive argument of
// knowledge for one fixed statement: "I know a0, a1, a2, a3 in F17 with
// a0 = 3 and a_{i+1} = a_i^2 for i in {0,1,2}."
//
// Every domain, constant, and protocol parameter is hardcoded; nothing
// in this package is configurable. That is deliberate: the point is to
// show the full STARK machinery — low-degree extension, Merkle
// commitment, a Fiat-Shamir transcript, constraint composition, and FRI
// — end to end on the smallest instance that still exercises every
// piece honestly.
//
// # Quick start
//
//	proof, err := stark17.GenerateProof()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := stark17.Verify(proof); err != nil {
//	    log.Fatal(err)
//	}
//
// # Architecture
//
// GenerateProof interpolates the trace polynomial over the trace
// domain, extends it onto an 8-element low-degree-extension domain,
// commits to it with a BLAKE3 Merkle tree, derives a random linear
// combination of the boundary and transition constraints into a
// composition polynomial, commits to that, and folds it through two
// rounds of FRI down to a constant. Verify replays the same
// Fiat-Shamir transcript from the proof's roots and terminal value,
// rederiving every challenge, and checks the Merkle openings,
// constraint equation, and FRI folds at a single queried index.
//
// # References
//
//   - Ben-Sasson et al., "Scalable, transparent, and post-quantum
//     secure computational integrity" (the STARK paper).
//   - Ben-Sasson et al., "Fast Reed-Solomon Interactive Oracle Proofs
//     of Proximity" (the FRI paper).
package stark17
