// Package gkr provides an interactive-proof system for layered
// arithmetic circuits based on the GKR protocol (Goldwasser-Kalai-
// Rothblum), made non-interactive with a MiMC Fiat-Shamir transcript.
//
// The prover reduces a claim about a circuit's output layer to a claim
// about its input layer, one layer at a time, running the sum-check
// sub-protocol over the multilinear extensions of the layer's wiring
// predicates and gate values. The verifier replays the transcript and
// needs only the proof itself.
//
// # Quick Start
//
// Build a circuit from wiring and an input vector, prove, verify:
//
//	layers := []gkr.Layer{
//		{Mult: []gkr.Wire{{Out: 0, Left: 0, Right: 1}, {Out: 1, Left: 2, Right: 3}}},
//		{Mult: []gkr.Wire{{Out: 0, Left: 0, Right: 0}, {Out: 1, Left: 1, Right: 1},
//			{Out: 2, Left: 1, Right: 2}, {Out: 3, Left: 3, Right: 3}}},
//		{},
//	}
//	input := []gkr.Element{ /* the input layer values */ }
//
//	c, err := gkr.NewCircuitFromInput(layers, input)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	proof, err := gkr.Prove(c, c.Values(0))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if !gkr.Verify(proof) {
//		log.Fatal("proof rejected")
//	}
//
// Proofs marshal to the JSON wire format with encoding/json; Pad
// normalizes vector lengths for transports that need uniform shapes.
//
// Package-level Prove and Verify run under DefaultConfig. Deployments
// that need their own transcript domain separator build a Prover and
// Verifier from an explicit Config:
//
//	config := gkr.DefaultConfig()
//	config.DomainSeparator = "my-app/gkr/v1"
//	prover, err := gkr.NewProver(config)
//
// # Architecture
//
//   - pkg/gkr: public API (this package)
//   - internal/gkr/core: field adapter, symbolic polynomial algebra,
//     multilinear extensions
//   - internal/gkr/circuit: layered circuits with explicit wiring
//   - internal/gkr/protocols: sum-check, line reduction, GKR prover
//     and verifier, proof record
//
// The field is the BN254 scalar field of gnark-crypto; the transcript
// hash is MiMC over the same field.
package gkr
