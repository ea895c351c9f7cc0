// Command gkr-prover proves and verifies GKR proofs over JSON stdin
// and stdout.
//
// Usage:
//
//	gkr-prover prove  < circuit.json  > proof.json
//	gkr-prover verify < proof.json
//
// The circuit document lists the layers output-first, each with its
// add/mult wiring, plus the input vector and an optional claimed
// output (defaulting to the evaluated output layer). Field elements
// are decimal strings.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/proofworks/gkr-prover/internal/gkr/core"
	"github.com/proofworks/gkr-prover/pkg/gkr"
)

// CircuitInput is the JSON document accepted by the prove command.
type CircuitInput struct {
	Layers []LayerInput `json:"layers"`
	Input  []string     `json:"input"`
	Output []string     `json:"output,omitempty"`
}

// LayerInput is one layer's wiring. The input layer lists no wires.
type LayerInput struct {
	Add  []gkr.Wire `json:"add,omitempty"`
	Mult []gkr.Wire `json:"mult,omitempty"`
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cmd := "prove"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	var err error
	switch cmd {
	case "prove":
		err = prove(log)
	case "verify":
		err = verify(log)
	default:
		err = fmt.Errorf("unknown command %q (want prove or verify)", cmd)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("gkr-prover failed")
	}
}

func prove(log zerolog.Logger) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading circuit: %w", err)
	}
	var doc CircuitInput
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing circuit: %w", err)
	}

	layers := make([]gkr.Layer, len(doc.Layers))
	for i, l := range doc.Layers {
		layers[i] = gkr.Layer{Add: l.Add, Mult: l.Mult}
	}
	input, err := parseElements(doc.Input)
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}
	c, err := gkr.NewCircuitFromInput(layers, input)
	if err != nil {
		return err
	}

	output := c.Values(0)
	if len(doc.Output) > 0 {
		if output, err = parseElements(doc.Output); err != nil {
			return fmt.Errorf("parsing output: %w", err)
		}
	}

	prover, err := gkr.NewProver(gkr.DefaultConfig())
	if err != nil {
		return err
	}

	start := time.Now()
	proof, err := prover.Prove(c, output)
	if err != nil {
		return err
	}
	log.Info().Dur("took", time.Since(start)).Int("depth", proof.Depth).Msg("proof generated")

	encoded, err := gkr.MarshalProof(proof.Pad())
	if err != nil {
		return err
	}
	if _, err := os.Stdout.Write(append(encoded, '\n')); err != nil {
		return fmt.Errorf("writing proof: %w", err)
	}
	return nil
}

func verify(log zerolog.Logger) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading proof: %w", err)
	}
	proof, err := gkr.UnmarshalProof(data)
	if err != nil {
		return err
	}

	verifier, err := gkr.NewVerifier(gkr.DefaultConfig())
	if err != nil {
		return err
	}

	start := time.Now()
	ok := verifier.Verify(proof)
	log.Info().Dur("took", time.Since(start)).Bool("valid", ok).Msg("proof verified")

	if !ok {
		os.Exit(1)
	}
	return nil
}

func parseElements(ss []string) ([]gkr.Element, error) {
	out := make([]gkr.Element, len(ss))
	for i, s := range ss {
		e, err := core.FromString(s)
		if err != nil {
			return nil, fmt.Errorf("element %q: %w", s, err)
		}
		out[i] = e
	}
	return out, nil
}
