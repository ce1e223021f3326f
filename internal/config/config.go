// Package config loads chain documents: named transition matrices with
// optional state labels, written in YAML or JSON.
//
//	chains:
//	  - name: weather
//	    states: [sunny, cloudy, rainy]
//	    matrix:
//	      - [0.9, 0.075, 0.025]
//	      - [0.15, 0.8, 0.05]
//	      - [0.25, 0.25, 0.5]
//
// A document holding only a top-level matrix is read as one unnamed chain.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stochmat/matrix"
)

var (
	// ErrNoChains indicates a document without any chain.
	ErrNoChains = errors.New("config: document holds no chains")

	// ErrMixedDocument indicates a document that sets both chains and a top-level matrix.
	ErrMixedDocument = errors.New("config: chains and matrix are mutually exclusive")

	// ErrEmptyMatrix indicates a chain whose matrix has no rows.
	ErrEmptyMatrix = errors.New("config: matrix is empty")

	// ErrNotSquare indicates a ragged or rectangular matrix.
	ErrNotSquare = errors.New("config: matrix must be square")

	// ErrDuplicateName indicates two chains sharing a non-empty name.
	ErrDuplicateName = errors.New("config: duplicate chain name")

	// ErrStateLabels indicates a states list of the wrong length or with repeats.
	ErrStateLabels = errors.New("config: invalid state labels")
)

// Chain is one transition matrix with its metadata.
type Chain struct {
	Name   string      `json:"name,omitempty" yaml:"name,omitempty"`
	States []string    `json:"states,omitempty" yaml:"states,omitempty"`
	Matrix [][]float64 `json:"matrix" yaml:"matrix"`

	// Normalize rescales every row to unit L1 norm before analysis, so raw
	// transition counts can be supplied directly.
	Normalize bool `json:"normalize,omitempty" yaml:"normalize,omitempty"`
}

// Document is the top-level file layout.
type Document struct {
	Chains []Chain     `json:"chains,omitempty" yaml:"chains,omitempty"`
	Matrix [][]float64 `json:"matrix,omitempty" yaml:"matrix,omitempty"`
}

// Load reads and validates the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Parse decodes a YAML or JSON document, folds a bare top-level matrix into a
// single chain and validates the result. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoChains
		}
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	if len(doc.Matrix) > 0 {
		if len(doc.Chains) > 0 {
			return nil, ErrMixedDocument
		}
		doc.Chains = []Chain{{Matrix: doc.Matrix}}
		doc.Matrix = nil
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Validate checks every chain and the uniqueness of chain names.
func (d *Document) Validate() error {
	if len(d.Chains) == 0 {
		return ErrNoChains
	}
	names := make(map[string]int, len(d.Chains))
	for i := range d.Chains {
		c := &d.Chains[i]
		if err := c.Validate(); err != nil {
			return fmt.Errorf("chain %s: %w", c.DisplayName(i), err)
		}
		if c.Name == "" {
			continue
		}
		if prev, ok := names[c.Name]; ok {
			return fmt.Errorf("chains %d and %d named %q: %w", prev, i, c.Name, ErrDuplicateName)
		}
		names[c.Name] = i
	}

	return nil
}

// Validate checks the matrix shape and the state labels.
func (c *Chain) Validate() error {
	n := len(c.Matrix)
	if n == 0 {
		return ErrEmptyMatrix
	}
	for i, row := range c.Matrix {
		if len(row) != n {
			return fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), n, ErrNotSquare)
		}
	}
	if c.States == nil {
		return nil
	}
	if len(c.States) != n {
		return fmt.Errorf("%d labels for %d states: %w", len(c.States), n, ErrStateLabels)
	}
	seen := make(map[string]struct{}, n)
	for _, s := range c.States {
		if _, dup := seen[s]; dup {
			return fmt.Errorf("label %q repeated: %w", s, ErrStateLabels)
		}
		seen[s] = struct{}{}
	}

	return nil
}

// Dense returns the chain's matrix, row-normalized when Normalize is set.
func (c *Chain) Dense() (*matrix.Dense, error) {
	m, err := matrix.NewDenseFromRows(c.Matrix)
	if err != nil {
		return nil, err
	}
	if !c.Normalize {
		return m, nil
	}
	m, _, err = matrix.NormalizeRowsL1(m)

	return m, err
}

// Label returns the name of state i, or its index when no labels are set.
func (c *Chain) Label(i int) string {
	if i >= 0 && i < len(c.States) {
		return c.States[i]
	}

	return strconv.Itoa(i)
}

// Labels maps Label over a list of states.
func (c *Chain) Labels(states []int) []string {
	out := make([]string, len(states))
	for k, s := range states {
		out[k] = c.Label(s)
	}

	return out
}

// DisplayName returns the chain name, or "#idx" for an unnamed chain.
func (c *Chain) DisplayName(idx int) string {
	if c.Name != "" {
		return c.Name
	}

	return "#" + strconv.Itoa(idx)
}
