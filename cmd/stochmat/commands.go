package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stochmat/internal/config"
	"github.com/katalvlaran/stochmat/markov"
)

// stochasticTol bounds |row sum − 1| for --check.
const stochasticTol = 1e-9

// ClassesCmd prints the class structure of every chain.
type ClassesCmd struct {
	File string `arg:"" help:"Chain document (YAML or JSON)" type:"existingfile"`
}

func (c *ClassesCmd) Run(e *env) error {
	doc, err := config.Load(c.File)
	if err != nil {
		return err
	}
	for i := range doc.Chains {
		ch := &doc.Chains[i]
		sm, err := e.analyze(ch, i)
		if err != nil {
			return err
		}

		recSet := make(map[int]bool)
		for _, label := range sm.RecClassLabels() {
			recSet[label] = true
		}
		fmt.Fprintf(e.out, "%s: %d states, %d communication classes, %d recurrent\n",
			ch.DisplayName(i), sm.N(), sm.NumCommClasses(), sm.NumRecClasses())
		for label, class := range sm.CommClasses() {
			kind := "transient"
			if recSet[label] || sm.IsIrreducible() {
				kind = "recurrent"
			}
			fmt.Fprintf(e.out, "  class %d %s %v\n", label, kind, ch.Labels(class))
		}
	}

	return nil
}

// GTHCmd applies the solver to each whole matrix without decomposing it.
// On a reducible matrix this yields the distribution of the closed class
// reached from the lowest-indexed states.
type GTHCmd struct {
	File      string `arg:"" help:"Chain document (YAML or JSON)" type:"existingfile"`
	Overwrite bool   `help:"Let the solver reuse the loaded matrix as its working buffer"`
}

func (c *GTHCmd) Run(e *env) error {
	doc, err := config.Load(c.File)
	if err != nil {
		return err
	}
	for i := range doc.Chains {
		ch := &doc.Chains[i]
		m, err := ch.Dense()
		if err != nil {
			return fmt.Errorf("chain %s: %w", ch.DisplayName(i), err)
		}
		var opts []markov.GTHOption
		if c.Overwrite {
			opts = append(opts, markov.WithOverwrite())
		}
		x, err := markov.GTHSolve(m, opts...)
		if err != nil {
			return fmt.Errorf("chain %s: %w", ch.DisplayName(i), err)
		}
		e.log.Debug("gth solved", "chain", ch.DisplayName(i), "states", len(x), "overwrite", c.Overwrite)
		fmt.Fprintf(e.out, "%s: %s\n", ch.DisplayName(i), formatDist(ch, allStates(len(x)), x))
	}

	return nil
}

// StationaryCmd prints the stationary distributions of every chain.
type StationaryCmd struct {
	File   string `arg:"" help:"Chain document (YAML or JSON)" type:"existingfile"`
	Output string `short:"o" default:"text" enum:"text,json,yaml" help:"Output format (${enum})"`
	Check  bool   `help:"Verify row sums and report the residual of each distribution"`
}

func (c *StationaryCmd) Run(e *env) error {
	doc, err := config.Load(c.File)
	if err != nil {
		return err
	}
	reports := make([]chainReport, 0, len(doc.Chains))
	for i := range doc.Chains {
		ch := &doc.Chains[i]
		sm, err := e.analyze(ch, i)
		if err != nil {
			return err
		}
		rep, err := buildReport(e, ch, i, sm, c.Check)
		if err != nil {
			return err
		}
		reports = append(reports, rep)
	}

	switch c.Output {
	case "json":
		enc := json.NewEncoder(e.out)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case "yaml":
		enc := yaml.NewEncoder(e.out)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	default:
		writeText(e, reports)
		return nil
	}
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run(e *env) error {
	fmt.Fprintf(e.out, "stochmat version %s\n", version)
	return nil
}

// analyze returns the shared StochMatrix for a chain.
func (e *env) analyze(ch *config.Chain, idx int) (*markov.StochMatrix, error) {
	name := ch.DisplayName(idx)
	m, err := ch.Dense()
	if err != nil {
		return nil, fmt.Errorf("chain %s: %w", name, err)
	}
	before := e.cache.Len()
	sm, err := e.cache.Get(m)
	if err != nil {
		return nil, fmt.Errorf("chain %s: %w", name, err)
	}
	e.log.Info("chain loaded",
		"chain", name,
		"states", sm.N(),
		"transitions", sm.NumTransitions(),
		"classes", sm.NumCommClasses(),
		"recurrent", sm.NumRecClasses(),
		"cached", e.cache.Len() == before)

	return sm, nil
}

func allStates(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// formatDist renders label=value pairs for the given states.
func formatDist(ch *config.Chain, states []int, x []float64) string {
	parts := make([]string, len(states))
	for k, s := range states {
		parts[k] = ch.Label(s) + "=" + strconv.FormatFloat(x[s], 'g', 6, 64)
	}
	return strings.Join(parts, " ")
}
