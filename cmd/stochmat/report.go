package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/stochmat/internal/config"
	"github.com/katalvlaran/stochmat/markov"
)

// chainReport is the serialized result for one chain.
type chainReport struct {
	Name        string        `json:"name" yaml:"name"`
	States      []string      `json:"states" yaml:"states"`
	Irreducible bool          `json:"irreducible" yaml:"irreducible"`
	CommClasses [][]string    `json:"comm_classes" yaml:"comm_classes"`
	Recurrent   []classReport `json:"recurrent" yaml:"recurrent"`
}

// classReport is one recurrent class and its stationary distribution over
// all states.
type classReport struct {
	Label        int       `json:"label" yaml:"label"`
	States       []string  `json:"states" yaml:"states"`
	Distribution []float64 `json:"distribution" yaml:"distribution"`
	Residual     *float64  `json:"residual,omitempty" yaml:"residual,omitempty"`

	members []int
}

func buildReport(e *env, ch *config.Chain, idx int, sm *markov.StochMatrix, check bool) (chainReport, error) {
	name := ch.DisplayName(idx)
	rep := chainReport{
		Name:        name,
		States:      ch.Labels(allStates(sm.N())),
		Irreducible: sm.IsIrreducible(),
	}
	for _, class := range sm.CommClasses() {
		rep.CommClasses = append(rep.CommClasses, ch.Labels(class))
	}

	p := sm.Matrix()
	if check {
		if err := markov.CheckStochastic(p, stochasticTol); err != nil {
			e.log.Warn("matrix is not row-stochastic", "chain", name, "err", err)
		}
	}

	dists, err := sm.StationaryDists()
	if err != nil {
		return rep, fmt.Errorf("chain %s: %w", name, err)
	}
	labels := sm.RecClassLabels()
	for r, class := range sm.RecClasses() {
		x, err := dists.Row(r)
		if err != nil {
			return rep, fmt.Errorf("chain %s: %w", name, err)
		}
		cr := classReport{
			Label:        labels[r],
			States:       ch.Labels(class),
			Distribution: x,
			members:      class,
		}
		if check {
			res, err := markov.Residual(x, p)
			if err != nil {
				return rep, fmt.Errorf("chain %s: %w", name, err)
			}
			cr.Residual = &res
			e.log.Debug("residual", "chain", name, "class", cr.Label, "value", res)
		}
		rep.Recurrent = append(rep.Recurrent, cr)
	}

	return rep, nil
}

// writeText prints the human-readable form: one line per recurrent class,
// members only.
func writeText(e *env, reports []chainReport) {
	for _, rep := range reports {
		fmt.Fprintln(e.out, rep.Name)
		for _, cr := range rep.Recurrent {
			fmt.Fprintf(e.out, "  class %d:", cr.Label)
			for k, s := range cr.members {
				fmt.Fprintf(e.out, " %s=%s", cr.States[k], strconv.FormatFloat(cr.Distribution[s], 'g', 6, 64))
			}
			if cr.Residual != nil {
				fmt.Fprintf(e.out, " (residual %.2g)", *cr.Residual)
			}
			fmt.Fprintln(e.out)
		}
	}
}
