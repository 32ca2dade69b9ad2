package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/lambdaviz/lam/debugs"
	"github.com/lambdaviz/lam/lamconfigs"
	"github.com/lambdaviz/lam/lamlang"
	"github.com/lambdaviz/lam/logs"
)

type Runner struct {
	Logger   logs.Logger
	NewSpan  logs.NewSpan
	MaxSteps lamconfigs.MaxSteps
	Strategy lamconfigs.DefaultStrategy
	Extra    lamconfigs.ExtraCombinators
	Tap      debugs.Tap
}

// RunOne parses and reduces a single expression and renders the result to w.
// Parse errors are rendered, not returned: a bad expression is an answer,
// not a crash.
func (r *Runner) RunOne(ctx context.Context, input string, w io.Writer) error {
	result, err := r.Evaluate(ctx, input)
	if err != nil {
		fmt.Fprintln(w, err.Error())
		return nil
	}

	if *debugTap {
		r.Tap(ctx, "reduction", map[string]any{
			"result":   result,
			"analysis": lamlang.Analyze(result.Final),
			"reduce": func(input string, strategy string, maxSteps int) string {
				term, err := lamlang.Parse(input)
				if err != nil {
					return err.Error()
				}
				s, err := lamlang.ParseStrategy(strategy)
				if err != nil {
					return err.Error()
				}
				return lamlang.Reduce(term, s, maxSteps).FinalTerm
			},
		})
	}

	if *jsonOut {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	renderResult(w, result)
	return nil
}

func (r *Runner) Evaluate(ctx context.Context, input string) (lamlang.Result, error) {
	term, err := lamlang.ParseSource(lamlang.NewSource("input", input))
	if err != nil {
		return lamlang.Result{}, err
	}

	result := lamlang.ReduceWith(
		term,
		lamlang.Strategy(r.Strategy),
		int(r.MaxSteps),
		r.Extra,
	)

	r.Logger.InfoContext(ctx, "reduced",
		"input", result.OriginalTerm,
		"final", result.FinalTerm,
		"steps", result.StepsTaken,
		"normal-form", result.IsNormalForm,
		"strategy", result.StrategyName,
	)

	return result, nil
}

func renderResult(w io.Writer, result lamlang.Result) {
	for _, step := range result.Trace {
		if step.Redex == nil {
			fmt.Fprintf(w, "%4d  %s\n", step.Step, step.Term)
		} else {
			fmt.Fprintf(w, "%4d  %s\t[%s := %s]\n",
				step.Step, step.Term, step.Redex.Parameter, step.Redex.Argument)
		}
	}

	switch {
	case result.IsNormalForm:
		fmt.Fprintf(w, "normal form in %d steps: %s\n", result.StepsTaken, result.FinalTerm)
	case result.Stagnated:
		fmt.Fprintf(w, "no progress after %d steps, likely divergent: %s\n",
			result.StepsTaken, result.FinalTerm)
	default:
		fmt.Fprintf(w, "stopped at step budget (%d), no normal form: %s\n",
			result.StepsTaken, result.FinalTerm)
	}
	if result.Combinator != "" {
		fmt.Fprintf(w, "combinator: %s\n", result.Combinator)
	}
}
