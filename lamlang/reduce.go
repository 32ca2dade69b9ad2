package lamlang

// TraceStep is one snapshot in a reduction history. Step 0 is the parsed
// input itself; later entries carry the redex that was contracted to reach
// them.
type TraceStep struct {
	Step  int        `json:"step"`
	Term  string     `json:"term"`
	Redex *RedexInfo `json:"redex,omitempty"`
}

// Result is the record a reduction call hands to its callers. Collaborators
// read only this, never Term internals.
type Result struct {
	OriginalTerm    string      `json:"original_term"`
	FinalTerm       string      `json:"final_term"`
	IsNormalForm    bool        `json:"is_normal_form"`
	StepsTaken      int         `json:"steps_taken"`
	MaxStepsReached bool        `json:"max_steps_reached"`
	Stagnated       bool        `json:"stagnated"`
	Strategy        Strategy    `json:"-"`
	StrategyName    string      `json:"strategy"`
	Combinator      string      `json:"combinator,omitempty"`
	Trace           []TraceStep `json:"trace"`

	// Final is the final term value, for callers inside this package's
	// module that want to keep computing rather than render.
	Final Term `json:"-"`
}

// stagnationWindow is how many identical consecutive snapshots end a run
// early. Self-application combinators reproduce the same syntactic term
// every step under normal order; without the guard they burn the whole step
// budget without visible progress.
const stagnationWindow = 3

// Reduce repeatedly steps term under strategy until no redex remains, the
// step budget runs out, or the trace stagnates. Reduction never fails:
// divergence comes back as data, so callers can always render the partial
// trace.
func Reduce(term Term, strategy Strategy, maxSteps int) Result {
	return ReduceWith(term, strategy, maxSteps, nil)
}

// ReduceWith is Reduce with extra classifier entries appended to the builtin
// combinator table.
func ReduceWith(term Term, strategy Strategy, maxSteps int, extra []Combinator) Result {
	result := Result{
		OriginalTerm: term.String(),
		Strategy:     strategy,
		StrategyName: strategy.String(),
		Trace: []TraceStep{{
			Step: 0,
			Term: term.String(),
		}},
	}

	current := term
	for result.StepsTaken < maxSteps {
		next, info, ok := Step(current, strategy)
		if !ok {
			break
		}
		current = next
		result.StepsTaken++
		result.Trace = append(result.Trace, TraceStep{
			Step:  result.StepsTaken,
			Term:  current.String(),
			Redex: info,
		})

		if stagnated(result.Trace) {
			result.Stagnated = true
			break
		}
	}

	// the bound ended the run whenever a redex remains, whether the
	// counter ran out or the stagnation guard cut it short
	_, _, hasRedex := Step(current, strategy)
	result.IsNormalForm = !hasRedex
	result.MaxStepsReached = hasRedex
	result.FinalTerm = current.String()
	result.Final = current
	result.Combinator = ClassifyWith(current, extra)

	return result
}

func stagnated(trace []TraceStep) bool {
	if len(trace) < stagnationWindow {
		return false
	}
	last := trace[len(trace)-1].Term
	for _, step := range trace[len(trace)-stagnationWindow : len(trace)-1] {
		if step.Term != last {
			return false
		}
	}
	return true
}
