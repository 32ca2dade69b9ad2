package lamlang

import "sort"

type TermKind string

const (
	KindVariable     TermKind = "variable"
	KindOpenLambda   TermKind = "open_lambda"
	KindClosedLambda TermKind = "closed_lambda"
	KindApplication  TermKind = "application"
)

// Analysis is a structural summary of a term, for rendering alongside a
// reduction result.
type Analysis struct {
	Kind           TermKind `json:"kind"`
	FreeVariables  []string `json:"free_variables"`
	BoundVariables []string `json:"bound_variables"`
	LambdaCount    int      `json:"lambda_count"`
	IsClosed       bool     `json:"is_closed"`
	Combinator     string   `json:"combinator,omitempty"`
}

func Analyze(term Term) Analysis {
	free := FreeVars(term)
	bound := BoundVars(term)

	analysis := Analysis{
		FreeVariables:  sortedNames(free),
		BoundVariables: sortedNames(bound),
		LambdaCount:    countLambdas(term),
		IsClosed:       len(free) == 0,
		Combinator:     Classify(term),
	}

	switch term.(type) {
	case Var:
		analysis.Kind = KindVariable
	case Abs:
		if analysis.IsClosed {
			analysis.Kind = KindClosedLambda
		} else {
			analysis.Kind = KindOpenLambda
		}
	case App:
		analysis.Kind = KindApplication
	}

	return analysis
}

func countLambdas(term Term) int {
	switch term := term.(type) {
	case Abs:
		return 1 + countLambdas(term.Body)
	case App:
		return countLambdas(term.Fun) + countLambdas(term.Arg)
	}
	return 0
}

func sortedNames(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
