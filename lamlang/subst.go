package lamlang

import "fmt"

// Substitute replaces every free occurrence of name in term with replacement,
// alpha-renaming binders where a free variable of replacement would otherwise
// be captured.
func Substitute(term Term, name string, replacement Term) Term {
	switch term := term.(type) {

	case Var:
		if term.Name == name {
			return replacement
		}
		return term

	case App:
		return App{
			Fun: Substitute(term.Fun, name, replacement),
			Arg: Substitute(term.Arg, name, replacement),
		}

	case Abs:
		if term.Param == name {
			// shadowed, nothing free to replace inside
			return term
		}

		replacementFree := FreeVars(replacement)
		if !replacementFree[term.Param] {
			return Abs{
				Param: term.Param,
				Body:  Substitute(term.Body, name, replacement),
			}
		}

		// the binder would capture a free variable of replacement:
		// rename it first
		avoid := FreeVars(term.Body)
		for v := range replacementFree {
			avoid[v] = true
		}
		avoid[name] = true
		fresh := freshName(avoid)
		renamed := Substitute(term.Body, term.Param, Var{Name: fresh})
		return Abs{
			Param: fresh,
			Body:  Substitute(renamed, name, replacement),
		}
	}

	return term
}

// freshName picks a deterministic name not in avoid: single letters first,
// then a numeric suffix scheme.
func freshName(avoid map[string]bool) string {
	for r := 'a'; r <= 'z'; r++ {
		name := string(r)
		if !avoid[name] {
			return name
		}
	}
	for i := 0; ; i++ {
		name := fmt.Sprintf("x%d", i)
		if !avoid[name] {
			return name
		}
	}
}
