package lamlang

import (
	"strconv"
	"sync"
)

// Combinator names a closed form the classifier recognizes.
type Combinator struct {
	Name string `json:"name"`
	Term string `json:"term"`
}

// The builtin table. Matching happens on alpha-normalized canonical prints,
// so \a.a and \x.x both classify as I. Order matters where normal forms
// coincide: false and Church zero are the same term, and the first entry
// wins.
var knownCombinators = []Combinator{
	{Name: "I (Identity)", Term: `\x.x`},
	{Name: "K (Constant)", Term: `\x.\y.x`},
	{Name: "KI (False)", Term: `\x.\y.y`},
	{Name: "S (Substitution)", Term: `\x.\y.\z.x z (y z)`},
	{Name: "B (Composition)", Term: `\f.\g.\x.f (g x)`},
	{Name: "C (Flip)", Term: `\f.\x.\y.f y x`},
	{Name: "W (Duplication)", Term: `\f.\x.f x x`},
	{Name: "Y (Fixed-point)", Term: `\f.(\x.f (x x)) (\x.f (x x))`},
	{Name: "Church 0", Term: `\f.\x.x`},
	{Name: "Church 1", Term: `\f.\x.f x`},
	{Name: "Church 2", Term: `\f.\x.f (f x)`},
	{Name: "Church 3", Term: `\f.\x.f (f (f x))`},
}

type classifierEntry struct {
	name       string
	normalized string
}

var builtinEntries = sync.OnceValue(func() []classifierEntry {
	return compileEntries(knownCombinators)
})

func compileEntries(combinators []Combinator) []classifierEntry {
	var entries []classifierEntry
	for _, c := range combinators {
		term, err := Parse(c.Term)
		if err != nil {
			// table entries are source code; an unparsable one is a bug
			panic(err)
		}
		entries = append(entries, classifierEntry{
			name:       c.Name,
			normalized: AlphaNormalize(term).String(),
		})
	}
	return entries
}

// Classify names term if its alpha-normalized canonical print matches a
// known combinator, and returns "" otherwise.
func Classify(term Term) string {
	return classify(term, builtinEntries())
}

// ClassifyWith is Classify with extra entries searched after the builtin
// table.
func ClassifyWith(term Term, extra []Combinator) string {
	if name := classify(term, builtinEntries()); name != "" {
		return name
	}
	if len(extra) == 0 {
		return ""
	}
	return classify(term, compileEntries(extra))
}

func classify(term Term, entries []classifierEntry) string {
	printed := AlphaNormalize(term).String()
	for _, entry := range entries {
		if entry.normalized == printed {
			return entry.name
		}
	}
	return ""
}

// AlphaNormalize renames every binder to a canonical name drawn from the
// order binders are encountered, leaving free variables untouched. Two
// alpha-equivalent terms normalize to the same tree.
func AlphaNormalize(term Term) Term {
	n := &normalizer{
		free: FreeVars(term),
	}
	return n.rename(term, nil)
}

type normalizer struct {
	free map[string]bool
	next int
}

type renaming struct {
	from string
	to   string
	prev *renaming
}

func (r *renaming) lookup(name string) (string, bool) {
	for ; r != nil; r = r.prev {
		if r.from == name {
			return r.to, true
		}
	}
	return "", false
}

func (n *normalizer) rename(term Term, env *renaming) Term {
	switch term := term.(type) {

	case Var:
		if to, ok := env.lookup(term.Name); ok {
			return Var{Name: to}
		}
		return term

	case Abs:
		fresh := n.fresh()
		return Abs{
			Param: fresh,
			Body: n.rename(term.Body, &renaming{
				from: term.Param,
				to:   fresh,
				prev: env,
			}),
		}

	case App:
		return App{
			Fun: n.rename(term.Fun, env),
			Arg: n.rename(term.Arg, env),
		}
	}

	return term
}

// canonical binder names: a, b, ..., z, x0, x1, ...; names that occur free
// in the whole term are skipped so normalization never captures
func (n *normalizer) fresh() string {
	for {
		var name string
		if n.next < 26 {
			name = string(rune('a' + n.next))
		} else {
			name = "x" + strconv.Itoa(n.next-26)
		}
		n.next++
		if !n.free[name] {
			return name
		}
	}
}
