package lamlang

import "strings"

// Term is a lambda calculus term: a variable, an abstraction, or an
// application. Terms are immutable values; substitution and reduction always
// build new trees and never rewrite an existing node.
type Term interface {
	String() string
	isTerm()
}

// Var is a variable occurrence.
type Var struct {
	Name string
}

func (Var) isTerm() {}

func (v Var) String() string {
	return v.Name
}

// Abs is an abstraction. Param scopes over every occurrence of the same name
// in Body not rebound by a nested abstraction.
type Abs struct {
	Param string
	Body  Term
}

func (Abs) isTerm() {}

func (a Abs) String() string {
	var sb strings.Builder
	writeTerm(&sb, a, false, false)
	return sb.String()
}

// App is the application of Fun to Arg.
type App struct {
	Fun Term
	Arg Term
}

func (App) isTerm() {}

func (a App) String() string {
	var sb strings.Builder
	writeTerm(&sb, a, false, false)
	return sb.String()
}

// writeTerm prints with minimal parentheses so that parsing the output yields
// the same tree: abstractions are wrapped when they are not the rightmost
// part of the expression, application arguments are wrapped when compound.
func writeTerm(sb *strings.Builder, t Term, inFun bool, inArg bool) {
	switch t := t.(type) {

	case Var:
		sb.WriteString(t.Name)

	case Abs:
		wrap := inFun || inArg
		if wrap {
			sb.WriteString("(")
		}
		sb.WriteString("\\")
		sb.WriteString(t.Param)
		sb.WriteString(".")
		writeTerm(sb, t.Body, false, false)
		if wrap {
			sb.WriteString(")")
		}

	case App:
		wrap := inArg
		if wrap {
			sb.WriteString("(")
		}
		writeTerm(sb, t.Fun, true, false)
		sb.WriteString(" ")
		writeTerm(sb, t.Arg, false, true)
		if wrap {
			sb.WriteString(")")
		}
	}
}

// FreeVars returns the variable names occurring free in t.
func FreeVars(t Term) map[string]bool {
	free := make(map[string]bool)
	collectFree(t, make(map[string]int), free)
	return free
}

func collectFree(t Term, bound map[string]int, free map[string]bool) {
	switch t := t.(type) {
	case Var:
		if bound[t.Name] == 0 {
			free[t.Name] = true
		}
	case Abs:
		bound[t.Param]++
		collectFree(t.Body, bound, free)
		bound[t.Param]--
	case App:
		collectFree(t.Fun, bound, free)
		collectFree(t.Arg, bound, free)
	}
}

// BoundVars returns every parameter name introduced by an abstraction
// anywhere in t, referenced or not.
func BoundVars(t Term) map[string]bool {
	bound := make(map[string]bool)
	collectBound(t, bound)
	return bound
}

func collectBound(t Term, bound map[string]bool) {
	switch t := t.(type) {
	case Abs:
		bound[t.Param] = true
		collectBound(t.Body, bound)
	case App:
		collectBound(t.Fun, bound)
		collectBound(t.Arg, bound)
	}
}
