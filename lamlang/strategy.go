package lamlang

import "fmt"

// Strategy selects which redex a reduction step contracts.
type Strategy uint8

const (
	// NormalOrder contracts the leftmost outermost redex, reducing under
	// binders. Always finds a normal form when one exists.
	NormalOrder Strategy = iota
	// ApplicativeOrder contracts the leftmost innermost redex, reducing
	// under binders.
	ApplicativeOrder
	// CallByName contracts the leftmost outermost redex but never reduces
	// under a binder and never evaluates arguments; it stops at weak head
	// normal form.
	CallByName
	// CallByValue reduces the function, then the argument to a value, then
	// contracts; it never reduces under a binder.
	CallByValue
)

func (s Strategy) String() string {
	switch s {
	case NormalOrder:
		return "normal-order"
	case ApplicativeOrder:
		return "applicative-order"
	case CallByName:
		return "call-by-name"
	case CallByValue:
		return "call-by-value"
	}
	return fmt.Sprintf("strategy(%d)", uint8(s))
}

func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "normal-order", "normal", "no":
		return NormalOrder, nil
	case "applicative-order", "applicative", "ao":
		return ApplicativeOrder, nil
	case "call-by-name", "cbn":
		return CallByName, nil
	case "call-by-value", "cbv":
		return CallByValue, nil
	}
	return 0, fmt.Errorf("unknown strategy: %s", name)
}

// RedexInfo describes the redex a step contracted, for traces and downstream
// rendering.
type RedexInfo struct {
	Parameter string `json:"parameter"`
	Function  string `json:"function"`
	Argument  string `json:"argument"`
}

// Step performs one beta reduction on term under strategy. It returns the
// reduced term, a description of the contracted redex, and whether a redex
// was found at all; ok == false means term is in normal form for strategy.
func Step(term Term, strategy Strategy) (Term, *RedexInfo, bool) {
	switch strategy {
	case NormalOrder:
		return stepNormal(term)
	case ApplicativeOrder:
		return stepApplicative(term)
	case CallByName:
		return stepCallByName(term)
	case CallByValue:
		return stepCallByValue(term)
	}
	return stepNormal(term)
}

func contract(fun Abs, arg Term) (Term, *RedexInfo) {
	info := &RedexInfo{
		Parameter: fun.Param,
		Function:  fun.String(),
		Argument:  arg.String(),
	}
	return Substitute(fun.Body, fun.Param, arg), info
}

// leftmost outermost, including under binders
func stepNormal(term Term) (Term, *RedexInfo, bool) {
	switch term := term.(type) {

	case App:
		if fun, ok := term.Fun.(Abs); ok {
			reduced, info := contract(fun, term.Arg)
			return reduced, info, true
		}
		if fun, info, ok := stepNormal(term.Fun); ok {
			return App{Fun: fun, Arg: term.Arg}, info, true
		}
		if arg, info, ok := stepNormal(term.Arg); ok {
			return App{Fun: term.Fun, Arg: arg}, info, true
		}

	case Abs:
		if body, info, ok := stepNormal(term.Body); ok {
			return Abs{Param: term.Param, Body: body}, info, true
		}
	}

	return term, nil, false
}

// leftmost innermost: children before the node itself
func stepApplicative(term Term) (Term, *RedexInfo, bool) {
	switch term := term.(type) {

	case App:
		if fun, info, ok := stepApplicative(term.Fun); ok {
			return App{Fun: fun, Arg: term.Arg}, info, true
		}
		if arg, info, ok := stepApplicative(term.Arg); ok {
			return App{Fun: term.Fun, Arg: arg}, info, true
		}
		if fun, ok := term.Fun.(Abs); ok {
			reduced, info := contract(fun, term.Arg)
			return reduced, info, true
		}

	case Abs:
		if body, info, ok := stepApplicative(term.Body); ok {
			return Abs{Param: term.Param, Body: body}, info, true
		}
	}

	return term, nil, false
}

// weak head: no reduction under binders, arguments passed unevaluated
func stepCallByName(term Term) (Term, *RedexInfo, bool) {
	if term, ok := term.(App); ok {
		if fun, ok := term.Fun.(Abs); ok {
			reduced, info := contract(fun, term.Arg)
			return reduced, info, true
		}
		if fun, info, ok := stepCallByName(term.Fun); ok {
			return App{Fun: fun, Arg: term.Arg}, info, true
		}
	}
	return term, nil, false
}

// function first, then argument to a value, then contract; no reduction
// under binders
func stepCallByValue(term Term) (Term, *RedexInfo, bool) {
	if term, ok := term.(App); ok {
		if fun, info, ok := stepCallByValue(term.Fun); ok {
			return App{Fun: fun, Arg: term.Arg}, info, true
		}
		if arg, info, ok := stepCallByValue(term.Arg); ok {
			return App{Fun: term.Fun, Arg: arg}, info, true
		}
		if fun, ok := term.Fun.(Abs); ok {
			reduced, info := contract(fun, term.Arg)
			return reduced, info, true
		}
	}
	return term, nil, false
}
