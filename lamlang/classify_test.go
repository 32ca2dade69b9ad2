package lamlang

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		name  string
	}{
		{`\x.x`, "I (Identity)"},
		// alpha-equivalent spellings match too
		{`\a.a`, "I (Identity)"},
		{`λq.q`, "I (Identity)"},
		{`\x.\y.x`, "K (Constant)"},
		{`\a.\b.b`, "KI (False)"},
		// church zero is the same normal form; the earlier entry wins
		{`\f.\x.x`, "KI (False)"},
		{`\x.\y.\z.x z (y z)`, "S (Substitution)"},
		{`\a.\b.\c.a c (b c)`, "S (Substitution)"},
		{`\f.\g.\x.f (g x)`, "B (Composition)"},
		{`\f.\x.\y.f y x`, "C (Flip)"},
		{`\f.\x.f x x`, "W (Duplication)"},
		{`\f.(\x.f (x x)) (\x.f (x x))`, "Y (Fixed-point)"},
		{`\f.\x.f x`, "Church 1"},
		{`\g.\y.g (g y)`, "Church 2"},
		{`\f.\x.f (f (f x))`, "Church 3"},
		// not in the table
		{`\x.x x`, ""},
		{`x`, ""},
		{`\x.\y.x y`, ""},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got := Classify(mustParse(t, test.input))
			if got != test.name {
				t.Fatalf("expected %q, got %q", test.name, got)
			}
		})
	}
}

func TestClassifyWithExtra(t *testing.T) {
	extra := []Combinator{
		{Name: "Omega", Term: `(\x.x x) (\x.x x)`},
		{Name: "Church 4", Term: `\f.\x.f (f (f (f x)))`},
	}

	term := mustParse(t, `\g.\y.g (g (g (g y)))`)
	if got := ClassifyWith(term, extra); got != "Church 4" {
		t.Fatalf("got %q", got)
	}

	// builtin table has precedence
	if got := ClassifyWith(mustParse(t, `\x.x`), extra); got != "I (Identity)" {
		t.Fatalf("got %q", got)
	}

	if got := ClassifyWith(mustParse(t, `\x.x x`), nil); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestAlphaNormalize(t *testing.T) {
	tests := []struct {
		input      string
		normalized string
	}{
		{`\x.x`, `\a.a`},
		{`\foo.\bar.foo`, `\a.\b.a`},
		// free variables keep their names
		{`\x.x y`, `\a.a y`},
		// canonical names already free in the term are skipped
		{`\x.x a`, `\b.b a`},
		{`\x.\y.\z.x z (y z)`, `\a.\b.\c.a c (b c)`},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got := AlphaNormalize(mustParse(t, test.input)).String()
			if got != test.normalized {
				t.Fatalf("expected %q, got %q", test.normalized, got)
			}
		})
	}

	// idempotent and equal across alpha-equivalent inputs
	first := AlphaNormalize(mustParse(t, `\f.\g.\x.f (g x)`)).String()
	second := AlphaNormalize(mustParse(t, `\p.\q.\r.p (q r)`)).String()
	if first != second {
		t.Fatalf("%q != %q", first, second)
	}
}
