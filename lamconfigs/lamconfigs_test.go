package lamconfigs

import (
	"testing"

	"github.com/reusee/dscope"

	"github.com/lambdaviz/lam/lamlang"
	"github.com/lambdaviz/lam/modes"
)

func TestDefaults(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		maxSteps MaxSteps,
		strategy DefaultStrategy,
		extra ExtraCombinators,
	) {
		if maxSteps <= 0 {
			t.Fatalf("got %d", maxSteps)
		}
		if lamlang.Strategy(strategy) != lamlang.NormalOrder {
			t.Fatalf("got %v", lamlang.Strategy(strategy))
		}
		for _, c := range extra {
			if _, err := lamlang.Parse(c.Term); err != nil {
				t.Fatal(err)
			}
		}
	})
}
