package lamconfigs

import (
	"github.com/lambdaviz/lam/cmds"
	"github.com/lambdaviz/lam/configs"
	"github.com/lambdaviz/lam/vars"
)

// MaxSteps bounds every reduction run. Divergent terms are cut off at this
// many beta steps.
type MaxSteps int

var _ configs.Configurable = MaxSteps(0)

func (MaxSteps) ConfigKey() string {
	return "max_steps"
}

const defaultMaxSteps = 100

var maxStepsFlag = cmds.Var[int]("-max-steps")

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	return MaxSteps(vars.FirstNonZero(
		*maxStepsFlag,
		configs.First[int](loader, MaxSteps(0).ConfigKey()),
		defaultMaxSteps,
	))
}
