package lamconfigs

import (
	"github.com/lambdaviz/lam/cmds"
	"github.com/lambdaviz/lam/configs"
	"github.com/lambdaviz/lam/lamlang"
	"github.com/lambdaviz/lam/logs"
	"github.com/lambdaviz/lam/vars"
)

// DefaultStrategy is the reduction order used when a caller does not pick
// one explicitly.
type DefaultStrategy lamlang.Strategy

var _ configs.Configurable = DefaultStrategy(0)

func (DefaultStrategy) ConfigKey() string {
	return "strategy"
}

var strategyFlag = cmds.Var[string]("-strategy")

func (Module) DefaultStrategy(
	loader configs.Loader,
	logger logs.Logger,
) DefaultStrategy {
	name := vars.FirstNonZero(
		*strategyFlag,
		configs.First[string](loader, DefaultStrategy(0).ConfigKey()),
	)
	if name == "" {
		return DefaultStrategy(lamlang.NormalOrder)
	}
	strategy, err := lamlang.ParseStrategy(name)
	if err != nil {
		logger.Warn("bad strategy, falling back to normal order",
			"name", name,
		)
		return DefaultStrategy(lamlang.NormalOrder)
	}
	return DefaultStrategy(strategy)
}
