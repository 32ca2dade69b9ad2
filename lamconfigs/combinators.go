package lamconfigs

import (
	"github.com/lambdaviz/lam/configs"
	"github.com/lambdaviz/lam/lamlang"
	"github.com/lambdaviz/lam/logs"
)

// ExtraCombinators are user-supplied classifier entries, appended after the
// builtin table.
type ExtraCombinators []lamlang.Combinator

func (Module) ExtraCombinators(
	loader configs.Loader,
	logger logs.Logger,
) ExtraCombinators {
	var extra ExtraCombinators
	for list := range configs.All[[]lamlang.Combinator](loader, "combinators") {
		for _, c := range list {
			if _, err := lamlang.Parse(c.Term); err != nil {
				logger.Warn("skipping bad combinator entry",
					"name", c.Name,
					"error", err,
				)
				continue
			}
			extra = append(extra, c)
		}
	}
	return extra
}
