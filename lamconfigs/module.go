package lamconfigs

import (
	"github.com/reusee/dscope"

	"github.com/lambdaviz/lam/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
