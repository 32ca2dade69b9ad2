package main

import (
	"github.com/reusee/dscope"

	"github.com/lambdaviz/lam/debugs"
	"github.com/lambdaviz/lam/lamconfigs"
)

type Module struct {
	dscope.Module
	Configs lamconfigs.Module
	Debugs  debugs.Module
}
