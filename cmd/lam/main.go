package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/reusee/dscope"
	"golang.org/x/term"

	"github.com/lambdaviz/lam/cmds"
	"github.com/lambdaviz/lam/debugs"
	"github.com/lambdaviz/lam/lamconfigs"
	"github.com/lambdaviz/lam/logs"
	"github.com/lambdaviz/lam/modes"
)

var (
	evalExpr  = cmds.Var[string]("eval")
	batchFile = cmds.Var[string]("-batch")
	jsonOut   = cmds.Switch("-json")
	debugTap  = cmds.Switch("-debug")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		maxSteps lamconfigs.MaxSteps,
		strategy lamconfigs.DefaultStrategy,
		extra lamconfigs.ExtraCombinators,
		tap debugs.Tap,
	) {
		runner := &Runner{
			Logger:   logger,
			NewSpan:  newSpan,
			MaxSteps: maxSteps,
			Strategy: strategy,
			Extra:    extra,
			Tap:      tap,
		}

		switch {

		case *batchFile != "":
			ce(runner.RunBatch(ctx, *batchFile))

		case *evalExpr != "":
			ce(runner.RunOne(ctx, *evalExpr, os.Stdout))

		default:
			stdin := getStdinContent()
			if len(stdin) > 0 {
				for _, line := range strings.Split(string(stdin), "\n") {
					line = strings.TrimSpace(line)
					if line == "" {
						continue
					}
					ce(runner.RunOne(ctx, line, os.Stdout))
				}
				return
			}
			runREPL(ctx, runner)
		}
	})
}

func getStdinContent() []byte {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	content, err := io.ReadAll(os.Stdin)
	ce(err)
	return content
}

func ce(err error) {
	if err != nil {
		panic(err)
	}
}
