package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/lambdaviz/lam/cmds"
	"github.com/lambdaviz/lam/logs"
	"github.com/lambdaviz/lam/syncs"
	"github.com/lambdaviz/lam/vars"
)

var batchWorkers = cmds.Var[int]("-workers")

// RunBatch reduces one expression per line of path. Each reduction owns its
// own term tree, so they run concurrently, bounded by a semaphore; outputs
// are buffered per job and printed in input order.
func (r *Runner) RunBatch(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var inputs []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	semaphore := syncs.NewSemaphore(vars.FirstNonZero(
		*batchWorkers,
		runtime.NumCPU(),
	))

	outputs := make([]bytes.Buffer, len(inputs))
	var wg sync.WaitGroup
	for i, input := range inputs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			semaphore.Acquire()
			defer semaphore.Release()

			jobCtx, span := r.NewSpan(ctx, "")
			r.Logger.InfoContext(jobCtx, "batch job",
				"index", i,
				"span", span,
			)
			if err := r.RunOne(jobCtx, input, &outputs[i]); err != nil {
				err = logs.WrapSpan(jobCtx, err)
				fmt.Fprintln(&outputs[i], err.Error())
			}
		}()
	}
	wg.Wait()

	for i := range outputs {
		fmt.Printf("== %s\n", inputs[i])
		os.Stdout.Write(outputs[i].Bytes())
	}
	return nil
}
