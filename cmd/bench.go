// Copyright © 2025 Microsoft <wastore@microsoft.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/process"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/wastore/forwardlist/common"
)

const (
	workersFlag = "workers"
	roundsFlag  = "ops"

	// push_back, push_front, find, insert_after, erase_after, pop_front
	benchOperationsPerRound = 6

	// how many rounds a worker runs between checks for cancellation
	benchCancellationStride = 1024
)

// represents the raw bench command input from the user
type rawBenchCmdArgs struct {
	workers int
	rounds  int
}

type cookedBenchCmdArgs struct {
	workers int
	rounds  int
}

func (raw rawBenchCmdArgs) cook(flags *pflag.FlagSet) (cookedBenchCmdArgs, error) {
	cooked := cookedBenchCmdArgs{workers: raw.workers, rounds: raw.rounds}

	if !flags.Changed(workersFlag) {
		cooked.workers = runtime.NumCPU()
		env := common.EEnvironmentVariable.BenchWorkers()
		if value, ok := common.LookupEnvironmentVariable(env); ok {
			n, err := strconv.Atoi(value)
			if err != nil {
				return cooked, errors.Wrapf(err, "%s must be a whole number", env.Name)
			}
			cooked.workers = n
		}
	}

	if cooked.workers <= 0 {
		return cooked, errors.New(workersFlag + " must be greater than zero")
	}
	if cooked.rounds <= 0 {
		return cooked, errors.New(roundsFlag + " must be greater than zero")
	}
	return cooked, nil
}

// BenchSummary is what the bench command reports once every worker finished.
type BenchSummary struct {
	Workers             int
	RoundsPerWorker     int
	Operations          uint64
	ElapsedSeconds      float64
	OperationsPerSecond float64
	AllocatedNodes      uint64
	ReleasedNodes       uint64
	PeakArenaSlots      int // summed over workers
	ResidentBytes       uint64
}

func (b BenchSummary) builder() OutputBuilder {
	return func(format OutputFormat) string {
		if format == EOutputFormat.Json() {
			return GetJsonStringFromTemplate(b)
		}

		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Workers: %d\n", b.Workers))
		sb.WriteString(fmt.Sprintf("Rounds per worker: %d\n", b.RoundsPerWorker))
		sb.WriteString(fmt.Sprintf("Operations: %d\n", b.Operations))
		sb.WriteString(fmt.Sprintf("Elapsed: %.3fs\n", b.ElapsedSeconds))
		sb.WriteString(fmt.Sprintf("Operations per second: %.0f\n", b.OperationsPerSecond))
		sb.WriteString(fmt.Sprintf("Nodes allocated: %d, released: %d\n", b.AllocatedNodes, b.ReleasedNodes))
		sb.WriteString(fmt.Sprintf("Peak arena slots: %d\n", b.PeakArenaSlots))
		sb.WriteString("Resident memory: " + byteSizeToString(int64(b.ResidentBytes)))
		return sb.String()
	}
}

func init() {
	subcommands = append(subcommands, newBenchCmd)
}

func newBenchCmd(s *session) *cobra.Command {
	raw := rawBenchCmdArgs{}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: benchCmdShortDescription,
		Long:  benchCmdLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cooked, err := raw.cook(cmd.Flags())
			if err != nil {
				return err
			}

			summary, err := runBench(cmd.Context(), cooked, s.logger)
			if err != nil {
				return err
			}
			s.output.EndOfJob(summary.builder())
			return nil
		},
	}

	benchCmd.Flags().IntVar(&raw.workers, workersFlag, 0, "Number of lists driven in parallel, one per goroutine. Defaults to "+
		common.EEnvironmentVariable.BenchWorkers().Name+", or the number of logical cores.")
	benchCmd.Flags().IntVar(&raw.rounds, roundsFlag, 10000, "Rounds each worker runs against its list.")
	return benchCmd
}

func runBench(ctx context.Context, cooked cookedBenchCmdArgs, logger common.ILogger) (BenchSummary, error) {
	counters := make([]benchCounter, cooked.workers)
	start := time.Now()

	eg, egCtx := errgroup.WithContext(ctx)
	for w := 0; w < cooked.workers; w++ {
		eg.Go(func() error {
			c, err := benchWorker(egCtx, cooked.rounds, logger)
			counters[w] = c
			return errors.Wrapf(err, "bench worker %d", w)
		})
	}
	if err := eg.Wait(); err != nil {
		return BenchSummary{}, err
	}
	elapsed := time.Since(start)

	summary := BenchSummary{
		Workers:         cooked.workers,
		RoundsPerWorker: cooked.rounds,
		Operations:      uint64(cooked.workers) * uint64(cooked.rounds) * benchOperationsPerRound,
		ElapsedSeconds:  elapsed.Seconds(),
		ResidentBytes:   residentBytes(logger),
	}
	if elapsed > 0 {
		summary.OperationsPerSecond = float64(summary.Operations) / elapsed.Seconds()
	}
	for _, c := range counters {
		summary.AllocatedNodes += c.final.AllocatedNodes
		summary.ReleasedNodes += c.final.ReleasedNodes
		summary.PeakArenaSlots += c.peakSlots
	}

	if summary.AllocatedNodes != summary.ReleasedNodes {
		return summary, errors.Errorf("%d of %d nodes were never released", summary.AllocatedNodes-summary.ReleasedNodes, summary.AllocatedNodes)
	}
	return summary, nil
}

type benchCounter struct {
	final     common.LinkedListCounter
	peakSlots int
}

// benchWorker owns its list for the whole run; lists are never shared between goroutines.
func benchWorker(ctx context.Context, rounds int, logger common.ILogger) (benchCounter, error) {
	l := common.NewLinkedListWithOptions(common.LinkedListOptions[int]{InitialCapacity: rounds + 2, Logger: logger})

	finish := func(err error) (benchCounter, error) {
		c := benchCounter{peakSlots: l.Counter().ArenaSlots}
		l.Destroy()
		c.final = l.Counter()
		return c, err
	}

	for i := 1; i <= rounds; i++ {
		if i%benchCancellationStride == 0 {
			if err := ctx.Err(); err != nil {
				return finish(err)
			}
		}

		l.PushBack(i)
		l.PushFront(-i)

		front := l.Find(-i)
		if _, err := l.InsertAfter(front, i); err != nil {
			return finish(err)
		}
		if _, err := l.EraseAfter(front); err != nil {
			return finish(err)
		}
		if _, err := l.PopFront(); err != nil {
			return finish(err)
		}
	}

	if l.Len() != int64(rounds) {
		return finish(errors.Errorf("list holds %d elements after %d rounds", l.Len(), rounds))
	}
	return finish(nil)
}

func residentBytes(logger common.ILogger) uint64 {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err == nil {
		var memInfo *process.MemoryInfoStat
		if memInfo, err = p.MemoryInfo(); err == nil {
			return memInfo.RSS
		}
	}

	logger.Log(common.LogWarning, "cannot read resident memory: "+err.Error())
	return 0
}

func byteSizeToString(size int64) string {
	units := []string{"B", "KiB", "MiB", "GiB", "TiB"}
	unit := 0
	floatSize := float64(size)

	for floatSize >= 1024 && unit < len(units)-1 {
		unit++
		floatSize /= 1024
	}

	return strconv.FormatFloat(floatSize, 'f', 2, 64) + " " + units[unit]
}
