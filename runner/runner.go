package runner

import (
	"bytes"
	"fmt"
	"io"
	"llist/list"
	"llist/logger"
	"llist/options"
	"llist/parallel"
	"llist/script"
	"llist/stats"
	"llist/util"
	"sync"
)

type scriptRunner struct {
	opts      *options.Options
	out       io.Writer
	outMutex  sync.Mutex
	collector *stats.Collector
}

// Run loads every configured script and executes each against its own list,
// writing the step log of a script as one block once that script finished.
func Run(opts *options.Options, out io.Writer) (*stats.Collector, error) {
	log := logger.Get()
	scripts := make([]*script.Script, 0, len(opts.ScriptPaths))
	for _, scriptPath := range opts.ScriptPaths {
		loaded, err := script.Load(scriptPath)
		if err != nil {
			return nil, &util.ErrorWithCode{
				StatusCode:    util.ERROR_BAD_SCRIPT,
				InternalError: err,
			}
		}
		scripts = append(scripts, loaded)
	}

	runner := &scriptRunner{
		opts:      opts,
		out:       out,
		collector: &stats.Collector{},
	}

	queue := parallel.CreateJobQueue(len(scripts), opts.Workers)
	defer queue.Close()
	for _, loaded := range scripts {
		err := queue.Add(func() error {
			return runner.runOne(loaded)
		})
		if err != nil {
			return nil, err
		}
	}
	if err := queue.Wait(); err != nil {
		return nil, err
	}

	if len(opts.StatsPath) > 0 {
		if err := runner.collector.WriteJSON(opts.StatsPath); err != nil {
			return nil, &util.ErrorWithCode{
				StatusCode:    util.ERROR_BAD_STATS_PATH,
				InternalError: err,
			}
		}
		log.Infof("stats written to '%v'", opts.StatsPath)
	}

	failed := runner.collector.FailedSteps()
	log.Infof("ran %v scripts, %v operations reported a condition", len(scripts), failed)
	if opts.FailOnError && failed > 0 {
		return runner.collector, &util.ErrorWithCode{
			StatusCode:    util.ERROR_OPERATIONS_FAILED,
			InternalError: fmt.Errorf("%v list operations reported a condition", failed),
		}
	}
	return runner.collector, nil
}

// Demo runs the built-in walkthrough script.
func Demo(out io.Writer) *stats.RunStats {
	runner := &scriptRunner{
		opts:      &options.Options{},
		out:       out,
		collector: &stats.Collector{},
	}
	_ = runner.runOne(script.Demo())
	return runner.collector.Runs()[0]
}

func (runner *scriptRunner) runOne(s *script.Script) error {
	buffer := &bytes.Buffer{}
	l := list.New[string]()
	runStats := s.Run(l, func(step script.Step) {
		if !runner.opts.Quiet {
			fmt.Fprintln(buffer, step)
		}
	})
	fmt.Fprintf(buffer, "%v: %v\n", s.Name, l)
	runner.collector.Add(runStats)

	runner.outMutex.Lock()
	defer runner.outMutex.Unlock()
	_, err := runner.out.Write(buffer.Bytes())
	if err != nil {
		return fmt.Errorf("failed to write output of '%v': %w", s.Name, err)
	}
	return nil
}
