package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
)

// RunStats represents the outcome counters of a single script run
type RunStats struct {
	Script            string              `json:"script"`
	CountersByOp      map[string]*OpStats `json:"countersByOp"`
	TotalSteps        int                 `json:"totalSteps"`
	FailedSteps       int                 `json:"failedSteps"`
	FinalSize         int                 `json:"finalSize"`
	errorsByCondition map[string]int
}

// OpStats represents counters for a specific operation
type OpStats struct {
	Calls  int `json:"calls"`
	Errors int `json:"errors"`
}

// NewRunStats creates a new RunStats instance with initialized maps
func NewRunStats(script string) *RunStats {
	return &RunStats{
		Script:            script,
		CountersByOp:      make(map[string]*OpStats),
		errorsByCondition: make(map[string]int),
	}
}

// AddStep records one executed operation. A nil err counts as success.
func (rs *RunStats) AddStep(op string, err error) {
	rs.TotalSteps++

	if _, exists := rs.CountersByOp[op]; !exists {
		rs.CountersByOp[op] = &OpStats{}
	}
	rs.CountersByOp[op].Calls++

	if err != nil {
		rs.FailedSteps++
		rs.CountersByOp[op].Errors++
		rs.errorsByCondition[err.Error()]++
	}
}

// Finalize records the list size left once the script completed
func (rs *RunStats) Finalize(finalSize int) {
	rs.FinalSize = finalSize
}

// Conditions returns the distinct error messages seen, sorted
func (rs *RunStats) Conditions() []string {
	conditions := make([]string, 0, len(rs.errorsByCondition))
	for condition := range rs.errorsByCondition {
		conditions = append(conditions, condition)
	}
	sort.Strings(conditions)
	return conditions
}

// Collector gathers RunStats from concurrently running scripts
type Collector struct {
	mutex sync.Mutex
	runs  []*RunStats
}

func (c *Collector) Add(rs *RunStats) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.runs = append(c.runs, rs)
}

// Runs returns the collected stats ordered by script name
func (c *Collector) Runs() []*RunStats {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	runs := make([]*RunStats, len(c.runs))
	copy(runs, c.runs)
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Script < runs[j].Script
	})
	return runs
}

// FailedSteps sums failed steps across all runs
func (c *Collector) FailedSteps() int {
	total := 0
	for _, rs := range c.Runs() {
		total += rs.FailedSteps
	}
	return total
}

func (c *Collector) WriteJSON(filePath string) error {
	data, err := json.MarshalIndent(c.Runs(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	err = os.WriteFile(filePath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write stats to '%v': %w", filePath, err)
	}
	return nil
}
