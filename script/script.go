package script

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/gobwas/glob"
	"golang.org/x/net/html/charset"
	"llist/list"
	"llist/logger"
	"llist/stats"
)

const (
	READ_ATTEMPTS = 3
	READ_DELAY    = 20 * time.Millisecond
)

var ErrSyntax = errors.New("script syntax error")

//go:embed demo.llist
var demoSource string

type Instruction struct {
	Line    int
	Op      string
	Args    []string
	matcher glob.Glob
}

func (in *Instruction) String() string {
	if len(in.Args) == 0 {
		return in.Op
	}
	return fmt.Sprintf("%v %v", in.Op, strings.Join(in.Args, " "))
}

type Script struct {
	Name         string
	Instructions []*Instruction
}

// Step is the outcome of one executed instruction.
type Step struct {
	Script      string
	Instruction *Instruction
	Result      string
	Err         error
}

func (step Step) String() string {
	outcome := step.Result
	if step.Err != nil {
		outcome = fmt.Sprintf("error: %v", step.Err)
	}
	return fmt.Sprintf("%v:%v %v => %v", step.Script, step.Instruction.Line, step.Instruction, outcome)
}

// Parse reads one instruction per line. Blank lines and lines starting with
// '#' or '//' are skipped.
func Parse(name string, reader io.Reader) (*Script, error) {
	script := &Script{Name: name}
	scanner := bufio.NewScanner(reader)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		fields := strings.Fields(line)
		instruction := &Instruction{Line: lineNumber, Op: fields[0], Args: fields[1:]}
		op, found := operations[instruction.Op]
		if !found {
			return nil, fmt.Errorf("%w: %v:%v unknown operation '%v'", ErrSyntax, name, lineNumber, instruction.Op)
		}
		if len(instruction.Args) != op.args {
			return nil, fmt.Errorf("%w: %v:%v '%v' expects %v arguments, got %v",
				ErrSyntax, name, lineNumber, instruction.Op, op.args, len(instruction.Args))
		}
		if instruction.Op == "match" {
			matcher, err := compileMatcher(instruction.Args[0])
			if err != nil {
				return nil, fmt.Errorf("%w: %v:%v bad pattern '%v': %v", ErrSyntax, name, lineNumber, instruction.Args[0], err)
			}
			instruction.matcher = matcher
		}
		script.Instructions = append(script.Instructions, instruction)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script '%v': %w", name, err)
	}
	return script, nil
}

// Load reads and parses the script at filePath, decoding non UTF-8 content
// by its byte order mark.
func Load(filePath string) (*Script, error) {
	var content []byte
	err := retry.Do(
		func() error {
			var readErr error
			content, readErr = os.ReadFile(filePath)
			return readErr
		},
		retry.Attempts(READ_ATTEMPTS),
		retry.Delay(READ_DELAY),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, fs.ErrPermission)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read script at '%v': %w", filePath, err)
	}

	encoding, encodingName, _ := charset.DetermineEncoding(content, "text/plain")
	decoded, err := encoding.NewDecoder().Bytes(content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode script at '%v' as %v: %w", filePath, encodingName, err)
	}
	decoded = bytes.TrimPrefix(decoded, []byte("\ufeff"))
	logger.Get().Debugf("loaded script '%v' (%v, %v bytes)", filePath, encodingName, len(content))

	return Parse(filePath, bytes.NewReader(decoded))
}

// Demo returns the built-in walkthrough of every list operation.
func Demo() *Script {
	script, err := Parse("demo", strings.NewReader(demoSource))
	if err != nil {
		panic(err)
	}
	return script
}

// Run executes every instruction against l in order. Failing operations are
// recorded and do not stop the run. report may be nil.
func (script *Script) Run(l *list.List[string], report func(Step)) *stats.RunStats {
	runStats := stats.NewRunStats(script.Name)
	for _, instruction := range script.Instructions {
		result, err := operations[instruction.Op].exec(l, instruction)
		step := Step{Script: script.Name, Instruction: instruction, Result: result, Err: err}
		runStats.AddStep(instruction.Op, err)
		logger.Get().Debugf("%v", step)
		if report != nil {
			report(step)
		}
	}
	runStats.Finalize(l.Len())
	return runStats
}
