package options

import (
	"fmt"
	"github.com/urfave/cli/v2"
	"llist/util"
	"os"
	"path/filepath"
	"strings"
)

var GlobalFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:     "verbose",
		Aliases:  []string{"vv"},
		Value:    false,
		Usage:    "verbose logging",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "log-level",
		Value:    "INFO",
		Usage:    "log level: CRITICAL, ERROR, WARNING, NOTICE, INFO or DEBUG",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "log-file",
		Value:    "",
		Usage:    "also write logs to this file, rotated daily",
		Required: false,
	},
}

var RunFlags = []cli.Flag{
	&cli.StringFlag{
		Name:     "script",
		Aliases:  []string{"s"},
		Usage:    "paths of operation scripts to run, comma delimited",
		Required: true,
	},
	&cli.IntFlag{
		Name:     "workers",
		Aliases:  []string{"w"},
		Value:    4,
		Usage:    "number of scripts to run concurrently",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "stats",
		Value:    "",
		Usage:    "write per-script operation counters as JSON to this file",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "fail-on-error",
		Value:    false,
		Usage:    "exit with an error status when any list operation reported a condition",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "quiet",
		Aliases:  []string{"q"},
		Value:    false,
		Usage:    "print only the final rendering of each list",
		Required: false,
	},
}

type LogOptions struct {
	VerboseLogging bool
	LogLevel       string
	LogFilePath    string
}

type Options struct {
	ScriptPaths []string
	Workers     int
	StatsPath   string
	FailOnError bool
	Quiet       bool
}

func splitListFlag(flag string) []string {
	if len(flag) == 0 {
		return []string{}
	}
	items := []string{}
	for _, item := range strings.Split(flag, ",") {
		item = strings.TrimSpace(item)
		if len(item) > 0 {
			items = append(items, item)
		}
	}
	return items
}

func validateFile(filePath string) error {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist at %v", filePath)
	}
	if err != nil {
		return fmt.Errorf("file error at %v: %w", filePath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("file is actually a directory at %v", filePath)
	}
	return nil
}

func validateDirectory(dirPath string, createIfNotExist bool) error {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		if !createIfNotExist {
			return fmt.Errorf("directory does not exist at %v", dirPath)
		}
		err = os.MkdirAll(dirPath, 0777)
		if err != nil {
			return fmt.Errorf("failed to create directory at %v: %w", dirPath, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("directory error at %v: %w", dirPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("directory is actually a file at %v", dirPath)
	}
	return nil
}

func ParseLogOptions(c *cli.Context) *LogOptions {
	return &LogOptions{
		VerboseLogging: c.Bool("verbose"),
		LogLevel:       strings.ToUpper(c.String("log-level")),
		LogFilePath:    c.String("log-file"),
	}
}

func ParseOptions(c *cli.Context) (*Options, error) {
	opts := &Options{
		ScriptPaths: splitListFlag(c.String("script")),
		Workers:     c.Int("workers"),
		StatsPath:   c.String("stats"),
		FailOnError: c.Bool("fail-on-error"),
		Quiet:       c.Bool("quiet"),
	}

	err := opts.Validate()
	if err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate checks the script and stats paths, creating the stats directory if needed.
func (opts *Options) Validate() error {
	if len(opts.ScriptPaths) == 0 {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_SCRIPT_PATH,
			InternalError: fmt.Errorf("no script paths provided"),
		}
	}

	for _, scriptPath := range opts.ScriptPaths {
		err := validateFile(scriptPath)
		if err != nil {
			return &util.ErrorWithCode{
				StatusCode:    util.ERROR_BAD_SCRIPT_PATH,
				InternalError: fmt.Errorf("script at '%v' is missing or invalid: %v", scriptPath, err),
			}
		}
	}

	if opts.Workers < 1 {
		opts.Workers = 1
	}

	if len(opts.StatsPath) > 0 {
		err := validateDirectory(filepath.Dir(opts.StatsPath), true)
		if err != nil {
			return &util.ErrorWithCode{
				StatusCode:    util.ERROR_BAD_STATS_PATH,
				InternalError: err,
			}
		}
	}

	return nil
}
