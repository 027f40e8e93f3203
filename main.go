package main

import (
	"errors"
	"github.com/urfave/cli/v2"
	"llist/logger"
	"llist/options"
	"llist/runner"
	"llist/util"
	"os"
)

const VERSION = "1.0.0"

func main() {
	cli.AppHelpTemplate = cli.AppHelpTemplate + `
EXIT CODES:
  0    Success
  201  Script path is invalid
  202  Script could not be parsed
  203  Stats output path is invalid
  204  List operations reported a condition (with --fail-on-error)
  1    Any other error
`

	app := &cli.App{
		Name:    "llist",
		Usage:   "Replay singly linked list operation scripts and report every outcome.",
		Flags:   options.GlobalFlags,
		Version: VERSION,
		Before: func(ctx *cli.Context) error {
			logOpts := options.ParseLogOptions(ctx)
			return logger.Init(logger.Config{
				Level:    logOpts.LogLevel,
				Verbose:  logOpts.VerboseLogging,
				FilePath: logOpts.LogFilePath,
			})
		},
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run operation scripts, each against its own list",
				Flags: options.RunFlags,
				Action: func(ctx *cli.Context) error {
					opts, err := options.ParseOptions(ctx)
					if err != nil {
						return err
					}
					_, err = runner.Run(opts, ctx.App.Writer)
					return err
				},
			},
			{
				Name:  "demo",
				Usage: "walk through every list operation on a fresh list",
				Action: func(ctx *cli.Context) error {
					runStats := runner.Demo(ctx.App.Writer)
					logger.Get().Infof("demo finished: %v operations, %v reported a condition", runStats.TotalSteps, runStats.FailedSteps)
					return nil
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		logger.Get().Errorf("failed: %v", err)
		var errorWithCode *util.ErrorWithCode
		if errors.As(err, &errorWithCode) {
			os.Exit(errorWithCode.StatusCode)
		}
		os.Exit(1)
	}
}
