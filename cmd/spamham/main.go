package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/kpuputti/spamham/config"
	"github.com/kpuputti/spamham/pipeline"
	"github.com/kpuputti/spamham/pkg/errors"
	"github.com/kpuputti/spamham/pkg/log"
)

const progname = "spamham"

// Exit codes.
const (
	exitOK            = 0
	exitUnknownMethod = 1
	exitNotEnoughArgs = 2
	exitFailure       = 3
)

const usage = `Usage: spamham [global options] <method> [args]

Methods:
  train <classifier> <train_file>
      train the classifier with a data file and print its success
  classify <classifier> <train_file> <data_file> <output_file>
      train and classify the given data into an output file
  validate <output_file> <labeled_file>
      validate a generated output file against a labeled data file
`

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// run executes the command line args and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if countPositionals(args[1:]) < 3 {
		fmt.Fprintln(stderr, "Error: Not enough arguments")
		fmt.Fprint(stderr, usage)
		return exitNotEnoughArgs
	}

	var runner *pipeline.Runner

	app := new(cli.Command)

	app.Name = progname
	app.Usage = "spam/ham classification harness"
	app.HideHelpCommand = true
	app.Writer = stdout
	app.ErrWriter = stderr

	// Errors are mapped to exit codes below instead of exiting here.
	app.ExitErrHandler = func(context.Context, *cli.Command, error) {}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "path to the YAML configuration file",
			Sources: cli.EnvVars("SPAMHAM_CONFIG"),
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "seed of the random source (0 = time-seeded)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "debug, info, warn or error",
		},
	}

	app.Before = func(ctx context.Context, c *cli.Command) (context.Context, error) {
		cfg := config.Default()
		if p := c.String("config"); p != "" {
			var err error
			if cfg, err = config.Load(p); err != nil {
				return ctx, err
			}
		}
		if c.IsSet("seed") {
			cfg.Seed = c.Int64("seed")
		}
		if c.IsSet("log-level") {
			cfg.LogLevel = c.String("log-level")
		}
		if err := cfg.Validate(); err != nil {
			return ctx, err
		}

		logger, err := log.SetupLoggerWriter(stderr, cfg.LogLevel)
		if err != nil {
			return ctx, err
		}
		logger.Debug("configuration loaded", log.ConfigPathKey, c.String("config"))

		runner = pipeline.New(cfg, pipeline.WithLogger(logger), pipeline.WithOutput(stdout))
		return ctx, nil
	}

	// Reached when the first positional is not a known method.
	app.Action = func(_ context.Context, c *cli.Command) error {
		fmt.Fprint(stderr, usage)
		return cli.Exit(fmt.Sprintf("Error: Unknown method: %s", c.Args().First()), exitUnknownMethod)
	}

	app.Commands = []*cli.Command{
		{
			Name:      "train",
			Usage:     "train a classifier and evaluate it on held-out data",
			ArgsUsage: "<classifier> <train_file>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "plot",
					Usage: "save a chart of the metrics to this image file",
				},
			},
			Action: func(ctx context.Context, c *cli.Command) error {
				if err := requireArgs(c, 2); err != nil {
					return err
				}
				runner.PlotPath = c.String("plot")
				_, err := runner.Train(ctx, c.Args().Get(0), c.Args().Get(1))
				return err
			},
		},
		{
			Name:      "classify",
			Usage:     "train a classifier and label every row of a data file",
			ArgsUsage: "<classifier> <train_file> <data_file> <output_file>",
			Action: func(ctx context.Context, c *cli.Command) error {
				if err := requireArgs(c, 4); err != nil {
					return err
				}
				a := c.Args()
				_, err := runner.Classify(ctx, a.Get(0), a.Get(1), a.Get(2), a.Get(3))
				return err
			},
		},
		{
			Name:      "validate",
			Usage:     "compare a classification output file with labeled data",
			ArgsUsage: "<output_file> <labeled_file>",
			Action: func(ctx context.Context, c *cli.Command) error {
				if err := requireArgs(c, 2); err != nil {
					return err
				}
				_, err := runner.Validate(ctx, c.Args().Get(0), c.Args().Get(1))
				return err
			},
		},
	}

	if err := app.Run(ctx, args); err != nil {
		return exitWithError(stderr, err)
	}
	return exitOK
}

// valueFlags take their value from the next token unless written as
// --name=value.
var valueFlags = map[string]bool{
	"config":    true,
	"seed":      true,
	"log-level": true,
	"plot":      true,
}

// countPositionals counts the method name and its arguments, skipping flags
// and flag values. Everything after "--" is positional.
func countPositionals(args []string) int {
	n := 0
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return n + len(args) - i - 1
		}
		if len(arg) < 2 || arg[0] != '-' {
			n++
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if valueFlags[name] {
			i++
		}
	}
	return n
}

func requireArgs(c *cli.Command, n int) error {
	if c.Args().Len() < n {
		return cli.Exit(fmt.Sprintf("Error: Not enough arguments for %s: %s", c.Name, c.ArgsUsage), exitNotEnoughArgs)
	}
	return nil
}

func exitWithError(stderr io.Writer, err error) int {
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		fmt.Fprintln(stderr, err.Error())
		return coder.ExitCode()
	}

	fmt.Fprintf(stderr, "%s: error: %v\n", progname, err)
	return exitFailure
}
