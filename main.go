package main

import (
	"github.com/urfave/cli/v2"
	"listops/demo"
	"listops/options"
	"listops/util"
	"log"
	"os"
)

const VERSION = "1.0.0"

func main() {
	cli.AppHelpTemplate =
		`NAME:
   list-ops - 1.0.0 - Run singly linked list scenarios: insertion, deletion, front/back split, sort and merge.

USAGE:
   list-ops [optional flags]

OPTIONS:
   --scenario value, -s value  patterns of scenario names to run, comma delimited, may contain any glob pattern (default: all)
   --exclude value, -e value   patterns of scenario names to skip, comma delimited, may contain any glob pattern
   --values value, -n value    integers fed to the input scenarios, comma delimited
   --input value, -i value     path to a file of integers fed to the input scenarios, separated by commas or whitespace
   --workers value             number of scenarios to run concurrently (default: 1)
   --stats-out value           write a JSON report of the final list of every scenario to this path
   --ignore-case               ignore case when checking scenario names against patterns (default: false)
   --verbose, --vv             verbose logging (default: false)
   --help, -h                  show help (default: false)
   --version, -v               print the version (default: false)

SCENARIOS:
   insert-delete, front-back-split, merge
   input-sort, input-split, input-sorted-insert, input-delete (need --values or --input)

EXIT CODES:
  0    Success
  201  Input path is invalid
  202  Input values are not integers
  203  Scenario pattern is invalid
  204  No scenario matched
  205  Stats output path is invalid
  1    Any other error
`

	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
	app := &cli.App{
		Name:    "list-ops",
		Usage:   "Run singly linked list scenarios: insertion, deletion, front/back split, sort and merge.",
		Flags:   options.Flags,
		Version: VERSION,
		Action: func(ctx *cli.Context) error {
			opts, err := options.ParseOptions(ctx)
			if err != nil {
				return err
			}
			return demo.Run(opts, os.Stdout)
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Printf("failed: %v", err)
		if statusCode := util.StatusCodeOf(err); statusCode != 0 {
			os.Exit(statusCode)
		}
		os.Exit(1)
	}
}
