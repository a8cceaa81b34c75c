package options

import (
	"fmt"
	"github.com/urfave/cli/v2"
	"listops/util"
	"os"
	"path/filepath"
	"strings"
)

var Flags = []cli.Flag{
	&cli.StringFlag{
		Name:     "scenario",
		Aliases:  []string{"s"},
		Value:    "",
		Usage:    "patterns of scenario names to run, comma delimited, may contain any glob pattern (default: all)",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "exclude",
		Aliases:  []string{"e"},
		Value:    "",
		Usage:    "patterns of scenario names to skip, comma delimited, may contain any glob pattern",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "values",
		Aliases:  []string{"n"},
		Value:    "",
		Usage:    "integers fed to the input scenarios, comma delimited",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "input",
		Aliases:  []string{"i"},
		Value:    "",
		Usage:    "path to a file of integers fed to the input scenarios, separated by commas or whitespace",
		Required: false,
	},
	&cli.IntFlag{
		Name:     "workers",
		Value:    1,
		Usage:    "number of scenarios to run concurrently",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "stats-out",
		Value:    "",
		Usage:    "write a JSON report of the final list of every scenario to this path",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "ignore-case",
		Value:    false,
		Usage:    "ignore case when checking scenario names against patterns",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "verbose",
		Aliases:  []string{"vv"},
		Value:    false,
		Usage:    "verbose logging",
		Required: false,
	},
}

type Options struct {
	IncludePatterns    []string
	ExcludePatterns    []string
	Values             []int
	InputPath          string
	Workers            int
	StatsPath          string
	IgnoreCasePatterns bool
	VerboseLogging     bool
}

func splitListFlag(flag string) []string {
	if len(flag) == 0 {
		return []string{}
	}
	parts := strings.Split(flag, ",")
	patterns := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if len(part) > 0 {
			patterns = append(patterns, part)
		}
	}
	return patterns
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

func ParseOptions(c *cli.Context) (*Options, error) {
	opts := &Options{
		IncludePatterns:    splitListFlag(c.String("scenario")),
		ExcludePatterns:    splitListFlag(c.String("exclude")),
		InputPath:          c.String("input"),
		Workers:            c.Int("workers"),
		StatsPath:          c.String("stats-out"),
		IgnoreCasePatterns: c.Bool("ignore-case"),
		VerboseLogging:     c.Bool("verbose"),
	}

	var err error
	opts.Values, err = util.ParseValues(c.String("values"))
	if err != nil {
		return nil, err
	}

	if opts.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %v", opts.Workers)
	}

	if len(opts.InputPath) > 0 {
		err = validateFile(opts.InputPath)
		if err != nil {
			return nil, &util.ErrorWithCode{
				StatusCode:    util.ERROR_BAD_INPUT_PATH,
				InternalError: fmt.Errorf("input at '%v' is missing or invalid: %v", opts.InputPath, err),
			}
		}
	}

	if len(opts.StatsPath) > 0 {
		err = validateDirectory(filepath.Dir(opts.StatsPath), true)
		if err != nil {
			return nil, &util.ErrorWithCode{
				StatusCode:    util.ERROR_BAD_STATS_PATH,
				InternalError: err,
			}
		}
	}

	return opts, nil
}
