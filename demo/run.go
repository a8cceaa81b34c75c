package demo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"github.com/gobwas/glob"
	"io"
	"listops/list"
	"listops/options"
	"listops/parallel"
	"listops/stats"
	"listops/util"
	"log"
	"os"
	"strings"
)

const (
	STATS_PERMISSIONS = 0666
)

type runner struct {
	includePatterns []glob.Glob
	excludePatterns []glob.Glob
	opts            *options.Options
}

type scenarioResult struct {
	scenario   scenario
	transcript bytes.Buffer
	final      *list.List
}

// Run executes the selected scenarios and writes their transcripts to out in registry order.
func Run(opts *options.Options, out io.Writer) (err error) {

	r := &runner{
		opts: opts,
	}

	includes := opts.IncludePatterns
	if len(includes) == 0 {
		includes = []string{"*"}
	}
	r.includePatterns, err = r.compileGlobs(includes, "include")
	if err != nil {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_PATTERN,
			InternalError: fmt.Errorf("failed to compile include patterns '%v': %v", includes, err),
		}
	}
	r.excludePatterns, err = r.compileGlobs(opts.ExcludePatterns, "exclude")
	if err != nil {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_PATTERN,
			InternalError: fmt.Errorf("failed to compile exclude patterns '%v': %v", opts.ExcludePatterns, err),
		}
	}

	values, err := r.collectValues()
	if err != nil {
		return err
	}

	hasInput := len(opts.Values) > 0 || len(opts.InputPath) > 0
	selected := r.selectScenarios(hasInput)
	if len(selected) == 0 {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_NO_SCENARIO,
			InternalError: fmt.Errorf("no scenario matches include patterns '%v' and exclude patterns '%v', known scenarios: %v", includes, opts.ExcludePatterns, strings.Join(ScenarioNames(), ", ")),
		}
	}

	results, err := r.runScenarios(selected, values)
	if err != nil {
		return err
	}

	for i, result := range results {
		if i > 0 {
			if _, err = fmt.Fprintln(out); err != nil {
				return fmt.Errorf("failed to write transcripts: %w", err)
			}
		}
		if _, err = out.Write(result.transcript.Bytes()); err != nil {
			return fmt.Errorf("failed to write transcript of '%v': %w", result.scenario.Name, err)
		}
	}

	if len(opts.StatsPath) > 0 {
		return r.writeStats(results)
	}
	return nil
}

func (r *runner) compileGlobs(patterns []string, title string) ([]glob.Glob, error) {
	r.verboseLog("%v %v patterns:\n%v", len(patterns), title, strings.Join(patterns, ", "))
	globs := make([]glob.Glob, len(patterns))
	for i, pattern := range patterns {
		if r.opts.IgnoreCasePatterns {
			pattern = strings.ToLower(pattern)
		}
		compiled, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}
		globs[i] = compiled
	}
	return globs, nil
}

func matches(name string, patterns []glob.Glob) bool {
	for _, pattern := range patterns {
		if pattern.Match(name) {
			return true
		}
	}
	return false
}

func (r *runner) verboseLog(format string, v ...interface{}) {
	if r.opts.VerboseLogging {
		log.Printf(format, v...)
	}
}

func (r *runner) collectValues() ([]int, error) {
	values := append([]int{}, r.opts.Values...)
	if len(r.opts.InputPath) == 0 {
		return values, nil
	}
	fileValues, err := LoadValues(r.opts.InputPath)
	if err != nil {
		return nil, err
	}
	r.verboseLog("loaded %v values from '%v'", len(fileValues), r.opts.InputPath)
	return append(values, fileValues...), nil
}

func (r *runner) selectScenarios(hasInput bool) []scenario {
	var selected []scenario
	for _, s := range scenarios {
		nameToCheck := s.Name
		if r.opts.IgnoreCasePatterns {
			nameToCheck = strings.ToLower(nameToCheck)
		}
		if !matches(nameToCheck, r.includePatterns) {
			r.verboseLog("--- skipping '%v' - not matching include patterns", s.Name)
			continue
		}
		if matches(nameToCheck, r.excludePatterns) {
			r.verboseLog("--- skipping '%v' - matching exclude patterns", s.Name)
			continue
		}
		if s.NeedsInput && !hasInput {
			r.verboseLog("--- skipping '%v' - no input values", s.Name)
			continue
		}
		selected = append(selected, s)
	}
	return selected
}

func (r *runner) runScenarios(selected []scenario, values []int) ([]*scenarioResult, error) {
	results := make([]*scenarioResult, len(selected))
	queue := parallel.CreateJobQueue(len(selected), r.opts.Workers)
	defer queue.Close()

	for i, s := range selected {
		result := &scenarioResult{scenario: s}
		results[i] = result
		err := queue.Add(func() error {
			out := &transcript{buffer: &result.transcript}
			out.line("%v", s.Title)
			final, err := s.run(out, values)
			if err != nil {
				return fmt.Errorf("scenario '%v' failed: %w", s.Name, err)
			}
			result.final = final
			r.verboseLog("+++ '%v' finished with %v values", s.Name, final.Len())
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	if err := queue.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *runner) writeStats(results []*scenarioResult) error {
	report := stats.NewReport()
	for _, result := range results {
		if result.final == nil {
			continue
		}
		report.Add(result.scenario.Name, stats.Collect(result.final.All()))
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}
	err = os.WriteFile(r.opts.StatsPath, data, STATS_PERMISSIONS)
	if err != nil {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_STATS_PATH,
			InternalError: fmt.Errorf("failed to write stats to '%v': %w", r.opts.StatsPath, err),
		}
	}
	log.Printf("written stats of %v scenarios to '%v'", len(report.Scenarios), r.opts.StatsPath)
	return nil
}
