package stats

import (
	"iter"
	"math"
)

// Report represents the stats output of a run, keyed by scenario name
type Report struct {
	Scenarios   map[string]*ListStats `json:"scenarios"`
	TotalValues int                   `json:"totalValues"`
}

// ListStats represents statistics for the values of a single list
type ListStats struct {
	Length int     `json:"length"`
	Min    int     `json:"min"`
	Max    int     `json:"max"`
	Sum    int64   `json:"sum"`
	Mean   float64 `json:"mean"`
	Sorted bool    `json:"sorted"`
	last   int
}

// NewReport creates a new Report instance with initialized maps
func NewReport() *Report {
	return &Report{
		Scenarios:   make(map[string]*ListStats),
		TotalValues: 0,
	}
}

// Add records the stats of a scenario's final list
func (r *Report) Add(scenario string, listStats *ListStats) {
	r.Scenarios[scenario] = listStats
	r.TotalValues += listStats.Length
}

// NewListStats creates an empty ListStats; an empty list counts as sorted
func NewListStats() *ListStats {
	return &ListStats{Sorted: true}
}

// Collect accumulates every value of the sequence and finalizes the result
func Collect(values iter.Seq[int]) *ListStats {
	ls := NewListStats()
	for value := range values {
		ls.AddValue(value)
	}
	ls.Finalize()
	return ls
}

// AddValue adds the next value in list order
func (ls *ListStats) AddValue(value int) {
	if ls.Length == 0 {
		ls.Min, ls.Max = value, value
	} else {
		if value < ls.last {
			ls.Sorted = false
		}
		ls.Min = min(ls.Min, value)
		ls.Max = max(ls.Max, value)
	}
	ls.Length++
	ls.Sum += int64(value)
	ls.last = value
}

// Finalize calculates derived fields (mean rounded to two decimals) from accumulated data
func (ls *ListStats) Finalize() {
	if ls.Length == 0 {
		ls.Mean = 0
		return
	}
	mean := float64(ls.Sum) / float64(ls.Length)
	ls.Mean = math.Round(mean*100) / 100
}
