package monitor

import "fmt"

// LoadStats counts what happened to each line of a schedule source.
type LoadStats struct {
	LinesRead   int // physical lines after the header, blank ones included
	Loaded      int
	Skipped     int
	Overwritten int
}

func NewLoadStats() *LoadStats {
	return &LoadStats{}
}

func (ls *LoadStats) RecordLine() {
	ls.LinesRead++
}

func (ls *LoadStats) RecordLoad(replaced bool) {
	ls.Loaded++
	if replaced {
		ls.Overwritten++
	}
}

func (ls *LoadStats) RecordSkip() {
	ls.Skipped++
}

// Distinct is the number of keys left in the index after overwrites.
func (ls *LoadStats) Distinct() int {
	return ls.Loaded - ls.Overwritten
}

func (ls *LoadStats) String() string {
	return fmt.Sprintf("lines=%d loaded=%d distinct=%d skipped=%d overwritten=%d",
		ls.LinesRead, ls.Loaded, ls.Distinct(), ls.Skipped, ls.Overwritten)
}
