// Package analysis folds parsed records into per-activity, per-process and
// per-hour totals.
package analysis

import (
	"sort"

	"github.com/alexanderramin/dailylog/internal/domain"
)

// Entry is one label with its summed duration.
type Entry struct {
	Label   string
	Seconds int
}

// Summary is the aggregation of one day's records. It is rebuilt per run
// and never mutates the input.
type Summary struct {
	ByName    map[string]int
	ByProcess map[string]int
	// ByHour buckets records by the hour of Start. A record crossing an hour
	// boundary stays entirely in its starting hour.
	ByHour       map[int][]domain.Record
	TotalSeconds int

	nameOrder    []string
	processOrder []string
}

// Aggregate sums DurationSeconds by name and process and buckets records by
// start hour, preserving input order inside each bucket.
func Aggregate(records []domain.Record) Summary {
	s := Summary{
		ByName:    make(map[string]int),
		ByProcess: make(map[string]int),
		ByHour:    make(map[int][]domain.Record),
	}
	for _, r := range records {
		secs := r.DurationSeconds()

		if _, ok := s.ByName[r.Name]; !ok {
			s.nameOrder = append(s.nameOrder, r.Name)
		}
		s.ByName[r.Name] += secs

		if _, ok := s.ByProcess[r.Process]; !ok {
			s.processOrder = append(s.processOrder, r.Process)
		}
		s.ByProcess[r.Process] += secs

		h := r.Start.Hour()
		s.ByHour[h] = append(s.ByHour[h], r)
		s.TotalSeconds += secs
	}
	return s
}

// TopActivities returns up to n activities by descending duration. Equal
// durations keep first-encounter order. n <= 0 returns all.
func (s Summary) TopActivities(n int) []Entry {
	return ranked(s.nameOrder, s.ByName, n)
}

// TopProcesses is TopActivities for process totals.
func (s Summary) TopProcesses(n int) []Entry {
	return ranked(s.processOrder, s.ByProcess, n)
}

// Hours returns the populated hour buckets in ascending order.
func (s Summary) Hours() []int {
	hours := make([]int, 0, len(s.ByHour))
	for h := range s.ByHour {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	return hours
}

func ranked(order []string, totals map[string]int, n int) []Entry {
	entries := make([]Entry, 0, len(order))
	for _, label := range order {
		entries = append(entries, Entry{Label: label, Seconds: totals[label]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Seconds > entries[j].Seconds
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
