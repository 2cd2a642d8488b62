// Package balance rebuilds historical account balances from a known current
// balance and the account's transaction deltas, and finds the maximum balance
// held during a calendar year.
package balance

import (
	"sort"
	"time"
)

// Entry is a single signed movement on an account, in minor units.
type Entry struct {
	Date   time.Time
	Amount int64
}

// BalanceSample is the balance at the end of Date. Delta is the net movement
// of every entry dated that day.
type BalanceSample struct {
	Date    time.Time
	Balance int64
	Delta   int64
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Ordered reports whether entries are sorted most recent first.
func Ordered(entries []Entry) bool {
	for i := 1; i < len(entries); i++ {
		if Day(entries[i].Date).After(Day(entries[i-1].Date)) {
			return false
		}
	}
	return true
}

// Reconstruct walks entries backward from current and returns one sample per
// distinct date, oldest first. The input slice is not modified and may be in
// any order.
func Reconstruct(current int64, entries []Entry) []BalanceSample {
	days := foldByDay(entries)

	samples := make([]BalanceSample, len(days))
	running := current
	for i, d := range days {
		samples[len(days)-1-i] = BalanceSample{
			Date:    d.Date,
			Balance: running,
			Delta:   d.Amount,
		}
		running -= d.Amount
	}

	return samples
}

// Opening returns the balance held before the oldest sample.
func Opening(samples []BalanceSample) int64 {
	if len(samples) == 0 {
		return 0
	}
	return samples[0].Balance - samples[0].Delta
}

// foldByDay returns one entry per calendar date, most recent first, with the
// amounts of same-day entries summed.
func foldByDay(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	for i, e := range entries {
		sorted[i] = Entry{Date: Day(e.Date), Amount: e.Amount}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	var days []Entry
	for _, e := range sorted {
		if n := len(days); n > 0 && days[n-1].Date.Equal(e.Date) {
			days[n-1].Amount += e.Amount
			continue
		}
		days = append(days, e)
	}

	return days
}
