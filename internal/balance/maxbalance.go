package balance

import "time"

// Result is the maximum balance held during Year and the inclusive range of
// days over which it held. NoActivity is set when no entry falls in the year;
// the other fields are then zero.
type Result struct {
	Year       int
	Max        int64
	Start      time.Time
	End        time.Time
	NoActivity bool

	// InYear lists the balances known inside the year, oldest first. The
	// balance carried into the year appears as a sample dated January 1 with
	// a zero delta when no entry falls on that day.
	InYear []BalanceSample
}

type options struct {
	asOf time.Time
}

type Option func(*options)

// WithAsOf caps the current year at the given day instead of today.
func WithAsOf(t time.Time) Option {
	return func(o *options) {
		o.asOf = t
	}
}

type span struct {
	balance    int64
	start, end time.Time
}

// MaxBalance finds the largest end-of-day balance held during year.
//
// Every entry contributes to the running balance, so entries dated after the
// year still move the balance carried out of it and entries before it are
// only reached when walking past January 1.
func MaxBalance(current int64, entries []Entry, year int, opts ...Option) Result {
	o := options{asOf: time.Now()}
	for _, opt := range opts {
		opt(&o)
	}

	res := Result{Year: year}

	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	if asOf := Day(o.asOf); asOf.Before(yearEnd) {
		yearEnd = asOf
	}
	if yearEnd.Before(yearStart) {
		res.NoActivity = true
		return res
	}

	samples := Reconstruct(current, entries)

	first, last := -1, -1
	for i, s := range samples {
		if s.Date.Before(yearStart) || s.Date.After(yearEnd) {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	if first < 0 {
		res.NoActivity = true
		return res
	}

	var spans []span
	if !samples[first].Date.Equal(yearStart) {
		carried := Opening(samples)
		if first > 0 {
			carried = samples[first-1].Balance
		}
		res.InYear = append(res.InYear, BalanceSample{Date: yearStart, Balance: carried})
		spans = append(spans, span{
			balance: carried,
			start:   yearStart,
			end:     samples[first].Date.AddDate(0, 0, -1),
		})
	}

	for i := first; i <= last; i++ {
		end := yearEnd
		if i+1 < len(samples) {
			if next := samples[i+1].Date.AddDate(0, 0, -1); next.Before(end) {
				end = next
			}
		}
		res.InYear = append(res.InYear, samples[i])
		spans = mergeSpan(spans, span{balance: samples[i].Balance, start: samples[i].Date, end: end})
	}

	best := spans[0]
	for _, s := range spans[1:] {
		// ties resolve to the most recent span
		if s.balance >= best.balance {
			best = s
		}
	}

	res.Max = best.balance
	res.Start = best.start
	res.End = best.end

	return res
}

// mergeSpan appends s, extending the previous span instead when the balance
// did not change between them.
func mergeSpan(spans []span, s span) []span {
	if n := len(spans); n > 0 && spans[n-1].balance == s.balance {
		spans[n-1].end = s.end
		return spans
	}
	return append(spans, s)
}
