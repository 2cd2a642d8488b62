package balance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestReconstruct(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		assert.Empty(t, Reconstruct(500, nil))
		assert.Equal(t, int64(0), Opening(nil))
	})

	t.Run("walks backward from current balance", func(t *testing.T) {
		entries := []Entry{
			{Date: date("2021-03-01"), Amount: -200},
			{Date: date("2021-02-01"), Amount: 500},
			{Date: date("2021-01-01"), Amount: 1000},
		}

		samples := Reconstruct(1300, entries)

		require.Len(t, samples, 3)
		assert.Equal(t, date("2021-01-01"), samples[0].Date)
		assert.Equal(t, int64(1000), samples[0].Balance)
		assert.Equal(t, int64(1500), samples[1].Balance)
		assert.Equal(t, int64(1300), samples[2].Balance)
		assert.Equal(t, int64(0), Opening(samples))
	})

	t.Run("folds same-day entries into one sample", func(t *testing.T) {
		entries := []Entry{
			{Date: date("2021-07-17"), Amount: -50},
			{Date: date("2021-07-17"), Amount: 20},
		}

		samples := Reconstruct(970, entries)

		require.Len(t, samples, 1)
		assert.Equal(t, int64(970), samples[0].Balance)
		assert.Equal(t, int64(-30), samples[0].Delta)
		assert.Equal(t, int64(1000), Opening(samples))
	})

	t.Run("ignores time of day and input order", func(t *testing.T) {
		entries := []Entry{
			{Date: date("2021-01-01").Add(9 * time.Hour), Amount: 10},
			{Date: date("2021-05-01"), Amount: 5},
			{Date: date("2021-01-01").Add(20 * time.Hour), Amount: 10},
		}
		assert.False(t, Ordered(entries))

		samples := Reconstruct(25, entries)

		require.Len(t, samples, 2)
		assert.Equal(t, date("2021-01-01"), samples[0].Date)
		assert.Equal(t, int64(20), samples[0].Balance)
		assert.Equal(t, int64(25), samples[1].Balance)
		assert.Equal(t, date("2021-01-01").Add(9*time.Hour), entries[0].Date, "input must not be modified")
	})
}

func TestReconstructRoundTrip(t *testing.T) {
	histories := map[string][]Entry{
		"single": {{Date: date("2020-06-01"), Amount: 4200}},
		"mixed signs": {
			{Date: date("2022-01-03"), Amount: -1999},
			{Date: date("2021-12-31"), Amount: 25050},
			{Date: date("2021-12-31"), Amount: -50},
			{Date: date("2021-04-10"), Amount: -70000},
			{Date: date("2020-11-11"), Amount: 100000},
		},
		"unordered": {
			{Date: date("2021-01-05"), Amount: 1},
			{Date: date("2021-09-05"), Amount: -7},
			{Date: date("2021-03-05"), Amount: 3},
		},
	}

	for name, entries := range histories {
		t.Run(name, func(t *testing.T) {
			const current = int64(123456)
			samples := Reconstruct(current, entries)
			require.NotEmpty(t, samples)

			replayed := Opening(samples)
			for _, s := range samples {
				replayed += s.Delta
				assert.Equal(t, s.Balance, replayed, "balance at %s", s.Date.Format("2006-01-02"))
			}
			assert.Equal(t, current, replayed)
		})
	}
}

func TestOrdered(t *testing.T) {
	assert.True(t, Ordered(nil))
	assert.True(t, Ordered([]Entry{
		{Date: date("2021-03-01")},
		{Date: date("2021-03-01")},
		{Date: date("2021-01-01")},
	}))
	assert.False(t, Ordered([]Entry{
		{Date: date("2021-01-01")},
		{Date: date("2021-03-01")},
	}))
}
