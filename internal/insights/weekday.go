package insights

import (
	"time"

	"github.com/wellkit/wellkit/internal/types"
)

// WeekdayPattern reports per-weekday mood means with the best and worst
// weekdays identified.
type WeekdayPattern struct {
	// Means holds the mean rating for each weekday that has data.
	Means map[time.Weekday]float64

	// Counts holds the sample size behind each mean.
	Counts map[time.Weekday]int

	// Best and Worst are the weekdays with the highest and lowest
	// mean rating.
	Best  time.Weekday
	Worst time.Weekday
}

// weekdayPattern buckets mood ratings by weekday. Returns nil unless at
// least MinWeekdays distinct weekdays have data; a pattern read off one
// or two weekdays would be noise.
func (e *Engine) weekdayPattern(moods []*types.MoodEntry) *WeekdayPattern {
	sums := make(map[time.Weekday]int)
	counts := make(map[time.Weekday]int)
	for _, m := range moods {
		wd := m.Timestamp.Weekday()
		sums[wd] += m.Rating
		counts[wd]++
	}

	if len(counts) < e.MinWeekdays {
		return nil
	}

	pattern := &WeekdayPattern{
		Means:  make(map[time.Weekday]float64, len(counts)),
		Counts: counts,
	}

	first := true
	// Walk Sunday..Saturday so ties resolve to the earliest weekday.
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		count, ok := counts[wd]
		if !ok {
			continue
		}
		mean := float64(sums[wd]) / float64(count)
		pattern.Means[wd] = mean

		if first {
			pattern.Best = wd
			pattern.Worst = wd
			first = false
			continue
		}
		if mean > pattern.Means[pattern.Best] {
			pattern.Best = wd
		}
		if mean < pattern.Means[pattern.Worst] {
			pattern.Worst = wd
		}
	}

	return pattern
}
