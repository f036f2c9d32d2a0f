package usecase

import (
	"sort"

	"pawpal-planner/internal/model"
)

// interval is a committed half-open slot [start, end) in minutes-of-day.
type interval struct {
	start int
	end   int
}

func overlapsAny(start, end int, occupied []interval) bool {
	for _, o := range occupied {
		if start < o.end && o.start < end {
			return true
		}
	}
	return false
}

// scoredTask pairs a task with its evaluation-time score and insertion index.
type scoredTask struct {
	task  *model.Task
	score float64
	index int // insertion order, the final tie-break
}

// orderByScore sorts placement candidates by score descending, duration
// descending, insertion order ascending. Longer, higher-priority tasks go
// first so priority never loses a slot to a shorter or lower task.
func orderByScore(ts []scoredTask) {
	sort.SliceStable(ts, func(i, j int) bool {
		if ts[i].score != ts[j].score {
			return ts[i].score > ts[j].score
		}
		if ts[i].task.DurationMinutes != ts[j].task.DurationMinutes {
			return ts[i].task.DurationMinutes > ts[j].task.DurationMinutes
		}
		return ts[i].index < ts[j].index
	})
}

// computeGaps returns the maximal free intervals of at least minGap minutes
// between occupied slots, bounded by the owner availability window.
func computeGaps(occupied []interval, avail model.TimeWindow, minGap int) []interval {
	sorted := make([]interval, len(occupied))
	copy(sorted, occupied)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].start < sorted[j].start })

	var gaps []interval
	cursor := avail.Start
	for _, o := range sorted {
		if o.start > cursor {
			gapEnd := o.start
			if gapEnd > avail.End {
				gapEnd = avail.End
			}
			if gapEnd-cursor >= minGap {
				gaps = append(gaps, interval{start: cursor, end: gapEnd})
			}
		}
		if o.end > cursor {
			cursor = o.end
		}
		if cursor >= avail.End {
			return gaps
		}
	}
	if avail.End-cursor >= minGap {
		gaps = append(gaps, interval{start: cursor, end: avail.End})
	}
	return gaps
}

// splitGap replaces gaps[idx] with the remainders left after committing
// [start, end), dropping remainders below minGap. Time order is preserved.
func splitGap(gaps []interval, idx, start, end, minGap int) []interval {
	g := gaps[idx]
	var pieces []interval
	if start-g.start >= minGap {
		pieces = append(pieces, interval{start: g.start, end: start})
	}
	if g.end-end >= minGap {
		pieces = append(pieces, interval{start: end, end: g.end})
	}

	out := make([]interval, 0, len(gaps)+1)
	out = append(out, gaps[:idx]...)
	out = append(out, pieces...)
	out = append(out, gaps[idx+1:]...)
	return out
}
