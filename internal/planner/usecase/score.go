package usecase

import "pawpal-planner/internal/model"

// Score computes a task's urgency-adjusted priority at the given evaluation
// time (minutes-of-day). The base weight comes from the priority level; an
// urgency boost in [0, 1] is added as the window deadline approaches within
// horizonMinutes. A deadline already in the past earns no boost.
func Score(t model.Task, now, horizonMinutes int) float64 {
	score := t.Priority.BaseWeight()

	toDeadline := t.Window.End - now
	if toDeadline < 0 || toDeadline > horizonMinutes {
		return score
	}

	boost := 1.0 - float64(toDeadline)/float64(horizonMinutes)
	if boost < 0 {
		boost = 0
	}
	if boost > 1 {
		boost = 1
	}
	return score + boost
}
