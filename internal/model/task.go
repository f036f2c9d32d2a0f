package model

// MinutesPerDay is the number of minutes in the single planning day.
// All times in the model are minutes-of-day in [0, MinutesPerDay].
const MinutesPerDay = 1440

// TimeWindow is a half-open interval [Start, End) in minutes-of-day.
type TimeWindow struct {
	Start int
	End   int
}

// Length returns the window length in minutes.
func (w TimeWindow) Length() int {
	return w.End - w.Start
}

// Contains reports whether the interval [start, start+duration) fits inside w.
func (w TimeWindow) Contains(start, duration int) bool {
	return start >= w.Start && start+duration <= w.End
}

// Task represents a single pet care activity.
type Task struct {
	ID              string     // Stable unique id, assigned at insertion
	Title           string     // Display name, must be non-empty
	Type            string     // Category label, e.g. "walk", "feed", "groom"
	Window          TimeWindow // Earliest start / latest end in minutes-of-day
	DurationMinutes int        // How long the task takes, > 0 and <= window length
	Priority        Priority   // low / medium / high
	Flexible        bool       // Flexible tasks are only placed into leftover gaps
	DependsOn       []string   // IDs of tasks that must be placed or completed first
	Recurrence      Recurrence // none / daily / weekly
	Completed       bool       // Completed tasks are excluded from placement
	Notes           string     // Free-form details
}

// Active reports whether the task participates in placement passes.
func (t Task) Active() bool {
	return !t.Completed
}
