package model

// PlanItem is one placement decision for one task.
// For scheduled items Start/End carry the committed interval; for deferred and
// unscheduled items both are UnscheduledTime. Reason is always non-empty.
type PlanItem struct {
	TaskID   string
	Title    string
	Priority Priority
	Start    int
	End      int
	Status   PlanStatus
	Reason   string
}

// UnscheduledTime is the sentinel interval bound for items without a slot.
const UnscheduledTime = -1

// Scheduled reports whether the item was committed to a concrete interval.
func (p PlanItem) Scheduled() bool {
	return p.Status == PlanStatusScheduled
}
