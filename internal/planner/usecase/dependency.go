package usecase

import "pawpal-planner/internal/model"

// DependenciesReady reports whether every prerequisite of t is in the
// placed-or-completed id set.
func DependenciesReady(t model.Task, placed map[string]struct{}) bool {
	for _, dep := range t.DependsOn {
		if _, ok := placed[dep]; !ok {
			return false
		}
	}
	return true
}

// FindCycles locates dependency cycles among the given tasks with a
// depth-first traversal using visiting/visited marks. It returns the set of
// task ids that sit on a cycle; tasks outside that set are free to schedule.
// Traversal follows the supplied id order so results are deterministic.
func FindCycles(tasks map[string]*model.Task, order []string) map[string]struct{} {
	const (
		white = 0 // unvisited
		grey  = 1 // on the current path
		black = 2 // fully explored
	)

	marks := make(map[string]int, len(tasks))
	cyclic := make(map[string]struct{})

	var stack []string

	var visit func(id string)
	visit = func(id string) {
		marks[id] = grey
		stack = append(stack, id)

		t := tasks[id]
		for _, dep := range t.DependsOn {
			if _, ok := tasks[dep]; !ok {
				continue // dependency outside the active set
			}
			switch marks[dep] {
			case white:
				visit(dep)
			case grey:
				// Back edge: everything from dep to the stack top is cyclic.
				for i := len(stack) - 1; i >= 0; i-- {
					cyclic[stack[i]] = struct{}{}
					if stack[i] == dep {
						break
					}
				}
			}
		}

		stack = stack[:len(stack)-1]
		marks[id] = black
	}

	for _, id := range order {
		if _, ok := tasks[id]; !ok {
			continue
		}
		if marks[id] == white {
			visit(id)
		}
	}

	return cyclic
}
