package planner

import "errors"

// Domain-specific errors for the planner package.
var (
	ErrPetNotSet         = errors.New("pet profile is not set")
	ErrOwnerNotSet       = errors.New("owner profile is not set")
	ErrTaskNotFound      = errors.New("task not found")
	ErrPlanNotFound      = errors.New("plan not found")
	ErrExportUnavailable = errors.New("calendar export is not configured")
)
