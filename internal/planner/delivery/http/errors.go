package http

import (
	"errors"

	"pawpal-planner/internal/planner"
	"pawpal-planner/pkg/response"
)

// mapError translates domain errors into HTTP errors with concrete statuses.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, planner.ErrPetNotSet):
		return response.NewHTTPError(409, "pet profile must be set before generating a plan")
	case errors.Is(err, planner.ErrOwnerNotSet):
		return response.NewHTTPError(409, "owner profile must be set before generating a plan")
	case errors.Is(err, planner.ErrTaskNotFound):
		return response.NewHTTPError(404, "task not found")
	case errors.Is(err, planner.ErrPlanNotFound):
		return response.NewHTTPError(404, "plan not found")
	case errors.Is(err, planner.ErrExportUnavailable):
		return response.NewHTTPError(503, "calendar export is not configured")
	default:
		return err
	}
}
