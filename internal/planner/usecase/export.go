package usecase

import (
	"context"
	"fmt"
	"time"

	"pawpal-planner/internal/planner"
	"pawpal-planner/pkg/gcalendar"
)

// ExportPlan anchors a stored plan's scheduled items to a concrete calendar
// date and creates one event per item. The core model tracks time-of-day
// only; the date attaches here, at the boundary. Per-item failures are
// non-fatal and counted as skipped.
func (uc *implUseCase) ExportPlan(ctx context.Context, input planner.ExportPlanInput) (planner.ExportPlanOutput, error) {
	if uc.calendar == nil {
		return planner.ExportPlanOutput{}, planner.ErrExportUnavailable
	}

	plan, err := uc.PlanByID(ctx, input.PlanID)
	if err != nil {
		return planner.ExportPlanOutput{}, err
	}

	loc := time.UTC
	if uc.cfg.Timezone != "" {
		if parsed, locErr := time.LoadLocation(uc.cfg.Timezone); locErr == nil {
			loc = parsed
		} else {
			uc.l.Warnf(ctx, "ExportPlan: invalid timezone %q, using UTC: %v", uc.cfg.Timezone, locErr)
		}
	}

	day, err := time.ParseInLocation("2006-01-02", input.Date, loc)
	if err != nil {
		return planner.ExportPlanOutput{}, fmt.Errorf("invalid export date %q: %w", input.Date, err)
	}

	out := planner.ExportPlanOutput{}
	for _, item := range plan.Items {
		if !item.Scheduled() {
			continue
		}

		event, evErr := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.cfg.CalendarID,
			Summary:     item.Title,
			Description: item.Reason,
			StartTime:   day.Add(time.Duration(item.Start) * time.Minute),
			EndTime:     day.Add(time.Duration(item.End) * time.Minute),
			Timezone:    uc.cfg.Timezone,
		})
		if evErr != nil {
			uc.l.Warnf(ctx, "ExportPlan: event creation failed for %q (non-fatal): %v", item.Title, evErr)
			out.Skipped++
			continue
		}

		out.Events = append(out.Events, planner.ExportedEvent{
			TaskID:   item.TaskID,
			Title:    item.Title,
			HTMLLink: event.HtmlLink,
		})
	}

	uc.l.Infof(ctx, "ExportPlan: plan=%s exported=%d skipped=%d", input.PlanID, len(out.Events), out.Skipped)
	return out, nil
}
