package console

import (
	"context"
	"fmt"

	"github.com/bookdesk/bookdesk/internal/api"
	"github.com/bookdesk/bookdesk/internal/model"
)

func (c *Console) ensureStaff(ctx context.Context) {
	ensure(&c.staffOnce, ctx, c.store.FetchStaff)
}

func (c *Console) ListStaff(ctx context.Context) error {
	c.ensureStaff(ctx)
	list, st := c.store.Staff()
	c.renderStaff(list)
	c.renderStatus(st)
	return nil
}

func (c *Console) AddStaff(ctx context.Context, params api.StaffParams) error {
	created, err := c.store.AddStaff(ctx, params)
	if err != nil {
		return fmt.Errorf("add staff: %w", err)
	}
	c.printf("created staff %d\n", created.StaffID)
	return nil
}

func (c *Console) UpdateStaff(ctx context.Context, id int64, params api.StaffParams) error {
	updated, err := c.store.UpdateStaff(ctx, id, params)
	if err != nil {
		return fmt.Errorf("update staff %d: %w", id, err)
	}
	c.renderStaff([]model.Staff{updated})
	return nil
}

func (c *Console) DeleteStaff(ctx context.Context, id int64) error {
	if err := c.store.DeleteStaff(ctx, id); err != nil {
		return fmt.Errorf("delete staff %d: %w", id, err)
	}
	c.printf("deleted staff %d\n", id)
	return nil
}

// Schedules are a nested sub-resource; they are fetched on demand and never
// mirrored in the store.
func (c *Console) AddStaffSchedule(ctx context.Context, staffID int64, params api.ScheduleParams) error {
	created, err := c.client.Staff().AddSchedule(ctx, staffID, params)
	if err != nil {
		return fmt.Errorf("add schedule for staff %d: %w", staffID, err)
	}
	c.printf("created schedule %d for staff %d\n", created.ScheduleID, staffID)
	return nil
}

func (c *Console) ListStaffSchedules(ctx context.Context, staffID int64) error {
	list, err := c.client.Staff().ListSchedules(ctx, staffID)
	if err != nil {
		return err
	}
	w := c.table()
	fmt.Fprintln(w, "ID\tDAY\tSTART\tEND\tAVAILABLE")
	for _, s := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n",
			s.ScheduleID, s.DayOfWeek, s.StartTime, s.EndTime, s.IsAvailable)
	}
	w.Flush()
	c.printf("%d schedule(s)\n", len(list))
	return nil
}

func (c *Console) renderStaff(list []model.Staff) {
	w := c.table()
	fmt.Fprintln(w, "ID\tNAME\tROLE")
	for _, s := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\n", s.StaffID, s.Name, orDash(s.Role))
	}
	w.Flush()
	c.printf("%d staff member(s)\n", len(list))
}
