package console

import (
	"context"
	"fmt"

	"github.com/bookdesk/bookdesk/internal/api"
	"github.com/bookdesk/bookdesk/internal/model"
)

// Slots carry their own action set (book/free) on top of plain CRUD, so the
// network calls live here and the store is only told the resulting values.

func (c *Console) ensureSlots(ctx context.Context) {
	c.slotsOnce.Do(func() {
		c.fetchSlots(ctx)
	})
}

func (c *Console) fetchSlots(ctx context.Context) {
	c.store.SetLoading(true)
	defer c.store.SetLoading(false)

	items, err := c.client.Slots().List(ctx)
	if err != nil {
		c.store.SetError(err.Error())
		return
	}
	c.store.SetSlots(items)
	c.store.SetError("")
}

func (c *Console) ListSlots(ctx context.Context, filter SlotFilter) error {
	c.ensureSlots(ctx)
	c.renderSlots(FilterSlots(c.store.Slots(), filter))
	c.renderStatus(c.store.SharedStatus())
	return nil
}

// ListAvailableSlots queries the server-side availability filter; results
// are rendered directly and do not replace the mirrored collection.
func (c *Console) ListAvailableSlots(ctx context.Context, filter api.AvailableFilter) error {
	c.store.SetLoading(true)
	defer c.store.SetLoading(false)

	list, err := c.client.Slots().ListAvailable(ctx, filter)
	if err != nil {
		c.store.SetError(err.Error())
		return err
	}
	c.store.SetError("")
	c.renderSlots(list)
	return nil
}

// ListSlotsByStaff replaces the mirrored collection with the staff-scoped
// listing, matching the original console behavior.
func (c *Console) ListSlotsByStaff(ctx context.Context, staffID int64) error {
	c.store.SetLoading(true)
	defer c.store.SetLoading(false)

	list, err := c.client.Slots().ListByStaff(ctx, staffID)
	if err != nil {
		c.store.SetError(err.Error())
		return err
	}
	c.store.SetSlots(list)
	c.store.SetError("")
	c.renderSlots(list)
	return nil
}

func (c *Console) CreateSlot(ctx context.Context, params api.SlotParams) error {
	c.store.SetLoading(true)
	defer c.store.SetLoading(false)

	created, err := c.client.Slots().Create(ctx, params)
	if err != nil {
		c.store.SetError(err.Error())
		return fmt.Errorf("create slot: %w", err)
	}
	c.store.AddSlot(created)
	c.store.SetError("")
	c.printf("created slot %d\n", created.SlotID)
	return nil
}

func (c *Console) UpdateSlot(ctx context.Context, id int64, params api.SlotParams) error {
	c.store.SetLoading(true)
	defer c.store.SetLoading(false)

	base, _ := findSlot(c.store.Slots(), id)
	if err := c.client.Slots().Update(ctx, id, params, &base); err != nil {
		c.store.SetError(err.Error())
		return fmt.Errorf("update slot %d: %w", id, err)
	}
	c.store.UpsertSlot(id, base)
	c.store.SetError("")
	c.renderSlots([]model.Slot{base})
	return nil
}

func (c *Console) DeleteSlot(ctx context.Context, id int64) error {
	c.store.SetLoading(true)
	defer c.store.SetLoading(false)

	if err := c.client.Slots().Delete(ctx, id); err != nil {
		c.store.SetError(err.Error())
		return fmt.Errorf("delete slot %d: %w", id, err)
	}
	c.store.RemoveSlot(id)
	c.store.SetError("")
	c.printf("deleted slot %d\n", id)
	return nil
}

// BookSlot asks the server to flip isBooked; the response is the updated
// slot, reconciled into the store by id.
func (c *Console) BookSlot(ctx context.Context, id int64) error {
	return c.flipSlot(ctx, id, "book", c.client.Slots().Book)
}

func (c *Console) FreeSlot(ctx context.Context, id int64) error {
	return c.flipSlot(ctx, id, "free", c.client.Slots().Free)
}

func (c *Console) flipSlot(ctx context.Context, id int64, verb string, call func(context.Context, int64, *model.Slot) error) error {
	c.store.SetLoading(true)
	defer c.store.SetLoading(false)

	base, _ := findSlot(c.store.Slots(), id)
	if err := call(ctx, id, &base); err != nil {
		c.store.SetError(err.Error())
		return fmt.Errorf("%s slot %d: %w", verb, id, err)
	}
	c.store.UpsertSlot(id, base)
	c.store.SetError("")
	c.printf("slot %d booked=%t\n", id, base.IsBooked)
	return nil
}

func findSlot(list []model.Slot, id int64) (model.Slot, bool) {
	for _, s := range list {
		if s.SlotID == id {
			return s, true
		}
	}
	return model.Slot{}, false
}

func (c *Console) renderSlots(list []model.Slot) {
	w := c.table()
	fmt.Fprintln(w, "ID\tDATE\tSTART\tEND\tSTAFF\tBOOKED")
	for _, s := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%t\n",
			s.SlotID,
			s.Date,
			s.StartTime,
			s.EndTime,
			nameOrID(s.Staff != nil, func() string { return s.Staff.Name }, s.StaffID),
			s.IsBooked,
		)
	}
	w.Flush()
	c.printf("%d slot(s)\n", len(list))
}
