package console

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportAppointments writes the current appointment collection to an xlsx
// workbook for offline reporting.
func (c *Console) ExportAppointments(ctx context.Context, path string) error {
	c.ensureAppointments(ctx)
	list, st := c.store.Appointments()
	if st.Err != "" && len(list) == 0 {
		return fmt.Errorf("export appointments: %s", st.Err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Appointments"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("export appointments: %w", err)
	}

	header := []any{"ID", "Date", "Status", "Customer", "Service", "Staff", "Created", "Updated"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("export appointments: %w", err)
	}

	for i, a := range list {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("export appointments: %w", err)
		}
		row := []any{
			a.AppointmentID,
			a.AppointmentDate,
			a.Status,
			nameOrID(a.Customer != nil, func() string { return a.Customer.Name }, a.CustomerID),
			nameOrID(a.Service != nil, func() string { return a.Service.ServiceName }, a.ServiceID),
			nameOrID(a.Staff != nil, func() string { return a.Staff.Name }, a.StaffID),
			a.CreatedAt,
			a.UpdatedAt,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("export appointments: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export appointments: %w", err)
	}
	c.printf("wrote %d appointment(s) to %s\n", len(list), path)
	return nil
}
