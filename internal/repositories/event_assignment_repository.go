package repositories

import (
	"context"

	"catering_backend/internal/models"
)

const eventMenuItemQuery = `SELECT emi.id, emi.event_id, emi.menu_item_id, emi.quantity, emi.price_override, emi.notes,
		mi.name, mi.price
	FROM event_menu_items emi
	JOIN menu_items mi ON mi.id = emi.menu_item_id`

const eventStaffQuery = `SELECT es.id, es.event_id, es.user_id, es.role, es.hourly_rate_override, u.name
	FROM event_staff es
	JOIN users u ON u.id = es.user_id`

const eventEquipmentQuery = `SELECT ee.id, ee.event_id, ee.equipment_id, ee.quantity, ee.rental_cost_override, e.name
	FROM event_equipment ee
	JOIN equipment e ON e.id = ee.equipment_id`

func scanEventMenuItem(row scanner) (models.EventMenuItem, error) {
	var emi models.EventMenuItem
	err := row.Scan(&emi.ID, &emi.EventID, &emi.MenuItemID, &emi.Quantity, &emi.PriceOverride, &emi.Notes,
		&emi.MenuItemName, &emi.BasePrice)
	return emi, err
}

func scanEventStaff(row scanner) (models.EventStaff, error) {
	var es models.EventStaff
	err := row.Scan(&es.ID, &es.EventID, &es.UserID, &es.Role, &es.HourlyRateOverride, &es.UserName)
	return es, err
}

func scanEventEquipment(row scanner) (models.EventEquipment, error) {
	var ee models.EventEquipment
	err := row.Scan(&ee.ID, &ee.EventID, &ee.EquipmentID, &ee.Quantity, &ee.RentalCostOverride, &ee.EquipmentName)
	return ee, err
}

// GetEventMenuItems lists the menu items booked for an event.
func (s *LocalStore) GetEventMenuItems(ctx context.Context, eventID int64) ([]models.EventMenuItem, error) {
	items, err := queryAll(ctx, s.db, s.q(eventMenuItemQuery+` WHERE emi.event_id = ? ORDER BY emi.id`), scanEventMenuItem, eventID)
	if err != nil {
		return nil, storeErr("event menu item", "list", err)
	}
	return items, nil
}

func (s *LocalStore) getEventMenuItem(ctx context.Context, id int64) (*models.EventMenuItem, error) {
	emi, err := scanEventMenuItem(s.db.QueryRowContext(ctx, s.q(eventMenuItemQuery+` WHERE emi.id = ?`), id))
	if err != nil {
		return nil, storeErr("event menu item", "get", err)
	}
	return &emi, nil
}

func (s *LocalStore) AddEventMenuItem(ctx context.Context, item models.EventMenuItem) (*models.EventMenuItem, error) {
	id, err := s.insertEventMenuItem(ctx, s.db, &item)
	if err != nil {
		return nil, storeErr("event menu item", "create", err)
	}
	return s.getEventMenuItem(ctx, id)
}

func (s *LocalStore) insertEventMenuItem(ctx context.Context, executor SQLExecutor, item *models.EventMenuItem) (int64, error) {
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	return s.insert(ctx, executor,
		`INSERT INTO event_menu_items (event_id, menu_item_id, quantity, price_override, notes) VALUES (?, ?, ?, ?, ?)`,
		item.EventID, item.MenuItemID, item.Quantity, item.PriceOverride, item.Notes)
}

func (s *LocalStore) UpdateEventMenuItem(ctx context.Context, id int64, patch models.EventMenuItemPatch) (*models.EventMenuItem, error) {
	if err := s.updateRow(ctx, models.TableEventMenuItems, "event menu item", id, patch, false); err != nil {
		return nil, err
	}
	return s.getEventMenuItem(ctx, id)
}

func (s *LocalStore) DeleteEventMenuItem(ctx context.Context, id int64) error {
	return s.deleteRow(ctx, models.TableEventMenuItems, "event menu item", id)
}

// GetEventStaff lists the staff assigned to an event.
func (s *LocalStore) GetEventStaff(ctx context.Context, eventID int64) ([]models.EventStaff, error) {
	staff, err := queryAll(ctx, s.db, s.q(eventStaffQuery+` WHERE es.event_id = ? ORDER BY u.name, es.id`), scanEventStaff, eventID)
	if err != nil {
		return nil, storeErr("event staff", "list", err)
	}
	return staff, nil
}

func (s *LocalStore) getEventStaff(ctx context.Context, id int64) (*models.EventStaff, error) {
	es, err := scanEventStaff(s.db.QueryRowContext(ctx, s.q(eventStaffQuery+` WHERE es.id = ?`), id))
	if err != nil {
		return nil, storeErr("event staff", "get", err)
	}
	return &es, nil
}

func (s *LocalStore) AddEventStaff(ctx context.Context, staff models.EventStaff) (*models.EventStaff, error) {
	id, err := s.insertEventStaff(ctx, s.db, &staff)
	if err != nil {
		return nil, storeErr("event staff", "create", err)
	}
	return s.getEventStaff(ctx, id)
}

func (s *LocalStore) insertEventStaff(ctx context.Context, executor SQLExecutor, staff *models.EventStaff) (int64, error) {
	return s.insert(ctx, executor,
		`INSERT INTO event_staff (event_id, user_id, role, hourly_rate_override) VALUES (?, ?, ?, ?)`,
		staff.EventID, staff.UserID, staff.Role, staff.HourlyRateOverride)
}

func (s *LocalStore) UpdateEventStaff(ctx context.Context, id int64, patch models.EventStaffPatch) (*models.EventStaff, error) {
	if err := s.updateRow(ctx, models.TableEventStaff, "event staff", id, patch, false); err != nil {
		return nil, err
	}
	return s.getEventStaff(ctx, id)
}

func (s *LocalStore) DeleteEventStaff(ctx context.Context, id int64) error {
	return s.deleteRow(ctx, models.TableEventStaff, "event staff", id)
}

// GetEventEquipment lists the equipment booked for an event.
func (s *LocalStore) GetEventEquipment(ctx context.Context, eventID int64) ([]models.EventEquipment, error) {
	items, err := queryAll(ctx, s.db, s.q(eventEquipmentQuery+` WHERE ee.event_id = ? ORDER BY e.name, ee.id`), scanEventEquipment, eventID)
	if err != nil {
		return nil, storeErr("event equipment", "list", err)
	}
	return items, nil
}

func (s *LocalStore) getEventEquipment(ctx context.Context, id int64) (*models.EventEquipment, error) {
	ee, err := scanEventEquipment(s.db.QueryRowContext(ctx, s.q(eventEquipmentQuery+` WHERE ee.id = ?`), id))
	if err != nil {
		return nil, storeErr("event equipment", "get", err)
	}
	return &ee, nil
}

func (s *LocalStore) AddEventEquipment(ctx context.Context, equipment models.EventEquipment) (*models.EventEquipment, error) {
	id, err := s.insertEventEquipment(ctx, s.db, &equipment)
	if err != nil {
		return nil, storeErr("event equipment", "create", err)
	}
	return s.getEventEquipment(ctx, id)
}

func (s *LocalStore) insertEventEquipment(ctx context.Context, executor SQLExecutor, equipment *models.EventEquipment) (int64, error) {
	if equipment.Quantity == 0 {
		equipment.Quantity = 1
	}
	return s.insert(ctx, executor,
		`INSERT INTO event_equipment (event_id, equipment_id, quantity, rental_cost_override) VALUES (?, ?, ?, ?)`,
		equipment.EventID, equipment.EquipmentID, equipment.Quantity, equipment.RentalCostOverride)
}

func (s *LocalStore) UpdateEventEquipment(ctx context.Context, id int64, patch models.EventEquipmentPatch) (*models.EventEquipment, error) {
	if err := s.updateRow(ctx, models.TableEventEquipment, "event equipment", id, patch, false); err != nil {
		return nil, err
	}
	return s.getEventEquipment(ctx, id)
}

func (s *LocalStore) DeleteEventEquipment(ctx context.Context, id int64) error {
	return s.deleteRow(ctx, models.TableEventEquipment, "event equipment", id)
}
