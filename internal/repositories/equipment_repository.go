package repositories

import (
	"context"

	"catering_backend/internal/models"
)

const equipmentColumns = `id, name, category, ownership, default_rental_cost, quantity, is_sample, created_at`

func scanEquipment(row scanner) (models.Equipment, error) {
	var e models.Equipment
	err := row.Scan(&e.ID, &e.Name, &e.Category, &e.Ownership, &e.DefaultRentalCost, &e.Quantity, &e.IsSample, &e.CreatedAt)
	return e, err
}

func (s *LocalStore) GetEquipment(ctx context.Context) ([]models.Equipment, error) {
	items, err := queryAll(ctx, s.db, s.q(`SELECT `+equipmentColumns+` FROM equipment ORDER BY name, id`), scanEquipment)
	if err != nil {
		return nil, storeErr("equipment", "list", err)
	}
	return items, nil
}

func (s *LocalStore) GetEquipmentItem(ctx context.Context, id int64) (*models.Equipment, error) {
	e, err := scanEquipment(s.db.QueryRowContext(ctx, s.q(`SELECT `+equipmentColumns+` FROM equipment WHERE id = ?`), id))
	if err != nil {
		return nil, storeErr("equipment", "get", err)
	}
	return &e, nil
}

func (s *LocalStore) AddEquipment(ctx context.Context, equipment models.Equipment) (*models.Equipment, error) {
	id, err := s.insertEquipment(ctx, s.db, &equipment)
	if err != nil {
		return nil, storeErr("equipment", "create", err)
	}
	return s.GetEquipmentItem(ctx, id)
}

func (s *LocalStore) insertEquipment(ctx context.Context, executor SQLExecutor, equipment *models.Equipment) (int64, error) {
	if equipment.Ownership == "" {
		equipment.Ownership = models.OwnershipOwned
	}
	return s.insert(ctx, executor,
		`INSERT INTO equipment (name, category, ownership, default_rental_cost, quantity, is_sample, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		equipment.Name, equipment.Category, equipment.Ownership, equipment.DefaultRentalCost,
		equipment.Quantity, equipment.IsSample, s.now())
}

func (s *LocalStore) UpdateEquipment(ctx context.Context, id int64, patch models.EquipmentPatch) (*models.Equipment, error) {
	if err := s.updateRow(ctx, models.TableEquipment, "equipment", id, patch, false); err != nil {
		return nil, err
	}
	return s.GetEquipmentItem(ctx, id)
}

func (s *LocalStore) DeleteEquipment(ctx context.Context, id int64) error {
	return s.deleteRow(ctx, models.TableEquipment, "equipment", id)
}
