package federation

import (
	"context"

	"catering_backend/internal/datastore"
	"catering_backend/internal/models"
)

func (r *Router) GetIngredients(ctx context.Context) ([]models.Ingredient, error) {
	return gatherAll(ctx, r, "ingredient", r.remote.GetIngredients, r.local.GetIngredients)
}

func (r *Router) GetIngredient(ctx context.Context, id int64) (*models.Ingredient, error) {
	return fetchOne(ctx, r, "ingredient", id, datastore.DataService.GetIngredient)
}

func (r *Router) AddIngredient(ctx context.Context, ingredient models.Ingredient) (*models.Ingredient, error) {
	return create(ctx, r, "ingredient", ingredient, datastore.DataService.AddIngredient)
}

func (r *Router) UpdateIngredient(ctx context.Context, id int64, patch models.IngredientPatch) (*models.Ingredient, error) {
	return update(ctx, r, "ingredient", id, patch, datastore.DataService.UpdateIngredient)
}

func (r *Router) DeleteIngredient(ctx context.Context, id int64) error {
	return remove(ctx, r, "ingredient", "delete", id, datastore.DataService.DeleteIngredient)
}

func (r *Router) GetEquipment(ctx context.Context) ([]models.Equipment, error) {
	return gatherAll(ctx, r, "equipment", r.remote.GetEquipment, r.local.GetEquipment)
}

func (r *Router) GetEquipmentItem(ctx context.Context, id int64) (*models.Equipment, error) {
	return fetchOne(ctx, r, "equipment", id, datastore.DataService.GetEquipmentItem)
}

func (r *Router) AddEquipment(ctx context.Context, equipment models.Equipment) (*models.Equipment, error) {
	return create(ctx, r, "equipment", equipment, datastore.DataService.AddEquipment)
}

func (r *Router) UpdateEquipment(ctx context.Context, id int64, patch models.EquipmentPatch) (*models.Equipment, error) {
	return update(ctx, r, "equipment", id, patch, datastore.DataService.UpdateEquipment)
}

func (r *Router) DeleteEquipment(ctx context.Context, id int64) error {
	return remove(ctx, r, "equipment", "delete", id, datastore.DataService.DeleteEquipment)
}
