package repositories

import (
	"context"

	"catering_backend/internal/models"
)

const ingredientColumns = `id, name, unit, price_per_unit, supplier, is_sample, created_at`

const recipeLineQuery = `SELECT rl.id, rl.menu_item_id, rl.ingredient_id, rl.quantity,
		i.name, i.unit, i.price_per_unit, rl.quantity * i.price_per_unit AS cost
	FROM recipe_lines rl
	JOIN ingredients i ON i.id = rl.ingredient_id`

func scanIngredient(row scanner) (models.Ingredient, error) {
	var i models.Ingredient
	err := row.Scan(&i.ID, &i.Name, &i.Unit, &i.PricePerUnit, &i.Supplier, &i.IsSample, &i.CreatedAt)
	return i, err
}

func scanRecipeLine(row scanner) (models.RecipeLine, error) {
	var rl models.RecipeLine
	err := row.Scan(&rl.ID, &rl.MenuItemID, &rl.IngredientID, &rl.Quantity,
		&rl.IngredientName, &rl.Unit, &rl.PricePerUnit, &rl.Cost)
	return rl, err
}

func (s *LocalStore) GetIngredients(ctx context.Context) ([]models.Ingredient, error) {
	ingredients, err := queryAll(ctx, s.db, s.q(`SELECT `+ingredientColumns+` FROM ingredients ORDER BY name, id`), scanIngredient)
	if err != nil {
		return nil, storeErr("ingredient", "list", err)
	}
	return ingredients, nil
}

func (s *LocalStore) GetIngredient(ctx context.Context, id int64) (*models.Ingredient, error) {
	i, err := scanIngredient(s.db.QueryRowContext(ctx, s.q(`SELECT `+ingredientColumns+` FROM ingredients WHERE id = ?`), id))
	if err != nil {
		return nil, storeErr("ingredient", "get", err)
	}
	return &i, nil
}

func (s *LocalStore) AddIngredient(ctx context.Context, ingredient models.Ingredient) (*models.Ingredient, error) {
	id, err := s.insertIngredient(ctx, s.db, &ingredient)
	if err != nil {
		return nil, storeErr("ingredient", "create", err)
	}
	return s.GetIngredient(ctx, id)
}

func (s *LocalStore) insertIngredient(ctx context.Context, executor SQLExecutor, ingredient *models.Ingredient) (int64, error) {
	return s.insert(ctx, executor,
		`INSERT INTO ingredients (name, unit, price_per_unit, supplier, is_sample, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		ingredient.Name, ingredient.Unit, ingredient.PricePerUnit, ingredient.Supplier, ingredient.IsSample, s.now())
}

func (s *LocalStore) UpdateIngredient(ctx context.Context, id int64, patch models.IngredientPatch) (*models.Ingredient, error) {
	if err := s.updateRow(ctx, models.TableIngredients, "ingredient", id, patch, false); err != nil {
		return nil, err
	}
	return s.GetIngredient(ctx, id)
}

// DeleteIngredient fails with ErrReferenced while a recipe still uses it.
func (s *LocalStore) DeleteIngredient(ctx context.Context, id int64) error {
	return s.deleteRow(ctx, models.TableIngredients, "ingredient", id)
}

// GetRecipe lists the recipe lines of a menu item joined with their ingredients.
func (s *LocalStore) GetRecipe(ctx context.Context, menuItemID int64) ([]models.RecipeLine, error) {
	lines, err := queryAll(ctx, s.db, s.q(recipeLineQuery+` WHERE rl.menu_item_id = ? ORDER BY i.name, rl.id`), scanRecipeLine, menuItemID)
	if err != nil {
		return nil, storeErr("recipe line", "list", err)
	}
	return lines, nil
}

func (s *LocalStore) getRecipeLine(ctx context.Context, id int64) (*models.RecipeLine, error) {
	rl, err := scanRecipeLine(s.db.QueryRowContext(ctx, s.q(recipeLineQuery+` WHERE rl.id = ?`), id))
	if err != nil {
		return nil, storeErr("recipe line", "get", err)
	}
	return &rl, nil
}

func (s *LocalStore) AddRecipeLine(ctx context.Context, line models.RecipeLine) (*models.RecipeLine, error) {
	id, err := s.insertRecipeLine(ctx, s.db, &line)
	if err != nil {
		return nil, storeErr("recipe line", "create", err)
	}
	return s.getRecipeLine(ctx, id)
}

func (s *LocalStore) insertRecipeLine(ctx context.Context, executor SQLExecutor, line *models.RecipeLine) (int64, error) {
	return s.insert(ctx, executor,
		`INSERT INTO recipe_lines (menu_item_id, ingredient_id, quantity) VALUES (?, ?, ?)`,
		line.MenuItemID, line.IngredientID, line.Quantity)
}

func (s *LocalStore) UpdateRecipeLine(ctx context.Context, id int64, patch models.RecipeLinePatch) (*models.RecipeLine, error) {
	if err := s.updateRow(ctx, models.TableRecipeLines, "recipe line", id, patch, false); err != nil {
		return nil, err
	}
	return s.getRecipeLine(ctx, id)
}

func (s *LocalStore) DeleteRecipeLine(ctx context.Context, id int64) error {
	return s.deleteRow(ctx, models.TableRecipeLines, "recipe line", id)
}
