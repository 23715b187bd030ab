package federation

import (
	"context"

	"catering_backend/internal/datastore"
	"catering_backend/internal/models"
)

func (r *Router) GetMenus(ctx context.Context) ([]models.Menu, error) {
	return gatherAll(ctx, r, "menu", r.remote.GetMenus, r.local.GetMenus)
}

// GetMenu returns the menu with its items, translated together.
func (r *Router) GetMenu(ctx context.Context, id int64) (*models.Menu, error) {
	return fetchOne(ctx, r, "menu", id, datastore.DataService.GetMenu)
}

func (r *Router) AddMenu(ctx context.Context, menu models.Menu) (*models.Menu, error) {
	return create(ctx, r, "menu", menu, datastore.DataService.AddMenu)
}

func (r *Router) UpdateMenu(ctx context.Context, id int64, patch models.MenuPatch) (*models.Menu, error) {
	return update(ctx, r, "menu", id, patch, datastore.DataService.UpdateMenu)
}

func (r *Router) DeleteMenu(ctx context.Context, id int64) error {
	return remove(ctx, r, "menu", "delete", id, datastore.DataService.DeleteMenu)
}

func (r *Router) GetMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	return gatherAll(ctx, r, "menu item", r.remote.GetMenuItems, r.local.GetMenuItems)
}

func (r *Router) GetMenuItemsByMenu(ctx context.Context, menuID int64) ([]models.MenuItem, error) {
	return gatherScoped(ctx, r, "menu item", menuID, datastore.DataService.GetMenuItemsByMenu)
}

func (r *Router) GetMenuItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	return fetchOne(ctx, r, "menu item", id, datastore.DataService.GetMenuItem)
}

func (r *Router) AddMenuItem(ctx context.Context, item models.MenuItem) (*models.MenuItem, error) {
	return create(ctx, r, "menu item", item, datastore.DataService.AddMenuItem)
}

func (r *Router) UpdateMenuItem(ctx context.Context, id int64, patch models.MenuItemPatch) (*models.MenuItem, error) {
	return update(ctx, r, "menu item", id, patch, datastore.DataService.UpdateMenuItem)
}

func (r *Router) DeleteMenuItem(ctx context.Context, id int64) error {
	return remove(ctx, r, "menu item", "delete", id, datastore.DataService.DeleteMenuItem)
}

func (r *Router) GetRecipe(ctx context.Context, menuItemID int64) ([]models.RecipeLine, error) {
	return gatherScoped(ctx, r, "recipe line", menuItemID, datastore.DataService.GetRecipe)
}

func (r *Router) AddRecipeLine(ctx context.Context, line models.RecipeLine) (*models.RecipeLine, error) {
	return create(ctx, r, "recipe line", line, datastore.DataService.AddRecipeLine)
}

func (r *Router) UpdateRecipeLine(ctx context.Context, id int64, patch models.RecipeLinePatch) (*models.RecipeLine, error) {
	return update(ctx, r, "recipe line", id, patch, datastore.DataService.UpdateRecipeLine)
}

func (r *Router) DeleteRecipeLine(ctx context.Context, id int64) error {
	return remove(ctx, r, "recipe line", "delete", id, datastore.DataService.DeleteRecipeLine)
}
