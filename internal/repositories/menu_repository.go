package repositories

import (
	"context"
	"fmt"

	"catering_backend/internal/models"
)

const menuColumns = `id, name, description, is_sample, created_at`

// menuItemQuery selects menu items with their recipe cost. %s takes an
// optional WHERE clause.
const menuItemQuery = `SELECT mi.id, mi.menu_id, mi.name, mi.description, mi.price, mi.category,
		mi.is_vegetarian, mi.is_vegan, mi.is_gluten_free, mi.created_at,
		COALESCE(SUM(rl.quantity * i.price_per_unit), 0) AS calculated_cost
	FROM menu_items mi
	LEFT JOIN recipe_lines rl ON rl.menu_item_id = mi.id
	LEFT JOIN ingredients i ON i.id = rl.ingredient_id
	%s
	GROUP BY mi.id, mi.menu_id, mi.name, mi.description, mi.price, mi.category,
		mi.is_vegetarian, mi.is_vegan, mi.is_gluten_free, mi.created_at
	ORDER BY mi.name, mi.id`

func scanMenu(row scanner) (models.Menu, error) {
	var m models.Menu
	err := row.Scan(&m.ID, &m.Name, &m.Description, &m.IsSample, &m.CreatedAt)
	return m, err
}

func scanMenuItem(row scanner) (models.MenuItem, error) {
	var mi models.MenuItem
	err := row.Scan(&mi.ID, &mi.MenuID, &mi.Name, &mi.Description, &mi.Price, &mi.Category,
		&mi.IsVegetarian, &mi.IsVegan, &mi.IsGlutenFree, &mi.CreatedAt, &mi.CalculatedCost)
	return mi, err
}

func (s *LocalStore) menuItemsWhere(where string) string {
	return s.q(fmt.Sprintf(menuItemQuery, where))
}

// GetMenus lists menus without their items.
func (s *LocalStore) GetMenus(ctx context.Context) ([]models.Menu, error) {
	menus, err := queryAll(ctx, s.db, s.q(`SELECT `+menuColumns+` FROM menus ORDER BY name, id`), scanMenu)
	if err != nil {
		return nil, storeErr("menu", "list", err)
	}
	return menus, nil
}

// GetMenu retrieves a menu with its items.
func (s *LocalStore) GetMenu(ctx context.Context, id int64) (*models.Menu, error) {
	m, err := scanMenu(s.db.QueryRowContext(ctx, s.q(`SELECT `+menuColumns+` FROM menus WHERE id = ?`), id))
	if err != nil {
		return nil, storeErr("menu", "get", err)
	}
	items, err := s.GetMenuItemsByMenu(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Items = items
	return &m, nil
}

func (s *LocalStore) AddMenu(ctx context.Context, menu models.Menu) (*models.Menu, error) {
	id, err := s.insertMenu(ctx, s.db, &menu)
	if err != nil {
		return nil, storeErr("menu", "create", err)
	}
	return s.GetMenu(ctx, id)
}

func (s *LocalStore) insertMenu(ctx context.Context, executor SQLExecutor, menu *models.Menu) (int64, error) {
	return s.insert(ctx, executor,
		`INSERT INTO menus (name, description, is_sample, created_at) VALUES (?, ?, ?, ?)`,
		menu.Name, menu.Description, menu.IsSample, s.now())
}

func (s *LocalStore) UpdateMenu(ctx context.Context, id int64, patch models.MenuPatch) (*models.Menu, error) {
	if err := s.updateRow(ctx, models.TableMenus, "menu", id, patch, false); err != nil {
		return nil, err
	}
	return s.GetMenu(ctx, id)
}

// DeleteMenu removes a menu and its items.
func (s *LocalStore) DeleteMenu(ctx context.Context, id int64) error {
	return s.deleteRow(ctx, models.TableMenus, "menu", id)
}

// GetMenuItems lists every menu item with its calculated cost.
func (s *LocalStore) GetMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	items, err := queryAll(ctx, s.db, s.menuItemsWhere(""), scanMenuItem)
	if err != nil {
		return nil, storeErr("menu item", "list", err)
	}
	return items, nil
}

func (s *LocalStore) GetMenuItemsByMenu(ctx context.Context, menuID int64) ([]models.MenuItem, error) {
	items, err := queryAll(ctx, s.db, s.menuItemsWhere("WHERE mi.menu_id = ?"), scanMenuItem, menuID)
	if err != nil {
		return nil, storeErr("menu item", "list by menu", err)
	}
	return items, nil
}

func (s *LocalStore) GetMenuItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	mi, err := scanMenuItem(s.db.QueryRowContext(ctx, s.menuItemsWhere("WHERE mi.id = ?"), id))
	if err != nil {
		return nil, storeErr("menu item", "get", err)
	}
	return &mi, nil
}

func (s *LocalStore) AddMenuItem(ctx context.Context, item models.MenuItem) (*models.MenuItem, error) {
	id, err := s.insertMenuItem(ctx, s.db, &item)
	if err != nil {
		return nil, storeErr("menu item", "create", err)
	}
	return s.GetMenuItem(ctx, id)
}

func (s *LocalStore) insertMenuItem(ctx context.Context, executor SQLExecutor, item *models.MenuItem) (int64, error) {
	return s.insert(ctx, executor,
		`INSERT INTO menu_items (menu_id, name, description, price, category, is_vegetarian, is_vegan, is_gluten_free, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.MenuID, item.Name, item.Description, item.Price, item.Category,
		item.IsVegetarian, item.IsVegan, item.IsGlutenFree, s.now())
}

func (s *LocalStore) UpdateMenuItem(ctx context.Context, id int64, patch models.MenuItemPatch) (*models.MenuItem, error) {
	if err := s.updateRow(ctx, models.TableMenuItems, "menu item", id, patch, false); err != nil {
		return nil, err
	}
	return s.GetMenuItem(ctx, id)
}

func (s *LocalStore) DeleteMenuItem(ctx context.Context, id int64) error {
	return s.deleteRow(ctx, models.TableMenuItems, "menu item", id)
}
