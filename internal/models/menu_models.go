package models

import "time"

// Menu groups menu items offered together.
type Menu struct {
	ID          int64      `json:"id" db:"id"`
	Name        string     `json:"name" db:"name" binding:"required"`
	Description *string    `json:"description,omitempty" db:"description"`
	IsSample    bool       `json:"is_sample" db:"is_sample"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	Items       []MenuItem `json:"items,omitempty" db:"-"` // populated by single-menu lookups
}

func (Menu) Schema() Schema {
	return Schema{Table: TableMenus, SampleFlag: true}
}

func (m Menu) SampleData() bool { return m.IsSample }

// MenuPatch is a sparse update of a Menu.
type MenuPatch struct {
	Name        *string `json:"name,omitempty" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
}

func (MenuPatch) Schema() Schema { return Menu{}.Schema() }

// MenuItem is a dish on a menu. CalculatedCost is derived from its recipe lines.
type MenuItem struct {
	ID             int64     `json:"id" db:"id"`
	MenuID         int64     `json:"menu_id" db:"menu_id" binding:"required"`
	Name           string    `json:"name" db:"name" binding:"required"`
	Description    *string   `json:"description,omitempty" db:"description"`
	Price          float64   `json:"price" db:"price"`
	Category       *string   `json:"category,omitempty" db:"category"`
	IsVegetarian   bool      `json:"is_vegetarian" db:"is_vegetarian"`
	IsVegan        bool      `json:"is_vegan" db:"is_vegan"`
	IsGlutenFree   bool      `json:"is_gluten_free" db:"is_gluten_free"`
	CalculatedCost float64   `json:"calculated_cost" db:"-"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

func (MenuItem) Schema() Schema {
	return Schema{
		Table: TableMenuItems,
		ForeignKeys: []ForeignKey{
			{Field: "MenuID", Column: "menu_id", References: TableMenus, Required: true},
		},
	}
}

// Margin is price minus calculated cost.
func (m MenuItem) Margin() float64 {
	return m.Price - m.CalculatedCost
}

// MenuItemPatch is a sparse update of a MenuItem.
type MenuItemPatch struct {
	MenuID       *int64   `json:"menu_id,omitempty" db:"menu_id"`
	Name         *string  `json:"name,omitempty" db:"name"`
	Description  *string  `json:"description,omitempty" db:"description"`
	Price        *float64 `json:"price,omitempty" db:"price"`
	Category     *string  `json:"category,omitempty" db:"category"`
	IsVegetarian *bool    `json:"is_vegetarian,omitempty" db:"is_vegetarian"`
	IsVegan      *bool    `json:"is_vegan,omitempty" db:"is_vegan"`
	IsGlutenFree *bool    `json:"is_gluten_free,omitempty" db:"is_gluten_free"`
}

func (MenuItemPatch) Schema() Schema { return MenuItem{}.Schema() }

// RecipeLine is the quantity of one ingredient needed for one portion of a menu item.
// The ingredient columns and Cost are filled by joins.
type RecipeLine struct {
	ID             int64   `json:"id" db:"id"`
	MenuItemID     int64   `json:"menu_item_id" db:"menu_item_id" binding:"required"`
	IngredientID   int64   `json:"ingredient_id" db:"ingredient_id" binding:"required"`
	Quantity       float64 `json:"quantity" db:"quantity"`
	IngredientName string  `json:"ingredient_name,omitempty" db:"-"`
	Unit           string  `json:"unit,omitempty" db:"-"`
	PricePerUnit   float64 `json:"price_per_unit,omitempty" db:"-"`
	Cost           float64 `json:"cost" db:"-"`
}

func (RecipeLine) Schema() Schema {
	return Schema{
		Table: TableRecipeLines,
		ForeignKeys: []ForeignKey{
			{Field: "MenuItemID", Column: "menu_item_id", References: TableMenuItems, Required: true},
			{Field: "IngredientID", Column: "ingredient_id", References: TableIngredients, Required: true},
		},
	}
}

// RecipeLinePatch is a sparse update of a RecipeLine.
type RecipeLinePatch struct {
	IngredientID *int64   `json:"ingredient_id,omitempty" db:"ingredient_id"`
	Quantity     *float64 `json:"quantity,omitempty" db:"quantity"`
}

func (RecipeLinePatch) Schema() Schema { return RecipeLine{}.Schema() }
