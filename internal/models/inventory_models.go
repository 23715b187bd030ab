package models

import "time"

// Ingredient is a purchasable input priced per unit of measure.
type Ingredient struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name" binding:"required"`
	Unit         string    `json:"unit" db:"unit" binding:"required"` // e.g. kg, l, each
	PricePerUnit float64   `json:"price_per_unit" db:"price_per_unit"`
	Supplier     *string   `json:"supplier,omitempty" db:"supplier"`
	IsSample     bool      `json:"is_sample" db:"is_sample"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

func (Ingredient) Schema() Schema {
	return Schema{Table: TableIngredients, SampleFlag: true}
}

func (i Ingredient) SampleData() bool { return i.IsSample }

// IngredientPatch is a sparse update of an Ingredient.
type IngredientPatch struct {
	Name         *string  `json:"name,omitempty" db:"name"`
	Unit         *string  `json:"unit,omitempty" db:"unit"`
	PricePerUnit *float64 `json:"price_per_unit,omitempty" db:"price_per_unit"`
	Supplier     *string  `json:"supplier,omitempty" db:"supplier"`
}

func (IngredientPatch) Schema() Schema { return Ingredient{}.Schema() }

// Equipment ownership.
const (
	OwnershipOwned  = "owned"
	OwnershipRental = "rental"
)

// Equipment is an owned or rented inventory item (chafing dishes, tables, linens).
type Equipment struct {
	ID                int64     `json:"id" db:"id"`
	Name              string    `json:"name" db:"name" binding:"required"`
	Category          *string   `json:"category,omitempty" db:"category"`
	Ownership         string    `json:"ownership" db:"ownership"`
	DefaultRentalCost float64   `json:"default_rental_cost" db:"default_rental_cost"`
	Quantity          int       `json:"quantity" db:"quantity"`
	IsSample          bool      `json:"is_sample" db:"is_sample"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

func (Equipment) Schema() Schema {
	return Schema{Table: TableEquipment, SampleFlag: true}
}

func (e Equipment) SampleData() bool { return e.IsSample }

// EquipmentPatch is a sparse update of an Equipment item.
type EquipmentPatch struct {
	Name              *string  `json:"name,omitempty" db:"name"`
	Category          *string  `json:"category,omitempty" db:"category"`
	Ownership         *string  `json:"ownership,omitempty" db:"ownership"`
	DefaultRentalCost *float64 `json:"default_rental_cost,omitempty" db:"default_rental_cost"`
	Quantity          *int     `json:"quantity,omitempty" db:"quantity"`
}

func (EquipmentPatch) Schema() Schema { return Equipment{}.Schema() }
