package models

// ForeignKey declares one integer column that holds the id of a row in another table.
type ForeignKey struct {
	Field      string // Go struct field carrying the key (int64 or *int64)
	Column     string
	References string // referenced table
	Required   bool
}

// Schema describes where an entity lives and which of its fields are keys.
// The federation layer and the local store both read it, so a foreign key
// declared here is translated between id namespaces and respected by the
// sample-data cascade without further wiring.
type Schema struct {
	Table       string
	SampleFlag  bool // table carries an is_sample column
	ForeignKeys []ForeignKey
}

// Keyed is implemented by every entity and patch type.
type Keyed interface {
	Schema() Schema
}

// SampleMarked is implemented by entities that can be explicitly flagged as sample data.
type SampleMarked interface {
	SampleData() bool
}

// Table names.
const (
	TableUsers             = "users"
	TableEvents            = "events"
	TableMenus             = "menus"
	TableMenuItems         = "menu_items"
	TableIngredients       = "ingredients"
	TableRecipeLines       = "recipe_lines"
	TableEquipment         = "equipment"
	TableEventMenuItems    = "event_menu_items"
	TableEventStaff        = "event_staff"
	TableEventEquipment    = "event_equipment"
	TableTasks             = "tasks"
	TableStaffAvailability = "staff_availability"
	TableBlackoutDates     = "blackout_dates"
	TableOpenShifts        = "open_shifts"
	TableShiftBids         = "shift_bids"
	TableMessages          = "messages"
)

// AllSchemas lists the schema of every stored entity type.
func AllSchemas() []Schema {
	return []Schema{
		User{}.Schema(),
		Event{}.Schema(),
		Menu{}.Schema(),
		MenuItem{}.Schema(),
		Ingredient{}.Schema(),
		RecipeLine{}.Schema(),
		Equipment{}.Schema(),
		EventMenuItem{}.Schema(),
		EventStaff{}.Schema(),
		EventEquipment{}.Schema(),
		Task{}.Schema(),
		StaffAvailability{}.Schema(),
		BlackoutDate{}.Schema(),
		OpenShift{}.Schema(),
		ShiftBid{}.Schema(),
		Message{}.Schema(),
	}
}

// RequiredKeys returns the required foreign keys of a schema.
func (s Schema) RequiredKeys() []ForeignKey {
	var keys []ForeignKey
	for _, fk := range s.ForeignKeys {
		if fk.Required {
			keys = append(keys, fk)
		}
	}
	return keys
}
