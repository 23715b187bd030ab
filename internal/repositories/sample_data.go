package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"catering_backend/internal/datastore"
	"catering_backend/internal/models"
	"catering_backend/pkg/utils"
)

// deletionOrder sorts tables so that every table comes before the tables it
// references. Ties are broken by name.
func deletionOrder(schemas []models.Schema) ([]string, error) {
	children := make(map[string]int, len(schemas)) // number of referencing tables not yet emitted
	parents := make(map[string][]string, len(schemas))
	for _, s := range schemas {
		if _, ok := children[s.Table]; !ok {
			children[s.Table] = 0
		}
		seen := map[string]bool{}
		for _, fk := range s.ForeignKeys {
			if seen[fk.References] || fk.References == s.Table {
				continue
			}
			seen[fk.References] = true
			parents[s.Table] = append(parents[s.Table], fk.References)
			children[fk.References]++
		}
	}

	var ready []string
	for table, n := range children {
		if n == 0 {
			ready = append(ready, table)
		}
	}
	sort.Strings(ready)

	order := make([]string, 0, len(children))
	for len(ready) > 0 {
		table := ready[0]
		ready = ready[1:]
		order = append(order, table)

		var freed []string
		for _, p := range parents[table] {
			children[p]--
			if children[p] == 0 {
				freed = append(freed, p)
			}
		}
		ready = append(ready, freed...)
		sort.Strings(ready)
	}
	if len(order) != len(children) {
		return nil, fmt.Errorf("foreign key cycle among tables %v", remaining(children))
	}
	return order, nil
}

func remaining(children map[string]int) []string {
	var out []string
	for t, n := range children {
		if n > 0 {
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}

// samplePredicates builds, per table, the WHERE clause selecting sample rows.
// A table with its own flag is selected by that flag alone. A table without
// one is selected through its required keys; optional keys into removed rows
// are nulled by the schema's ON DELETE SET NULL.
func samplePredicates(schemas []models.Schema) map[string]string {
	byTable := make(map[string]models.Schema, len(schemas))
	for _, s := range schemas {
		byTable[s.Table] = s
	}
	preds := make(map[string]string, len(schemas))
	visiting := map[string]bool{}

	var build func(table string) string
	build = func(table string) string {
		if p, ok := preds[table]; ok {
			return p
		}
		if visiting[table] {
			return ""
		}
		visiting[table] = true
		defer delete(visiting, table)

		s := byTable[table]
		var terms []string
		if s.SampleFlag {
			preds[table] = "is_sample = TRUE"
			return preds[table]
		}
		for _, fk := range s.ForeignKeys {
			if !fk.Required {
				continue
			}
			if parent := build(fk.References); parent != "" {
				terms = append(terms, fmt.Sprintf("%s IN (SELECT id FROM %s WHERE %s)", fk.Column, fk.References, parent))
			}
		}
		p := strings.Join(terms, " OR ")
		preds[table] = p
		return p
	}
	for _, s := range schemas {
		build(s.Table)
	}
	return preds
}

func (s *LocalStore) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *LocalStore) clearSample(ctx context.Context, executor SQLExecutor) (int64, error) {
	schemas := models.AllSchemas()
	order, err := deletionOrder(schemas)
	if err != nil {
		return 0, err
	}
	preds := samplePredicates(schemas)

	var total int64
	for _, table := range order {
		pred := preds[table]
		if pred == "" {
			continue
		}
		res, err := executor.ExecContext(ctx, s.q("DELETE FROM "+table+" WHERE "+pred))
		if err != nil {
			return 0, fmt.Errorf("clearing %s: %w", table, err)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}

// ClearSampleData removes sample rows and the rows that cannot exist without
// them, children first, in a single transaction. Other rows keep their place
// with optional references to removed rows set to NULL.
func (s *LocalStore) ClearSampleData(ctx context.Context) error {
	var removed int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		n, err := s.clearSample(ctx, tx)
		removed = n
		return err
	})
	if err != nil {
		return storeErr("sample data", "clear", err)
	}
	utils.LogInfo("Sample data cleared", map[string]interface{}{"rows": removed})
	return nil
}

// ClearAllData empties every table. Sequences are left as they are.
func (s *LocalStore) ClearAllData(ctx context.Context) error {
	order, err := deletionOrder(models.AllSchemas())
	if err != nil {
		return datastore.Wrap(datastore.StoreLocal, "all data", "clear", err)
	}
	err = s.withTx(ctx, func(tx *sql.Tx) error {
		for _, table := range order {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clearing %s: %w", table, err)
			}
		}
		return nil
	})
	if err != nil {
		return storeErr("all data", "clear", err)
	}
	utils.LogInfo("All local data cleared")
	return nil
}

// SeedSampleData replaces any existing sample data with a small demo dataset.
// Every seeded row is a sample root or hangs off one.
func (s *LocalStore) SeedSampleData(ctx context.Context) error {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := s.clearSample(ctx, tx); err != nil {
			return err
		}
		return s.seed(ctx, tx)
	})
	if err != nil {
		return storeErr("sample data", "seed", err)
	}
	utils.LogInfo("Sample data seeded")
	return nil
}

func (s *LocalStore) seed(ctx context.Context, tx *sql.Tx) error {
	rate := 28.5
	staff := models.User{Name: "Sam Sample", Email: "sam.sample@example.com", Role: models.RoleStaff,
		HourlyRate: &rate, Phone: utils.NewNullString("+1 555 0100"), IsSample: true}
	staffID, err := s.insertUser(ctx, tx, &staff)
	if err != nil {
		return fmt.Errorf("seeding staff: %w", err)
	}
	client := models.User{Name: "Casey Client", Email: "casey.client@example.com", Role: models.RoleClient, IsSample: true}
	clientID, err := s.insertUser(ctx, tx, &client)
	if err != nil {
		return fmt.Errorf("seeding client: %w", err)
	}

	supplier := "Valley Farms"
	ingredients := []models.Ingredient{
		{Name: "Chicken breast", Unit: "kg", PricePerUnit: 9.8, Supplier: &supplier, IsSample: true},
		{Name: "Basmati rice", Unit: "kg", PricePerUnit: 3.2, IsSample: true},
		{Name: "Mixed greens", Unit: "kg", PricePerUnit: 6.5, Supplier: &supplier, IsSample: true},
	}
	ingredientIDs := make([]int64, len(ingredients))
	for i := range ingredients {
		if ingredientIDs[i], err = s.insertIngredient(ctx, tx, &ingredients[i]); err != nil {
			return fmt.Errorf("seeding ingredient %s: %w", ingredients[i].Name, err)
		}
	}

	menu := models.Menu{Name: "Summer Buffet", Description: utils.NewNullString("Seasonal buffet for mid-size events"), IsSample: true}
	menuID, err := s.insertMenu(ctx, tx, &menu)
	if err != nil {
		return fmt.Errorf("seeding menu: %w", err)
	}
	mains, sides := "main", "side"
	items := []models.MenuItem{
		{MenuID: menuID, Name: "Chicken and rice", Price: 14, Category: &mains, IsGlutenFree: true},
		{MenuID: menuID, Name: "Garden salad", Price: 6, Category: &sides, IsVegetarian: true, IsVegan: true, IsGlutenFree: true},
	}
	itemIDs := make([]int64, len(items))
	for i := range items {
		if itemIDs[i], err = s.insertMenuItem(ctx, tx, &items[i]); err != nil {
			return fmt.Errorf("seeding menu item %s: %w", items[i].Name, err)
		}
	}
	recipe := []models.RecipeLine{
		{MenuItemID: itemIDs[0], IngredientID: ingredientIDs[0], Quantity: 0.25},
		{MenuItemID: itemIDs[0], IngredientID: ingredientIDs[1], Quantity: 0.1},
		{MenuItemID: itemIDs[1], IngredientID: ingredientIDs[2], Quantity: 0.15},
	}
	for i := range recipe {
		if _, err := s.insertRecipeLine(ctx, tx, &recipe[i]); err != nil {
			return fmt.Errorf("seeding recipe line: %w", err)
		}
	}

	category := "serving"
	chafers := models.Equipment{Name: "Chafing dish", Category: &category, Ownership: models.OwnershipOwned,
		DefaultRentalCost: 12, Quantity: 10, IsSample: true}
	equipmentID, err := s.insertEquipment(ctx, tx, &chafers)
	if err != nil {
		return fmt.Errorf("seeding equipment: %w", err)
	}

	start := time.Now().UTC().AddDate(0, 0, 14).Truncate(time.Hour)
	event := models.Event{Name: "Sample Wedding Reception", ClientID: &clientID, Status: models.EventStatusQuote,
		StartTime: start, EndTime: start.Add(5 * time.Hour), GuestCount: 80,
		Location: utils.NewNullString("Riverside Hall"), IsSample: true}
	eventID, err := s.insertEvent(ctx, tx, &event)
	if err != nil {
		return fmt.Errorf("seeding event: %w", err)
	}

	for i := range itemIDs {
		emi := models.EventMenuItem{EventID: eventID, MenuItemID: itemIDs[i], Quantity: 80}
		if _, err := s.insertEventMenuItem(ctx, tx, &emi); err != nil {
			return fmt.Errorf("seeding event menu item: %w", err)
		}
	}
	if _, err := s.insertEventStaff(ctx, tx, &models.EventStaff{EventID: eventID, UserID: staffID, Role: utils.NewNullString("server")}); err != nil {
		return fmt.Errorf("seeding event staff: %w", err)
	}
	if _, err := s.insertEventEquipment(ctx, tx, &models.EventEquipment{EventID: eventID, EquipmentID: equipmentID, Quantity: 6}); err != nil {
		return fmt.Errorf("seeding event equipment: %w", err)
	}
	due := start.AddDate(0, 0, -7)
	task := models.Task{EventID: eventID, Title: "Confirm final guest count", DueDate: &due, AssignedUserID: &staffID}
	if _, err := s.insertTask(ctx, tx, &task); err != nil {
		return fmt.Errorf("seeding task: %w", err)
	}

	if _, err := s.insertAvailability(ctx, tx, &models.StaffAvailability{UserID: staffID, DayOfWeek: 6, StartTime: "10:00", EndTime: "22:00"}); err != nil {
		return fmt.Errorf("seeding availability: %w", err)
	}
	blackout := models.BlackoutDate{UserID: staffID, Date: start.AddDate(0, 1, 0).Format("2006-01-02"), Reason: utils.NewNullString("Family trip")}
	if _, err := s.insertBlackout(ctx, tx, &blackout); err != nil {
		return fmt.Errorf("seeding blackout date: %w", err)
	}

	shift := models.OpenShift{EventID: eventID, Role: "bartender", StartTime: start, EndTime: start.Add(5 * time.Hour), HourlyRate: &rate}
	shiftID, err := s.insertOpenShift(ctx, tx, &shift)
	if err != nil {
		return fmt.Errorf("seeding open shift: %w", err)
	}
	if _, err := s.insertShiftBid(ctx, tx, &models.ShiftBid{ShiftID: shiftID, UserID: staffID}); err != nil {
		return fmt.Errorf("seeding shift bid: %w", err)
	}

	msg := models.Message{SenderID: clientID, RecipientID: &staffID, EventID: &eventID,
		Body: "Could we add a vegan dessert option?"}
	if _, err := s.insertMessage(ctx, tx, &msg); err != nil {
		return fmt.Errorf("seeding message: %w", err)
	}
	return nil
}
