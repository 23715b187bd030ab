package repositories

import (
	"fmt"

	"catering_backend/internal/database"
)

// schemaStatements returns the DDL of the local store. Rows owned by a parent
// cascade with it; catalogue references (ingredients, menu items, equipment)
// block the delete instead; optional references are nulled.
func schemaStatements(d database.Dialect) []string {
	pk := d.PrimaryKey()
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS users (
			id %s,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			role TEXT NOT NULL DEFAULT 'staff',
			status TEXT NOT NULL DEFAULT 'active',
			hourly_rate DOUBLE PRECISION,
			phone TEXT,
			is_sample BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS events (
			id %s,
			name TEXT NOT NULL,
			client_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
			status TEXT NOT NULL DEFAULT 'inquiry',
			start_time TIMESTAMP NOT NULL,
			end_time TIMESTAMP NOT NULL,
			guest_count INTEGER NOT NULL DEFAULT 0,
			location TEXT,
			notes TEXT,
			is_sample BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS menus (
			id %s,
			name TEXT NOT NULL,
			description TEXT,
			is_sample BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS menu_items (
			id %s,
			menu_id BIGINT NOT NULL REFERENCES menus(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			description TEXT,
			price DOUBLE PRECISION NOT NULL DEFAULT 0,
			category TEXT,
			is_vegetarian BOOLEAN NOT NULL DEFAULT FALSE,
			is_vegan BOOLEAN NOT NULL DEFAULT FALSE,
			is_gluten_free BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS ingredients (
			id %s,
			name TEXT NOT NULL,
			unit TEXT NOT NULL,
			price_per_unit DOUBLE PRECISION NOT NULL DEFAULT 0,
			supplier TEXT,
			is_sample BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS recipe_lines (
			id %s,
			menu_item_id BIGINT NOT NULL REFERENCES menu_items(id) ON DELETE CASCADE,
			ingredient_id BIGINT NOT NULL REFERENCES ingredients(id),
			quantity DOUBLE PRECISION NOT NULL DEFAULT 0
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS equipment (
			id %s,
			name TEXT NOT NULL,
			category TEXT,
			ownership TEXT NOT NULL DEFAULT 'owned',
			default_rental_cost DOUBLE PRECISION NOT NULL DEFAULT 0,
			quantity INTEGER NOT NULL DEFAULT 0,
			is_sample BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS event_menu_items (
			id %s,
			event_id BIGINT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			menu_item_id BIGINT NOT NULL REFERENCES menu_items(id),
			quantity INTEGER NOT NULL DEFAULT 1,
			price_override DOUBLE PRECISION,
			notes TEXT
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS event_staff (
			id %s,
			event_id BIGINT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			role TEXT,
			hourly_rate_override DOUBLE PRECISION
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS event_equipment (
			id %s,
			event_id BIGINT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			equipment_id BIGINT NOT NULL REFERENCES equipment(id),
			quantity INTEGER NOT NULL DEFAULT 1,
			rental_cost_override DOUBLE PRECISION
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS tasks (
			id %s,
			event_id BIGINT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'todo',
			due_date TIMESTAMP,
			assigned_user_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
			created_at TIMESTAMP NOT NULL
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS staff_availability (
			id %s,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			day_of_week INTEGER NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			notes TEXT
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS blackout_dates (
			id %s,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			date TEXT NOT NULL,
			reason TEXT
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS open_shifts (
			id %s,
			event_id BIGINT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			role TEXT NOT NULL,
			start_time TIMESTAMP NOT NULL,
			end_time TIMESTAMP NOT NULL,
			hourly_rate DOUBLE PRECISION,
			status TEXT NOT NULL DEFAULT 'open',
			assigned_user_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
			created_at TIMESTAMP NOT NULL
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS shift_bids (
			id %s,
			shift_id BIGINT NOT NULL REFERENCES open_shifts(id) ON DELETE CASCADE,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			status TEXT NOT NULL DEFAULT 'pending',
			note TEXT,
			created_at TIMESTAMP NOT NULL
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS messages (
			id %s,
			sender_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			recipient_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
			event_id BIGINT REFERENCES events(id) ON DELETE SET NULL,
			body TEXT NOT NULL,
			attachment_url TEXT,
			is_read BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL
		)`, pk),
		`CREATE INDEX IF NOT EXISTS idx_menu_items_menu ON menu_items(menu_id)`,
		`CREATE INDEX IF NOT EXISTS idx_recipe_lines_item ON recipe_lines(menu_item_id)`,
		`CREATE INDEX IF NOT EXISTS idx_events_client ON events(client_id)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_sender ON messages(sender_id)`,
	}
}
