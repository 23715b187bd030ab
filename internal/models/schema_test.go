package models

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entities = []Keyed{
	User{}, Event{}, Menu{}, MenuItem{}, Ingredient{}, RecipeLine{}, Equipment{},
	EventMenuItem{}, EventStaff{}, EventEquipment{}, Task{},
	StaffAvailability{}, BlackoutDate{}, OpenShift{}, ShiftBid{}, Message{},
}

var patches = []Keyed{
	UserPatch{}, EventPatch{}, MenuPatch{}, MenuItemPatch{}, IngredientPatch{}, RecipeLinePatch{},
	EquipmentPatch{}, EventMenuItemPatch{}, EventStaffPatch{}, EventEquipmentPatch{}, TaskPatch{},
	StaffAvailabilityPatch{}, OpenShiftPatch{},
}

var int64Type = reflect.TypeOf(int64(0))

func TestSchemas_AreConsistent(t *testing.T) {
	tables := map[string]bool{}
	for _, s := range AllSchemas() {
		assert.False(t, tables[s.Table], "duplicate table %s", s.Table)
		tables[s.Table] = true
	}
	require.Len(t, tables, len(entities))

	for _, e := range entities {
		s := e.Schema()
		typ := reflect.TypeOf(e)
		assert.True(t, tables[s.Table], "%s not in AllSchemas", typ.Name())

		_, marked := e.(SampleMarked)
		assert.Equal(t, s.SampleFlag, marked, "%s: sample flag and SampleData disagree", typ.Name())

		for _, fk := range s.ForeignKeys {
			assert.True(t, tables[fk.References], "%s.%s references unknown table %s", typ.Name(), fk.Field, fk.References)
			f, ok := typ.FieldByName(fk.Field)
			require.True(t, ok, "%s has no field %s", typ.Name(), fk.Field)
			if fk.Required {
				assert.Equal(t, int64Type, f.Type, "%s.%s", typ.Name(), fk.Field)
			} else {
				assert.Equal(t, reflect.PointerTo(int64Type), f.Type, "%s.%s", typ.Name(), fk.Field)
			}
			assert.Equal(t, fk.Column, f.Tag.Get("db"))
		}
	}
}

func TestPatches_OnlyPointerFields(t *testing.T) {
	for _, p := range patches {
		typ := reflect.TypeOf(p)
		for i := 0; i < typ.NumField(); i++ {
			f := typ.Field(i)
			assert.Equal(t, reflect.Pointer, f.Type.Kind(), "%s.%s", typ.Name(), f.Name)
			assert.NotEmpty(t, f.Tag.Get("db"), "%s.%s", typ.Name(), f.Name)
		}
		for _, fk := range p.Schema().ForeignKeys {
			if f, ok := typ.FieldByName(fk.Field); ok {
				assert.Equal(t, reflect.PointerTo(int64Type), f.Type, "%s.%s", typ.Name(), fk.Field)
			}
		}
	}
}

func TestRequiredKeys(t *testing.T) {
	keys := Message{}.Schema().RequiredKeys()
	require.Len(t, keys, 1)
	assert.Equal(t, "SenderID", keys[0].Field)
	assert.Empty(t, User{}.Schema().RequiredKeys())
}

func TestDerivedValues(t *testing.T) {
	assert.InDelta(t, 9.5, MenuItem{Price: 14, CalculatedCost: 4.5}.Margin(), 1e-9)
	assert.True(t, ValidBidStatus(BidStatusAccepted))
	assert.False(t, ValidBidStatus("maybe"))
}
