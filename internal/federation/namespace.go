package federation

import (
	"fmt"
	"reflect"

	"catering_backend/internal/datastore"
	"catering_backend/internal/models"
)

// Origin is the store a record lives in.
type Origin int

const (
	OriginRemote Origin = iota + 1
	OriginLocal
)

func (o Origin) String() string {
	switch o {
	case OriginRemote:
		return "remote"
	case OriginLocal:
		return "local"
	}
	return "unknown"
}

// Store maps the origin onto the datastore taxonomy.
func (o Origin) Store() datastore.Store {
	if o == OriginLocal {
		return datastore.StoreLocal
	}
	return datastore.StoreRemote
}

// Ref is a tagged identifier: which store, and the id native to that store.
// Callers outside the package see it flattened to a signed id, negative for
// local records.
type Ref struct {
	Origin Origin
	Native int64
}

// ParseRef splits a signed id. Zero belongs to no store.
func ParseRef(id int64) (Ref, error) {
	switch {
	case id > 0:
		return Ref{Origin: OriginRemote, Native: id}, nil
	case id < 0:
		return Ref{Origin: OriginLocal, Native: -id}, nil
	}
	return Ref{}, fmt.Errorf("%w: 0", datastore.ErrInvalidID)
}

// Shared flattens the reference back to a signed id.
func (r Ref) Shared() int64 {
	if r.Origin == OriginLocal {
		return -r.Native
	}
	return r.Native
}

func originOf(id int64) Origin {
	if id < 0 {
		return OriginLocal
	}
	return OriginRemote
}

var keyedType = reflect.TypeOf((*models.Keyed)(nil)).Elem()

// flipLocal negates the id and every declared, non-null foreign key of v,
// and of any keyed record nested in v. Negation is its own inverse, so the
// same walk maps local results into the shared namespace and local-bound
// payloads out of it. v must be a pointer. Nested slices are copied before
// they are touched; pointer keys are replaced, never written through.
func flipLocal(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return
	}
	flipValue(rv.Elem())
}

func flipValue(v reflect.Value) {
	switch v.Kind() {
	case reflect.Struct:
		if !v.Type().Implements(keyedType) {
			return
		}
		flipStruct(v)
	case reflect.Slice:
		if v.IsNil() || !isKeyedElem(v.Type().Elem()) {
			return
		}
		cp := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		reflect.Copy(cp, v)
		for i := 0; i < cp.Len(); i++ {
			flipValue(cp.Index(i))
		}
		if v.CanSet() {
			v.Set(cp)
		}
	case reflect.Pointer:
		if !v.IsNil() && isKeyedElem(v.Type().Elem()) {
			cp := reflect.New(v.Type().Elem())
			cp.Elem().Set(v.Elem())
			flipValue(cp.Elem())
			if v.CanSet() {
				v.Set(cp)
			}
		}
	}
}

func isKeyedElem(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct && t.Implements(keyedType)
}

func flipStruct(v reflect.Value) {
	schema := v.Interface().(models.Keyed).Schema()

	if id := v.FieldByName("ID"); id.IsValid() && id.Kind() == reflect.Int64 && id.CanSet() && id.Int() != 0 {
		id.SetInt(-id.Int())
	}
	for _, fk := range schema.ForeignKeys {
		negateField(v.FieldByName(fk.Field))
	}
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if !v.Type().Field(i).IsExported() {
			continue
		}
		switch f.Kind() {
		case reflect.Struct, reflect.Slice, reflect.Pointer:
			flipValue(f)
		}
	}
}

// negateField flips an int64 or *int64 key. Zero and nil stay as they are.
func negateField(f reflect.Value) {
	if !f.IsValid() || !f.CanSet() {
		return
	}
	switch {
	case f.Kind() == reflect.Int64:
		if f.Int() != 0 {
			f.SetInt(-f.Int())
		}
	case f.Kind() == reflect.Pointer && f.Type().Elem().Kind() == reflect.Int64:
		if f.IsNil() || f.Elem().Int() == 0 {
			return
		}
		n := -f.Elem().Int()
		f.Set(reflect.ValueOf(&n))
	}
}

// foreignKeys lists the non-null declared foreign keys of v, by field name.
func foreignKeys(v models.Keyed) map[string]int64 {
	rv := reflect.Indirect(reflect.ValueOf(v))
	keys := map[string]int64{}
	if rv.Kind() != reflect.Struct {
		return keys
	}
	for _, fk := range v.Schema().ForeignKeys {
		f := rv.FieldByName(fk.Field)
		switch {
		case !f.IsValid():
		case f.Kind() == reflect.Int64:
			if f.Int() != 0 {
				keys[fk.Field] = f.Int()
			}
		case f.Kind() == reflect.Pointer && !f.IsNil() && f.Type().Elem().Kind() == reflect.Int64:
			if n := f.Elem().Int(); n != 0 {
				keys[fk.Field] = n
			}
		}
	}
	return keys
}

// provenance picks the store a new record is written to: local when it is
// sample data or a required parent is local, remote otherwise.
func provenance(v models.Keyed) Origin {
	if s, ok := v.(models.SampleMarked); ok && s.SampleData() {
		return OriginLocal
	}
	keys := foreignKeys(v)
	for _, fk := range v.Schema().RequiredKeys() {
		if keys[fk.Field] < 0 {
			return OriginLocal
		}
	}
	return OriginRemote
}

// checkKeys rejects a payload bound for origin that references a record in
// the other store.
func checkKeys(v models.Keyed, origin Origin) error {
	for field, id := range foreignKeys(v) {
		if originOf(id) != origin {
			return fmt.Errorf("%w: %s=%d cannot be stored %s", datastore.ErrCrossStoreReference, field, id, origin)
		}
	}
	return nil
}
