package querybuilder

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var errNoColumns = errors.New("row has no db columns")

// InsertModel builds an INSERT of every db-tagged field of row, in field
// order. suffix is appended verbatim (ON CONFLICT, RETURNING).
func InsertModel(table string, row any, suffix string) (string, []any, error) {
	value, err := structValue(row)
	if err != nil {
		return "", nil, err
	}

	var (
		cols []string
		vals []any
	)
	walkColumns(value.Type(), func(i int, col string) {
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	})
	if len(cols) == 0 {
		return "", nil, errNoColumns
	}

	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

// ModelColumns lists the db-tagged columns of row in field order.
func ModelColumns(row any) ([]string, error) {
	value, err := structValue(row)
	if err != nil {
		return nil, err
	}

	var cols []string
	walkColumns(value.Type(), func(_ int, col string) {
		cols = append(cols, col)
	})
	if len(cols) == 0 {
		return nil, errNoColumns
	}
	return cols, nil
}

func structValue(row any) (reflect.Value, error) {
	value := reflect.ValueOf(row)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return reflect.Value{}, fmt.Errorf("row cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("row must be a struct, got %s", value.Kind())
	}
	return value, nil
}

// walkColumns skips unexported fields and fields tagged "-" or untagged.
func walkColumns(typ reflect.Type, fn func(i int, col string)) {
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		col, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		col = strings.TrimSpace(col)
		if col == "" || col == "-" {
			continue
		}
		fn(i, col)
	}
}
