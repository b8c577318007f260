package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// modelColumn is one exported struct field carrying a `db` tag.
type modelColumn struct {
	name  string
	value any
}

func modelColumns(model any) ([]modelColumn, error) {
	v := reflect.Indirect(reflect.ValueOf(model))
	if !v.IsValid() {
		return nil, fmt.Errorf("model cannot be nil")
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model must be a struct, got %s", v.Kind())
	}

	t := v.Type()
	out := make([]modelColumn, 0, t.NumField())
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		out = append(out, modelColumn{name: name, value: v.Field(i).Interface()})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("model %s has no db columns", t.Name())
	}
	return out, nil
}

// InsertModel builds an INSERT from the model's `db`-tagged fields.
func InsertModel(table string, model any) (string, []any, error) {
	cols, err := modelColumns(model)
	if err != nil {
		return "", nil, err
	}
	return insertColumns(table, cols).ToSQL()
}

// UpsertModel builds an INSERT that overwrites every non-key column when a
// row with the same key already exists. The ON CONFLICT form is shared by
// sqlite and postgres.
func UpsertModel(table string, model any, keyColumns ...string) (string, []any, error) {
	if len(keyColumns) == 0 {
		return "", nil, fmt.Errorf("upsert into %s requires key columns", table)
	}
	cols, err := modelColumns(model)
	if err != nil {
		return "", nil, err
	}

	isKey := make(map[string]bool, len(keyColumns))
	for _, key := range keyColumns {
		isKey[key] = true
	}
	updates := make([]string, 0, len(cols))
	for _, col := range cols {
		if !isKey[col.name] {
			updates = append(updates, col.name+" = excluded."+col.name)
		}
	}

	suffix := "ON CONFLICT (" + strings.Join(keyColumns, ", ") + ") DO NOTHING"
	if len(updates) > 0 {
		suffix = "ON CONFLICT (" + strings.Join(keyColumns, ", ") + ") DO UPDATE SET " + strings.Join(updates, ", ")
	}
	return insertColumns(table, cols).Suffix(suffix).ToSQL()
}

func insertColumns(table string, cols []modelColumn) *InsertBuilder {
	names := make([]string, len(cols))
	values := make([]any, len(cols))
	for i, col := range cols {
		names[i] = col.name
		values[i] = col.value
	}
	return InsertInto(table).Columns(names...).Values(values...)
}
