// Package output provides output formatting for kvstore-cli.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"
)

// TableFormatter formats data as an ASCII table.
type TableFormatter struct {
	NoHeaders bool
}

// Table is tabular data ready for rendering.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Render writes the table using aligned columns.
func (t *Table) Render(w io.Writer, noHeaders bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if len(t.Headers) > 0 && !noHeaders {
		fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	}
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

// Format formats data as a table.
// Supports: *Table, slices of structs, structs, and string-keyed maps.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	if data == nil {
		return nil
	}

	if t, ok := data.(*Table); ok {
		return t.Render(w, f.NoHeaders)
	}
	if t, ok := data.(Table); ok {
		return t.Render(w, f.NoHeaders)
	}

	table, err := toTable(data)
	if err != nil {
		// Fallback to JSON for shapes a table cannot hold.
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	}

	return table.Render(w, f.NoHeaders)
}

// toTable converts supported data shapes to a Table.
func toTable(data any) (*Table, error) {
	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return sliceToTable(v)
	case reflect.Struct:
		return structToTable(v)
	case reflect.Map:
		return mapToTable(v)
	default:
		return nil, fmt.Errorf("unsupported type: %s", v.Kind())
	}
}

// sliceToTable renders a slice of structs with one row per element.
func sliceToTable(v reflect.Value) (*Table, error) {
	if v.Len() == 0 {
		return &Table{}, nil
	}

	first := v.Index(0)
	if first.Kind() == reflect.Ptr {
		first = first.Elem()
	}
	if first.Kind() != reflect.Struct {
		return nil, fmt.Errorf("unsupported element type: %s", first.Kind())
	}

	headers, indices := structColumns(first.Type())
	table := &Table{Headers: headers}

	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		if elem.Kind() == reflect.Ptr {
			elem = elem.Elem()
		}
		row := make([]string, 0, len(indices))
		for _, idx := range indices {
			row = append(row, fmt.Sprintf("%v", elem.Field(idx).Interface()))
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// structToTable renders one struct as FIELD/VALUE rows.
func structToTable(v reflect.Value) (*Table, error) {
	headers, indices := structColumns(v.Type())

	table := &Table{Headers: []string{"FIELD", "VALUE"}}
	for i, idx := range indices {
		table.Rows = append(table.Rows, []string{
			headers[i],
			fmt.Sprintf("%v", v.Field(idx).Interface()),
		})
	}

	return table, nil
}

// mapToTable renders a string-keyed map as KEY/VALUE rows, sorted by key.
func mapToTable(v reflect.Value) (*Table, error) {
	if v.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("unsupported map key type: %s", v.Type().Key())
	}

	keys := make([]string, 0, v.Len())
	for _, k := range v.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	table := &Table{Headers: []string{"KEY", "VALUE"}}
	for _, k := range keys {
		val := v.MapIndex(reflect.ValueOf(k))
		table.Rows = append(table.Rows, []string{k, fmt.Sprintf("%v", val.Interface())})
	}

	return table, nil
}

// structColumns returns header names and field indices for exported
// fields, honoring `json` tags for naming and `table:"-"` for skipping.
func structColumns(t reflect.Type) ([]string, []int) {
	var headers []string
	var indices []int

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if field.Tag.Get("table") == "-" {
			continue
		}

		name := field.Name
		if jsonTag := field.Tag.Get("json"); jsonTag != "" {
			parts := strings.Split(jsonTag, ",")
			if parts[0] != "" && parts[0] != "-" {
				name = parts[0]
			}
		}
		headers = append(headers, strings.ToUpper(name))
		indices = append(indices, i)
	}

	return headers, indices
}
