package records

import (
	"reflect"
	"testing"
)

func TestMakeIndex(t *testing.T) {
	expected := Index{
		Rows: 3,
		Last: 12,
		IDs: map[string]bool{
			"A-10": true,
			"A-11": true,
			"A-12": true,
		},
	}

	data := [][]interface{}{
		{"Número", "FyH Extracción", "FyH Publicación", "ID", "Título"},
		{"10", "2026-10-01", "2026-09-30", "A-10", "uno"},
		{"11", "2026-10-01", "2026-09-30", "A-11", "dos"},
		{"12", "2026-10-02", "2026-10-01", "A-12", "tres"},
	}

	index, err := MakeIndex(data)
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeIndex (%v)", err)
	}

	if !reflect.DeepEqual(*index, expected) {
		t.Errorf("Incorrect index\n   expected: %v\n   got:      %v\n", expected, *index)
	}
}

func TestMakeIndexWithEmptySheet(t *testing.T) {
	index, err := MakeIndex([][]interface{}{})
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeIndex (%v)", err)
	}

	if index.Last != 0 || index.Rows != 0 || len(index.IDs) != 0 {
		t.Errorf("Expected empty index, got %+v", *index)
	}
}

func TestMakeIndexWithHeaderOnly(t *testing.T) {
	data := [][]interface{}{
		{"Número", "FyH Extracción", "FyH Publicación", "ID"},
	}

	index, err := MakeIndex(data)
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeIndex (%v)", err)
	}

	if index.Last != 0 || index.Rows != 0 || len(index.IDs) != 0 {
		t.Errorf("Expected empty index, got %+v", *index)
	}
}

func TestMakeIndexUsesLargestNumber(t *testing.T) {
	data := [][]interface{}{
		{"Número", "ID"},
		{"7", "A-7"},
		{"19", "A-19"},
		{"x", "A-X"},
		{"8", "A-8"},
	}

	index, err := MakeIndex(data)
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeIndex (%v)", err)
	}

	if index.Last != 19 {
		t.Errorf("Incorrect last number - expected:%v, got:%v", 19, index.Last)
	}

	if !index.IDs["A-X"] {
		t.Errorf("Expected 'A-X' in index IDs")
	}
}

func TestMakeIndexWithMovedColumns(t *testing.T) {
	data := [][]interface{}{
		{"ID", "Título", "Número"},
		{"A-1", "uno", "3"},
		{"A-2", "dos", "4"},
	}

	index, err := MakeIndex(data)
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeIndex (%v)", err)
	}

	if index.Last != 4 {
		t.Errorf("Incorrect last number - expected:%v, got:%v", 4, index.Last)
	}

	if !index.IDs["A-1"] || !index.IDs["A-2"] {
		t.Errorf("Incorrect IDs - got %v", index.IDs)
	}
}

func TestMakeIndexWithShortAndBlankRows(t *testing.T) {
	data := [][]interface{}{
		{"Número", "FyH Extracción", "FyH Publicación", "ID"},
		{"1", "2026-10-01", "2026-09-30", "A-1"},
		{},
		{"2"},
	}

	index, err := MakeIndex(data)
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeIndex (%v)", err)
	}

	if index.Rows != 3 {
		t.Errorf("Incorrect row count - expected:%v, got:%v", 3, index.Rows)
	}

	if index.Last != 2 {
		t.Errorf("Incorrect last number - expected:%v, got:%v", 2, index.Last)
	}

	if len(index.IDs) != 1 || !index.IDs["A-1"] {
		t.Errorf("Incorrect IDs - got %v", index.IDs)
	}
}

func TestMakeIndexWithDuplicatedColumn(t *testing.T) {
	data := [][]interface{}{
		{"Número", "ID", "ID"},
	}

	if _, err := MakeIndex(data); err == nil {
		t.Fatalf("Expected error return for duplicated column, got %v", err)
	}
}

func TestMakeIndexWithBlankHeaderCells(t *testing.T) {
	data := [][]interface{}{
		{"Número", "", "", "ID"},
		{"1", "x", "y", "A-1"},
	}

	index, err := MakeIndex(data)
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeIndex (%v)", err)
	}

	if index.Last != 1 || !index.IDs["A-1"] {
		t.Errorf("Incorrect index %+v", *index)
	}
}
