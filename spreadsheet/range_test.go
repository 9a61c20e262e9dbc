package spreadsheet

import (
	"testing"
)

func TestArea(t *testing.T) {
	tests := []struct {
		sheet    string
		cells    string
		expected string
	}{
		{"Palabras Clave", "F8:F19", "'Palabras Clave'!F8:F19"},
		{"Octubre", "A1:M", "'Octubre'!A1:M"},
		{"O'Higgins", "A1", "'O''Higgins'!A1"},
		{"Log", "", "'Log'"},
	}

	for _, v := range tests {
		if area := Area(v.sheet, v.cells); area != v.expected {
			t.Errorf("Incorrect area - expected:%v, got:%v", v.expected, area)
		}
	}
}

func TestColumn(t *testing.T) {
	tests := map[int]string{
		0:   "A",
		7:   "H",
		12:  "M",
		25:  "Z",
		26:  "AA",
		51:  "AZ",
		52:  "BA",
		701: "ZZ",
		702: "AAA",
	}

	for index, expected := range tests {
		if column := Column(index); column != expected {
			t.Errorf("Incorrect column for %v - expected:%v, got:%v", index, expected, column)
		}
	}
}

func TestCell(t *testing.T) {
	if cell := Cell(5, 11); cell != "L5" {
		t.Errorf("Incorrect cell - expected:%v, got:%v", "L5", cell)
	}
}

func TestFirstRow(t *testing.T) {
	tests := []struct {
		area string
		row  int
		ok   bool
	}{
		{"'Octubre'!A12:M14", 12, true},
		{"Octubre!A2:M2", 2, true},
		{"A5:M7", 5, true},
		{"'Log!Runs'!$A$3:$F$3", 3, true},
		{"", 0, false},
		{"'Octubre'!A:M", 0, false},
	}

	for _, v := range tests {
		row, ok := firstRow(v.area)
		if row != v.row || ok != v.ok {
			t.Errorf("Incorrect first row for %q - expected:%v,%v, got:%v,%v", v.area, v.row, v.ok, row, ok)
		}
	}
}
