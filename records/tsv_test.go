package records

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseJSON(t *testing.T) {
	expected := []Record{
		{
			ID:             "1057-42-LE26",
			Extracted:      "2026-10-16 08:00",
			Published:      "2026-10-15 12:30",
			Title:          "Suministro de cloro",
			Description:    "Cloro para planta",
			Type:           "LE",
			Amount:         "NF",
			AmountType:     "NF",
			Link:           "https://example.cl/ficha",
			SiteVisit:      "NF",
			VisitMandatory: "No",
			Closing:        "2026-10-30 15:00",
		},
	}

	data := `[
  {
    "id": " 1057-42-LE26 ",
    "fecha_extraccion": "2026-10-16 08:00",
    "fecha_publicacion": "2026-10-15 12:30",
    "titulo": "Suministro de cloro",
    "descripcion": "Cloro para planta",
    "tipo": "LE",
    "monto": "NF",
    "tipo_monto": "NF",
    "link_ficha": "https://example.cl/ficha",
    "fecha_visita": "NF",
    "visita_obligatoria": "No",
    "fecha_cierre": "2026-10-30 15:00"
  }
]`

	list, err := ParseJSON(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Unexpected error returned from ParseJSON (%v)", err)
	}

	if !reflect.DeepEqual(list, expected) {
		t.Errorf("Incorrect records\n   expected: %v\n   got:      %v\n", expected, list)
	}
}

func TestParseJSONWithInvalidJSON(t *testing.T) {
	if _, err := ParseJSON(strings.NewReader(`{"id":`)); err == nil {
		t.Fatalf("Expected error return for invalid JSON, got %v", err)
	}
}

func TestParseTSV(t *testing.T) {
	expected := []Record{
		{ID: "A-1", Title: "uno", Amount: "1000", VisitMandatory: "Si"},
		{ID: "A-2", Title: "dos", Amount: "NF", VisitMandatory: "NF"},
	}

	data := "id\ttitulo\tmonto\tvisita_obligatoria\tignored\n" +
		"A-1\tuno\t1000\tSi\tx\n" +
		"A-2\tdos\tNF\tNF\ty\n" +
		"\tsin id\t1\tNo\tz\n"

	list, err := ParseTSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Unexpected error returned from ParseTSV (%v)", err)
	}

	if !reflect.DeepEqual(list, expected) {
		t.Errorf("Incorrect records\n   expected: %v\n   got:      %v\n", expected, list)
	}
}

func TestParseTSVWithWorksheetHeader(t *testing.T) {
	expected := []Record{
		{
			ID:             "A-7",
			Extracted:      "2026-10-16",
			Published:      "2026-10-15",
			Title:          "siete",
			Description:    "desc",
			Type:           "L1",
			Amount:         "NF",
			AmountType:     "NF",
			Link:           "https://example.cl",
			SiteVisit:      "NF",
			VisitMandatory: "No",
			Closing:        "2026-10-31",
		},
	}

	data := strings.Join(Header, "\t") + "\n" +
		"7\t2026-10-16\t2026-10-15\tA-7\tsiete\tdesc\tL1\tNF\tNF\thttps://example.cl\tNF\tNo\t2026-10-31\n"

	list, err := ParseTSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Unexpected error returned from ParseTSV (%v)", err)
	}

	if !reflect.DeepEqual(list, expected) {
		t.Errorf("Incorrect records\n   expected: %v\n   got:      %v\n", expected, list)
	}
}

func TestParseTSVWithEmptyFile(t *testing.T) {
	if _, err := ParseTSV(strings.NewReader("")); err == nil {
		t.Fatalf("Expected error return for empty TSV file, got %v", err)
	}
}

func TestParseTSVWithMissingID(t *testing.T) {
	if _, err := ParseTSV(strings.NewReader("titulo\tmonto\nuno\t1\n")); err == nil {
		t.Fatalf("Expected error return for missing 'id' column, got %v", err)
	}
}

func TestMakeTSV(t *testing.T) {
	expected := "Número\tID\tMonto\n" +
		"1\tA-1\t1000\n" +
		"2\tA-2\t\n"

	var f strings.Builder
	data := [][]interface{}{
		{"Número", "ID", "Monto"},
		{"1", "A-1", "1000"},
		{},
		{"2", " A-2 "},
	}

	if err := MakeTSV(&f, data); err != nil {
		t.Fatalf("Unexpected error returned from MakeTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestMakeTSVWithEmptySheet(t *testing.T) {
	var f strings.Builder

	if err := MakeTSV(&f, [][]interface{}{}); err == nil {
		t.Fatalf("Expected error return for empty sheet, got %v", err)
	}
}

func TestMakeTSVWithoutHeaders(t *testing.T) {
	var f strings.Builder

	if err := MakeTSV(&f, [][]interface{}{{}}); err == nil {
		t.Fatalf("Expected error return for missing headers, got %v", err)
	}
}
