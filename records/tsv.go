package records

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// fields maps the normalised JSON keys and worksheet header names onto Record fields,
// so that a TSV downloaded with 'get' can be uploaded again with 'put'.
var fields = map[string]func(r *Record) *string{
	"id":                func(r *Record) *string { return &r.ID },
	"fechaextraccion":   func(r *Record) *string { return &r.Extracted },
	"fyhextracción":     func(r *Record) *string { return &r.Extracted },
	"fechapublicacion":  func(r *Record) *string { return &r.Published },
	"fyhpublicación":    func(r *Record) *string { return &r.Published },
	"titulo":            func(r *Record) *string { return &r.Title },
	"título":            func(r *Record) *string { return &r.Title },
	"descripcion":       func(r *Record) *string { return &r.Description },
	"descripción":       func(r *Record) *string { return &r.Description },
	"tipo":              func(r *Record) *string { return &r.Type },
	"monto":             func(r *Record) *string { return &r.Amount },
	"tipomonto":         func(r *Record) *string { return &r.AmountType },
	"linkficha":         func(r *Record) *string { return &r.Link },
	"fechavisita":       func(r *Record) *string { return &r.SiteVisit },
	"fyhterreno":        func(r *Record) *string { return &r.SiteVisit },
	"visitaobligatoria": func(r *Record) *string { return &r.VisitMandatory },
	"oblig?":            func(r *Record) *string { return &r.VisitMandatory },
	"fechacierre":       func(r *Record) *string { return &r.Closing },
	"fyhcierre":         func(r *Record) *string { return &r.Closing },
}

// Load reads a list of records from a .json or .tsv file.
func Load(file string) ([]Record, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		return ParseJSON(f)

	case ".tsv", ".txt":
		return ParseTSV(f)

	default:
		return nil, fmt.Errorf("Unsupported records file '%v' - expected a .json or .tsv file", file)
	}
}

// ParseJSON decodes a JSON array of records.
func ParseJSON(r io.Reader) ([]Record, error) {
	list := []Record{}

	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("Invalid JSON records file (%w)", err)
	}

	for i := range list {
		list[i].ID = clean(list[i].ID)
	}

	return list, nil
}

// ParseTSV reads a tab separated file whose header row names the record fields.
func ParseTSV(f io.Reader) ([]Record, error) {
	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("TSV file is empty")
	}

	// ... header
	index := map[int]func(r *Record) *string{}
	hasID := false
	for i, v := range rows[0] {
		k := normalise(clean(v))
		if field, ok := fields[k]; ok {
			index[i] = field
			if k == "id" {
				hasID = true
			}
		}
	}

	if !hasID {
		return nil, fmt.Errorf("Missing 'id' column")
	}

	// ... records
	list := []Record{}
	for _, row := range rows[1:] {
		record := Record{}
		for i, v := range row {
			if field, ok := index[i]; ok {
				*field(&record) = clean(v)
			}
		}

		if record.ID != "" {
			list = append(list, record)
		}
	}

	return list, nil
}

// MakeTSV writes worksheet values, header row first, as a tab separated file. Short
// rows are padded to the header width.
func MakeTSV(f io.Writer, rows [][]interface{}) error {
	if len(rows) == 0 {
		return fmt.Errorf("Empty sheet")
	}

	header := make([]string, len(rows[0]))
	for i, v := range rows[0] {
		header[i] = clean(fmt.Sprintf("%v", v))
	}

	if len(header) == 0 {
		return fmt.Errorf("Missing/invalid header row")
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write(header); err != nil {
		return err
	}

	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}

		record := make([]string, len(header))
		for i, v := range row {
			if i < len(record) {
				record[i] = clean(fmt.Sprintf("%v", v))
			}
		}

		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}
